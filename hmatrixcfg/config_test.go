package hmatrixcfg_test

import (
	"testing"

	"github.com/katalvlaran/hmatrix/hmatrixcfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedGetters(t *testing.T) {
	cfg := hmatrixcfg.Config{
		"measure":     "levenshtein",
		"ngram":       3,
		"threshold":   0.5,
		"verbose":     true,
		"intAsString": "7",
	}

	assert.Equal(t, "levenshtein", cfg.String("measure", "default"))
	assert.Equal(t, "default", cfg.String("missing", "default"))
	assert.Equal(t, 3, cfg.Int("ngram", 1))
	assert.Equal(t, 7, cfg.Int("intAsString", 0))
	assert.Equal(t, 0.5, cfg.Float("threshold", 0))
	assert.True(t, cfg.Bool("verbose", false))
}

func TestDecode(t *testing.T) {
	type costMatrix struct {
		Insert int
		Delete int
	}

	cfg := hmatrixcfg.Config{
		"cost": map[string]any{"Insert": 2, "Delete": 3},
	}

	var cm costMatrix
	require.NoError(t, cfg.Decode("cost", &cm))
	assert.Equal(t, 2, cm.Insert)
	assert.Equal(t, 3, cm.Delete)
}

func TestDecode_MissingKeyIsNoop(t *testing.T) {
	cfg := hmatrixcfg.Config{}
	var out struct{ X int }
	require.NoError(t, cfg.Decode("missing", &out))
	assert.Zero(t, out.X)
}
