package strval_test

import (
	"testing"

	"github.com/katalvlaran/hmatrix/strval"
	"github.com/stretchr/testify/assert"
)

func TestFromBytes(t *testing.T) {
	s := strval.FromBytes([]byte("abc"), 2, 1.5, "corpusA")

	assert.Equal(t, strval.KindBytes, s.Kind)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 2, s.Idx)
	assert.Equal(t, 1.5, s.Label)
	assert.Equal(t, "corpusA", s.Src)
}

func TestLen_TokensKind(t *testing.T) {
	s := strval.StringValue{Kind: strval.KindTokens, Tokens: []uint64{1, 2, 3, 4}}
	assert.Equal(t, 4, s.Len())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "bytes", strval.KindBytes.String())
	assert.Equal(t, "tokens", strval.KindTokens.String())
}
