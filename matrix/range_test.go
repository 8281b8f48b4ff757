package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hmatrix/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange_FullAndPartial(t *testing.T) {
	r, err := matrix.ParseRange("", 10)
	require.NoError(t, err)
	assert.Equal(t, matrix.Range{I: 0, N: 10}, r)

	r, err = matrix.ParseRange("2:5", 10)
	require.NoError(t, err)
	assert.Equal(t, matrix.Range{I: 2, N: 5}, r)

	r, err = matrix.ParseRange("3:", 10)
	require.NoError(t, err)
	assert.Equal(t, matrix.Range{I: 3, N: 10}, r)

	r, err = matrix.ParseRange(":4", 10)
	require.NoError(t, err)
	assert.Equal(t, matrix.Range{I: 0, N: 4}, r)
}

func TestParseRange_NegativeEndMeansFromEnd(t *testing.T) {
	r, err := matrix.ParseRange("0:-2", 10)
	require.NoError(t, err)
	assert.Equal(t, matrix.Range{I: 0, N: 8}, r)
}

func TestParseRange_Malformed(t *testing.T) {
	_, err := matrix.ParseRange("nope", 10)
	assert.ErrorIs(t, err, matrix.ErrBadRange)

	_, err = matrix.ParseRange("5:3", 10)
	assert.ErrorIs(t, err, matrix.ErrBadRange)

	_, err = matrix.ParseRange("0:20", 10)
	assert.ErrorIs(t, err, matrix.ErrBadRange)
}

func TestParseSplit_EvenBlocks(t *testing.T) {
	y := matrix.Range{I: 0, N: 10}

	r, err := matrix.ParseSplit("2:0", y)
	require.NoError(t, err)
	assert.Equal(t, matrix.Range{I: 0, N: 5}, r)

	r, err = matrix.ParseSplit("2:1", y)
	require.NoError(t, err)
	assert.Equal(t, matrix.Range{I: 5, N: 10}, r)
}

func TestParseSplit_UnevenLastBlockShorter(t *testing.T) {
	y := matrix.Range{I: 0, N: 10}

	r, err := matrix.ParseSplit("3:2", y)
	require.NoError(t, err)
	assert.Equal(t, 10, r.N)
	assert.Less(t, r.Len(), 4)
}

func TestParseSplit_Malformed(t *testing.T) {
	y := matrix.Range{I: 0, N: 10}

	_, err := matrix.ParseSplit("0:0", y)
	assert.ErrorIs(t, err, matrix.ErrBadSplit)

	_, err = matrix.ParseSplit("2:5", y)
	assert.ErrorIs(t, err, matrix.ErrBadSplit)
}
