package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hmatrix/matrix"
	"github.com/katalvlaran/hmatrix/strval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sv(s string) strval.StringValue {
	return strval.FromBytes([]byte(s), 0, 0, "")
}

func TestNew_DefaultsToTriangularFullRange(t *testing.T) {
	m, err := matrix.New([]strval.StringValue{sv("abc"), sv("abd"), sv("xyz")})
	require.NoError(t, err)

	x, y, triangular := m.ActiveRanges()
	assert.True(t, triangular)
	assert.Equal(t, matrix.Range{I: 0, N: 3}, x)
	assert.Equal(t, matrix.Range{I: 0, N: 3}, y)
}

func TestAlloc_TriangularSizing(t *testing.T) {
	m, err := matrix.New([]strval.StringValue{sv("a"), sv("b"), sv("c")})
	require.NoError(t, err)
	m.Alloc()

	_, _, size := m.Dims()
	assert.Equal(t, 6, size) // 3*(3+1)/2
}

func TestGet_TriangularSymmetry(t *testing.T) {
	m, err := matrix.New([]strval.StringValue{sv("a"), sv("b"), sv("c")})
	require.NoError(t, err)
	m.Alloc()

	require.NoError(t, m.Set(1, 0, 1))
	v, err := m.Get(1, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(1), v)

	v, err = m.Get(0, 1)
	require.NoError(t, err)
	assert.Equal(t, float32(1), v)
}

func TestGet_OutOfRangeReturnsError(t *testing.T) {
	m, err := matrix.New([]strval.StringValue{sv("a"), sv("b"), sv("c")})
	require.NoError(t, err)
	m.Alloc()

	_, err = m.Get(3, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestGet_UnallocatedReturnsError(t *testing.T) {
	m, err := matrix.New([]strval.StringValue{sv("a"), sv("b"), sv("c")})
	require.NoError(t, err)

	_, err = m.Get(0, 0)
	assert.ErrorIs(t, err, matrix.ErrNotAllocated)
}

func TestSet_OutOfRangeReturnsError(t *testing.T) {
	m, err := matrix.New([]strval.StringValue{sv("a"), sv("b"), sv("c")})
	require.NoError(t, err)
	m.Alloc()

	err = m.Set(3, 0, 1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSet_RejectsUpperHalfWrite(t *testing.T) {
	m, err := matrix.New([]strval.StringValue{sv("a"), sv("b"), sv("c")})
	require.NoError(t, err)
	m.Alloc()

	err = m.Set(0, 1, 5)
	assert.ErrorIs(t, err, matrix.ErrUpperHalfWrite)
}

func TestCellIndex_BijectiveAcrossTriangularHalf(t *testing.T) {
	m, err := matrix.New([]strval.StringValue{sv("a"), sv("b"), sv("c"), sv("d")})
	require.NoError(t, err)
	m.Alloc()

	seen := make(map[float32]bool)
	n := 0
	for x := 0; x < 4; x++ {
		for y := 0; y <= x; y++ {
			require.NoError(t, m.Set(x, y, float32(n)))
			n++
		}
	}
	for x := 0; x < 4; x++ {
		for y := 0; y <= x; y++ {
			v, err := m.Get(x, y)
			require.NoError(t, err)
			assert.False(t, seen[v], "index collision at (%d,%d)", x, y)
			seen[v] = true
		}
	}
	assert.Len(t, seen, 10) // 4*(4+1)/2
}

func TestXRange_MalformedResetsToFull(t *testing.T) {
	m, err := matrix.New([]strval.StringValue{sv("a"), sv("b"), sv("c")})
	require.NoError(t, err)

	m.XRange("garbage")
	x, _, _ := m.ActiveRanges()
	assert.Equal(t, matrix.Range{I: 0, N: 3}, x)
}

func TestSplit_NarrowsYAndBreaksTriangular(t *testing.T) {
	m, err := matrix.New([]strval.StringValue{sv("abc"), sv("abd"), sv("xyz")})
	require.NoError(t, err)

	m.YRange("1:3")
	require.NoError(t, m.Split("2:0"))
	_, y, _ := m.ActiveRanges()
	assert.Equal(t, matrix.Range{I: 1, N: 2}, y)

	m.Alloc()
	xl, yl, size := m.Dims()
	assert.Equal(t, 3, xl)
	assert.Equal(t, 1, yl)
	assert.Equal(t, 3, size)
	x, _, triangular := m.ActiveRanges()
	assert.Equal(t, matrix.Range{I: 0, N: 3}, x)
	assert.False(t, triangular)
}

func TestLabelAndSrc_AbsoluteIndexing(t *testing.T) {
	strs := []strval.StringValue{
		strval.FromBytes([]byte("abc"), 0, 7, "file-a"),
		strval.FromBytes([]byte("xyz"), 1, 0, ""),
	}
	m, err := matrix.New(strs)
	require.NoError(t, err)

	assert.Equal(t, float64(7), m.Label(0))
	src, ok := m.Src(0)
	assert.True(t, ok)
	assert.Equal(t, "file-a", src)

	_, ok = m.Src(1)
	assert.False(t, ok)
}
