package xhash_test

import (
	"testing"

	"github.com/katalvlaran/hmatrix/xhash"
	"github.com/stretchr/testify/assert"
)

func TestHash64_Deterministic(t *testing.T) {
	a := xhash.Hash64([]byte("quick"))
	b := xhash.Hash64([]byte("quick"))
	assert.Equal(t, a, b)
}

func TestHash64_DifferentInputsDiffer(t *testing.T) {
	a := xhash.Hash64([]byte("quick"))
	b := xhash.Hash64([]byte("fox"))
	assert.NotEqual(t, a, b)
}

func TestPairHash_Symmetric(t *testing.T) {
	ha := xhash.Hash64([]byte("abc"))
	hb := xhash.Hash64([]byte("xyz"))

	assert.Equal(t, xhash.PairHash(ha, hb), xhash.PairHash(hb, ha))
	assert.Equal(t, ha^hb, xhash.PairHash(ha, hb))
}

func TestPairHash_CollisionIsZero(t *testing.T) {
	h := xhash.Hash64([]byte("same"))
	assert.Equal(t, uint64(0), xhash.PairHash(h, h))
}
