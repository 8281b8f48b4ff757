package catalog

import (
	"math"

	"github.com/katalvlaran/hmatrix/hmatrixcfg"
	"github.com/katalvlaran/hmatrix/measure"
	"github.com/katalvlaran/hmatrix/strval"
	"github.com/katalvlaran/hmatrix/xhash"
)

func init() {
	measure.Register("ngramkernel", func() measure.Measure { return &NgramKernel{} })
}

const defaultNgramLength = 3

// NgramKernel computes the cosine similarity between a and b's n-gram
// frequency vectors: the dot product of shared n-gram counts, normalized
// by each vector's own norm so the result lies in [0,1] (1 for
// identical sequences), per SPEC_FULL.md §4.6. N is configurable via
// "ngram_length", default 3.
type NgramKernel struct {
	N int
}

// Configure reads the "ngram_length" key, defaulting to 3.
func (k *NgramKernel) Configure(cfg hmatrixcfg.Config) error {
	k.N = cfg.Int("ngram_length", defaultNgramLength)
	if k.N <= 0 {
		k.N = defaultNgramLength
	}

	return nil
}

// Compare returns the normalized n-gram kernel similarity between a and
// b, in [0,1].
func (k *NgramKernel) Compare(a, b strval.StringValue) float32 {
	n := k.N
	if n <= 0 {
		n = defaultNgramLength
	}

	xFreq := ngramFrequencies(elements(a), n)
	yFreq := ngramFrequencies(elements(b), n)

	var dot, xNormSq, yNormSq int
	for gram, xc := range xFreq {
		xNormSq += xc * xc
		if yc, ok := yFreq[gram]; ok {
			dot += xc * yc
		}
	}
	for _, yc := range yFreq {
		yNormSq += yc * yc
	}

	denom := math.Sqrt(float64(xNormSq) * float64(yNormSq))
	if denom == 0 {
		return 0
	}

	return float32(float64(dot) / denom)
}

// ngramFrequencies counts each length-n contiguous subsequence of elems,
// hashed into a single uint64 key via xhash.PairHash chained across the
// window so the map key space stays bounded regardless of n.
func ngramFrequencies(elems []uint64, n int) map[uint64]int {
	freq := make(map[uint64]int)
	if len(elems) < n {
		return freq
	}

	for i := 0; i+n <= len(elems); i++ {
		var key uint64
		for j := 0; j < n; j++ {
			key = xhash.PairHash(key*31, elems[i+j])
		}
		freq[key]++
	}

	return freq
}
