package catalog

import (
	"github.com/katalvlaran/hmatrix/hmatrixcfg"
	"github.com/katalvlaran/hmatrix/measure"
	"github.com/katalvlaran/hmatrix/strval"
)

func init() {
	measure.Register("jaro", func() measure.Measure { return &Jaro{} })
}

// Jaro computes the Jaro similarity in [0,1], 1 meaning identical.
// Unlike the edit-distance measures in this catalog, Jaro is a
// similarity: higher means more alike.
type Jaro struct{}

// Configure reads no parameters.
func (j *Jaro) Configure(hmatrixcfg.Config) error { return nil }

// Compare returns the Jaro similarity between a and b.
func (j *Jaro) Compare(a, b strval.StringValue) float32 {
	return float32(jaroSimilarity(elements(a), elements(b)))
}

// jaroSimilarity implements the classic matching-window + transposition
// formula. Two elements at positions i (in x) and j (in y) match when
// equal and |i-j| <= window, window = max(len(x),len(y))/2 - 1.
func jaroSimilarity(x, y []uint64) float64 {
	lx, ly := len(x), len(y)
	if lx == 0 && ly == 0 {
		return 1
	}
	if lx == 0 || ly == 0 {
		return 0
	}

	window := maxInt(lx, ly)/2 - 1
	if window < 0 {
		window = 0
	}

	xMatched := make([]bool, lx)
	yMatched := make([]bool, ly)

	matches := 0
	for i := 0; i < lx; i++ {
		lo := maxInt(0, i-window)
		hi := minInt(ly-1, i+window)
		for k := lo; k <= hi; k++ {
			if yMatched[k] || x[i] != y[k] {
				continue
			}
			xMatched[i] = true
			yMatched[k] = true
			matches++

			break
		}
	}

	if matches == 0 {
		return 0
	}

	transpositions := 0
	k := 0
	for i := 0; i < lx; i++ {
		if !xMatched[i] {
			continue
		}
		for !yMatched[k] {
			k++
		}
		if x[i] != y[k] {
			transpositions++
		}
		k++
	}

	m := float64(matches)
	t := float64(transpositions / 2)

	return (m/float64(lx) + m/float64(ly) + (m-t)/m) / 3
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
