package catalog

import (
	"github.com/katalvlaran/hmatrix/hmatrixcfg"
	"github.com/katalvlaran/hmatrix/measure"
	"github.com/katalvlaran/hmatrix/strval"
)

func init() {
	measure.Register("levenshtein", func() measure.Measure { return &Levenshtein{} })
}

// Levenshtein computes unit-cost edit distance (insert/delete/substitute)
// over whichever sequence representation a StringValue populates. The
// result is symmetric and compare(a, a) == 0, matching the definitions
// in spec.md §8 invariants 7 and 8.
type Levenshtein struct{}

// Configure reads no parameters; unit-cost Levenshtein has none.
func (l *Levenshtein) Configure(hmatrixcfg.Config) error { return nil }

// Compare returns the Levenshtein distance between a and b as a float32.
func (l *Levenshtein) Compare(a, b strval.StringValue) float32 {
	return float32(levenshteinDistance(elements(a), elements(b)))
}

// levenshteinDistance runs the classic two-row DP, O(len(x)*len(y)) time
// and O(min(len(x),len(y))) space, with the shorter sequence kept in
// memory across the inner loop.
func levenshteinDistance(x, y []uint64) int {
	if len(x) > len(y) {
		x, y = y, x
	}
	prev := make([]int, len(x)+1)
	curr := make([]int, len(x)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(y); j++ {
		curr[0] = j
		for i := 1; i <= len(x); i++ {
			cost := 1
			if x[i-1] == y[j-1] {
				cost = 0
			}
			curr[i] = min3Int(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(x)]
}
