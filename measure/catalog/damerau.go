package catalog

import (
	"github.com/katalvlaran/hmatrix/hmatrixcfg"
	"github.com/katalvlaran/hmatrix/measure"
	"github.com/katalvlaran/hmatrix/strval"
)

func init() {
	measure.Register("damerau", func() measure.Measure { return &Damerau{} })
}

// Damerau computes the restricted (optimal-string-alignment) variant of
// Damerau-Levenshtein distance: Levenshtein plus adjacent-transposition
// as a fourth edit operation, each transposed pair touched at most once.
type Damerau struct{}

// Configure reads no parameters.
func (d *Damerau) Configure(hmatrixcfg.Config) error { return nil }

// Compare returns the restricted edit distance between a and b.
func (d *Damerau) Compare(a, b strval.StringValue) float32 {
	return float32(damerauDistance(elements(a), elements(b)))
}

// damerauDistance runs the standard full-matrix OSA recurrence,
// O(len(x)*len(y)) time and space.
func damerauDistance(x, y []uint64) int {
	n, m := len(x), len(y)
	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, m+1)
		d[i][0] = i
	}
	for j := 0; j <= m; j++ {
		d[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 1
			if x[i-1] == y[j-1] {
				cost = 0
			}
			d[i][j] = min3Int(
				d[i-1][j]+1,
				d[i][j-1]+1,
				d[i-1][j-1]+cost,
			)
			if i > 1 && j > 1 && x[i-1] == y[j-2] && x[i-2] == y[j-1] {
				d[i][j] = minInt(d[i][j], d[i-2][j-2]+cost)
			}
		}
	}

	return d[n][m]
}
