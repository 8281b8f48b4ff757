package catalog

import (
	"github.com/katalvlaran/hmatrix/hmatrixcfg"
	"github.com/katalvlaran/hmatrix/measure"
	"github.com/katalvlaran/hmatrix/strval"
)

func init() {
	measure.Register("hamming", func() measure.Measure { return &Hamming{} })
}

// Hamming counts positional mismatches between equal-length sequences.
// For unequal lengths it is still defined (never NaN, per spec.md §7's
// degenerate-input policy): every position beyond the shorter sequence
// counts as a mismatch, added to the mismatches over the shared length.
type Hamming struct{}

// Configure reads no parameters.
func (h *Hamming) Configure(hmatrixcfg.Config) error { return nil }

// Compare returns the Hamming distance between a and b.
func (h *Hamming) Compare(a, b strval.StringValue) float32 {
	x, y := elements(a), elements(b)
	n := minInt(len(x), len(y))

	mismatches := len(x) + len(y) - 2*n // positions beyond the shorter sequence
	for i := 0; i < n; i++ {
		if x[i] != y[i] {
			mismatches++
		}
	}

	return float32(mismatches)
}
