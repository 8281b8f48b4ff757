package catalog

import (
	"github.com/katalvlaran/hmatrix/hmatrixcfg"
	"github.com/katalvlaran/hmatrix/measure"
	"github.com/katalvlaran/hmatrix/strval"
)

func init() {
	measure.Register("bagdistance", func() measure.Measure { return &BagDistance{} })
}

// BagDistance computes the "bag distance" lower bound for edit distance:
// max(|x - y|, |y - x|) where x and y are multisets of elements, and the
// difference is a multiset subtraction counted by element.
// Cheap to compute (linear) and useful as a pre-filter before a full
// edit-distance pass.
type BagDistance struct{}

// Configure reads no parameters.
func (bd *BagDistance) Configure(hmatrixcfg.Config) error { return nil }

// Compare returns the bag distance between a and b.
func (bd *BagDistance) Compare(a, b strval.StringValue) float32 {
	x, y := elements(a), elements(b)

	counts := make(map[uint64]int, len(x))
	for _, e := range x {
		counts[e]++
	}
	for _, e := range y {
		counts[e]--
	}

	var xExcess, yExcess int
	for _, c := range counts {
		if c > 0 {
			xExcess += c
		} else {
			yExcess += -c
		}
	}

	return float32(maxInt(xExcess, yExcess))
}
