package catalog

import (
	"math"

	"github.com/katalvlaran/hmatrix/hmatrixcfg"
	"github.com/katalvlaran/hmatrix/measure"
	"github.com/katalvlaran/hmatrix/strval"
)

func init() {
	measure.Register("dtw", func() measure.Measure { return &DTW{} })
}

// DTW computes the Dynamic Time Warping distance between two element
// sequences: the cheapest warping alignment under a 0/1 substitution
// cost (0 for equal elements, 1 otherwise), plus an optional per-step
// slope penalty and a Sakoe-Chiba band. Unlike the classic numeric-
// sequence formulation, this operates over whichever representation a
// StringValue populates, so it scores BYTES and TOKENS alike.
//
// Configurable via "window" (band half-width, 0 means unconstrained)
// and "slope_penalty" (added to each insertion/deletion step).
type DTW struct {
	Window       int
	SlopePenalty float64
}

// Configure reads "window" and "slope_penalty", defaulting to
// unconstrained and zero.
func (d *DTW) Configure(cfg hmatrixcfg.Config) error {
	d.Window = cfg.Int("window", 0)
	d.SlopePenalty = cfg.Float("slope_penalty", 0)

	return nil
}

// Compare returns the DTW alignment distance between a and b. Two empty
// sequences compare equal at distance 0; one empty and one non-empty
// compares at the non-empty one's length (every element is an
// insertion/deletion).
func (d *DTW) Compare(a, b strval.StringValue) float32 {
	x, y := elements(a), elements(b)
	n, m := len(x), len(y)
	if n == 0 || m == 0 {
		return float32(maxInt(n, m))
	}

	window := d.Window
	unconstrained := window <= 0

	// rolling two-row DP, matching the teacher's RollingArray mode.
	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if !unconstrained && absInt(i-j) > window {
				curr[j] = inf

				continue
			}

			cost := 0.0
			if x[i-1] != y[j-1] {
				cost = 1
			}

			ins := prev[j] + d.SlopePenalty
			del := curr[j-1] + d.SlopePenalty
			match := prev[j-1]
			curr[j] = cost + math.Min(ins, math.Min(del, match))
		}
		prev, curr = curr, prev
	}

	return float32(prev[m])
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
