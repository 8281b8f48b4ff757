package catalog

import (
	"math"

	"github.com/katalvlaran/hmatrix/hmatrixcfg"
	"github.com/katalvlaran/hmatrix/measure"
	"github.com/katalvlaran/hmatrix/strval"
)

func init() {
	measure.Register("subsequencekernel", func() measure.Measure { return &SubsequenceKernel{} })
}

const (
	defaultSubseqLength = 3
	defaultDecay        = 0.5
)

// SubsequenceKernel computes the string subsequence kernel (Lodhi et
// al., 2002): the weighted count of (possibly non-contiguous) common
// subsequences of length K, each occurrence decayed by Lambda per gap
// character, normalized against each sequence's self-kernel so the
// result lies in [0,1]. K defaults to 3, Lambda to 0.5, configurable
// via "subseq_length" and "decay".
type SubsequenceKernel struct {
	K      int
	Lambda float64
}

// Configure reads "subseq_length" and "decay", defaulting to 3 and 0.5.
func (sk *SubsequenceKernel) Configure(cfg hmatrixcfg.Config) error {
	sk.K = cfg.Int("subseq_length", defaultSubseqLength)
	if sk.K <= 0 {
		sk.K = defaultSubseqLength
	}
	sk.Lambda = cfg.Float("decay", defaultDecay)
	if sk.Lambda <= 0 || sk.Lambda > 1 {
		sk.Lambda = defaultDecay
	}

	return nil
}

// Compare returns the normalized subsequence kernel similarity between
// a and b, in [0,1] (1 for identical sequences, 0 when either is
// shorter than K).
func (sk *SubsequenceKernel) Compare(a, b strval.StringValue) float32 {
	k := sk.K
	if k <= 0 {
		k = defaultSubseqLength
	}
	lambda := sk.Lambda
	if lambda <= 0 || lambda > 1 {
		lambda = defaultDecay
	}

	x, y := elements(a), elements(b)

	kxy := sskKernel(x, y, k, lambda)
	kxx := sskKernel(x, x, k, lambda)
	kyy := sskKernel(y, y, k, lambda)

	denom := math.Sqrt(kxx * kyy)
	if denom == 0 {
		return 0
	}

	return float32(kxy / denom)
}

// sskKernel evaluates the order-k string subsequence kernel between x
// and y via the standard gap-weighted dynamic program (Lodhi et al.,
// 2002): DPS tracks the decayed weight of subsequences ending exactly
// at (i,j); DP accumulates it over all prefixes. O(k*len(x)*len(y)).
func sskKernel(x, y []uint64, k int, lambda float64) float64 {
	n, m := len(x), len(y)
	if n < k || m < k {
		return 0
	}

	dps := make([][]float64, n+1)
	dp := make([][]float64, n+1)
	for i := range dps {
		dps[i] = make([]float64, m+1)
		dp[i] = make([]float64, m+1)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if x[i] == y[j] {
				dps[i+1][j+1] = lambda * lambda
			}
		}
	}

	// order 1's kernel value is just the sum of the length-1 match
	// weights seeded above; later orders refine dp/dps in lockstep.
	var kernel float64
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			kernel += dps[i][j]
		}
	}

	for order := 2; order <= k; order++ {
		for i := 1; i <= n; i++ {
			for j := 1; j <= m; j++ {
				dp[i][j] = dps[i][j] + lambda*dp[i-1][j] + lambda*dp[i][j-1] - lambda*lambda*dp[i-1][j-1]
			}
		}

		kernel = 0
		for i := 1; i <= n; i++ {
			for j := 1; j <= m; j++ {
				if x[i-1] == y[j-1] {
					dps[i][j] = lambda * lambda * dp[i-1][j-1]
					kernel += dps[i][j]
				} else {
					dps[i][j] = 0
				}
			}
		}
	}

	return kernel
}
