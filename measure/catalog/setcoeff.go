package catalog

import (
	"math"

	"github.com/katalvlaran/hmatrix/hmatrixcfg"
	"github.com/katalvlaran/hmatrix/measure"
	"github.com/katalvlaran/hmatrix/strval"
)

func init() {
	measure.Register("jaccard", func() measure.Measure { return &Jaccard{} })
	measure.Register("simpson", func() measure.Measure { return &Simpson{} })
	measure.Register("braunblanquet", func() measure.Measure { return &BraunBlanquet{} })
	measure.Register("dice", func() measure.Measure { return &Dice{} })
	measure.Register("sokalsneath", func() measure.Measure { return &SokalSneath{} })
	measure.Register("kulczynski", func() measure.Measure { return &Kulczynski{} })
	measure.Register("otsuka", func() measure.Measure { return &Otsuka{} })
}

// Every set-coefficient measure in this file is a closed-form expression
// over measure.MatchTriple{A, B, C}, the shared/only-first/only-second
// element counts spec.md §4.6 defines for the coefficient family. Each
// returns a similarity in [0,1] (not a distance), and each fixes its own
// value for the degenerate A+B+C == 0 case (two empty strings) so
// Compare never produces NaN, per spec.md §7.

// Jaccard is |A| / (|A| + |B| + |C|), 1 when both strings are empty.
type Jaccard struct{}

func (j *Jaccard) Configure(hmatrixcfg.Config) error { return nil }
func (j *Jaccard) Compare(a, b strval.StringValue) float32 {
	t := measure.ComputeMatchTriple(a, b)
	denom := t.A + t.B + t.C
	if denom == 0 {
		return 1
	}

	return float32(t.A) / float32(denom)
}

// Simpson (overlap coefficient) is |A| / min(|A|+|B|, |A|+|C|).
type Simpson struct{}

func (s *Simpson) Configure(hmatrixcfg.Config) error { return nil }
func (s *Simpson) Compare(a, b strval.StringValue) float32 {
	t := measure.ComputeMatchTriple(a, b)
	denom := minInt(t.A+t.B, t.A+t.C)
	if denom == 0 {
		return 1
	}

	return float32(t.A) / float32(denom)
}

// BraunBlanquet is |A| / max(|A|+|B|, |A|+|C|).
type BraunBlanquet struct{}

func (bb *BraunBlanquet) Configure(hmatrixcfg.Config) error { return nil }
func (bb *BraunBlanquet) Compare(a, b strval.StringValue) float32 {
	t := measure.ComputeMatchTriple(a, b)
	denom := maxInt(t.A+t.B, t.A+t.C)
	if denom == 0 {
		return 1
	}

	return float32(t.A) / float32(denom)
}

// Dice is 2|A| / (2|A| + |B| + |C|).
type Dice struct{}

func (d *Dice) Configure(hmatrixcfg.Config) error { return nil }
func (d *Dice) Compare(a, b strval.StringValue) float32 {
	t := measure.ComputeMatchTriple(a, b)
	denom := 2*t.A + t.B + t.C
	if denom == 0 {
		return 1
	}

	return float32(2*t.A) / float32(denom)
}

// SokalSneath is |A| / (|A| + 2(|B| + |C|)).
type SokalSneath struct{}

func (ss *SokalSneath) Configure(hmatrixcfg.Config) error { return nil }
func (ss *SokalSneath) Compare(a, b strval.StringValue) float32 {
	t := measure.ComputeMatchTriple(a, b)
	denom := t.A + 2*(t.B+t.C)
	if denom == 0 {
		return 1
	}

	return float32(t.A) / float32(denom)
}

// Kulczynski is the mean of |A|/(|A|+|B|) and |A|/(|A|+|C|); each term
// is defined as 1 when its own denominator is zero (an empty string
// equals itself on that side of the pair).
type Kulczynski struct{}

func (k *Kulczynski) Configure(hmatrixcfg.Config) error { return nil }
func (k *Kulczynski) Compare(a, b strval.StringValue) float32 {
	t := measure.ComputeMatchTriple(a, b)

	left := 1.0
	if t.A+t.B > 0 {
		left = float64(t.A) / float64(t.A+t.B)
	}
	right := 1.0
	if t.A+t.C > 0 {
		right = float64(t.A) / float64(t.A+t.C)
	}

	return float32((left + right) / 2)
}

// Otsuka is |A| / sqrt((|A|+|B|)(|A|+|C|)).
type Otsuka struct{}

func (o *Otsuka) Configure(hmatrixcfg.Config) error { return nil }
func (o *Otsuka) Compare(a, b strval.StringValue) float32 {
	t := measure.ComputeMatchTriple(a, b)
	denom := (t.A + t.B) * (t.A + t.C)
	if denom == 0 {
		return 1
	}

	return float32(t.A) / float32(math.Sqrt(float64(denom)))
}
