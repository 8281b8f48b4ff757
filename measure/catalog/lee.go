package catalog

import (
	"github.com/katalvlaran/hmatrix/hmatrixcfg"
	"github.com/katalvlaran/hmatrix/measure"
	"github.com/katalvlaran/hmatrix/strval"
)

func init() {
	measure.Register("lee", func() measure.Measure { return &Lee{} })
}

// defaultAlphabetSize is used when "alphabet_size" is absent from config.
const defaultAlphabetSize = 256

// Lee computes the Lee distance: the sum, over aligned positions, of the
// circular distance between element values modulo AlphabetSize. Defined
// only for codes over a fixed-size alphabet (classically DNA/quaternary
// or numeric codes); here any uint64 element value is reduced mod
// AlphabetSize first. Sequences of unequal length are padded on the
// right with element 0, matching dist_lee's original fixed-length
// assumption relaxed to variable length.
type Lee struct {
	AlphabetSize int
}

// Configure reads the "alphabet_size" key, defaulting to 256.
func (l *Lee) Configure(cfg hmatrixcfg.Config) error {
	l.AlphabetSize = cfg.Int("alphabet_size", defaultAlphabetSize)
	if l.AlphabetSize <= 0 {
		l.AlphabetSize = defaultAlphabetSize
	}

	return nil
}

// Compare returns the Lee distance between a and b.
func (l *Lee) Compare(a, b strval.StringValue) float32 {
	q := l.AlphabetSize
	if q <= 0 {
		q = defaultAlphabetSize
	}

	x, y := elements(a), elements(b)
	n := maxInt(len(x), len(y))

	var sum int
	for i := 0; i < n; i++ {
		var xv, yv int
		if i < len(x) {
			xv = int(x[i] % uint64(q))
		}
		if i < len(y) {
			yv = int(y[i] % uint64(q))
		}

		diff := xv - yv
		if diff < 0 {
			diff = -diff
		}
		sum += minInt(diff, q-diff)
	}

	return float32(sum)
}
