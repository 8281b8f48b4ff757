package catalog

import (
	"github.com/katalvlaran/hmatrix/hmatrixcfg"
	"github.com/katalvlaran/hmatrix/measure"
	"github.com/katalvlaran/hmatrix/strval"
)

func init() {
	measure.Register("jarowinkler", func() measure.Measure { return &JaroWinkler{} })
}

// defaultWinklerPrefixScale is the standard boost weight (p = 0.1) applied
// per matching prefix character, up to maxWinklerPrefixLen.
const defaultWinklerPrefixScale = 0.1

const maxWinklerPrefixLen = 4

// JaroWinkler boosts Jaro similarity for strings sharing a common
// prefix, per Winkler's 1990 adjustment. PrefixScale is configurable
// via the "prefix_scale" key; it defaults to 0.1 when absent or zero.
type JaroWinkler struct {
	PrefixScale float64
}

// Configure reads the "prefix_scale" key, defaulting to 0.1.
func (jw *JaroWinkler) Configure(cfg hmatrixcfg.Config) error {
	jw.PrefixScale = cfg.Float("prefix_scale", defaultWinklerPrefixScale)

	return nil
}

// Compare returns the Jaro-Winkler similarity between a and b.
func (jw *JaroWinkler) Compare(a, b strval.StringValue) float32 {
	scale := jw.PrefixScale
	if scale == 0 {
		scale = defaultWinklerPrefixScale
	}

	x, y := elements(a), elements(b)
	jaro := jaroSimilarity(x, y)

	prefix := 0
	for prefix < len(x) && prefix < len(y) && prefix < maxWinklerPrefixLen && x[prefix] == y[prefix] {
		prefix++
	}

	return float32(jaro + float64(prefix)*scale*(1-jaro))
}
