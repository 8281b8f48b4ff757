// Package catalog implements the concrete measure library: a set of
// pure (configure, compare) pairs registered under the dispatch names
// named in spec.md §4.6 and §2. This package depends on measure and
// strval; it is not itself part of the matrix-engine core, which only
// specifies the interface and match-triple model it builds on.
package catalog

import "github.com/katalvlaran/hmatrix/strval"

// elements returns a representation-agnostic view of s as a slice of
// uint64 elements: token ids directly for TOKENS, or one element per
// byte for BYTES. Every edit-distance-style measure in this catalog
// operates over this view so it scores identically regardless of which
// representation a StringValue carries, satisfying spec.md §1's
// cross-representation stability requirement.
func elements(s strval.StringValue) []uint64 {
	if s.Kind == strval.KindTokens {
		return s.Tokens
	}

	out := make([]uint64, len(s.Bytes))
	for i, b := range s.Bytes {
		out[i] = uint64(b)
	}

	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func min3Int(a, b, c int) int {
	return minInt(a, minInt(b, c))
}
