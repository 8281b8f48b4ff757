package measure

import "github.com/katalvlaran/hmatrix/strval"

// MatchTriple is the shared input to every set-coefficient measure
// (Jaccard, Simpson, Braun-Blanquet, Dice, Sokal-Sneath, Kulczynski,
// Otsuka, per spec.md §4.6): A is the count of shared elements, B the
// count found only in the first string, C the count found only in the
// second.
type MatchTriple struct {
	A, B, C int
}

// elementSet extracts the set of comparable elements a string value
// contributes to match-triple counting. TOKENS values use their token
// ids directly; BYTES values fall back to single bytes, which keeps the
// coefficient family well-defined (if coarse) over raw byte strings that
// were never symbolized, satisfying spec.md §1's requirement that every
// measure work across both representations.
func elementSet(s strval.StringValue) map[uint64]int {
	set := make(map[uint64]int, s.Len())
	switch s.Kind {
	case strval.KindTokens:
		for _, tok := range s.Tokens {
			set[tok]++
		}
	default:
		for _, b := range s.Bytes {
			set[uint64(b)]++
		}
	}

	return set
}

// ComputeMatchTriple derives (A, B, C) for a and b by treating each as a
// set of distinct elements (token ids, or bytes as a fallback) and
// counting the three-way partition of their union.
func ComputeMatchTriple(a, b strval.StringValue) MatchTriple {
	sa, sb := elementSet(a), elementSet(b)

	var t MatchTriple
	for elem := range sa {
		if _, ok := sb[elem]; ok {
			t.A++
		} else {
			t.B++
		}
	}
	for elem := range sb {
		if _, ok := sa[elem]; !ok {
			t.C++
		}
	}

	return t
}
