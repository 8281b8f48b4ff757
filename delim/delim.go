// Package delim implements the process-wide delimiter table and the
// symbolizer that turns a BYTES StringValue into a TOKENS one, per
// spec.md §4.1.
package delim

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/hmatrix/strval"
	"github.com/katalvlaran/hmatrix/xhash"
)

// Table is a 256-entry delimiter set. A zero-value Table is
// uninitialized: Initialized reports false and Symbolize must not be
// called against it (the matching StringValue stays BYTES).
type Table struct {
	set  [256]bool
	init bool
}

// Initialized reports whether ParseSpec has configured this table (even
// to the empty set — a non-empty spec that marks no byte, such as one
// holding only malformed escapes, still flips init to true so the engine
// knows symbolization is wanted). An empty spec leaves it false.
func (t Table) Initialized() bool {
	return t.init
}

// IsDelim reports whether b is a delimiter byte.
func (t Table) IsDelim(b byte) bool {
	return t.set[b]
}

// firstDelim returns the lexicographically lowest byte marked as a
// delimiter, used as the canonical delimiter emitted by Symbolize. Only
// meaningful when t.init is true and at least one byte is set.
func (t Table) firstDelim() (byte, bool) {
	for i := 0; i < 256; i++ {
		if t.set[i] {
			return byte(i), true
		}
	}

	return 0, false
}

// ParseSpec decodes a delimiter specification containing literal bytes
// and "%HH" two-hex-digit escapes into a Table. An empty spec resets to
// the uninitialized table (no symbolization). A trailing truncated "%H"
// or bare "%" escape is silently dropped, per spec.md §4.1/§7.
func ParseSpec(spec string) Table {
	if spec == "" {
		return Table{}
	}

	var t Table
	t.init = true

	for i := 0; i < len(spec); i++ {
		if spec[i] != '%' {
			t.set[spec[i]] = true
			continue
		}
		if i+2 >= len(spec) {
			break // truncated escape: silently drop the rest
		}
		v, err := strconv.ParseUint(spec[i+1:i+3], 16, 8)
		if err != nil {
			// malformed hex digits: drop just this escape and continue
			i += 2
			continue
		}
		t.set[byte(v)] = true
		i += 2
	}

	return t
}

// ErrNotInitialized is returned by Symbolize when called against an
// uninitialized table; callers are expected to check Initialized first,
// this exists only to make the misuse loud rather than silently no-op.
var ErrNotInitialized = fmt.Errorf("delim: table not initialized")

// Symbolize performs the two-pass canonicalize/emit algorithm of
// spec.md §4.1 against a BYTES StringValue, returning a new TOKENS
// StringValue. It is idempotent in kind: calling it on an already-TOKENS
// value returns it unchanged, per invariant 5 in spec.md §8.
func Symbolize(t Table, s strval.StringValue) (strval.StringValue, error) {
	if s.Kind == strval.KindTokens {
		return s, nil
	}
	if !t.init {
		return strval.StringValue{}, ErrNotInitialized
	}

	canon, dlm, hasDlm := canonicalizeDelimiters(t, s.Bytes)
	tokens := emitTokens(canon, dlm, hasDlm)

	out := s
	out.Kind = strval.KindTokens
	out.Bytes = nil
	out.Tokens = tokens

	return out, nil
}

// canonicalizeDelimiters collapses every maximal run of delimiter bytes
// to a single occurrence of the table's first delimiter byte. A leading
// run is dropped entirely (no word starts with an empty span); a
// trailing run collapses to one canonical byte, which emitTokens then
// discards as an empty final span. hasDlm is false only when the table
// is initialized to the empty set, in which case no byte is a delimiter
// and canon is returned unchanged.
func canonicalizeDelimiters(t Table, data []byte) (canon []byte, dlm byte, hasDlm bool) {
	dlm, hasDlm = t.firstDelim()
	if !hasDlm {
		out := make([]byte, len(data))
		copy(out, data)

		return out, 0, false
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if t.IsDelim(data[i]) {
			if len(out) == 0 || t.IsDelim(out[len(out)-1]) {
				continue
			}
			out = append(out, dlm)
		} else {
			out = append(out, data[i])
		}
	}

	return out, dlm, true
}

// emitTokens splits canon at the canonical delimiter byte (if any) and
// hashes each non-empty span with the seeded 64-bit hash. A string of
// length L yields at most L/2+1 tokens.
func emitTokens(canon []byte, dlm byte, hasDlm bool) []uint64 {
	tokens := make([]uint64, 0, len(canon)/2+1)

	start := 0
	for i := 0; i <= len(canon); i++ {
		atEnd := i == len(canon)
		if atEnd || (hasDlm && canon[i] == dlm) {
			if i-start > 0 {
				tokens = append(tokens, xhash.Hash64(canon[start:i]))
			}
			start = i + 1
		}
	}

	return tokens
}
