package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseRange parses "a:b", "a:", ":b", or ":" into a Range over [0, n).
// Missing a defaults to 0; missing b defaults to n; negative b means n+b.
// Per spec.md §4.3, the only valid result satisfies 0 <= a < b <= n; any
// other outcome is ErrBadRange and the caller (XRange/YRange) resets to
// the full range and continues.
func ParseRange(spec string, n int) (Range, error) {
	full := Range{I: 0, N: n}
	if spec == "" {
		return full, nil
	}

	idx := strings.IndexByte(spec, ':')
	if idx < 0 {
		return Range{}, fmt.Errorf("%w: %q has no ':'", ErrBadRange, spec)
	}
	left, right := spec[:idx], spec[idx+1:]

	a := 0
	if left != "" {
		v, err := strconv.Atoi(left)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q: %v", ErrBadRange, spec, err)
		}
		a = v
	}

	b := n
	if right != "" {
		v, err := strconv.Atoi(right)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q: %v", ErrBadRange, spec, err)
		}
		b = v
	}
	if b < 0 {
		b = n + b
	}

	if a < 0 || b > n || a >= b {
		return Range{}, fmt.Errorf("%w: %q resolved to (%d,%d) for n=%d", ErrBadRange, spec, a, b, n)
	}

	return Range{I: a, N: b}, nil
}

// ParseSplit parses "B:k" and narrows y into block k of B equal-height
// blocks (the last block may be shorter). Per spec.md §4.3 this is a
// fatal-class parse: 1 <= B <= y.Len() and 0 <= k < B, violated either
// returns ErrBadSplit for the caller to abort on.
func ParseSplit(spec string, y Range) (Range, error) {
	if spec == "" {
		return y, nil
	}

	idx := strings.IndexByte(spec, ':')
	if idx < 0 {
		return Range{}, fmt.Errorf("%w: %q has no ':'", ErrBadSplit, spec)
	}

	blocks, err := strconv.Atoi(spec[:idx])
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrBadSplit, spec, err)
	}
	index, err := strconv.Atoi(spec[idx+1:])
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrBadSplit, spec, err)
	}

	yl := y.Len()
	if blocks < 1 || blocks > yl {
		return Range{}, fmt.Errorf("%w: invalid block count %d for range of length %d", ErrBadSplit, blocks, yl)
	}
	if index < 0 || index >= blocks {
		return Range{}, fmt.Errorf("%w: block index %d out of range [0,%d)", ErrBadSplit, index, blocks)
	}

	height := int(math.Ceil(float64(yl) / float64(blocks)))
	lo := y.I + index*height
	hi := lo + height
	if hi > y.N {
		hi = y.N
	}

	return Range{I: lo, N: hi}, nil
}
