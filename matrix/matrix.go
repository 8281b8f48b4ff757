package matrix

import (
	"github.com/katalvlaran/hmatrix/diag"
	"github.com/katalvlaran/hmatrix/strval"
)

// New constructs a Matrix for num original strings. Default ranges cover
// the whole collection on both axes, so the matrix starts out triangular;
// XRange/YRange/Split narrow it before Alloc. The error return mirrors
// every other package constructor's signature (Compute, measure.New);
// nothing in strs can currently make New fail.
//
// Stage 1 (Prepare): copy labels/srcs from the input collection.
// Stage 2 (Finalize): return the initialized, not-yet-allocated Matrix.
func New(strs []strval.StringValue) (*Matrix, error) {
	num := len(strs)

	m := &Matrix{
		Num:        num,
		X:          Range{I: 0, N: num},
		Y:          Range{I: 0, N: num},
		Triangular: true,
		Labels:     make([]float64, num),
		Srcs:       make([]string, num),
		srcSet:     make([]bool, num),
	}
	for i, s := range strs {
		m.Labels[i] = s.Label
		if s.Src != "" {
			m.Srcs[i] = s.Src
			m.srcSet[i] = true
		}
	}

	return m, nil
}

// XRange narrows the row range via ParseRange, warning (not erroring) and
// resetting to the full range on malformed input, per spec.md §7.
func (m *Matrix) XRange(spec string) {
	r, err := ParseRange(spec, m.Num)
	if err != nil {
		diag.Warn("matrix: malformed x-range, resetting to full range", "spec", spec, "err", err)
		r = Range{I: 0, N: m.Num}
	}
	m.X = r
}

// YRange narrows the column range via ParseRange, same warn-and-reset
// policy as XRange.
func (m *Matrix) YRange(spec string) {
	r, err := ParseRange(spec, m.Num)
	if err != nil {
		diag.Warn("matrix: malformed y-range, resetting to full range", "spec", spec, "err", err)
		r = Range{I: 0, N: m.Num}
	}
	m.Y = r
}

// Split shards the current Y range into blocks via ParseSplit. Unlike
// XRange/YRange, a malformed split string is fatal per spec.md §7 and is
// returned to the caller instead of silently resetting.
func (m *Matrix) Split(spec string) error {
	r, err := ParseSplit(spec, m.Y)
	if err != nil {
		return err
	}
	m.Y = r

	return nil
}

// Alloc computes Triangular/Values sizing from the current X/Y ranges and
// zero-fills Values. It must be called exactly once, after the ranges are
// final and before Compute.
//
// Stage 1 (Derive): triangular iff X == Y.
// Stage 2 (Size): k(k+1)/2 for triangular, xl*yl for rectangular.
// Stage 3 (Allocate): zero-filled float32 slice.
func (m *Matrix) Alloc() {
	xl, yl := m.X.Len(), m.Y.Len()
	m.Triangular = m.X == m.Y

	var size int
	if m.Triangular {
		size = xl*(xl-1)/2 + xl
	} else {
		size = xl * yl
	}
	m.Values = make([]float32, size)
}

// cellIndex centralizes the min/max canonicalization for triangular
// storage so Get and Set can never drift apart (the asymmetry flagged as
// an Open Question in spec.md §9: the triangular precondition guarantees
// X == Y, so a single k derived from X is used throughout).
func (m *Matrix) cellIndex(x, y int) int {
	if m.Triangular {
		i, j := x-m.X.I, y-m.Y.I
		if i > j {
			i, j = j, i
		}
		k := m.X.Len()

		return (j - i) + i*k - i*(i-1)/2
	}

	return (x - m.X.I) + (y-m.Y.I)*m.X.Len()
}

// inActiveRect reports whether (x, y) falls inside the current active
// sub-rectangle on both axes.
func (m *Matrix) inActiveRect(x, y int) bool {
	return x >= m.X.I && x < m.X.N && y >= m.Y.I && y < m.Y.N
}

// Get returns the stored value for (x, y). For a triangular matrix this is
// a symmetric lookup: Get(x, y) == Get(y, x) for any (x, y) in the active
// sub-rectangle. Get returns ErrNotAllocated if called before Alloc, and
// ErrOutOfRange for any (x, y) outside the active sub-rectangle, rather
// than panicking on a caller's bad index.
func (m *Matrix) Get(x, y int) (float32, error) {
	if m.Values == nil {
		return 0, ErrNotAllocated
	}
	if !m.inActiveRect(x, y) {
		return 0, ErrOutOfRange
	}

	return m.Values[m.cellIndex(x, y)], nil
}

// Set writes f at (x, y). Writing to the upper half of a triangular matrix
// is rejected: spec.md §4.4 requires either reject-or-canonicalize, and
// this engine rejects so a caller's bug in iteration order surfaces
// immediately rather than silently succeeding on the mirrored cell. Set
// returns ErrNotAllocated if called before Alloc, and ErrOutOfRange for
// any (x, y) outside the active sub-rectangle, rather than panicking.
func (m *Matrix) Set(x, y int, f float32) error {
	if m.Values == nil {
		return ErrNotAllocated
	}
	if !m.inActiveRect(x, y) {
		return ErrOutOfRange
	}
	if m.Triangular && y-m.Y.I > x-m.X.I {
		return ErrUpperHalfWrite
	}
	m.Values[m.cellIndex(x, y)] = f

	return nil
}
