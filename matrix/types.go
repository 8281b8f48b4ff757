// SPDX-License-Identifier: MIT
// Package matrix: domain types for the pairwise similarity/distance engine.
// This file contains ONLY domain-facing types (Range, Matrix). Errors and
// compute options live in dedicated files (errors.go, compute.go) per the
// global conventions.
package matrix

// Range is a half-open index interval [I, N) into the original string
// collection. Spec invariant: 0 <= I < N <= num for any Range attached to
// an allocated Matrix.
type Range struct {
	I int
	N int
}

// Len reports the number of indices covered by r.
func (r Range) Len() int {
	return r.N - r.I
}

// Matrix is the active storage for pairwise scores over a sub-rectangle
// of a collection of size Num. When X == Y the matrix is Triangular and
// stores only the lower triangle (including the diagonal); otherwise it
// stores the full rectangle in row-major order.
//
// Labels and Srcs always span the full original collection ([0, Num)), not
// just the active sub-rectangle, so a writer can resolve identity by
// absolute index regardless of which slice of the collection was computed.
type Matrix struct {
	Num        int
	X, Y       Range
	Triangular bool
	Values     []float32
	Labels     []float64
	Srcs       []string
	srcSet     []bool // Srcs[i] is meaningful iff srcSet[i]; tracks "absent" per spec.md §3
}
