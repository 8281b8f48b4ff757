// Package matrix implements the pairwise similarity/distance matrix engine:
// half-open ranges with block-split sharding, triangular and rectangular
// cell storage, index arithmetic centralized in one place, and the
// parallel compute driver that fans a measure.Measure across the active
// sub-rectangle.
//
// A Matrix is always anchored to an original collection of size Num. Its
// active sub-rectangle is described by two Ranges, X and Y; when they
// coincide the matrix stores only the lower triangle (including the
// diagonal) and Get canonicalizes any query to that half. Labels and
// source tags are carried for the full original collection so a writer
// can look up identity by absolute index regardless of which
// sub-rectangle was computed.
//
// The triangular-fill and rectangular-split scenarios are worked out in
// this package's tests (compute_test.go).
package matrix
