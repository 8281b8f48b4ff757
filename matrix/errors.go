// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (Get/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNotAllocated indicates Compute/Get/Set was called before Alloc.
	ErrNotAllocated = errors.New("matrix: values not allocated")

	// ErrUpperHalfWrite indicates an explicit Set targeted the upper half of
	// a triangular matrix; spec.md §4.4 forbids such writes.
	ErrUpperHalfWrite = errors.New("matrix: explicit write to upper triangle")

	// ErrBadRange is returned by ParseRange for a malformed range string.
	// Per spec.md §7 this is a warning-class error: callers reset to (0,num).
	ErrBadRange = errors.New("matrix: invalid range")

	// ErrBadSplit is returned by ParseSplit for malformed block/index values.
	// Per spec.md §7 this is fatal: callers abort.
	ErrBadSplit = errors.New("matrix: invalid split")
)
