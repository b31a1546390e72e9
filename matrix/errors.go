// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Public functions return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. Panics are reserved
// for programmer errors caught by debug assertions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Facades wrap with fmt.Errorf("ctx: %w", ErrX);
// callers still match with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (n<0 or lda<n).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrShortBuffer indicates that a caller-provided buffer cannot hold
	// n rows of stride lda (len < (n-1)*lda + n).
	ErrShortBuffer = errors.New("matrix: buffer too short for shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadPermutation indicates that a permutation is not a bijection on 0..n-1.
	ErrBadPermutation = errors.New("matrix: invalid permutation")

	// ErrRaggedRows indicates that a [][]float64 fixture has rows of unequal length.
	ErrRaggedRows = errors.New("matrix: ragged rows")
)
