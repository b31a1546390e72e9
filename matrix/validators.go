// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic; ValidatePermutation allocates one bitmap.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and share the logical dimension.
// Strides are allowed to differ.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.n != b.n {
		return validatorErrorf("ValidateSameShape", fmt.Errorf("%d vs %d: %w", a.n, b.n, ErrDimensionMismatch))
	}

	return nil
}

// ValidatePermutation ensures p is a bijection on 0..n-1.
//
// Errors:
//   - ErrDimensionMismatch if len(p) != n.
//   - ErrBadPermutation on an out-of-range or repeated entry.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(p []int, n int) error {
	if len(p) != n {
		return validatorErrorf("ValidatePermutation", fmt.Errorf("len=%d, n=%d: %w", len(p), n, ErrDimensionMismatch))
	}
	seen := make([]bool, n)
	for i, v := range p {
		if v < 0 || v >= n || seen[v] {
			return validatorErrorf("ValidatePermutation", fmt.Errorf("p[%d]=%d: %w", i, v, ErrBadPermutation))
		}
		seen[v] = true
	}

	return nil
}
