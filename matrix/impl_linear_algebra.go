// SPDX-License-Identifier: MIT
// Package matrix - verification kernels for in-place LU results.
//
// Purpose:
//   - Split a combined L\U buffer into explicit factors.
//   - Reconstruct L·U and measure deviation from a reference copy.
//   - Apply a row permutation so pivoted results can be compared as P·A ≈ L·U.
//
// Notes:
//   - These kernels allocate fresh Dense results; inputs are never mutated.
//   - Loop orders are fixed (i→k→j), so results are bit-reproducible.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for products and deviations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul         = "Mul"
	opSplitLU     = "SplitLU"
	opReconstruct = "Reconstruct"
	opMSD         = "MeanSquaredDeviation"
	opMaxAbs      = "MaxAbsDiff"
	opMaxRel      = "MaxRelDiff"
	opPermute     = "PermuteRows"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes C = A × B for two n×n operands; C is allocated with stride n.
// Implementation:
//   - Stage 1: ValidateSameShape(a, b); allocate C.
//   - Stage 2: i→k→j loop over row views (streams rows of B, cache friendly).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	n := a.n
	c, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	var aik float64
	var ra, rb, rc []float64
	for i = 0; i < n; i++ {
		ra, rc = a.Row(i), c.Row(i)
		for k = 0; k < n; k++ {
			aik = ra[k]
			rb = b.Row(k)
			for j = 0; j < n; j++ {
				rc[j] += aik * rb[j]
			}
		}
	}

	return c, nil
}

// SplitLU extracts the explicit factors from a combined in-place L\U buffer.
// L gets the strictly-lower part plus an explicit unit diagonal; U gets the
// diagonal and everything above it. Both are allocated with stride n.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func SplitLU(lu *Dense) (l, u *Dense, err error) {
	if err = ValidateNotNil(lu); err != nil {
		return nil, nil, matrixErrorf(opSplitLU, err)
	}
	n := lu.n
	if l, err = NewDense(n, n); err != nil {
		return nil, nil, matrixErrorf(opSplitLU, err)
	}
	if u, err = NewDense(n, n); err != nil {
		return nil, nil, matrixErrorf(opSplitLU, err)
	}

	var i int
	var src []float64
	for i = 0; i < n; i++ {
		src = lu.Row(i)
		copy(l.Row(i)[:i], src[:i])
		l.Row(i)[i] = 1.0
		copy(u.Row(i)[i:], src[i:])
	}

	return l, u, nil
}

// Reconstruct returns L·U for a combined in-place L\U buffer.
// Complexity: O(n³).
func Reconstruct(lu *Dense) (*Dense, error) {
	l, u, err := SplitLU(lu)
	if err != nil {
		return nil, matrixErrorf(opReconstruct, err)
	}
	prod, err := Mul(l, u)
	if err != nil {
		return nil, matrixErrorf(opReconstruct, err)
	}

	return prod, nil
}

// MeanSquaredDeviation returns Σ(ref[i][j]-got[i][j])² / (n·lda), over the
// logical n×n entries, where lda is the reference stride. This is the
// normalization used by the classic LU benchmark harness, so padded buffers
// yield slightly smaller figures than unpadded ones.
//
// Behavior highlights:
//   - n == 0 yields 0.
//   - Any NaN entry yields NaN; callers should reject NaN explicitly.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func MeanSquaredDeviation(ref, got *Dense) (float64, error) {
	if err := ValidateSameShape(ref, got); err != nil {
		return 0, matrixErrorf(opMSD, err)
	}
	if ref.n == 0 {
		return ZeroSum, nil
	}

	var i, j int
	var d float64
	sum := ZeroSum
	var rr, rg []float64
	for i = 0; i < ref.n; i++ {
		rr, rg = ref.Row(i), got.Row(i)
		for j = 0; j < ref.n; j++ {
			d = rr[j] - rg[j]
			sum += d * d
		}
	}

	return sum / float64(ref.n*ref.lda), nil
}

// MaxAbsDiff returns max |a[i][j]-b[i][j]| over logical entries (NaN if any difference is NaN).
func MaxAbsDiff(a, b *Dense) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbs, err)
	}

	return maxDiff(a, b, func(x, y float64) float64 { return math.Abs(x - y) }), nil
}

// MaxRelDiff returns max |a-b| / max(1, |a|, |b|) over logical entries.
// The floor of 1 turns the measure absolute near zero, where a pure relative
// error is meaningless.
func MaxRelDiff(a, b *Dense) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxRel, err)
	}

	return maxDiff(a, b, func(x, y float64) float64 {
		return math.Abs(x-y) / math.Max(1, math.Max(math.Abs(x), math.Abs(y)))
	}), nil
}

// maxDiff folds a per-entry distance with NaN propagation.
func maxDiff(a, b *Dense, dist func(x, y float64) float64) float64 {
	var i, j int
	var d float64
	worst := ZeroSum
	var ra, rb []float64
	for i = 0; i < a.n; i++ {
		ra, rb = a.Row(i), b.Row(i)
		for j = 0; j < a.n; j++ {
			d = dist(ra[j], rb[j])
			if math.IsNaN(d) {
				return d
			}
			if d > worst {
				worst = d
			}
		}
	}

	return worst
}

// PermuteRows returns P·A where row i of the result is row perm[i] of a.
// The result keeps a's stride.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrBadPermutation.
//
// Complexity:
//   - Time O(n²), Space O(n·lda).
func PermuteRows(a *Dense, perm []int) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opPermute, err)
	}
	if err := ValidatePermutation(perm, a.n); err != nil {
		return nil, matrixErrorf(opPermute, err)
	}
	out, err := NewDense(a.n, a.lda)
	if err != nil {
		return nil, matrixErrorf(opPermute, err)
	}
	for i, src := range perm {
		copy(out.Row(i), a.Row(src))
	}

	return out, nil
}
