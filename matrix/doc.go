// SPDX-License-Identifier: MIT

// Package matrix provides the strided dense store used by the parallel LU
// kernels in package lu.
//
// The matrix package provides:
//
//   - Dense: an n×n matrix embedded in a row-major buffer with leading
//     dimension lda ≥ n (padding columns allowed for alignment).
//   - Zero-copy row views (Row, RowBase) for hot loops, plus checked At/Set.
//   - Verification helpers: SplitLU, Mul, Reconstruct, MeanSquaredDeviation,
//     MaxAbsDiff, MaxRelDiff, PermuteRows.
//   - Pivot-safe fixture builders: DiagonallyDominant, RandomDominant, NewDenseRows.
//
// Bounds: At/Set always check and return ErrOutOfRange. Row/RowBase are
// unchecked beyond Go's slice bounds; build with -tags parlu_debug to add
// explicit row-index assertions.
package matrix
