// SPDX-License-Identifier: MIT
// Package matrix - deterministic fixture builders.
//
// Purpose:
//   - Build pivot-safe (diagonally dominant) inputs for no-pivot LU.
//   - Build small explicit fixtures from [][]float64 literals.
//
// Determinism:
//   - DiagonallyDominant uses no randomness.
//   - RandomDominant draws from a private math/rand source seeded by the caller.

package matrix

import (
	"fmt"
	"math"
	"math/rand"
)

// dominanceMargin is added on top of the off-diagonal absolute row sum in
// RandomDominant, so every pivot stays at least this far from zero.
const dominanceMargin = 1.0

// NewDenseRows builds an n×n Dense with stride lda from row literals.
//
// Errors:
//   - ErrRaggedRows if any row length differs from len(rows).
//   - ErrBadShape if lda < len(rows).
func NewDenseRows(rows [][]float64, lda int) (*Dense, error) {
	n := len(rows)
	for i, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("NewDenseRows: row %d has %d entries, want %d: %w", i, len(r), n, ErrRaggedRows)
		}
	}
	m, err := NewDense(n, lda)
	if err != nil {
		return nil, fmt.Errorf("NewDenseRows: %w", err)
	}
	for i, r := range rows {
		copy(m.Row(i), r)
	}

	return m, nil
}

// DiagonallyDominant builds the classic benchmark input:
// A[i][j] = i*n + j off the diagonal, and A[i][i] = 2 * Σ_{j≠i} A[i][j].
// Implementation:
//   - Stage 1: fill each row with i*n + j and accumulate the off-diagonal sum.
//   - Stage 2: overwrite the diagonal with twice that sum.
//
// Behavior highlights:
//   - Off-diagonal entries are non-negative, so the row is strictly dominant for n ≥ 2.
//   - Padding columns stay zero.
//
// Complexity:
//   - Time O(n²), Space O(n·lda).
func DiagonallyDominant(n, lda int) (*Dense, error) {
	m, err := NewDense(n, lda)
	if err != nil {
		return nil, fmt.Errorf("DiagonallyDominant: %w", err)
	}

	var i, j int
	var sum float64
	var row []float64
	for i = 0; i < n; i++ {
		row = m.Row(i)
		sum = ZeroSum
		for j = 0; j < n; j++ {
			row[j] = float64(i*n + j)
			if j != i {
				sum += row[j]
			}
		}
		row[i] = 2.0 * sum
	}

	return m, nil
}

// RandomDominant builds a strictly diagonally dominant matrix with entries
// drawn uniformly from [-1, 1) and A[i][i] = ±(Σ_{j≠i}|A[i][j]| + 1).
// The diagonal sign is random too, so the fixture exercises negative pivots.
// Complexity: O(n²).
func RandomDominant(n, lda int, seed int64) (*Dense, error) {
	m, err := NewDense(n, lda)
	if err != nil {
		return nil, fmt.Errorf("RandomDominant: %w", err)
	}
	rng := rand.New(rand.NewSource(seed))

	var i, j int
	var abs float64
	var row []float64
	for i = 0; i < n; i++ {
		row = m.Row(i)
		abs = ZeroSum
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			row[j] = 2*rng.Float64() - 1
			abs += math.Abs(row[j])
		}
		row[i] = abs + dominanceMargin
		if rng.Intn(2) == 0 {
			row[i] = -row[i]
		}
	}

	return m, nil
}
