// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the Dense store and verification kernels.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/parlu/matrix"
	"github.com/stretchr/testify/require"
)

// MustDense ALLOCATES an n×n *Dense with stride lda or fails the test.
func MustDense(t testing.TB, n, lda int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, lda)
	require.NoError(t, err, "NewDense(%d,%d)", n, lda)

	return m
}

// MustRows BUILDS a *Dense from row literals or fails the test.
func MustRows(t testing.TB, lda int, rows ...[]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseRows(rows, lda)
	require.NoError(t, err, "NewDenseRows")

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}
