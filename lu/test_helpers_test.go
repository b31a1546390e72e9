// SPDX-License-Identifier: MIT
// Package lu_test contains shared fixtures for factorizer tests.

package lu_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/parlu/lu"
	"github.com/katalvlaran/parlu/matrix"
	"github.com/stretchr/testify/require"
)

// baselineTol is the per-entry mixed relative tolerance against the sequential baseline.
const baselineTol = 1e-9

// msdThreshold is the reconstruction acceptance threshold of the classic harness.
const msdThreshold = 1e-2

// scenarioRows is the symmetric, diagonally dominant 4×4 reference input.
var scenarioRows = [][]float64{
	{4, 3, 2, 1},
	{3, 4, 3, 2},
	{2, 3, 4, 3},
	{1, 2, 3, 4},
}

// scenarioLU are the exact combined factors of scenarioRows (L below, U on/above).
var scenarioLU = [][]float64{
	{4, 3, 2, 1},
	{3.0 / 4, 7.0 / 4, 3.0 / 2, 5.0 / 4},
	{1.0 / 2, 6.0 / 7, 12.0 / 7, 10.0 / 7},
	{1.0 / 4, 5.0 / 7, 5.0 / 6, 5.0 / 3},
}

// nativeStrategies lists every no-pivot strategy under test.
var nativeStrategies = []lu.Strategy{lu.Sequential, lu.SpinPool, lu.TaskGraph}

func mustRows(t testing.TB, lda int, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseRows(rows, lda)
	require.NoError(t, err)

	return m
}

func mustDominant(t testing.TB, n, lda int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.RandomDominant(n, lda, seed)
	require.NoError(t, err)

	return m
}

// fillPadding writes a sentinel into every padding cell so tests can assert
// the factorizers never touch columns n..lda-1.
func fillPadding(m *matrix.Dense, v float64) {
	raw := m.Raw()
	for i := 0; i < m.N(); i++ {
		for j := m.RowBase(i) + m.N(); j < (i+1)*m.Stride() && j < len(raw); j++ {
			raw[j] = v
		}
	}
}

func requirePadding(t testing.TB, m *matrix.Dense, v float64) {
	t.Helper()
	raw := m.Raw()
	for i := 0; i < m.N(); i++ {
		for j := m.RowBase(i) + m.N(); j < (i+1)*m.Stride() && j < len(raw); j++ {
			require.Equal(t, v, raw[j], "padding cell %d touched", j)
		}
	}
}

// requireReconstructs asserts every entry of L·U is finite and the
// mean-squared deviation from orig stays under msdThreshold.
func requireReconstructs(t testing.TB, orig, factored *matrix.Dense) {
	t.Helper()
	prod, err := matrix.Reconstruct(factored)
	require.NoError(t, err)
	msd, err := matrix.MeanSquaredDeviation(orig, prod)
	require.NoError(t, err)
	require.False(t, math.IsNaN(msd), "NaN deviation")
	require.Less(t, msd, msdThreshold)
}

// factorCopy runs f on a clone of a and returns the factored clone.
func factorCopy(t testing.TB, f lu.Factorizer, a *matrix.Dense) *matrix.Dense {
	t.Helper()
	c := a.Clone()
	piv, err := f.Factorize(c)
	require.NoError(t, err)
	if !f.Pivoting() {
		require.Nil(t, piv)
	}

	return c
}

func caseName(s lu.Strategy, n, lda int) string {
	return fmt.Sprintf("%s/n=%d/lda=%d", s, n, lda)
}
