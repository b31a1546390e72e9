// SPDX-License-Identifier: MIT

package lu

import (
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/katalvlaran/parlu/matrix"
)

// Eliminate hits iron row i with the finished hammer row k (k < i):
//
//	a[i][k] /= a[k][k]                  // becomes L(i,k)
//	a[i][j] -= a[i][k] * a[k][j]        // j = k+1 .. n-1
//
// Implementation:
//   - Stage 1: scale the multiplier in place.
//   - Stage 2: row update as y += alpha*x with blas64.Axpy over the unit-stride tails.
//
// Behavior highlights:
//   - Writes only row i at columns ≥ k; reads only row k.
//   - No zero-pivot guard: a (near-)zero a[k][k] yields ±Inf/NaN that propagate silently.
//
// Complexity:
//   - Time O(n-k), Space O(1).
func Eliminate(a *matrix.Dense, i, k int) {
	iron, hammer := a.Row(i), a.Row(k)
	iron[k] /= hammer[k]

	tail := len(iron) - k - 1
	if tail <= 0 {
		return
	}
	blas64.Axpy(-iron[k],
		blas64.Vector{N: tail, Data: hammer[k+1:], Inc: 1},
		blas64.Vector{N: tail, Data: iron[k+1:], Inc: 1},
	)
}
