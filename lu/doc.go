// SPDX-License-Identifier: MIT

// Package lu factors a dense square matrix in place into unit-lower L and
// upper U (A = L·U) by Gaussian elimination without pivoting, scheduling rows
// in parallel under their lower-triangular dependency order.
//
// Vocabulary:
//
//	hammer row — a finished row used to eliminate entries of later rows
//	iron row   — the row currently being eliminated
//	ready      — a row's factors are final and safe for other rows to read
//
// Row i consumes hammers 0..i-1 in increasing order and is published through
// a Tracker once done. Two interchangeable strategies run the same k-loop:
//
//	SpinPool  — fixed pool of workers, rows handed out one at a time,
//	            busy-polling atomic flags (SpinTracker).
//	TaskGraph — one task per row spawned up front; a task blocked on a hammer
//	            parks on the row's completion future (FutureTracker) and frees
//	            its thread.
//
// Sequential is the strictly sequential baseline; LAPACK delegates to gonum's
// pivoted dgetrf and reports its row interchanges (P·A = L·U).
//
// No-pivot backends do not detect zero or tiny pivots: non-dominant or
// singular inputs may leave ±Inf/NaN in the buffer. Checking for that is the
// caller's job (see matrix.Reconstruct and matrix.MeanSquaredDeviation).
//
//	a, _ := matrix.DiagonallyDominant(512, 528)
//	f, _ := lu.New(lu.Config{Backend: lu.BackendTasks})
//	_, _ = f.Factorize(a)
package lu
