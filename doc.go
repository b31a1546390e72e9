// Package parlu is a teaching playground for parallel dense LU decomposition
// with row-level dependency scheduling.
//
// What is inside?
//
//	matrix/ — strided row-major Dense store, row views, L·U reconstruction
//	          and deviation checks, diagonally dominant fixtures
//	lu/     — readiness trackers, the elimination kernel, the Sequential,
//	          SpinPool and TaskGraph schedulers, and the pivoted LAPACK backend
//	          behind one Factorizer interface
//
// Rows are the units of work: row i may only consume row k < i after row k
// is published as ready, so rows form a lower-triangular dependency DAG.
// SpinPool busy-polls atomic flags from a fixed worker pool; TaskGraph spawns
// one task per row up front and parks blocked tasks on per-row futures.
//
// The native backends do not pivot. Feed them diagonally dominant (or
// otherwise pivot-safe) matrices, or select the "lapack" backend.
//
//	go get github.com/katalvlaran/parlu
package parlu
