// SPDX-License-Identifier: MIT
// Package lu - Factorizer capability and backend selection.
//
// Purpose:
//   - One external contract for every backend: overwrite the strided buffer with
//     combined L\U factors and report the row pivots explicitly.
//   - Native no-pivot (A = L·U, nil Pivots) and LAPACK pivoted (P·A = L·U).

package lu

import (
	"fmt"
	"time"

	"github.com/katalvlaran/parlu/matrix"
)

// Backend names accepted by New and Config.
const (
	BackendSequential = "sequential"
	BackendSpin       = "spin"
	BackendTasks      = "tasks"
	BackendLAPACK     = "lapack"
)

// DefaultBackend is used by Decompose and by an empty Config.
const DefaultBackend = BackendTasks

// Operation tags for error wrapping.
const (
	opFactorize = "Factorize"
	opDecompose = "Decompose"
	opNew       = "New"
)

// Factorizer overwrites a square matrix with its combined L\U factors in place:
// L strictly below the diagonal (unit diagonal implicit), U on and above it.
type Factorizer interface {
	// Name returns the backend name (one of the Backend* constants).
	Name() string

	// Pivoting reports whether Factorize may reorder rows.
	Pivoting() bool

	// Factorize runs the decomposition. Pivots is nil for no-pivot backends
	// (A = L·U); otherwise it is the LAPACK interchange sequence (P·A = L·U).
	// Errors signal precondition violations, plus ErrSingular from pivoted backends.
	Factorize(a *matrix.Dense) (Pivots, error)
}

// Pivots is a zero-based LAPACK-style interchange sequence: during
// factorization row i was swapped with row Pivots[i], for i = 0, 1, ...
type Pivots []int

// Permutation expands the interchange sequence into a row permutation p of
// length n such that (P·A)[i] = A[p[i]]. Nil Pivots yield the identity.
// Complexity: O(n).
func (p Pivots) Permutation(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i, piv := range p {
		perm[i], perm[piv] = perm[piv], perm[i]
	}

	return perm
}

// Native is the in-place, no-pivot Gaussian elimination backend.
type Native struct {
	strategy Strategy
	opts     Options
}

var _ Factorizer = (*Native)(nil)

// NewNative builds a no-pivot factorizer for the given scheduling strategy.
func NewNative(strategy Strategy, opts ...Option) *Native {
	return &Native{strategy: strategy, opts: gatherOptions(opts...)}
}

// Name returns the strategy's backend name.
func (f *Native) Name() string { return f.strategy.String() }

// Pivoting is always false: rows are never reordered.
func (f *Native) Pivoting() bool { return false }

// Factorize decomposes a in place as A = L·U.
// Implementation:
//   - Stage 1: validate a (non-nil).
//   - Stage 2: n ≤ 1 has nothing to eliminate; return with a untouched.
//   - Stage 3: dispatch to the configured strategy with a fresh tracker.
//
// Behavior highlights:
//   - Returns nil Pivots and a nil error for every non-nil input, however
//     ill-conditioned: zero pivots leave Inf/NaN in a, and the caller checks for them.
//   - No state survives the call.
//
// Complexity:
//   - Time O(n³) work, Space O(n) for readiness state.
func (f *Native) Factorize(a *matrix.Dense) (Pivots, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s(%s): %w", opFactorize, f.Name(), err)
	}
	n := a.N()
	if n <= 1 {
		return nil, nil
	}

	start := time.Now()
	workers := 1
	switch f.strategy {
	case Sequential:
		runSequential(a, f.opts)
	case SpinPool:
		workers = f.opts.resolveWorkers(n)
		runSpinPool(a, f.opts, workers)
	case TaskGraph:
		workers = f.opts.resolveWorkers(n)
		runTaskGraph(a, f.opts, workers)
	default:
		return nil, fmt.Errorf("%s(%d): %w", opFactorize, int(f.strategy), ErrUnknownBackend)
	}

	f.opts.logger.Debug().
		Str("backend", f.Name()).
		Int("n", n).
		Int("lda", a.Stride()).
		Int("workers", workers).
		Dur("elapsed", time.Since(start)).
		Msg("factorized")

	return nil, nil
}

// New selects a backend from cfg. Worker count from cfg is applied before opts,
// so an explicit WithWorkers in opts wins.
//
// Errors:
//   - ErrInvalidConfig (wrapping ErrUnknownBackend for bad names).
func New(cfg Config, opts ...Option) (Factorizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	if cfg.Workers > 0 {
		opts = append([]Option{WithWorkers(cfg.Workers)}, opts...)
	}

	switch cfg.Backend {
	case BackendSequential:
		return NewNative(Sequential, opts...), nil
	case BackendSpin:
		return NewNative(SpinPool, opts...), nil
	case BackendTasks, "":
		return NewNative(TaskGraph, opts...), nil
	case BackendLAPACK:
		return NewLAPACK(opts...), nil
	default:
		return nil, fmt.Errorf("%s(%q): %w", opNew, cfg.Backend, ErrUnknownBackend)
	}
}

// Decompose is the raw buffer contract: factor the n×n matrix stored row-major
// in a with stride lda, in place, without pivoting (A = L·U).
//
// Preconditions: n ≥ 0, lda ≥ n, len(a) ≥ (n-1)*lda + n. Violations are the only
// errors (matrix.ErrBadShape, matrix.ErrShortBuffer); numerical breakdown is not
// signaled. n = 0 and n = 1 leave a unchanged.
func Decompose(n, lda int, a []float64, opts ...Option) error {
	m, err := matrix.NewDenseFrom(n, lda, a)
	if err != nil {
		return fmt.Errorf("%s: %w", opDecompose, err)
	}
	_, err = NewNative(TaskGraph, opts...).Factorize(m)

	return err
}
