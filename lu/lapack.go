// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"

	"github.com/katalvlaran/parlu/matrix"
)

// LAPACK is the library-backed backend: blocked LU with partial pivoting
// (gonum dgetrf) on the same row-major strided buffer. It factors P·A = L·U,
// not A = L·U; compare against the native backends only after permuting.
type LAPACK struct {
	opts Options
}

var _ Factorizer = (*LAPACK)(nil)

// NewLAPACK builds the pivoted backend. Only WithLogger affects it; the other
// options are accepted and ignored, so callers can share an option set.
func NewLAPACK(opts ...Option) *LAPACK {
	return &LAPACK{opts: gatherOptions(opts...)}
}

// Name returns BackendLAPACK.
func (f *LAPACK) Name() string { return BackendLAPACK }

// Pivoting is always true.
func (f *LAPACK) Pivoting() bool { return true }

// Factorize runs lapack64.Getrf over a blas64.General view of a.
// Implementation:
//   - Stage 1: validate a; n == 0 returns empty pivots.
//   - Stage 2: wrap (n, n, lda, data) without copying and call Getrf.
//   - Stage 3: report singularity as ErrSingular, with the factors and pivots still returned.
//
// Returns:
//   - Pivots of length n (zero-based interchange sequence).
//
// Errors:
//   - matrix.ErrNilMatrix; ErrSingular when U has an exact zero diagonal entry.
func (f *LAPACK) Factorize(a *matrix.Dense) (Pivots, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s(%s): %w", opFactorize, f.Name(), err)
	}
	n := a.N()
	if n == 0 {
		return Pivots{}, nil
	}

	start := time.Now()
	ipiv := make([]int, n)
	ok := lapack64.Getrf(blas64.General{
		Rows:   n,
		Cols:   n,
		Stride: a.Stride(),
		Data:   a.Raw(),
	}, ipiv)

	f.opts.logger.Debug().
		Str("backend", f.Name()).
		Int("n", n).
		Int("lda", a.Stride()).
		Dur("elapsed", time.Since(start)).
		Msg("factorized")

	if !ok {
		f.opts.logger.Warn().Str("backend", f.Name()).Int("n", n).Msg("singular matrix")

		return Pivots(ipiv), fmt.Errorf("%s(%s): %w", opFactorize, f.Name(), ErrSingular)
	}

	return Pivots(ipiv), nil
}
