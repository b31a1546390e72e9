// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major, explicit leading dimension) & accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*lda + j.
//   - Carry the stride (lda ≥ n) inside the view so callers never do pointer math.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose unchecked row views (Row, RowBase) for hot loops, asserted under -tags parlu_debug.
//
// Complexity quicksheet:
//   - NewDense: O(n*lda) zero-init; At/Set/Row: O(1); Clone: O(len(data)).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"  // method tag used in error wrappers
	ctxSet  = "Set" // method tag used in error wrappers
	ctxRow  = "Row" // method tag used in debug assertions
	ctxFrom = "NewDenseFrom"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable "Dense.<method>(row,col): <sentinel>" shape; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square n×n matrix embedded in a row-major buffer with stride lda.
//   - n is the logical dimension (rows == cols).
//   - lda is the leading dimension (row stride); lda ≥ n, padding columns n..lda-1 are never touched.
//   - data holds at least (n-1)*lda + n elements; entry (i,j) lives at data[i*lda+j].
type Dense struct {
	n    int       // logical dimension
	lda  int       // row stride, fixed for the buffer's lifetime
	data []float64 // row-major storage
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// minLen returns the shortest buffer able to hold n rows of stride lda.
func minLen(n, lda int) int {
	if n == 0 {
		return 0
	}

	return (n-1)*lda + n
}

// validateShape checks n ≥ 0 and lda ≥ n.
func validateShape(n, lda int) error {
	if n < 0 || lda < n {
		return ErrBadShape
	}

	return nil
}

// NewDense creates an n×n zero matrix with row stride lda.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation; allocates n*lda elements.
//
// Implementation:
//   - Stage 1: validate n ≥ 0 and lda ≥ n; else ErrBadShape.
//   - Stage 2: allocate zero-filled buffer of n*lda elements.
//
// Behavior highlights:
//   - n == 0 is legal and yields an empty matrix (decomposition is a no-op on it).
//   - Padding columns are allocated and left at zero.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity:
//   - Time O(n*lda), Space O(n*lda).
func NewDense(n, lda int) (*Dense, error) {
	// Validate shape.
	if err := validateShape(n, lda); err != nil {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", n, lda, err)
	}

	return &Dense{n: n, lda: lda, data: make([]float64, n*lda)}, nil
}

// NewDenseFrom wraps a caller-owned buffer without copying.
// Mutations through the returned view are visible in data and vice versa.
//
// Errors:
//   - ErrBadShape if n<0 or lda<n.
//   - ErrShortBuffer if len(data) < (n-1)*lda + n.
func NewDenseFrom(n, lda int, data []float64) (*Dense, error) {
	if err := validateShape(n, lda); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxFrom, n, lda, err)
	}
	if len(data) < minLen(n, lda) {
		return nil, fmt.Errorf("%s(%d,%d): len=%d: %w", ctxFrom, n, lda, len(data), ErrShortBuffer)
	}

	return &Dense{n: n, lda: lda, data: data}, nil
}

// N returns the logical dimension.
// Complexity: O(1).
func (m *Dense) N() int { return m.n }

// Stride returns the leading dimension (row stride).
// Complexity: O(1).
func (m *Dense) Stride() int { return m.lda }

// Raw exposes the backing buffer, including padding columns.
// Intended for backends that operate on (n, lda, data) triples directly.
func (m *Dense) Raw() []float64 { return m.data }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*lda + j.
	return row*m.lda + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Non-finite values are accepted: decomposition may legitimately produce them.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// assertRow panics on an out-of-range row index when debug assertions are on.
func (m *Dense) assertRow(i int) {
	if debugAsserts && (i < 0 || i >= m.n) {
		panic(denseErrorf(ctxRow, i, 0, ErrOutOfRange))
	}
}

// RowBase returns the flat offset of row i inside Raw().
// MAIN DESCRIPTION:
//   - Stride-aware replacement for "base pointer + i*lda" addressing.
//
// Behavior highlights:
//   - Unchecked in regular builds; asserts 0 ≤ i < n under -tags parlu_debug.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) RowBase(i int) int {
	m.assertRow(i)

	return i * m.lda
}

// Row returns row i as a length-n slice aliasing the backing buffer.
// MAIN DESCRIPTION:
//   - Zero-copy row view; writes go straight into the matrix.
//
// Implementation:
//   - Stage 1: (debug) assert row index.
//   - Stage 2: full slice expression data[off : off+n : off+n].
//
// Behavior highlights:
//   - Capacity is clamped to n: appending never spills into padding or the next row.
//   - Rows are pairwise disjoint, so distinct rows may be written concurrently.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Row(i int) []float64 {
	off := m.RowBase(i)

	return m.data[off : off+m.n : off+m.n]
}

// Clone returns a deep copy (new buffer, same shape and stride, padding included).
// Complexity: O(len(data)).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{n: m.n, lda: m.lda, data: cp}
}

// Equal reports whether m and b have the same dimension and bit-identical
// logical entries. Strides may differ; padding is ignored. NaN payloads compare
// by bits, so Equal(m, m) holds even for non-finite data.
// Complexity: O(n²).
func (m *Dense) Equal(b *Dense) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.n != b.n {
		return false
	}
	var i, j int
	var ra, rb []float64
	for i = 0; i < m.n; i++ {
		ra, rb = m.Row(i), b.Row(i)
		for j = 0; j < m.n; j++ {
			if math.Float64bits(ra[j]) != math.Float64bits(rb[j]) {
				return false
			}
		}
	}

	return true
}

// String HUMAN-READABLE dump of logical rows for diagnostics.
// Not for hot paths; padding columns are omitted.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	var row []float64
	for i = 0; i < m.n; i++ {
		row = m.Row(i)
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", row[j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
