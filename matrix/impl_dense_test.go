// Package matrix_test contains unit tests for the strided Dense store.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/parlu/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidShape ensures that NewDense rejects n<0 and lda<n.
func TestNewDenseInvalidShape(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense(-1, 4)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(4, 3) // stride shorter than a row
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestNewDenseEmpty verifies that a 0×0 matrix is legal.
func TestNewDenseEmpty(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, m.N())
	require.Empty(t, m.Raw())
	require.Equal(t, "", m.String())
}

// TestShapeAndStride verifies N(), Stride() and the allocated length.
func TestShapeAndStride(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 3, 5)
	require.Equal(t, 3, m.N())
	require.Equal(t, 5, m.Stride())
	require.Len(t, m.Raw(), 15)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
// Padding columns (n ≤ j < lda) are out of range for the logical matrix.
func TestAtSetOutOfRange(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 4)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2) // padding column
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGetRespectsStride validates that (i,j) maps to data[i*lda+j].
func TestSetGetRespectsStride(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 1, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 1, 1))
	require.Equal(t, 7.89, m.Raw()[1*3+1])

	// Non-finite values are accepted on purpose.
	require.NoError(t, m.Set(0, 0, math.Inf(1)))
	require.True(t, math.IsInf(MustAt(t, m, 0, 0), 1))
}

// TestRowAliasesBuffer checks that Row returns a clamped, aliasing view.
func TestRowAliasesBuffer(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 3, 4)
	r := m.Row(1)
	require.Len(t, r, 3)
	require.Equal(t, 3, cap(r), "capacity must not reach into padding")

	r[2] = 5
	require.Equal(t, 5.0, MustAt(t, m, 1, 2))
	require.Equal(t, 4, m.RowBase(1))

	// Appending must reallocate instead of clobbering the padding cell.
	_ = append(r, 99)
	require.Equal(t, 0.0, m.Raw()[m.RowBase(1)+3])
}

// TestNewDenseFrom wraps a caller buffer without copying.
func TestNewDenseFrom(t *testing.T) {
	t.Parallel()

	buf := []float64{1, 2, -1, 3, 4} // n=2, lda=3; the last row needs no padding
	m, err := matrix.NewDenseFrom(2, 3, buf)
	require.NoError(t, err)
	require.Equal(t, 4.0, MustAt(t, m, 1, 1))

	require.NoError(t, m.Set(0, 1, 9))
	require.Equal(t, 9.0, buf[1])

	_, err = matrix.NewDenseFrom(2, 3, buf[:4])
	require.ErrorIs(t, err, matrix.ErrShortBuffer)

	_, err = matrix.NewDenseFrom(3, 2, buf)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	t.Parallel()

	m := MustRows(t, 3, []float64{1, 2}, []float64{3, 4})
	m.Raw()[2] = -7 // padding survives Clone too

	c := m.Clone()
	require.True(t, m.Equal(c))
	require.Equal(t, -7.0, c.Raw()[2])

	require.NoError(t, c.Set(0, 0, 42))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.False(t, m.Equal(c))
}

// TestEqualIgnoresStride compares logical entries only.
func TestEqualIgnoresStride(t *testing.T) {
	t.Parallel()

	a := MustRows(t, 2, []float64{1, 2}, []float64{3, math.NaN()})
	b := MustRows(t, 5, []float64{1, 2}, []float64{3, math.NaN()})
	require.True(t, a.Equal(b), "NaN compares by bits")
	require.False(t, a.Equal(MustDense(t, 3, 3)))
	require.False(t, a.Equal(nil))
}

// TestString renders logical rows only.
func TestString(t *testing.T) {
	t.Parallel()

	m := MustRows(t, 4, []float64{1, 2.5}, []float64{-3, 4})
	require.Equal(t, "[1, 2.5]\n[-3, 4]\n", m.String())
}
