// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Matrix storage, constructors
// and sentinels.
package matrix_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/libmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidDimensions ensures New rejects negative dimensions.
func TestNewInvalidDimensions(t *testing.T) {
	_, err := matrix.New[float64](0, -1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.New[float64](0, 3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDiagonalFill checks zero fill plus diagonal seeding, square and not.
func TestNewDiagonalFill(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		d             int
		width, height int
		want          [][]int
	}{
		{"identity 3x3", 1, 3, 3, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
		{"zeros 2x3", 0, 2, 3, [][]int{{0, 0}, {0, 0}, {0, 0}}},
		{"wide 4x2", 7, 4, 2, [][]int{{7, 0, 0, 0}, {0, 7, 0, 0}}},
		{"tall 2x3", 5, 2, 3, [][]int{{5, 0}, {0, 5}, {0, 0}}},
		{"empty", 9, 0, 0, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := MustNew(t, tc.d, tc.width, tc.height)
			w, h := m.Dimensions()
			require.Equal(t, tc.width, w)
			require.Equal(t, tc.height, h)
			require.Len(t, m.Elements(), tc.width*tc.height)
			RequireRows(t, tc.want, m)
		})
	}
}

// TestNewFromRowsInfersShape verifies height from the outer slice and width
// from the first row.
func TestNewFromRowsInfersShape(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 3, m.Width())
	require.Equal(t, 2, m.Height())
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Elements())

	// (x,y) = (column,row)
	require.Equal(t, 6.0, MustAt(t, m, 2, 1))
	require.Equal(t, 4.0, MustAt(t, m, 0, 1))
}

// TestNewFromRowsEmpty covers the empty literal and rows of length zero.
func TestNewFromRowsEmpty(t *testing.T) {
	m := MustFromRows[int](t, nil)
	w, h := m.Dimensions()
	require.Zero(t, w)
	require.Zero(t, h)

	m = MustFromRows(t, [][]int{{}, {}})
	w, h = m.Dimensions()
	require.Zero(t, w)
	require.Equal(t, 2, h)
	require.Empty(t, m.Elements())
}

// TestNewFromRowsRagged ensures a ragged literal is rejected.
func TestNewFromRowsRagged(t *testing.T) {
	_, err := matrix.NewFromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

// TestNewFromRowsDoesNotAlias ensures the literal is copied.
func TestNewFromRowsDoesNotAlias(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}
	m := MustFromRows(t, rows)
	rows[0][0] = 100
	require.Equal(t, 1, MustAt(t, m, 0, 0))
}

// TestAtStoreAtOutOfRange ensures At and StoreAt return ErrOutOfRange.
func TestAtStoreAtOutOfRange(t *testing.T) {
	m := MustNew(t, 0.0, 2, 3)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(2, 0) // x == width
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 3) // y == height
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.StoreAt(0, -1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.StoreAt(5, 5, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "StoreAt(5,5)")
}

// TestStoreAtThenAt validates a write followed by a read.
func TestStoreAtThenAt(t *testing.T) {
	m := MustNew(t, 0.0, 3, 2)
	require.NoError(t, m.StoreAt(2, 1, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 2, 1))
	// row-major: (2,1) is the last element of a 3x2 matrix
	require.Equal(t, 7.89, m.Elements()[1*3+2])
}

// TestSameDimensionsAs compares shapes only.
func TestSameDimensionsAs(t *testing.T) {
	a := MustNew(t, 1, 2, 3)
	b := MustNew(t, 9, 2, 3)
	c := MustNew(t, 1, 3, 2)

	require.True(t, a.SameDimensionsAs(b))
	require.False(t, a.SameDimensionsAs(c))
	require.False(t, a.Equal(b))
}

// TestSetDiagonalLeavesOffDiagonal checks off-diagonal cells are untouched.
func TestSetDiagonalLeavesOffDiagonal(t *testing.T) {
	m := MustFromRows(t, [][]int{{1, 2}, {3, 4}})
	m.SetDiagonal(0)
	RequireRows(t, [][]int{{0, 2}, {3, 0}}, m)
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	clone := m.Clone()
	require.True(t, m.Equal(clone))

	require.NoError(t, clone.StoreAt(0, 0, 3))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
}

// TestMoveTransfersOwnership checks the moved-to matrix keeps the data and
// the source is emptied.
func TestMoveTransfersOwnership(t *testing.T) {
	m := MustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	want := m.Clone()

	moved := m.Move()
	require.True(t, moved.Equal(want))

	w, h := m.Dimensions()
	require.Zero(t, w)
	require.Zero(t, h)
	require.Empty(t, m.Elements())
}

// TestElementsIsACopy ensures the returned buffer is detached.
func TestElementsIsACopy(t *testing.T) {
	m := MustFromRows(t, [][]int{{1, 2}})
	e := m.Elements()
	e[0] = 42
	require.Equal(t, 1, MustAt(t, m, 0, 0))
}

// TestStringOutput checks that String formats rows as expected.
func TestStringOutput(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4.5}})
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}

// TestSentinels checks MZero/MOne shape, independence and per-type caching.
func TestSentinels(t *testing.T) {
	t.Parallel()

	z := matrix.MZero[float64]()
	o := matrix.MOne[float64]()
	w, h := z.Dimensions()
	require.Zero(t, w)
	require.Zero(t, h)
	require.True(t, z.Equal(o)) // both are 0×0; the seed has no cell to land in

	// Mutating a returned sentinel must not leak into later calls.
	z.SetDiagonal(5)
	_, err := z.ReadFrom(strings.NewReader("1 1 3"))
	require.NoError(t, err)
	again := matrix.MZero[float64]()
	w, h = again.Dimensions()
	require.Zero(t, w)
	require.Zero(t, h)

	// Distinct element types get distinct instances.
	zi := matrix.MZero[int]()
	require.Empty(t, zi.Elements())
}

// TestNilMatrix checks that no method panics on a nil *Matrix: calls with
// an error return report ErrNilMatrix, the others return nil or zero.
func TestNilMatrix(t *testing.T) {
	t.Parallel()

	var m *matrix.Matrix[float64]

	errCalls := map[string]func() error{
		"At":           func() error { _, err := m.At(0, 0); return err },
		"StoreAt":      func() error { return m.StoreAt(0, 0, 1) },
		"Row":          func() error { _, err := m.Row(0); return err },
		"SaveRow":      func() error { return m.SaveRow(0, []float64{1}) },
		"SwapRow":      func() error { return m.SwapRow(0, 0) },
		"NormalizeRow": func() error { return m.NormalizeRow(0, 2) },
		"MultAddRows":  func() error { return m.MultAddRows(0, 0, 1) },
		"WriteTo":      func() error { _, err := m.WriteTo(&strings.Builder{}); return err },
		"ReadFrom":     func() error { _, err := m.ReadFrom(strings.NewReader("1 1 1")); return err },
	}
	for name, call := range errCalls {
		name, call := name, call
		t.Run(name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { err = call() })
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
		})
	}

	require.NotPanics(t, func() {
		require.Nil(t, m.Reduce())
		require.Nil(t, m.Transpose())
		require.Nil(t, matrix.Scale(m, 2))
		require.Nil(t, m.Clone())
		require.Nil(t, m.Move())
		require.Nil(t, m.Elements())
		require.Zero(t, m.CoefficientRank())
		require.Zero(t, m.Width())
		require.Zero(t, m.Height())
		require.Empty(t, m.String())
		require.True(t, m.Equal(nil))
		require.False(t, m.SameDimensionsAs(MustNew(t, 0.0, 0, 0)))
		m.SetDiagonal(1)
	})
}
