// SPDX-License-Identifier: MIT

// Package matrix - row-granular operations.
//
// Purpose:
//   - Provide the elementary row operations (copy out, overwrite, swap, scale,
//     combine) used by Reduce and by callers manipulating augmented matrices.
//   - Every public operation validates row indices and returns ErrOutOfRange
//     instead of touching memory outside the buffer (ErrNilMatrix for nil).
//   - Rows handed out are independent copies, never views.

package matrix

import "fmt"

const (
	ctxRow          = "Row"
	ctxSaveRow      = "SaveRow"
	ctxSwapRow      = "SwapRow"
	ctxNormalizeRow = "NormalizeRow"
	ctxMultAddRows  = "MultAddRows"
)

// rowErrorf wraps err with the method tag and the offending row indices.
func rowErrorf(method string, err error, rows ...int) error {
	return fmt.Errorf("Matrix.%s%v: %w", method, rows, err)
}

// validRow reports whether i addresses a row of m.
func (m *Matrix[T]) validRow(i int) bool { return i >= 0 && i < m.height }

// checkRows validates m and every row index for a public row operation.
func (m *Matrix[T]) checkRows(method string, rows ...int) error {
	if m == nil {
		return rowErrorf(method, ErrNilMatrix, rows...)
	}
	for _, i := range rows {
		if !m.validRow(i) {
			return rowErrorf(method, ErrOutOfRange, rows...)
		}
	}

	return nil
}

// row returns a copy of row i without validation.
func (m *Matrix[T]) row(i int) []T {
	out := make([]T, m.width)
	copy(out, m.data[i*m.width:(i+1)*m.width])

	return out
}

// saveRow overwrites row i with values without validation.
func (m *Matrix[T]) saveRow(i int, values []T) {
	var x int
	for x = 0; x < m.width; x++ {
		m.storeAt(x, i, values[x])
	}
}

// swapRow exchanges rows i and j through independent copies of both.
// Correct for i == j and for adjacent rows.
func (m *Matrix[T]) swapRow(i, j int) {
	first, second := m.row(i), m.row(j)
	m.saveRow(i, second)
	m.saveRow(j, first)
}

// normalizeRow divides every element of row by coeff using floating-point
// division, then converts back to T (truncation for integer types).
func (m *Matrix[T]) normalizeRow(row int, coeff float64) {
	var x int
	for x = 0; x < m.width; x++ {
		m.storeAt(x, row, T(float64(m.at(x, row))/coeff))
	}
}

// multAddRows computes row i = row j * val + row i (vector form).
func (m *Matrix[T]) multAddRows(i, j int, val T) {
	ii, jj := m.row(i), m.row(j)
	var x int
	for x = 0; x < m.width; x++ {
		ii[x] = jj[x]*val + ii[x]
	}
	m.saveRow(i, ii)
}

// Row returns an independent copy of row i (length == Width()).
// Later mutations of m do not affect the returned slice.
// Errors: ErrOutOfRange, ErrNilMatrix. Complexity: O(w).
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if err := m.checkRows(ctxRow, i); err != nil {
		return nil, err
	}

	return m.row(i), nil
}

// SaveRow overwrites row i element by element with values.
// Errors:
//   - ErrOutOfRange for an invalid row.
//   - ErrDimensionMismatch when len(values) != Width().
//   - ErrNilMatrix for a nil receiver.
//
// Complexity: O(w).
func (m *Matrix[T]) SaveRow(i int, values []T) error {
	if err := m.checkRows(ctxSaveRow, i); err != nil {
		return err
	}
	if len(values) != m.width {
		return rowErrorf(ctxSaveRow, ErrDimensionMismatch, i)
	}
	m.saveRow(i, values)

	return nil
}

// SwapRow exchanges the contents of rows i and j. i == j is a no-op.
// Errors: ErrOutOfRange, ErrNilMatrix. Complexity: O(w).
func (m *Matrix[T]) SwapRow(i, j int) error {
	if err := m.checkRows(ctxSwapRow, i, j); err != nil {
		return err
	}
	m.swapRow(i, j)

	return nil
}

// NormalizeRow divides every element of row by coeff.
// MAIN DESCRIPTION:
//   - The coefficient is a real number: division is always carried out in
//     float64 and the quotient is converted back to T, so integer element
//     types truncate toward zero.
//
// Behavior highlights:
//   - coeff == 0 is NOT guarded; the host float semantics apply (±Inf/NaN
//     for float types, the platform conversion of those for integer types).
//
// Errors:
//   - ErrOutOfRange for an invalid row.
//   - ErrNilMatrix for a nil receiver.
//
// Complexity:
//   - Time O(w), Space O(1).
func (m *Matrix[T]) NormalizeRow(row int, coeff float64) error {
	if err := m.checkRows(ctxNormalizeRow, row); err != nil {
		return err
	}
	m.normalizeRow(row, coeff)

	return nil
}

// MultAddRows adds val times row j to row i: row i ← row j * val + row i.
// Row j is left unchanged; with i == j row i is scaled by (1+val).
// Errors: ErrOutOfRange, ErrNilMatrix. Complexity: O(w).
func (m *Matrix[T]) MultAddRows(i, j int, val T) error {
	if err := m.checkRows(ctxMultAddRows, i, j); err != nil {
		return err
	}
	m.multAddRows(i, j, val)

	return nil
}
