// SPDX-License-Identifier: MIT

// Package matrix - dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the single index formula y*width + x.
//   - Guarantee safety at the public surface: At/StoreAt return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Keep value semantics: constructors and Clone always allocate a fresh buffer.
//
// Complexity quicksheet:
//   - New: O(w*h) zero-init; At/StoreAt: O(1); Clone/Elements: O(w*h); Move: O(1).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxStoreAt = "StoreAt" // method tag used in error wrappers
	ctxNew     = "New"     // ctor tag for New
	ctxRows    = "NewFromRows"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Matrix context and callsite coordinates.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Matrix.<method>(x,y): %w".
//   - Stage 2: return wrapped error.
//
// Inputs:
//   - method: context tag (ctxAt/ctxStoreAt/...)
//   - x, y: coordinates (column, row)
//   - err: sentinel (e.g., ErrOutOfRange)
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, x, y, err)
}

// New creates a width×height matrix filled with zeros and writes diagonal
// along the main diagonal (every cell where row == column).
// MAIN DESCRIPTION:
//   - Public constructor mirroring "dimensions + scalar diagonal fill".
//
// Implementation:
//   - Stage 1: validate width >= 0 && height >= 0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer (make() zero-fills deterministically).
//   - Stage 3: SetDiagonal(diagonal).
//
// Behavior highlights:
//   - New(0, w, h) is the zero matrix; New(1, n, n) is the identity.
//   - Zero-sized shapes are legal and hold an empty buffer.
//
// Returns:
//   - *Matrix[T]: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (negative width or height).
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func New[T Number](diagonal T, width, height int) (*Matrix[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, width, height, ErrInvalidDimensions)
	}
	m := newMatrix[T](width, height)
	m.SetDiagonal(diagonal)

	return m, nil
}

// NewZeros returns a width×height zero matrix.
func NewZeros[T Number](width, height int) (*Matrix[T], error) { return New[T](0, width, height) }

// NewIdentity returns the n×n identity matrix.
func NewIdentity[T Number](n int) (*Matrix[T], error) { return New[T](1, n, n) }

// newMatrix allocates a zero matrix without validation.
// Callers guarantee width, height >= 0.
func newMatrix[T Number](width, height int) *Matrix[T] {
	return &Matrix[T]{
		width:  width,
		height: height,
		data:   make([]T, width*height),
	}
}

// NewFromRows builds a matrix from a nested literal of rows.
// MAIN DESCRIPTION:
//   - height = len(rows); width = len(rows[0]) (0 when rows is empty).
//
// Implementation:
//   - Stage 1: infer dimensions from the outer length and the first row.
//   - Stage 2: check every row has exactly width elements.
//   - Stage 3: copy values row by row into a fresh buffer.
//
// Behavior highlights:
//   - The result never aliases the input slices.
//
// Errors:
//   - ErrRaggedRows when a row length differs from the first row.
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func NewFromRows[T Number](rows [][]T) (*Matrix[T], error) {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	m := newMatrix[T](width, height)

	var y int
	for y = 0; y < height; y++ {
		if len(rows[y]) != width {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w",
				ctxRows, y, len(rows[y]), width, ErrRaggedRows)
		}
		copy(m.data[y*width:(y+1)*width], rows[y])
	}

	return m, nil
}

// Width returns the x-dimension (number of columns); 0 for a nil matrix. O(1).
func (m *Matrix[T]) Width() int {
	if m == nil {
		return 0
	}

	return m.width
}

// Height returns the y-dimension (number of rows); 0 for a nil matrix. O(1).
func (m *Matrix[T]) Height() int {
	if m == nil {
		return 0
	}

	return m.height
}

// Dimensions packs Width() and Height() into a single call.
// Complexity: O(1).
func (m *Matrix[T]) Dimensions() (width, height int) { return m.Width(), m.Height() }

// SameDimensionsAs reports whether m and other have identical shapes.
// Content is not compared. A nil matrix only matches another nil matrix.
func (m *Matrix[T]) SameDimensionsAs(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == nil && other == nil
	}

	return m.width == other.width && m.height == other.height
}

// index is the single row-major formula every access funnels through.
// No bounds check; callers guarantee 0 <= x < width and 0 <= y < height.
func (m *Matrix[T]) index(x, y int) int { return y*m.width + x }

// at reads (x,y) without bounds checking. Internal hot paths only.
func (m *Matrix[T]) at(x, y int) T { return m.data[m.index(x, y)] }

// storeAt writes (x,y) without bounds checking. Internal hot paths only.
func (m *Matrix[T]) storeAt(x, y int, v T) { m.data[m.index(x, y)] = v }

// inBounds reports whether (x,y) addresses a cell of m.
func (m *Matrix[T]) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// checkCell validates m and (x,y) for the public accessors.
func (m *Matrix[T]) checkCell(method string, x, y int) error {
	if m == nil {
		return denseErrorf(method, x, y, ErrNilMatrix)
	}
	if !m.inBounds(x, y) {
		return denseErrorf(method, x, y, ErrOutOfRange)
	}

	return nil
}

// At returns the element at column x, row y or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: bounds check.
//   - Stage 2: load from the flat buffer via index().
//
// Errors:
//   - ErrOutOfRange when out of bounds, wrapped with "Matrix.At(x,y)".
//   - ErrNilMatrix for a nil receiver.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) At(x, y int) (T, error) {
	if err := m.checkCell(ctxAt, x, y); err != nil {
		var zero T
		return zero, err
	}

	return m.at(x, y), nil
}

// StoreAt overwrites the element at column x, row y.
// Errors:
//   - ErrOutOfRange when out of bounds, wrapped with "Matrix.StoreAt(x,y)".
//   - ErrNilMatrix for a nil receiver.
//
// Complexity: O(1).
func (m *Matrix[T]) StoreAt(x, y int, v T) error {
	if err := m.checkCell(ctxStoreAt, x, y); err != nil {
		return err
	}
	m.storeAt(x, y, v)

	return nil
}

// SetDiagonal writes v at every cell where row == column.
// Off-diagonal cells are untouched, so a clean diagonal matrix requires a
// zero-filled receiver. Works for non-square shapes (min(w,h) cells).
// A nil receiver is a no-op.
// Complexity: O(min(w,h)).
func (m *Matrix[T]) SetDiagonal(v T) {
	if m == nil {
		return
	}
	n := min(m.width, m.height)
	var i int
	for i = 0; i < n; i++ {
		m.storeAt(i, i, v)
	}
}

// Clone returns a deep copy with an independent buffer; nil for nil.
// Complexity: Time O(w*h), Space O(w*h).
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return nil
	}
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{width: m.width, height: m.height, data: cp}
}

// Move transfers ownership of the buffer to a new Matrix without copying.
// The receiver is left as an empty 0×0 matrix; the returned matrix holds
// exactly the data m held before the call. Moving nil yields nil.
// Complexity: O(1).
func (m *Matrix[T]) Move() *Matrix[T] {
	if m == nil {
		return nil
	}
	moved := &Matrix[T]{width: m.width, height: m.height, data: m.data}
	m.width, m.height, m.data = 0, 0, nil

	return moved
}

// Elements returns a copy of the row-major element buffer.
// Mutating the result does not affect m. A nil matrix has no elements.
func (m *Matrix[T]) Elements() []T {
	if m == nil {
		return nil
	}
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return cp
}

// String renders rows as "[a, b, c]" lines for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(w*h), Space O(w*h) for formatting.
func (m *Matrix[T]) String() string {
	if m == nil {
		return ""
	}
	var b strings.Builder
	var x, y int
	for y = 0; y < m.height; y++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		for x = 0; x < m.width; x++ {
			fmt.Fprint(&b, m.at(x, y))
			if x+1 < m.width {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
