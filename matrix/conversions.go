// SPDX-License-Identifier: MIT
// Package matrix provides converters between Matrix and gonum's mat types,
// for callers that need factorizations or solvers this package does not ship.

package matrix

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxToGonum   = "ToGonum"
	ctxFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense with Height() rows and Width()
// columns. Elements are converted to float64.
//
// Errors:
//   - ErrNilMatrix for a nil m.
//   - ErrInvalidDimensions for zero-sized shapes (mat.Dense can not hold them).
//
// Complexity: O(w*h).
func ToGonum[T Number](m *Matrix[T]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxToGonum, err)
	}
	if m.width == 0 || m.height == 0 {
		return nil, fmt.Errorf("%s(%dx%d): %w", ctxToGonum, m.width, m.height, ErrInvalidDimensions)
	}

	buf := make([]float64, len(m.data))
	for idx, v := range m.data {
		buf[idx] = float64(v)
	}

	// mat.NewDense adopts buf; it is already row-major, same layout as ours.
	return mat.NewDense(m.height, m.width, buf), nil
}

// FromGonum copies any mat.Matrix into a new Matrix, converting each element
// with T(v) (integer T truncates toward zero).
//
// Errors:
//   - ErrNilMatrix for a nil source, including a typed nil pointer such as
//     (*mat.Dense)(nil).
//
// Complexity: O(r*c).
func FromGonum[T Number](src mat.Matrix) (*Matrix[T], error) {
	if isNilGonum(src) {
		return nil, fmt.Errorf("%s: %w", ctxFromGonum, ErrNilMatrix)
	}
	rows, cols := src.Dims()
	m := newMatrix[T](cols, rows)

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			m.storeAt(j, i, T(src.At(i, j)))
		}
	}

	return m, nil
}

// isNilGonum reports whether src is nil or wraps a nil pointer.
func isNilGonum(src mat.Matrix) bool {
	if src == nil {
		return true
	}
	v := reflect.ValueOf(src)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
