// SPDX-License-Identifier: MIT
// Package matrix provides elementwise and matrix arithmetic on Matrix values:
// equality, addition, subtraction, scalar multiplication, matrix
// multiplication and transpose. Every operation returns a freshly allocated
// result; operands are never mutated.
//
// Error policy:
//   - Add/Sub on different shapes return the MZero sentinel together with
//     ErrDimensionMismatch.
//   - Mul on incompatible shapes returns *UndefinedBehaviorError.

package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opAllClose = "AllClose"
)

// mulMismatchContext is the context carried by Mul's dimension error.
const mulMismatchContext = "cannot multiply given matrices"

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Equal reports whether a and b have the same dimensions and pairwise equal
// elements. Comparison is exact (no epsilon), so -0 equals +0 and NaN never
// equals anything. Two nil matrices are equal; nil never equals non-nil.
// Complexity: O(w*h).
func Equal[T Number](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !a.SameDimensionsAs(b) {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}

// Equal reports whether m and other are equal (see package-level Equal).
func (m *Matrix[T]) Equal(other *Matrix[T]) bool { return Equal(m, other) }

// addSub computes elementwise out = a + sign*b with sign ∈ {+1, -1}.
// Implementation:
//   - Stage 1: ValidateSameShape(a, b); on failure return MZero and the error.
//   - Stage 2: single flat loop 0..n-1 over both buffers.
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func addSub[T Number](a, b *Matrix[T], sign T, opTag string) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return MZero[T](), matrixErrorf(opTag, err)
	}

	res := newMatrix[T](a.width, a.height)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + b.data[idx]*sign
	}

	return res, nil
}

// Add computes the elementwise sum C = A + B.
//
// Returns:
//   - *Matrix[T]: new matrix with C(x,y) = A(x,y) + B(x,y).
//
// Errors:
//   - ErrDimensionMismatch (shape mismatch) or ErrNilMatrix; the returned
//     matrix is then the MZero sentinel, never nil.
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, 1, opAdd) }

// Sub computes the elementwise difference C = A + (B * -1).
// Same shape and sentinel policy as Add. For unsigned element types the
// negation wraps around, which still yields A - B modulo 2^n.
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	var minusOne T
	minusOne-- // -1, or the all-ones value for unsigned T

	return addSub(a, b, minusOne, opSub)
}

// Scale returns a new matrix whose elements are m(x,y) * s.
// The original is untouched; s = 0 yields a zero matrix of the same shape.
// Scale(nil, s) is nil.
// Complexity: O(w*h).
func Scale[T Number](m *Matrix[T], s T) *Matrix[T] {
	if m == nil {
		return nil
	}
	res := newMatrix[T](m.width, m.height)
	for idx, v := range m.data {
		res.data[idx] = v * s
	}

	return res
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Width() == B.Height()).
//   - Stage 2: allocate C with Width = B.Width(), Height = A.Height().
//   - Stage 3: plain triple loop i→j→k accumulating from zero.
//
// Errors:
//   - *UndefinedBehaviorError (matches ErrUndefinedBehavior and
//     ErrDimensionMismatch) when inner dimensions differ.
//   - ErrNilMatrix for nil operands.
//
// Complexity:
//   - Time O(n·m·p), Space O(n·p). No blocking or SIMD.
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		if errors.Is(err, ErrDimensionMismatch) {
			return nil, &UndefinedBehaviorError{
				Op:      opMul,
				Context: fmt.Sprintf("%s: %dx%d by %dx%d", mulMismatchContext, a.height, a.width, b.height, b.width),
			}
		}

		return nil, matrixErrorf(opMul, err)
	}

	n, inner, p := a.height, a.width, b.width
	res := newMatrix[T](p, n)
	var (
		i, j, k int
		sum     T
	)
	for i = 0; i < n; i++ { // rows of A
		for j = 0; j < p; j++ { // columns of B
			sum = 0
			for k = 0; k < inner; k++ {
				sum += a.at(k, i) * b.at(j, k)
			}
			res.storeAt(j, i, sum)
		}
	}

	return res, nil
}

// Transpose returns a new matrix with swapped dimensions where
// result(y,x) = m(x,y). Transpose(nil) is nil.
// Complexity: O(w*h).
func Transpose[T Number](m *Matrix[T]) *Matrix[T] {
	if m == nil {
		return nil
	}
	res := newMatrix[T](m.height, m.width)
	var x, y int
	for y = 0; y < m.height; y++ {
		for x = 0; x < m.width; x++ {
			res.storeAt(y, x, m.at(x, y))
		}
	}

	return res
}

// Transpose returns the transpose of m (see package-level Transpose).
func (m *Matrix[T]) Transpose() *Matrix[T] { return Transpose(m) }

// AllClose checks elementwise |a-b| <= atol or |a-b| <= rtol*max(|a|,|b|)
// for identical shapes. Use it where Equal is too strict because of rounding.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch for bad operands.
//   - ErrOutOfRange for a NaN or infinite tolerance.
//
// Complexity: O(w*h).
func AllClose[T Number](a, b *Matrix[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrOutOfRange)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	for idx := range a.data {
		if !scalar.EqualWithinAbsOrRel(float64(a.data[idx]), float64(b.data[idx]), atol, rtol) {
			return false, nil // early exit on first violation
		}
	}

	return true, nil
}
