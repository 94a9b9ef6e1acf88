// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage, row operations and kernels.
// This file contains ONLY the element constraint and the Matrix entity.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

import "golang.org/x/exp/constraints"

// Number is the element constraint of a Matrix.
// Any integer or floating-point type satisfies it: the type supports
// + - * /, equality, and conversion from an integer literal (used for
// zero/one fills and diagonal seeding).
type Number interface {
	constraints.Integer | constraints.Float
}

// Matrix is a dense width×height matrix of T stored in row-major order.
//   - width is the x-dimension (columns), height the y-dimension (rows).
//   - data holds width*height elements; element (x,y) lives at y*width + x.
//
// A Matrix exclusively owns its buffer. Every constructor and every derived
// operation (Reduce, Add, Mul, Transpose, ...) allocates a fresh buffer, so
// two matrices never alias. Use Clone to copy and Move to hand the buffer
// over without copying.
//
// Complexity notes: all accessors are O(1) except Clone/Elements (O(w*h)).
type Matrix[T Number] struct {
	width, height int // x and y dimensions (>= 0)
	data          []T // row-major storage, len == width*height
}
