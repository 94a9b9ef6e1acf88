// Package libmatrix is a small dense-matrix toolkit for solving linear
// systems by row reduction.
//
// What is in the box:
//
//   - matrix/   : Matrix[T] storage, row operations, Gauss–Jordan Reduce,
//     arithmetic (Add, Sub, Scale, Mul, Transpose, Equal), a plain-text
//     stream codec and gonum converters
//   - examples/ : runnable programs
//
// Why libmatrix?
//
//   - Generic over any integer or float element type
//   - Value semantics: every operation returns a fresh matrix, nothing aliases
//   - Safe surface: bad indices return errors, never corrupt memory
//
// Quick ASCII example (augmented matrix of a 2×2 system):
//
//	[ 1  1 |  3 ]          [ 1  0 | 1 ]
//	[ 1 -1 | -1 ]  Reduce  [ 0  1 | 2 ]
//
//	go get github.com/katalvlaran/libmatrix/matrix
package libmatrix
