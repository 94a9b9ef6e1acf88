// Package matrix offers a small dense-matrix type with row operations and
// Gauss–Jordan row reduction.
//
// The matrix package provides:
//
//   - Matrix[T], a row-major width×height matrix over any integer or
//     floating-point element type, with bounds-checked At/StoreAt.
//   - Row operations (Row, SaveRow, SwapRow, NormalizeRow, MultAddRows) for
//     manipulating augmented matrices by hand.
//   - Reduce, which returns the reduced row-echelon form of a copy of the
//     matrix. The last column is treated as the right-hand side of a linear
//     system and is never used as a pivot column.
//   - Add, Sub, Scale, Mul, Transpose and Equal, each returning a fresh value.
//   - A whitespace-delimited text codec (WriteTo, ReadFrom, Decode).
//   - Converters to and from gonum's mat package.
//
// Coordinates are (x, y) = (column, row) throughout.
//
// Solving a system:
//
//	// 2a + 2b +  c = 14
//	//  a +  b -  c = -11
//	// 4a + 2b + 3c = 44
//	m, _ := matrix.NewFromRows([][]float64{
//		{2, 2, 1, 14},
//		{1, 1, -1, -11},
//		{4, 2, 3, 44},
//	})
//	r := m.Reduce() // [[1 0 0 3] [0 1 0 -2] [0 0 1 12]]
//
// Matrices are not safe for concurrent mutation; derived values never share
// storage with their operands.
package matrix
