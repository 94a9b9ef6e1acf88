// SPDX-License-Identifier: MIT

// Package matrix - Gauss–Jordan row reduction.
//
// Purpose:
//   - Drive a copy of a matrix to reduced row-echelon form with the elementary
//     row operations of impl_rows.go only.
//   - Treat the last column as the augmented right-hand side: it is updated by
//     row combinations but never searched for a pivot.
//
// Determinism:
//   - Columns are scanned left to right, rows top to bottom; the first nonzero
//     entry becomes the pivot (no magnitude-based partial pivoting).
//
// Complexity:
//   - Time O(h²·w), Space O(w*h) for the result plus O(w) per row operation.

package matrix

// StepKind names an elementary operation performed by Reduce.
type StepKind uint8

const (
	// StepSwap exchanges the pivot row with a row below it.
	StepSwap StepKind = iota + 1
	// StepNormalize divides the pivot row by its pivot entry.
	StepNormalize
	// StepEliminate adds a multiple of the pivot row to another row.
	StepEliminate
)

// String implements fmt.Stringer.
func (k StepKind) String() string {
	switch k {
	case StepSwap:
		return "swap"
	case StepNormalize:
		return "normalize"
	case StepEliminate:
		return "eliminate"
	default:
		return "unknown"
	}
}

// Step describes one elementary operation of Reduce, as seen by a hook
// installed with WithStepHook.
type Step struct {
	Kind  StepKind
	Row   int     // row being modified
	Other int     // swap partner (StepSwap) or pivot row (StepEliminate); -1 for StepNormalize
	Pivot int     // pivot column
	Value float64 // divisor (StepNormalize) or multiplier (StepEliminate); 0 for StepSwap
}

// Reduce returns a new matrix holding the reduced row-echelon form of m.
// MAIN DESCRIPTION:
//   - Gauss–Jordan elimination over a private copy; the receiver is untouched.
//
// Implementation (one iteration per output row r, pivot column starts at 0):
//   - Stage 1: stop when the pivot column reaches Width()-1 (the augmented column).
//   - Stage 2: find the first row i >= r with a nonzero entry in the pivot
//     column; an all-zero column is skipped without consuming a row.
//   - Stage 3: swap rows i and r when they differ.
//   - Stage 4: divide row r by its pivot entry.
//   - Stage 5: for every other row (above and below), add -(its pivot entry)
//     times row r, zeroing the pivot column outside row r.
//   - Stage 6: advance the pivot column.
//
// Behavior highlights:
//   - All-zero input comes back unchanged; rank-deficient input leaves
//     trailing zero rows; Width() <= 1 reduces trivially.
//   - Pivots are compared against exact zero, so ill-conditioned inputs may
//     pick tiny pivots. This is accepted behavior.
//   - A nil receiver reduces to nil.
//
// Options:
//   - WithStepHook observes every swap/normalize/eliminate.
//
// Complexity:
//   - Time O(h²·w), Space O(w*h).
func (m *Matrix[T]) Reduce(opts ...Option) *Matrix[T] {
	if m == nil {
		return nil
	}
	o := gatherOptions(opts...)
	out := m.Clone()
	out.reduceInPlace(&o)

	return out
}

// CoefficientRank returns the number of pivots Reduce finds, i.e. the rank
// of m without its last (augmented) column. It is 0 for nil.
func (m *Matrix[T]) CoefficientRank() int {
	if m == nil {
		return 0
	}
	o := gatherOptions()

	return m.Clone().reduceInPlace(&o)
}

// reduceInPlace runs the elimination on m itself and returns the number of
// pivot rows produced.
func (m *Matrix[T]) reduceInPlace(o *Options) int {
	var (
		r, i, pivot int
		found       bool
		coeff       float64
		val         T
	)
	for r = 0; r < m.height; r++ {
		i, pivot, found = m.findPivot(r, pivot)
		if !found {
			return r // pivot columns exhausted
		}

		if i != r {
			m.swapRow(i, r)
			o.emit(Step{Kind: StepSwap, Row: r, Other: i, Pivot: pivot})
		}

		coeff = float64(m.at(pivot, r))
		m.normalizeRow(r, coeff)
		o.emit(Step{Kind: StepNormalize, Row: r, Other: -1, Pivot: pivot, Value: coeff})

		for i = 0; i < m.height; i++ {
			if i == r {
				continue
			}
			val = -m.at(pivot, i)
			m.multAddRows(i, r, val)
			o.emit(Step{Kind: StepEliminate, Row: i, Other: r, Pivot: pivot, Value: float64(val)})
		}
		pivot++
	}

	return m.height
}

// findPivot scans columns pivot, pivot+1, ..., Width()-2 and, in each,
// rows r..Height()-1 for the first nonzero entry. It returns that row and
// column, or found == false once the pivot columns are exhausted.
func (m *Matrix[T]) findPivot(r, pivot int) (row, col int, found bool) {
	var i int
	for ; pivot < m.width-1; pivot++ {
		for i = r; i < m.height; i++ {
			if m.at(pivot, i) != 0 {
				return i, pivot, true
			}
		}
	}

	return r, pivot, false
}
