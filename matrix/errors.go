// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines the package-level sentinel errors used across the matrix
// package plus the single typed error (UndefinedBehaviorError) returned by
// Mul. Tests MUST check sentinels via errors.Is. No exported function panics
// on user-triggered error conditions, a nil *Matrix included: calls with an
// error return report ErrNilMatrix, the others return nil or zero.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached at the detection site with
// fmt.Errorf("ctx: %w", ErrX); callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	// Zero-sized shapes (0×0, 0×N, N×0) are legal.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/StoreAt/Row/...) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes, Mul where a.width != b.height, or a
	// row slice whose length differs from the matrix width.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRaggedRows signals a nested literal whose rows have different lengths.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUndefinedBehavior is the class of UndefinedBehaviorError.
	ErrUndefinedBehavior = errors.New("matrix: undefined behavior")

	// ErrMalformedInput is returned by the stream codec on truncated input or
	// on a token that does not parse as the element type.
	ErrMalformedInput = errors.New("matrix: malformed input")

	// ErrTooLarge is returned by the stream codec when the declared shape
	// exceeds the configured element limit (see WithMaxElements).
	ErrTooLarge = errors.New("matrix: matrix too large")
)

// UndefinedBehaviorError reports an operation that has no defined result for
// its operands, together with a human-readable context.
// It matches ErrUndefinedBehavior and ErrDimensionMismatch via errors.Is.
type UndefinedBehaviorError struct {
	Op      string // operation tag, e.g. "Mul"
	Context string // what went wrong, e.g. "cannot multiply given matrices"
}

// Error implements error.
func (e *UndefinedBehaviorError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrUndefinedBehavior, e.Context)
}

// Is reports whether target is one of the sentinels this error belongs to.
func (e *UndefinedBehaviorError) Is(target error) bool {
	return target == ErrUndefinedBehavior || target == ErrDimensionMismatch
}

// Why returns the context string.
func (e *UndefinedBehaviorError) Why() string { return e.Context }
