// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is. No public function
// panics on user-triggered error conditions; option constructors are the only
// exception (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Kernels wrap with matrixErrorf(tag, err) so callers see "Mul: ...: matrix: ..."
// and still match with errors.Is.
//
// ERROR PRIORITY (enforced in NewDense and tests):
// nil input -> empty grid -> nil row -> empty row -> ragged rows.

// Construction errors: the grid handed to a constructor or builder is malformed.
var (
	// ErrEmptyMatrix is returned when a grid has no rows at all.
	ErrEmptyMatrix = errors.New("matrix: matrix should have at least one row")

	// ErrNilRow is returned when a row is absent (nil slice), either inside a
	// grid or as a Builder.AddRow argument.
	ErrNilRow = errors.New("matrix: row should not be nil")

	// ErrRaggedRows is returned when rows do not share the same length.
	ErrRaggedRows = errors.New("matrix: all rows should have the same length")

	// ErrInvalidDimensions indicates a non-positive row or column count,
	// including a grid whose rows are empty.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)

// Operation errors: operands are valid matrices but cannot be combined.
var (
	// ErrSizeMismatch indicates operands of different shapes in an
	// element-wise operation (Add and friends).
	ErrSizeMismatch = errors.New("matrix: matrices have different sizes")

	// ErrDimensionMismatch indicates a.Cols != b.Rows in a product.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// ErrWorkerFailed reports that at least one row computation of a parallel
// product failed or panicked. The concrete causes are wrapped alongside it.
var ErrWorkerFailed = errors.New("matrix: parallel worker failed")

// Operation name constants for unified error wrapping.
const (
	opNew         = "NewDense"
	opZeros       = "NewZeros"
	opBuild       = "Builder.Build"
	opAddRow      = "Builder.AddRow"
	opAdd         = "Add"
	opMul         = "Mul"
	opMulParallel = "MulParallel"
	opScale       = "Scale"
	opTranspose   = "Transpose"
	opEqual       = "Equal"
	opClone       = "Clone"
	opRow         = "Row"
	opCol         = "Col"
	opAt          = "At"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf wraps a binary-operation sentinel with both operand shapes,
// e.g. "Mul: 2x3 × 2x2: matrix: dimension mismatch".
func shapeErrorf(tag string, a, b Matrix, err error) error {
	return fmt.Errorf("%s: %dx%d × %dx%d: %w", tag, a.Rows(), a.Cols(), b.Rows(), b.Cols(), err)
}
