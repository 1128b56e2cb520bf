// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and nil checks.
//  - Keep kernels minimal by delegating guards here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether m is nil, including a typed nil pointer stored in the
// interface (e.g. (*Dense)(nil)) and a ParallelDense wrapping no Dense, which
// would otherwise panic on first use.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	if p, ok := m.(*ParallelDense); ok {
		return p == nil || p.Dense == nil
	}
	v := reflect.ValueOf(m)

	return v.Kind() == reflect.Ptr && v.IsNil()
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Errors: ErrNilMatrix, ErrSizeMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrSizeMismatch
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateRows checks the construction invariants of a row grid:
// at least one row, no nil row, a positive common row length.
// It returns the column count on success.
//
// Error priority: ErrEmptyMatrix -> ErrNilRow -> ErrInvalidDimensions -> ErrRaggedRows.
// Complexity: O(rows).
func ValidateRows(rows [][]int64) (int, error) {
	if len(rows) == 0 {
		return 0, ErrEmptyMatrix
	}
	// Nil rows are reported before any length comparison.
	for i, row := range rows {
		if row == nil {
			return 0, fmt.Errorf("row %d: %w", i, ErrNilRow)
		}
	}
	cols := len(rows[0])
	if cols == 0 {
		return 0, fmt.Errorf("row 0 is empty: %w", ErrInvalidDimensions)
	}
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return 0, fmt.Errorf("row %d has %d elements, want %d: %w", i, len(rows[i]), cols, ErrRaggedRows)
		}
	}

	return cols, nil
}
