// SPDX-License-Identifier: MIT

// Package matrixio reads and writes matrices as YAML documents of the form
//
//	rows: [[1, 2], [3, 4]]
//
// Decoding builds the matrix through matrix.NewDense, so every construction
// error of the matrix package (ErrEmptyMatrix, ErrNilRow, ErrRaggedRows,
// ErrInvalidDimensions) passes through unchanged and stays matchable with
// errors.Is. Malformed YAML is reported as ErrDecode.
package matrixio
