// SPDX-License-Identifier: MIT

// Package matrix: the shape contract shared by every matrix kind.
// This file intentionally contains ONLY the public Matrix interface and the
// compile-time conformance checks. Errors and options live in dedicated
// files (errors.go, options.go).
package matrix

import "fmt"

// Matrix is the read-only contract of a rectangular grid of int64 values.
// Implementations MUST be immutable: the values observed through At never
// change for the lifetime of the value, which is what makes concurrent reads
// from parallel workers safe without locks.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows (>= 1 for valid matrices).
	Rows() int

	// Cols returns the number of columns (>= 1 for valid matrices).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (int64, error)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ Matrix       = (*ParallelDense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)
