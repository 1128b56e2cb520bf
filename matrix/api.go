// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points with intention-revealing names.
//   - Each facade delegates to the canonical kernel; no logic lives here.

package matrix

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Product is an alias for Mul: sequential matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// ProductParallel is an alias for MulParallel.
func ProductParallel(a, b Matrix, opts ...Option) (*Dense, error) { return MulParallel(a, b, opts...) }

// ScaleBy is an alias for Scale: k*m.
func ScaleBy(m Matrix, k int64) (*Dense, error) { return Scale(m, k) }

// TransposeOf is an alias for Transpose.
func TransposeOf(m Matrix) (*Dense, error) { return Transpose(m) }

// Clone returns an independent *Dense holding the same elements as m.
// For a *Dense input this is a deep copy of the buffer.
func Clone(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opClone, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opClone, err)
	}
	cp := newDense(d.r, d.c)
	copy(cp.data, d.data)

	return cp, nil
}
