// SPDX-License-Identifier: MIT
// Package matrix provides the algebra over any Matrix implementation:
// element-wise addition, scalar multiplication, transpose and the sequential
// product. All kernels perform strict fail-fast validation, never mutate
// their operands and always return a freshly allocated *Dense.
//
// Determinism:
//   - Fixed loop orders (flat for *Dense, i→j otherwise).
//
// Overflow:
//   - Arithmetic is plain int64 and wraps on overflow (two's complement).
//     It is documented, not guarded.

package matrix

// Add computes the element-wise sum C = A + B.
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: materialize non-*Dense operands, then run a single flat loop.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrSizeMismatch (shape mismatch, message names both shapes).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		if isNil(a) || isNil(b) {
			return nil, matrixErrorf(opAdd, err)
		}
		return nil, shapeErrorf(opAdd, a, b, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	res := newDense(da.r, da.c)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = da.data[idx] + db.data[idx]
	}

	return res, nil
}

// Scale returns a new matrix whose elements are k * m[i,j].
// There is no size constraint; products wrap on int64 overflow.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, k int64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return dm.Scale(k), nil
}

// Transpose returns mᵀ with shape cols×rows and (i,j) = m(j,i).
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return transposeDense(dm), nil
}

// transposeDense is the flat-index transpose kernel shared by Transpose and
// both products: data[i*cols + j] → res.data[j*rows + i].
func transposeDense(m *Dense) *Dense {
	res := newDense(m.c, m.r)
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res
}

// Mul performs the sequential matrix product C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows) before any work.
//   - Stage 2: transpose B once so every column of B becomes a contiguous row.
//   - Stage 3: fill each output row with mulRow, the same kernel MulParallel runs.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (message names both shapes).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c + n*c).
func Mul(a, b Matrix) (*Dense, error) {
	da, bt, err := prepareMul(opMul, a, b)
	if err != nil {
		return nil, err
	}

	res := newDense(da.r, bt.r)
	for i := 0; i < da.r; i++ {
		mulRow(res.row(i), da.row(i), bt)
	}

	return res, nil
}

// prepareMul validates a product and returns A as *Dense together with Bᵀ.
func prepareMul(tag string, a, b Matrix) (*Dense, *Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		if isNil(a) || isNil(b) {
			return nil, nil, matrixErrorf(tag, err)
		}
		return nil, nil, shapeErrorf(tag, a, b, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}

	return da, transposeDense(db), nil
}

// mulRow writes row × Bᵀ into dst: dst[j] = dot(row, column j of B).
// dst must have length bt.r and row length bt.c.
func mulRow(dst, row []int64, bt *Dense) {
	for j := range dst {
		dst[j] = dot(row, bt.row(j))
	}
}

// dot returns Σ a[k]*b[k]. It is the single dot-product routine of the
// package; both the sequential and the parallel product go through it.
// Callers guarantee len(a) == len(b).
func dot(a, b []int64) int64 {
	var sum int64
	for k, av := range a {
		sum += av * b[k]
	}

	return sum
}

// Equal compares two arbitrary matrices element-wise.
// Returns (false, nil) on shape mismatch and an error only for nil operands
// or failing At calls of foreign implementations.
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}

	return da.Equal(db), nil
}

// ---------- Dense methods (thin delegates to the kernels above) ----------

// Add returns m + other. See Add.
func (m *Dense) Add(other Matrix) (*Dense, error) { return Add(m, other) }

// Scale returns k*m. It cannot fail on a valid receiver.
func (m *Dense) Scale(k int64) *Dense {
	res := newDense(m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = v * k
	}

	return res
}

// T returns mᵀ.
func (m *Dense) T() *Dense { return transposeDense(m) }

// Mul returns the sequential product m × other. See Mul.
func (m *Dense) Mul(other Matrix) (*Dense, error) { return Mul(m, other) }
