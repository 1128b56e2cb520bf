// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee immutability: the buffer is copied in at construction and every
//     accessor copies out, so no two matrices (or a matrix and its caller) alias.
//   - Guarantee safety at the public surface: At/Row/Col return errors instead of panicking.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) copy; At: O(1); Row/Col: O(c)/O(r); Equal/Hash: O(r*c).

package matrix

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an immutable row-major matrix of int64 values.
//   - r,c hold dimensions (rows, cols), both >= 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j),
//     owned exclusively by this value and never handed out.
type Dense struct {
	r, c int
	data []int64
}

// NewDense builds an immutable matrix from a grid of rows.
// Implementation:
//   - Stage 1: validate the grid via ValidateRows (non-empty, no nil row, rectangular).
//   - Stage 2: copy every row into a fresh flat buffer.
//
// Behavior highlights:
//   - The caller keeps ownership of rows; later mutation of rows does not
//     affect the returned matrix.
//
// Errors:
//   - ErrEmptyMatrix, ErrNilRow, ErrInvalidDimensions, ErrRaggedRows (wrapped with "NewDense").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows [][]int64) (*Dense, error) {
	cols, err := ValidateRows(rows)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	m := newDense(len(rows), cols)
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewZeros returns a new zero-initialized r×c matrix.
// Errors: ErrInvalidDimensions when r<=0 or c<=0.
// Complexity: O(r*c) zero-init.
func NewZeros(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opZeros, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}

	return newDense(rows, cols), nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewZeros(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// newDense allocates an r×c zero matrix without validation.
// Callers guarantee r>=1 and c>=1.
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsRowVector reports whether the matrix has exactly one row.
func (m *Dense) IsRowVector() bool { return m.r == 1 }

// IsColumnVector reports whether the matrix has exactly one column.
func (m *Dense) IsColumnVector() bool { return m.c == 1 }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// SameShape reports whether other has exactly the same row and column counts.
// A nil other never has the same shape.
func (m *Dense) SameShape(other Matrix) bool {
	if isNil(other) {
		return false
	}

	return m.r == other.Rows() && m.c == other.Cols()
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(opAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]int64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", opRow, i, ErrOutOfRange)
	}
	out := make([]int64, m.c)
	copy(out, m.row(i))

	return out, nil
}

// Col returns a copy of column j.
// Complexity: O(r).
func (m *Dense) Col(j int) ([]int64, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.%s(%d): %w", opCol, j, ErrOutOfRange)
	}
	out := make([]int64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// ToRows returns the whole grid as freshly allocated rows.
func (m *Dense) ToRows() [][]int64 {
	out := make([][]int64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]int64, m.c)
		copy(out[i], m.row(i))
	}

	return out
}

// row returns the internal slice of row i. Never expose it outside the package.
func (m *Dense) row(i int) []int64 {
	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// Equal reports whether m and other have the same shape and identical elements.
// Equal is reflexive, symmetric and transitive; two nil matrices are equal,
// a nil and a non-nil matrix are not.
// Complexity: O(r*c) worst case, O(1) on shape mismatch.
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m == other {
		return true
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for idx, v := range m.data {
		if other.data[idx] != v {
			return false
		}
	}

	return true
}

// Hash returns a 64-bit FNV-1a digest of the shape and every element in
// row-major order. Equal matrices always hash equally.
// Complexity: O(r*c).
func (m *Dense) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(m.r))
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(m.c))
	_, _ = h.Write(buf[:])
	for _, v := range m.data {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}

// String renders rows as lines with comma-separated values, e.g. "[1, 2]\n[3, 4]\n".
// Intended for diagnostics; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatInt(m.data[base+j], 10))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// asDense returns m itself when it is a *Dense, or materializes a copy
// through At otherwise. Errors from foreign At implementations propagate.
// Complexity: O(1) fast path, O(r*c) fallback.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	if p, ok := m.(*ParallelDense); ok {
		if p == nil || p.Dense == nil {
			return nil, ErrNilMatrix
		}
		return p.Dense, nil
	}
	rows, cols := m.Rows(), m.Cols()
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions)
	}
	out := newDense(rows, cols)
	var (
		i, j int
		v    int64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
