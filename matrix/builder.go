// SPDX-License-Identifier: MIT
// Package matrix - incremental row builder.
//
// Purpose:
//   - Decouple row-by-row accumulation (mutable, transient) from the validated,
//     immutable *Dense it finally produces.
//
// Policy & Contracts:
//   - Insertion order is row order.
//   - AddRow copies its argument; the caller may reuse the slice.
//   - AddRow rejects only absent (nil) rows; length consistency is checked by Build.
//   - Build snapshots the accumulated rows and does not clear them, so a
//     Builder may be finalized repeatedly into independent matrices.
//   - A Builder is not safe for concurrent use.

package matrix

// Builder accumulates rows and finalizes them into an immutable *Dense.
// The zero value is ready to use.
type Builder struct {
	rows [][]int64
	err  error // first AddRow precondition failure; sticky
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddRow appends a copy of values as the next row and returns b for chaining.
// A nil row (including AddRow() with no arguments) is a precondition failure:
// it is not appended, and ErrNilRow is recorded and reported by Err and Build.
// Only the first failure is kept.
func (b *Builder) AddRow(values ...int64) *Builder {
	if values == nil {
		if b.err == nil {
			b.err = matrixErrorf(opAddRow, ErrNilRow)
		}
		return b
	}
	row := make([]int64, len(values))
	copy(row, values)
	b.rows = append(b.rows, row)

	return b
}

// Err returns the first AddRow precondition failure, if any.
func (b *Builder) Err() error { return b.err }

// Len returns the number of accumulated rows.
func (b *Builder) Len() int { return len(b.rows) }

// Build assembles the accumulated rows, in insertion order, into a new *Dense.
// Errors:
//   - the sticky AddRow error, if any;
//   - ErrEmptyMatrix, ErrInvalidDimensions, ErrRaggedRows from construction.
//
// Complexity: O(r*c).
func (b *Builder) Build() (*Dense, error) {
	if b.err != nil {
		return nil, matrixErrorf(opBuild, b.err)
	}
	m, err := NewDense(b.rows)
	if err != nil {
		return nil, matrixErrorf(opBuild, err)
	}

	return m, nil
}

// BuildParallel is Build followed by Parallelize with the given options.
func (b *Builder) BuildParallel(opts ...Option) (*ParallelDense, error) {
	m, err := b.Build()
	if err != nil {
		return nil, err
	}

	return Parallelize(m, opts...), nil
}
