// Package matrix implements immutable dense matrices of int64 values and the
// algebra over them: addition, scalar multiplication, transpose and the
// matrix product, sequential or row-parallel.
//
// The package provides:
//
//   - Matrix, the read-only shape contract (Rows, Cols, At) every kernel accepts.
//   - Dense, a row-major implementation that copies data in at construction
//     and out on every accessor, so matrices never alias each other.
//   - Builder, a mutable row accumulator that finalizes into a validated Dense.
//   - ParallelDense and MulParallel, a product that computes one output row
//     per unit of work on a bounded worker pool scoped to the call.
//
// All operations return new matrices; operands are never mutated. Errors are
// sentinels (ErrRaggedRows, ErrSizeMismatch, ErrDimensionMismatch,
// ErrWorkerFailed, ...) wrapped with the operation name; match them with
// errors.Is.
//
// Arithmetic is plain int64 and wraps on overflow.
package matrix
