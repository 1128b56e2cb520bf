// SPDX-License-Identifier: MIT
// Package matrix - row-partitioned parallel product.
//
// Protocol of MulParallel (A is r×n, B is n×c):
//   - Stage 1: validate A.Cols == B.Rows; on mismatch nothing is dispatched.
//   - Stage 2: one unit of work per output row i; unit i reads only row i of A
//     and Bᵀ, both immutable, so no locks are taken.
//   - Stage 3: units run on a bounded pool (conc/pool) created for this call
//     only. The pool size comes from Options and never from r.
//   - Stage 4: unit i writes exclusively to results[i]; completion order is
//     irrelevant to the output order.
//   - Stage 5: the pool is drained by Wait, then the calling goroutine feeds
//     results[0..r) to a Builder in index order.
//
// Failure policy:
//   - The first unit error or panic cancels the remaining units. Unit i
//     records its failure in errs[i]; after Wait the coordinator combines
//     errs in row order (multierr) and wraps the result in ErrWorkerFailed.
//     A failed call never returns a partially filled matrix.

package matrix

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/multierr"
)

// ParallelDense is a Dense whose Mul runs on a bounded worker pool.
// Every other operation is inherited from the embedded *Dense unchanged;
// the products it returns are plain *Dense values.
type ParallelDense struct {
	*Dense
	opts []Option
}

// NewParallel builds a ParallelDense from a grid of rows (copied in).
// Errors: the construction errors of NewDense.
func NewParallel(rows [][]int64, opts ...Option) (*ParallelDense, error) {
	d, err := NewDense(rows)
	if err != nil {
		return nil, err
	}

	return Parallelize(d, opts...), nil
}

// Parallelize wraps an existing matrix. The data is shared, which is safe
// because *Dense is immutable. Wrapping a nil d yields a value the package
// functions reject with ErrNilMatrix.
func Parallelize(d *Dense, opts ...Option) *ParallelDense {
	cp := make([]Option, len(opts))
	copy(cp, opts)

	return &ParallelDense{Dense: d, opts: cp}
}

// Workers reports the pool size this matrix multiplies with.
func (p *ParallelDense) Workers() int { return Workers(p.opts...) }

// Mul returns p × other computed by MulParallel with p's options.
func (p *ParallelDense) Mul(other Matrix) (*Dense, error) {
	return MulParallel(p.Dense, other, p.opts...)
}

// MulParallel performs C = A × B with one unit of work per output row,
// executed by at most Workers(opts...) goroutines. It blocks until every
// unit has finished and no worker outlives the call.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (no work dispatched);
//   - ErrWorkerFailed wrapping every unit failure.
//
// Complexity:
//   - Time O(r*n*c / workers), Space O(r*c + n*c).
func MulParallel(a, b Matrix, opts ...Option) (*Dense, error) {
	da, bt, err := prepareMul(opMulParallel, a, b)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	start := time.Now()
	if o.logger != nil {
		o.logger.Debug("parallel multiply started",
			"rows", da.r, "inner", da.c, "cols", bt.r, "workers", o.workers)
	}

	results := make([][]int64, da.r) // indexed slot per unit
	if err = runRows(da, bt, o, results); err != nil {
		if o.logger != nil {
			o.logger.Warn("parallel multiply failed",
				"failed_rows", len(multierr.Errors(err)), "error", err)
		}
		return nil, matrixErrorf(opMulParallel, fmt.Errorf("%w: %w", ErrWorkerFailed, err))
	}

	// Ordered, single-goroutine assembly.
	builder := NewBuilder()
	for _, row := range results {
		builder.AddRow(row...)
	}
	res, err := builder.Build()
	if err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	if o.logger != nil {
		o.logger.Debug("parallel multiply finished",
			"rows", res.r, "cols", res.c, "elapsed", time.Since(start))
	}

	return res, nil
}

// runRows dispatches one unit per row of da onto a pool scoped to this call.
// Each unit owns one slot of results and one slot of errs; the combined
// errs, in row order, become the result once the pool has drained.
func runRows(da, bt *Dense, o Options, results [][]int64) error {
	errs := make([]error, da.r)
	p := pool.New().
		WithContext(context.Background()).
		WithCancelOnError().
		WithMaxGoroutines(o.workers)

	for i := 0; i < da.r; i++ {
		i := i // per-iteration copy (go.mod targets go 1.21 loop semantics)
		p.Go(func(ctx context.Context) error {
			if ctx.Err() != nil {
				return nil // another unit failed; the call is already lost
			}
			errs[i] = computeRow(i, da, bt, o, results)
			return errs[i]
		})
	}
	_ = p.Wait() // same failures as errs, joined in completion order

	return multierr.Combine(errs...)
}

// computeRow fills results[i] with row i of the product. Panics are
// converted into errors so that they fail the call instead of crashing Wait.
func computeRow(i int, da, bt *Dense, o Options, results [][]int64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("row %d: panic: %v", i, r)
		}
	}()
	if o.rowHook != nil {
		if herr := o.rowHook(i); herr != nil {
			return fmt.Errorf("row %d: %w", i, herr)
		}
	}
	out := make([]int64, bt.r)
	mulRow(out, da.row(i), bt)
	results[i] = out

	return nil
}
