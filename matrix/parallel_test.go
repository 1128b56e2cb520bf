// SPDX-License-Identifier: MIT

// Package matrix_test verifies the row-partitioned parallel product:
// agreement with the sequential kernel, bounded concurrency, output order,
// failure propagation and the absence of leaked goroutines.
package matrix_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/katalvlaran/intmat/matrix"
	"github.com/stretchr/testify/require"
)

var errRowBoom = errors.New("row boom")

func TestMulParallel_KnownProduct(t *testing.T) {
	t.Parallel()
	a := MustDense(t, [][]int64{{2, 3, 4}, {1, 0, 0}})
	b := MustDense(t, [][]int64{{0, 1000}, {1, 100}, {0, 10}})

	got, err := matrix.MulParallel(a, b, matrix.WithWorkers(2))
	require.NoError(t, err)
	require.Equal(t, [][]int64{{3, 2340}, {0, 1000}}, got.ToRows())
}

// TestMulParallel_MatchesSequential compares both kernels across shapes and pool sizes.
func TestMulParallel_MatchesSequential(t *testing.T) {
	t.Parallel()
	shapes := [][3]int{{1, 1, 1}, {1, 5, 1}, {7, 1, 3}, {16, 9, 4}, {33, 17, 21}}
	for _, s := range shapes {
		for _, w := range []int{1, 2, 5, 64} {
			t.Run(fmt.Sprintf("%dx%dx%d/w=%d", s[0], s[1], s[2], w), func(t *testing.T) {
				a := RandomDense(s[0], s[1], int64(s[0]*31+s[1]))
				b := RandomDense(s[1], s[2], int64(s[2]*17+s[1]))

				seq, err := matrix.Mul(a, b)
				require.NoError(t, err)
				par, err := matrix.MulParallel(a, b, matrix.WithWorkers(w))
				require.NoError(t, err)
				RequireEqual(t, seq, par)

				// generic operands take the same path after materialization
				par, err = matrix.MulParallel(hide{a}, hide{b}, matrix.WithWorkers(w))
				require.NoError(t, err)
				RequireEqual(t, seq, par)
			})
		}
	}
}

// TestMulParallel_Large runs a 500×500 product with a small, fixed pool.
func TestMulParallel_Large(t *testing.T) {
	if testing.Short() {
		t.Skip("large product skipped in -short mode")
	}
	t.Parallel()
	const n = 500
	a := RandomDense(n, n, 11)
	b := RandomDense(n, n, 12)

	var active, peak atomic.Int64
	hook := matrix.WithRowHook_TestOnly(func(int) error {
		cur := active.Add(1)
		for {
			old := peak.Load()
			if cur <= old || peak.CompareAndSwap(old, cur) {
				break
			}
		}
		active.Add(-1)
		return nil
	})

	par, err := matrix.MulParallel(a, b, matrix.WithWorkers(4), hook)
	require.NoError(t, err)
	require.Equal(t, n, par.Rows())
	require.Equal(t, n, par.Cols())
	require.LessOrEqual(t, peak.Load(), int64(4))

	seq, err := matrix.Mul(a, b)
	require.NoError(t, err)
	RequireEqual(t, seq, par)
}

// TestMulParallel_BoundedConcurrency holds every unit long enough for the
// pool to saturate and checks the observed peak never exceeds the bound.
func TestMulParallel_BoundedConcurrency(t *testing.T) {
	t.Parallel()
	const workers = 3
	a := RandomDense(24, 4, 1)
	b := RandomDense(4, 4, 2)

	var active, peak atomic.Int64
	hook := matrix.WithRowHook_TestOnly(func(int) error {
		cur := active.Add(1)
		defer active.Add(-1)
		for {
			old := peak.Load()
			if cur <= old || peak.CompareAndSwap(old, cur) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		return nil
	})

	_, err := matrix.MulParallel(a, b, matrix.WithWorkers(workers), hook)
	require.NoError(t, err)
	require.LessOrEqual(t, peak.Load(), int64(workers))
	require.GreaterOrEqual(t, peak.Load(), int64(1))
}

// TestMulParallel_PreservesOrder makes early rows finish last.
func TestMulParallel_PreservesOrder(t *testing.T) {
	t.Parallel()
	const rows = 8
	a := RandomDense(rows, 3, 5)
	b := RandomDense(3, 2, 6)

	hook := matrix.WithRowHook_TestOnly(func(row int) error {
		time.Sleep(time.Duration(rows-row) * time.Millisecond)
		return nil
	})

	par, err := matrix.MulParallel(a, b, matrix.WithWorkers(rows), hook)
	require.NoError(t, err)
	seq, err := matrix.Mul(a, b)
	require.NoError(t, err)
	RequireEqual(t, seq, par)
}

// TestMulParallel_DimensionMismatchDispatchesNothing ensures validation precedes work.
func TestMulParallel_DimensionMismatchDispatchesNothing(t *testing.T) {
	t.Parallel()
	a := MustDense(t, [][]int64{{1, 2}, {3, 4}})
	b := MustDense(t, [][]int64{{1, 2, 3}})

	var calls atomic.Int64
	hook := matrix.WithRowHook_TestOnly(func(int) error {
		calls.Add(1)
		return nil
	})

	_, err := matrix.MulParallel(a, b, hook)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.NotErrorIs(t, err, matrix.ErrWorkerFailed)
	require.Zero(t, calls.Load())

	_, err = matrix.MulParallel(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulParallel_WorkerError ensures a failing unit fails the whole call.
func TestMulParallel_WorkerError(t *testing.T) {
	t.Parallel()
	a := RandomDense(10, 3, 1)
	b := RandomDense(3, 3, 2)

	hook := matrix.WithRowHook_TestOnly(func(row int) error {
		if row == 4 {
			return errRowBoom
		}
		return nil
	})

	res, err := matrix.MulParallel(a, b, matrix.WithWorkers(2), hook)
	require.Nil(t, res) // never a partial matrix
	require.ErrorIs(t, err, matrix.ErrWorkerFailed)
	require.ErrorIs(t, err, errRowBoom)
	require.Contains(t, err.Error(), "row 4")
}

// TestMulParallel_WorkerPanic ensures a panicking unit is reported, not re-raised.
func TestMulParallel_WorkerPanic(t *testing.T) {
	t.Parallel()
	a := RandomDense(6, 2, 3)
	b := RandomDense(2, 2, 4)

	hook := matrix.WithRowHook_TestOnly(func(row int) error {
		if row == 0 {
			panic("kaboom")
		}
		return nil
	})

	var (
		res *matrix.Dense
		err error
	)
	require.NotPanics(t, func() {
		res, err = matrix.MulParallel(a, b, matrix.WithWorkers(3), hook)
	})
	require.Nil(t, res)
	require.ErrorIs(t, err, matrix.ErrWorkerFailed)
	require.Contains(t, err.Error(), "kaboom")
}

// logRecords decodes the JSON lines written by a slog.JSONHandler.
func logRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		rec := map[string]any{}
		require.NoError(t, dec.Decode(&rec))
		out = append(out, rec)
	}

	return out
}

// TestMulParallel_LoggerCountsEveryFailedRow holds all units at a barrier so
// every row fails, then checks the warn record and the combined error.
func TestMulParallel_LoggerCountsEveryFailedRow(t *testing.T) {
	t.Parallel()
	const rows = 4
	a := RandomDense(rows, 1, 1)
	b := RandomDense(1, 1, 2)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var barrier sync.WaitGroup
	barrier.Add(rows)
	hook := matrix.WithRowHook_TestOnly(func(row int) error {
		barrier.Done()
		barrier.Wait() // all units are past the cancellation check
		return fmt.Errorf("boom %d", row)
	})

	res, err := matrix.MulParallel(a, b, matrix.WithWorkers(rows), matrix.WithLogger(logger), hook)
	require.Nil(t, res)
	require.ErrorIs(t, err, matrix.ErrWorkerFailed)
	require.Contains(t, err.Error(), "row 0: boom 0; row 1: boom 1; row 2: boom 2; row 3: boom 3")

	recs := logRecords(t, &buf)
	require.Len(t, recs, 2)
	require.Equal(t, "parallel multiply started", recs[0]["msg"])
	require.Equal(t, float64(rows), recs[0]["workers"])
	require.Equal(t, "WARN", recs[1]["level"])
	require.Equal(t, "parallel multiply failed", recs[1]["msg"])
	require.Equal(t, float64(rows), recs[1]["failed_rows"])
}

// TestMulParallel_LoggerSuccess checks the start and finish records.
func TestMulParallel_LoggerSuccess(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := matrix.MulParallel(RandomDense(3, 2, 1), RandomDense(2, 5, 2),
		matrix.WithWorkers(2), matrix.WithLogger(logger))
	require.NoError(t, err)

	recs := logRecords(t, &buf)
	require.Len(t, recs, 2)
	require.Equal(t, "parallel multiply started", recs[0]["msg"])
	require.Equal(t, "parallel multiply finished", recs[1]["msg"])
	require.Equal(t, float64(3), recs[1]["rows"])
	require.Equal(t, float64(5), recs[1]["cols"])
}

// TestMulParallel_NoLeakedGoroutines checks the pool is fully drained on
// both the success and the failure path. Not parallel: it reads the global
// goroutine count.
func TestMulParallel_NoLeakedGoroutines(t *testing.T) {
	a := RandomDense(64, 8, 1)
	b := RandomDense(8, 8, 2)
	failing := matrix.WithRowHook_TestOnly(func(row int) error {
		if row%7 == 3 {
			return errRowBoom
		}
		return nil
	})

	before := runtime.NumGoroutine()
	for i := 0; i < 20; i++ {
		_, err := matrix.MulParallel(a, b, matrix.WithWorkers(8))
		require.NoError(t, err)
		_, err = matrix.MulParallel(a, b, matrix.WithWorkers(8), failing)
		require.ErrorIs(t, err, matrix.ErrWorkerFailed)
	}

	require.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before
	}, time.Second, 10*time.Millisecond)
}

// TestParallelDense_Embedding checks the wrapper behaves as a Dense everywhere.
func TestParallelDense_Embedding(t *testing.T) {
	t.Parallel()
	p, err := matrix.NewParallel([][]int64{{1, 2}, {3, 4}}, matrix.WithWorkers(2))
	require.NoError(t, err)

	var m matrix.Matrix = p
	require.Equal(t, 2, m.Rows())
	require.Equal(t, int64(4), MustAt(t, m, 1, 1))

	sum, err := matrix.Add(p, p)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{2, 4}, {6, 8}}, sum.ToRows())

	prod, err := p.Mul(MustDense(t, [][]int64{{1}, {1}}))
	require.NoError(t, err)
	require.Equal(t, [][]int64{{3}, {7}}, prod.ToRows())

	_, err = matrix.NewParallel([][]int64{{1}, {2, 3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

// TestParallelize_NilDense ensures an empty wrapper is rejected, not dereferenced.
func TestParallelize_NilDense(t *testing.T) {
	t.Parallel()
	empty := matrix.Parallelize(nil, matrix.WithWorkers(2))
	x := MustDense(t, [][]int64{{1, 2}, {3, 4}})

	_, err := matrix.Add(empty, x)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Add(x, empty)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(x, empty)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.MulParallel(empty, x)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = empty.Mul(x)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Scale(empty, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Transpose(empty)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Clone(empty)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Error(t, matrix.ValidateNotNil(empty))
	require.False(t, x.SameShape(empty))
}
