// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/intmat/matrix"
	"github.com/spf13/cobra"
)

// Element range of generated benchmark matrices: [benchMin, benchMax).
const (
	benchMin = -100_000
	benchMax = 100_000
)

// errBenchMismatch means the two products disagree; it indicates a bug.
var errBenchMismatch = errors.New("bench: sequential and parallel products differ")

// benchReport is the outcome of one benchmark run.
type benchReport struct {
	Size       int
	Workers    int
	Sequential time.Duration
	Parallel   time.Duration
	Corner     int64 // C(0,0)
	Middle     int64 // C(n/2,n/2)
}

func (a *app) newBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the sequential and parallel products of a random N×N matrix",
		Long: `bench fills an N×N matrix with reproducible values in [-100000, 100000),
squares it with the sequential and the parallel kernel, checks that both
products are equal and prints C(0,0), the middle element and both timings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := a.runBench(a.cfg.Bench.Size, a.cfg.Bench.Seed)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			mid := rep.Size / 2
			fmt.Fprintf(out, "size:       %dx%d\n", rep.Size, rep.Size)
			fmt.Fprintf(out, "C(0,0):     %d\n", rep.Corner)
			fmt.Fprintf(out, "C(%d,%d):   %d\n", mid, mid, rep.Middle)
			fmt.Fprintf(out, "sequential: %s\n", rep.Sequential)
			fmt.Fprintf(out, "parallel:   %s (%d workers)\n", rep.Parallel, rep.Workers)
			return nil
		},
	}
	cmd.Flags().Int("size", 0, "matrix dimension N (default from config, 1000)")
	cmd.Flags().Int64("seed", 0, "random seed (default from config, 1)")

	return cmd
}

// runBench builds the operand through a Builder, multiplies it by itself with
// both kernels and cross-checks the results.
func (a *app) runBench(n int, seed int64) (*benchReport, error) {
	rng := rand.New(rand.NewSource(seed))
	b := matrix.NewBuilder()
	row := make([]int64, n)
	for i := 0; i < n; i++ {
		for j := range row {
			row[j] = benchMin + rng.Int63n(benchMax-benchMin)
		}
		b.AddRow(row...)
	}
	opts := a.matrixOptions()
	m, err := b.BuildParallel(opts...)
	if err != nil {
		return nil, err
	}
	a.logger.Info("benchmark started", "size", n, "seed", seed, "workers", m.Workers())

	start := time.Now()
	seq, err := matrix.Mul(m.Dense, m.Dense)
	if err != nil {
		return nil, err
	}
	seqTime := time.Since(start)

	start = time.Now()
	par, err := m.Mul(m)
	if err != nil {
		return nil, err
	}
	parTime := time.Since(start)

	if !seq.Equal(par) {
		return nil, errBenchMismatch
	}
	corner, err := par.At(0, 0)
	if err != nil {
		return nil, err
	}
	middle, err := par.At(n/2, n/2)
	if err != nil {
		return nil, err
	}
	a.logger.Info("benchmark finished", "sequential", seqTime, "parallel", parTime)

	return &benchReport{
		Size:       n,
		Workers:    m.Workers(),
		Sequential: seqTime,
		Parallel:   parTime,
		Corner:     corner,
		Middle:     middle,
	}, nil
}
