// Package intmat is a small integer matrix algebra toolkit: immutable dense
// int64 matrices, an incremental row builder, a row-partitioned parallel
// product and a YAML file format, plus a command-line front end.
//
// What is inside?
//
//	matrix/         Dense, Builder, Add, Scale, Transpose, Mul, MulParallel
//	matrixio/       YAML codec: rows: [[1, 2], [3, 4]]
//	geometry/       Point, Segment, Rectangle value objects
//	internal/cli    cobra commands: add, mul, transpose, scale, bench
//	internal/config viper-backed configuration (.intmat.yaml, INTMAT_*)
//	cmd/intmat/     the intmat binary
//
// Guarantees:
//
//   - Matrices are immutable; every operation returns a new matrix.
//   - Shape errors are values (errors.Is-matchable sentinels), never panics.
//   - MulParallel runs on a pool bounded by configuration, not by input size,
//     and leaves no goroutine behind.
//
// Quick example:
//
//	a, _ := matrix.NewDense([][]int64{{2, 3, 4}, {1, 0, 0}})
//	b, _ := matrix.NewDense([][]int64{{0, 1000}, {1, 100}, {0, 10}})
//	c, _ := matrix.MulParallel(a, b, matrix.WithWorkers(4))
//	fmt.Print(c) // [3, 2340]
//	             // [0, 1000]
//
//	go install github.com/katalvlaran/intmat/cmd/intmat@latest
package intmat
