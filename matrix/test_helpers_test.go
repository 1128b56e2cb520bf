// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels and builders.
//   • Keep generated values small so products stay far from int64 overflow
//     unless a test asks for it.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/intmat/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their generic (At-based) path.
type hide struct{ matrix.Matrix }

// errAt is returned by faulty.At.
var errAt = errors.New("faulty: read failed")

// faulty is a foreign Matrix whose At fails at one coordinate.
type faulty struct {
	r, c       int
	badI, badJ int
}

func (f faulty) Rows() int { return f.r }
func (f faulty) Cols() int { return f.c }
func (f faulty) At(i, j int) (int64, error) {
	if i == f.badI && j == f.badJ {
		return 0, errAt
	}
	return int64(i + j), nil
}

// MustDense builds a *Dense from rows or fails the test.
func MustDense(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) int64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomRows returns an r×c grid of reproducible values in [-bound, bound].
func RandomRows(r, c int, seed, bound int64) [][]int64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int64, r)
	for i := range rows {
		rows[i] = make([]int64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Int63n(2*bound+1) - bound
		}
	}

	return rows
}

// RandomDense is RandomRows wrapped into a *Dense; panics are impossible for r,c >= 1.
func RandomDense(r, c int, seed int64) *matrix.Dense {
	m, err := matrix.NewDense(RandomRows(r, c, seed, 1000))
	if err != nil {
		panic(err)
	}

	return m
}

// RequireEqual asserts element-wise equality with a readable diff on failure.
func RequireEqual(t testing.TB, want, got *matrix.Dense) {
	t.Helper()
	require.NotNil(t, got)
	require.Truef(t, want.Equal(got), "want:\n%s\ngot:\n%s", want, got)
}
