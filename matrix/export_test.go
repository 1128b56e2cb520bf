// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (white-box) for the parallel product.
//
// Purpose:
//   - Expose the unexported rowHook seam and the dot kernel to matrix_test ONLY.
//   - Compiled only with `go test`; invisible in production builds.

// WithRowHook_TestOnly installs fn to run inside a worker before each row.
// A non-nil error (or a panic) from fn fails that row.
func WithRowHook_TestOnly(fn func(row int) error) Option {
	return func(o *Options) { o.rowHook = fn }
}

// Dot_TestOnly forwards to the private dot kernel.
func Dot_TestOnly(a, b []int64) int64 { return dot(a, b) }

// PanicWorkersInvalid_TestOnly avoids a magic string in option tests.
const PanicWorkersInvalid_TestOnly = panicWorkersInvalid
