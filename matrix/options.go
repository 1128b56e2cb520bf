// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the parallel product.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves derived values.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Bounded resources: the worker count never depends on the input size.
package matrix

import (
	"log/slog"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

// DefaultWorkers selects the pool size when WithWorkers is not given.
// 0 ⇒ runtime.GOMAXPROCS(0), read once per MulParallel call.
const DefaultWorkers = 0

// ---------- Internal panic messages (no magic strings) ----------

const panicWorkersInvalid = "matrix: WithWorkers: workers must be >= 1"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	workers int          // >= 1 after gatherOptions
	logger  *slog.Logger // nil ⇒ silent

	// rowHook runs inside a worker before row i is computed. Test-only seam
	// (see export_test.go) used to observe concurrency and inject failures.
	rowHook func(row int) error
}

// WithWorkers fixes the number of concurrent workers of MulParallel.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger routes MulParallel lifecycle records (start, finish, failure)
// to l at debug/warn level. A nil logger disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user setters on top of defaults and resolves the
// worker count.
func gatherOptions(user ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}

// Workers reports the worker count the given options resolve to.
func Workers(opts ...Option) int {
	return gatherOptions(opts...).workers
}
