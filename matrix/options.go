// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy and pivoting.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the one tolerance used for zero-pivot detection.
	// Solver packages reuse it for optimality and integrality checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultWorkers is the number of goroutines used by ParallelApply and the
	// pivot kernel. 1 means sequential.
	DefaultWorkers = 1

	// parallelMinCells is the smallest matrix for which workers>1 actually
	// fans out; below it the goroutine overhead dominates.
	parallelMinCells = 4096
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicWorkersInvalid = "matrix: WithWorkers: workers must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	workers        int     // >= 1; DefaultWorkers
}

// WithEpsilon sets the pivot tolerance: |a[r][c]| <= eps is degenerate.
// Panics when eps is NaN, Inf or negative.
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// The flag propagates only to matrices created by the call it is passed to.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithWorkers sets the number of goroutines used for per-cell maps.
// Panics when workers < 1.
//
// Complexity: O(1).
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		workers:        DefaultWorkers,
	}
}

// gatherOptions applies opts in order (later overrides earlier).
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Epsilon exposes the effective tolerance for callers composing options.
func (o Options) Epsilon() float64 { return o.eps }

// Workers exposes the effective worker count.
func (o Options) Workers() int { return o.workers }

// NewOptions resolves opts into an Options value (read-only for callers).
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }
