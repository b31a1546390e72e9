// SPDX-License-Identifier: MIT

// Package lu: functional configuration for the factorizers. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - No global state: every Factorizer owns a resolved Options value.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package lu

import (
	"runtime"

	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

// DefaultWorkers means "use runtime.GOMAXPROCS(0)" at factorization time.
const DefaultWorkers = 0

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "lu: WithWorkers: workers must be >= 1"
	panicTrackerNil     = "lu: WithTrackerFactory: factory must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options is the resolved configuration of a Factorizer. Fields are unexported;
// build it through Option constructors.
type Options struct {
	workers    int                 // worker cap; DefaultWorkers ⇒ GOMAXPROCS
	logger     zerolog.Logger      // diagnostics sink; Nop by default
	newTracker func(n int) Tracker // nil ⇒ strategy default
	hook       func(i, k int)      // called right before each Eliminate(i,k)
}

// defaultOptions returns the zero-configuration baseline.
func defaultOptions() Options {
	return Options{
		workers: DefaultWorkers,
		logger:  zerolog.Nop(),
	}
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithWorkers caps the number of rows computed concurrently.
// Panics if workers < 1.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// WithLogger routes factorization diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithTrackerFactory replaces the strategy's readiness tracker. The factory is
// called once per Factorize with the matrix dimension and must return a tracker
// whose row 0 is already ready. Intended for instrumentation and tests.
// Panics if factory is nil.
func WithTrackerFactory(factory func(n int) Tracker) Option {
	if factory == nil {
		panic(panicTrackerNil)
	}

	return func(o *Options) { o.newTracker = factory }
}

// WithEliminationHook installs fn, called by the owning worker right before
// each Eliminate(i, k) (after the wait on row k returned). fn runs concurrently
// from many workers and must be safe for that.
func WithEliminationHook(fn func(i, k int)) Option {
	return func(o *Options) { o.hook = fn }
}

// resolveWorkers returns the effective worker count for rows 1..n-1.
func (o Options) resolveWorkers(n int) int {
	w := o.workers
	if w == DefaultWorkers {
		w = runtime.GOMAXPROCS(0)
	}

	return max(1, min(w, n-1))
}

// tracker returns the configured tracker or the strategy default.
func (o Options) tracker(n int, fallback func(int) Tracker) Tracker {
	if o.newTracker != nil {
		return o.newTracker(n)
	}

	return fallback(n)
}
