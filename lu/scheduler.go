// SPDX-License-Identifier: MIT
// Package lu - row schedulers.
//
// Purpose:
//   - Drive the per-row k-loop under the dependency order "row i needs rows 0..i-1".
//   - Keep exactly one k-loop (eliminateRow); strategies only differ in how rows
//     reach workers and in which Tracker wait policy they plug in.
//
// Strategies:
//   - Sequential: k-outer triple loop, no concurrency, bit-reproducible baseline.
//   - SpinPool (A): fixed pool of goroutines, rows handed out one at a time in
//     increasing order, busy-poll waits.
//   - TaskGraph (B): one task per row spawned up front, parking waits; a
//     weighted semaphore caps running tasks, and a task gives its slot back
//     while it waits.

package lu

import (
	"context"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/parlu/matrix"
)

// Strategy selects how rows are scheduled by the native no-pivot factorizer.
type Strategy int

const (
	// Sequential runs the strictly sequential baseline loop.
	Sequential Strategy = iota
	// SpinPool runs a fixed worker pool with busy-polling readiness waits.
	SpinPool
	// TaskGraph runs one cooperative task per row with parking readiness waits.
	TaskGraph
)

// String returns the backend name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Sequential:
		return BackendSequential
	case SpinPool:
		return BackendSpin
	case TaskGraph:
		return BackendTasks
	default:
		return "unknown"
	}
}

func newSpinTracker(n int) Tracker   { return NewSpinTracker(n) }
func newFutureTracker(n int) Tracker { return NewFutureTracker(n) }

// eliminateRow is the single k-loop shared by every parallel strategy.
// Implementation:
//   - Stage 1: for k = 0..i-1 in increasing order: wait for hammer k, then Eliminate(i,k).
//   - Stage 2: publish row i.
//
// Behavior highlights:
//   - Increasing k is mandatory: each hammer acts on the state left by all prior hammers.
//   - Row i is written only here (single writer); hammers are read-only once ready.
func eliminateRow(a *matrix.Dense, i int, tr Tracker, hook func(i, k int)) {
	for k := 0; k < i; k++ {
		tr.WaitUntilReady(k)
		if hook != nil {
			hook(i, k)
		}
		Eliminate(a, i, k)
	}
	tr.MarkReady(i)
}

// runSequential is the k-outer, i-middle reference loop.
// Each row still sees hammers in increasing k, so per-row arithmetic matches
// the parallel strategies operation for operation.
// Complexity: O(n³) time, O(1) extra space.
func runSequential(a *matrix.Dense, o Options) {
	n := a.N()
	var i, k int
	for k = 0; k < n; k++ {
		for i = k + 1; i < n; i++ {
			if o.hook != nil {
				o.hook(i, k)
			}
			Eliminate(a, i, k)
		}
	}
}

// runSpinPool implements Strategy A.
// Implementation:
//   - Stage 1: allocate the per-call tracker (SpinTracker unless overridden).
//   - Stage 2: submit rows 1..n-1 in increasing order to a pool capped at workers;
//     Go blocks while the pool is full, so assignment is dynamic, one row at a time.
//   - Stage 3: Wait (re-raises any task panic).
//
// Behavior highlights:
//   - Deadlock-free: when row i starts, every row < i was submitted earlier and
//     is running or done, so all of its dependencies make progress.
func runSpinPool(a *matrix.Dense, o Options, workers int) {
	n := a.N()
	tr := o.tracker(n, newSpinTracker)

	p := pool.New().WithMaxGoroutines(workers)
	for i := 1; i < n; i++ {
		i := i
		p.Go(func() { eliminateRow(a, i, tr, o.hook) })
	}
	p.Wait()
}

// throttledTracker returns a running-slot to sem for the duration of a
// dependency wait, so parked tasks do not count against the worker cap.
type throttledTracker struct {
	Tracker
	sem *semaphore.Weighted
}

// WaitUntilReady skips the slot handoff when row k is already ready.
func (t throttledTracker) WaitUntilReady(k int) {
	if t.Tracker.IsReady(k) {
		return
	}
	t.sem.Release(1)
	t.Tracker.WaitUntilReady(k)
	// Background never cancels; Acquire cannot fail here.
	_ = t.sem.Acquire(context.Background(), 1)
}

// runTaskGraph implements Strategy B.
// Implementation:
//   - Stage 1: allocate the per-call tracker (FutureTracker unless overridden).
//   - Stage 2: spawn all n-1 row tasks from the controlling goroutine up front.
//   - Stage 3: each task acquires a running slot, runs the shared k-loop with a
//     throttled wait policy, and releases the slot when its row is published.
//
// Behavior highlights:
//   - Tasks blocked on a dependency hold neither a slot nor an OS thread.
//   - The lowest unfinished row always has its dependencies met, and the
//     semaphore is FIFO, so it eventually runs: no deadlock, no starvation.
func runTaskGraph(a *matrix.Dense, o Options, workers int) {
	n := a.N()
	tr := throttledTracker{
		Tracker: o.tracker(n, newFutureTracker),
		sem:     semaphore.NewWeighted(int64(workers)),
	}

	var wg conc.WaitGroup
	for i := 1; i < n; i++ {
		i := i
		wg.Go(func() {
			_ = tr.sem.Acquire(context.Background(), 1)
			defer tr.sem.Release(1)
			eliminateRow(a, i, tr, o.hook)
		})
	}
	wg.Wait()
}
