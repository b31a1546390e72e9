// SPDX-License-Identifier: MIT
// Package lu - Readiness Tracker.
//
// Purpose:
//   - One flag per row, flipped exactly once from "not ready" to "ready".
//   - The only cross-worker channel: observing IsReady(k)==true guarantees every
//     prior write to row k is visible (release on MarkReady, acquire on observe).
//
// Variants:
//   - SpinTracker: atomic flags, busy-poll wait (Strategy A).
//   - FutureTracker: one closed-on-ready channel per row, parking wait (Strategy B).
//
// Lifetime:
//   - Allocated per decomposition call and discarded afterwards; never shared across calls.

package lu

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// spinYieldEvery is the number of failed probes after which a spinning waiter
// calls runtime.Gosched once.
const spinYieldEvery = 1 << 10

// Tracker publishes and observes per-row readiness.
type Tracker interface {
	// MarkReady flips row i to ready. Called exactly once, by the owner of row i,
	// after its elimination loop. Panics with ErrAlreadyReady on a second call.
	MarkReady(i int)

	// IsReady reports whether row k is ready. Never blocks.
	IsReady(k int) bool

	// WaitUntilReady blocks until IsReady(k) holds.
	WaitUntilReady(k int)
}

// Compile-time assertions.
var (
	_ Tracker = (*SpinTracker)(nil)
	_ Tracker = (*FutureTracker)(nil)
)

func alreadyReady(i int) error {
	return fmt.Errorf("row %d: %w", i, ErrAlreadyReady)
}

// SpinTracker is a fixed arena of atomic flags.
// sync/atomic operations are sequentially consistent in Go, which subsumes the
// acquire/release pairing the row handoff needs.
type SpinTracker struct {
	ready []atomic.Bool
}

// NewSpinTracker allocates flags for n rows; row 0 starts ready when n > 0.
func NewSpinTracker(n int) *SpinTracker {
	t := &SpinTracker{ready: make([]atomic.Bool, n)}
	if n > 0 {
		t.ready[0].Store(true)
	}

	return t
}

// MarkReady publishes row i.
func (t *SpinTracker) MarkReady(i int) {
	if t.ready[i].Swap(true) {
		panic(alreadyReady(i))
	}
}

// IsReady loads the flag of row k.
func (t *SpinTracker) IsReady(k int) bool { return t.ready[k].Load() }

// WaitUntilReady spin-polls row k.
// The calling goroutine stays runnable; every spinYieldEvery probes it yields
// its P once so an unscheduled producer can still make progress when workers
// outnumber GOMAXPROCS.
func (t *SpinTracker) WaitUntilReady(k int) {
	for probes := 1; !t.ready[k].Load(); probes++ {
		if probes%spinYieldEvery == 0 {
			runtime.Gosched()
		}
	}
}

// FutureTracker holds one completion future per row, modeled as a channel
// closed on MarkReady. A receive from a closed channel happens after the close,
// which carries row i's writes to every waiter.
type FutureTracker struct {
	done []chan struct{}
}

// NewFutureTracker allocates futures for n rows; row 0 starts resolved when n > 0.
func NewFutureTracker(n int) *FutureTracker {
	t := &FutureTracker{done: make([]chan struct{}, n)}
	for i := range t.done {
		t.done[i] = make(chan struct{})
	}
	if n > 0 {
		close(t.done[0])
	}

	return t
}

// MarkReady resolves the future of row i, waking every parked waiter.
func (t *FutureTracker) MarkReady(i int) {
	select {
	case <-t.done[i]:
		panic(alreadyReady(i))
	default:
		close(t.done[i])
	}
}

// IsReady polls the future of row k without blocking.
func (t *FutureTracker) IsReady(k int) bool {
	select {
	case <-t.done[k]:
		return true
	default:
		return false
	}
}

// WaitUntilReady parks the calling goroutine until row k resolves. The OS
// thread is handed back to the Go scheduler to run other row tasks meanwhile.
func (t *FutureTracker) WaitUntilReady(k int) { <-t.done[k] }
