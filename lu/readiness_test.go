package lu_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/parlu/lu"
	"github.com/stretchr/testify/require"
)

func trackers() map[string]func(n int) lu.Tracker {
	return map[string]func(n int) lu.Tracker{
		"spin":   func(n int) lu.Tracker { return lu.NewSpinTracker(n) },
		"future": func(n int) lu.Tracker { return lu.NewFutureTracker(n) },
	}
}

func TestTracker_InitialState(t *testing.T) {
	t.Parallel()

	for name, mk := range trackers() {
		mk := mk
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tr := mk(3)
			require.True(t, tr.IsReady(0), "row 0 is a trivial pivot")
			require.False(t, tr.IsReady(1))
			require.False(t, tr.IsReady(2))

			tr.WaitUntilReady(0) // must not block
			tr.MarkReady(2)
			require.True(t, tr.IsReady(2))
			require.False(t, tr.IsReady(1), "flags are independent")

			// Empty trackers are legal.
			require.NotPanics(t, func() { mk(0) })
		})
	}
}

func TestTracker_DoubleMarkPanics(t *testing.T) {
	t.Parallel()

	for name, mk := range trackers() {
		mk := mk
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tr := mk(2)
			tr.MarkReady(1)
			require.Panics(t, func() { tr.MarkReady(1) })
			require.Panics(t, func() { tr.MarkReady(0) }, "row 0 starts ready")
		})
	}
}

// TestTracker_PublishesWrites checks the handoff contract: a waiter that
// returns from WaitUntilReady sees every write made before MarkReady.
// Run with -race to validate the happens-before edge.
func TestTracker_PublishesWrites(t *testing.T) {
	t.Parallel()

	for name, mk := range trackers() {
		mk := mk
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			const rows = 64
			tr := mk(rows)
			data := make([]int, rows) // plain, unsynchronized payload

			done := make(chan []int)
			go func() {
				seen := make([]int, rows)
				for k := 1; k < rows; k++ {
					tr.WaitUntilReady(k)
					seen[k] = data[k]
				}
				done <- seen
			}()

			for i := 1; i < rows; i++ {
				data[i] = i * i
				tr.MarkReady(i)
			}

			select {
			case seen := <-done:
				for k := 1; k < rows; k++ {
					require.Equal(t, k*k, seen[k], "row %d", k)
				}
			case <-time.After(10 * time.Second):
				t.Fatal("waiter never observed readiness")
			}
		})
	}
}

func TestTracker_WaitBlocksUntilMarked(t *testing.T) {
	t.Parallel()

	for name, mk := range trackers() {
		mk := mk
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tr := mk(2)
			released := make(chan struct{})
			go func() {
				tr.WaitUntilReady(1)
				close(released)
			}()

			select {
			case <-released:
				t.Fatal("WaitUntilReady returned before MarkReady")
			case <-time.After(20 * time.Millisecond):
			}

			tr.MarkReady(1)
			select {
			case <-released:
			case <-time.After(10 * time.Second):
				t.Fatal("WaitUntilReady did not return after MarkReady")
			}
		})
	}
}
