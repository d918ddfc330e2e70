package sched

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerRunsOnlyFinalTrigger(t *testing.T) {
	d := NewDebouncer(40 * time.Millisecond)
	defer d.Stop()

	var mu sync.Mutex
	var got []string

	for _, query := range []string{"j", "ja", "jai", "jaipur"} {
		q := query
		d.Trigger(func() {
			mu.Lock()
			got = append(got, q)
			mu.Unlock()
		})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 {
		t.Fatalf("expected exactly one call, got %d: %v", len(got), got)
	}
	if got[0] != "jaipur" {
		t.Errorf("expected final trigger to win, got %q", got[0])
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var fired atomic.Bool
	d.Trigger(func() { fired.Store(true) })
	d.Stop()
	d.Stop() // idempotent

	time.Sleep(100 * time.Millisecond)
	if fired.Load() {
		t.Error("stopped debouncer must not fire")
	}
}

func TestIntervalTicksUntilStopped(t *testing.T) {
	iv := NewInterval()

	var ticks atomic.Int32
	iv.Start(func() { ticks.Add(1) }, 20*time.Millisecond)

	if !iv.Running() {
		t.Error("interval should report running after Start")
	}

	time.Sleep(110 * time.Millisecond)
	iv.Stop()
	if iv.Running() {
		t.Error("interval should report stopped after Stop")
	}

	stopped := ticks.Load()
	if stopped < 2 {
		t.Fatalf("expected at least 2 ticks, got %d", stopped)
	}

	time.Sleep(80 * time.Millisecond)
	if ticks.Load() != stopped {
		t.Error("interval kept ticking after Stop")
	}
}

func TestIntervalStopBeforeStart(t *testing.T) {
	iv := NewInterval()
	iv.Stop()
	iv.Stop()
	if iv.Running() {
		t.Error("never-started interval must not report running")
	}
}

func TestIntervalRestartReplacesFunction(t *testing.T) {
	iv := NewInterval()
	defer iv.Stop()

	var old, replacement atomic.Int32
	iv.Start(func() { old.Add(1) }, 20*time.Millisecond)
	iv.Start(func() { replacement.Add(1) }, 20*time.Millisecond)

	time.Sleep(90 * time.Millisecond)
	if replacement.Load() == 0 {
		t.Error("replacement function never ran")
	}
	// The first goroutine stops at restart; at most one in-flight tick of
	// the old function can land.
	if old.Load() > 1 {
		t.Errorf("old function kept running after restart: %d ticks", old.Load())
	}
}
