// Package sched centralizes the timing primitives the UI relies on: a
// trailing-edge debouncer for search-as-you-type and a cancellable interval
// for background refresh. Both are safe for concurrent use and idempotent
// to stop.
package sched

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of triggers into a single call of the most
// recently supplied function, fired once the quiet period elapses.
type Debouncer struct {
	Delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{Delay: delay}
}

// Trigger schedules fn to run after the quiet period. A trigger arriving
// before the period elapses replaces the pending fn, so only the final one
// in a burst ever runs.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.Delay, fn)
}

// Stop cancels any pending trigger. Safe to call repeatedly.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Interval runs a function repeatedly on a fixed period until stopped. The
// function does not run at start; the first call happens one period in.
type Interval struct {
	mu   sync.Mutex
	done chan struct{}
}

// NewInterval creates an idle interval.
func NewInterval() *Interval {
	return &Interval{}
}

// Start begins running fn every period. Starting an already running
// interval restarts it with the new function and period.
func (iv *Interval) Start(fn func(), every time.Duration) {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	iv.stopLocked()

	done := make(chan struct{})
	iv.done = done

	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()
}

// Stop halts the interval. Safe to call repeatedly or before Start.
func (iv *Interval) Stop() {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	iv.stopLocked()
}

// Running reports whether the interval is currently active.
func (iv *Interval) Running() bool {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	return iv.done != nil
}

func (iv *Interval) stopLocked() {
	if iv.done != nil {
		close(iv.done)
		iv.done = nil
	}
}
