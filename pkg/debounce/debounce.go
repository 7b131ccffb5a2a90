// Package debounce delays an action until input activity pauses for a fixed quiet period.
package debounce

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Debouncer runs at most one pending action. Every Arm replaces the pending action and
// restarts the quiet period; Cancel drops it. Neither touches an action that already started.
type Debouncer struct {
	clock clockwork.Clock
	delay time.Duration

	mu      sync.Mutex
	timer   clockwork.Timer
	pending func()
	armed   uint64

	running sync.WaitGroup
}

// New creates a Debouncer waiting delay on clock. A nil clock uses the real clock.
func New(clock clockwork.Clock, delay time.Duration) *Debouncer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Debouncer{clock: clock, delay: delay}
}

// Arm schedules fn after the quiet period, cancelling any previously armed action.
func (d *Debouncer) Arm(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.armed++
	token := d.armed
	d.pending = fn
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.armed != token {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.pending = nil
		d.running.Add(1)
		d.mu.Unlock()

		defer d.running.Done()
		fn()
	})
}

// Flush runs the pending action immediately on the calling goroutine. It reports whether one was pending.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	fn := d.pending
	d.stopLocked()
	d.armed++
	d.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

// Wait blocks until every action fired by the timer has returned. Called after Flush or Cancel,
// it also covers an action whose timer fired concurrently with them.
func (d *Debouncer) Wait() {
	d.running.Wait()
}

// Cancel drops the pending action, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.armed++
}

// Pending reports whether an action is armed and has not fired yet.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}
