package session

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period before a burst of changes is acted on
const DefaultDelay = 300 * time.Millisecond

// Debouncer coalesces bursts of triggers into a single call. Only the
// function passed to the last Trigger of a burst runs, once the delay
// has elapsed without a newer trigger. Calls never overlap.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64

	run sync.Mutex
}

// NewDebouncer creates a debouncer; a non-positive delay uses DefaultDelay
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn, replacing any call that is still pending
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	id := d.seq
	d.timer = time.AfterFunc(d.delay, func() { d.fire(id, fn) })
}

// Pending reports whether a call is scheduled but has not started
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels the pending call, if any. A call already running is not
// interrupted.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
}

func (d *Debouncer) fire(id uint64, fn func()) {
	d.mu.Lock()
	// a timer that fired while being replaced or stopped is stale
	if id != d.seq {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.run.Lock()
	defer d.run.Unlock()
	fn()
}
