package general

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of calls. Every Call cancels the pending
// invocation and schedules a new one wait later with the latest argument, so
// only the last call of a burst reaches fn.
type Debouncer[T any] struct {
	fn    func(T)
	wait  time.Duration
	clock Clock

	mu         sync.Mutex
	timer      Timer
	generation uint64
}

// NewDebouncer creates a debouncer that calls fn once calls have been quiet
// for wait.
func NewDebouncer[T any](fn func(T), wait time.Duration, opts ...TimerOption) *Debouncer[T] {
	o := buildTimerOptions(opts)
	return &Debouncer[T]{
		fn:    fn,
		wait:  wait,
		clock: o.clock,
	}
}

// Call (re)schedules fn(arg).
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.generation++
	generation := d.generation
	d.timer = d.clock.AfterFunc(d.wait, func() {
		d.mu.Lock()
		// a timer that lost the race with Stop must not fire
		if generation != d.generation {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		d.fn(arg)
	})
}

// Pending reports whether an invocation is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop drops the pending invocation, if any.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.generation++
}
