package general

import (
	"sync"
	"time"
)

// Throttler lets at most one call through per window. The first call runs fn
// immediately and opens a window of length limit; calls inside the window are
// dropped. The first call after the window closes runs and opens a new one.
type Throttler[T any] struct {
	fn    func(T)
	limit time.Duration
	clock Clock

	mu         sync.Mutex
	cooling    bool
	timer      Timer
	generation uint64
}

// NewThrottler creates a throttler that lets fn run at most once per limit.
func NewThrottler[T any](fn func(T), limit time.Duration, opts ...TimerOption) *Throttler[T] {
	o := buildTimerOptions(opts)
	return &Throttler[T]{
		fn:    fn,
		limit: limit,
		clock: o.clock,
	}
}

// Call runs fn(arg) unless a window is open, and reports whether it ran.
func (t *Throttler[T]) Call(arg T) bool {
	t.mu.Lock()
	if t.cooling {
		t.mu.Unlock()
		return false
	}
	t.cooling = true
	t.generation++
	generation := t.generation
	t.timer = t.clock.AfterFunc(t.limit, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		// a window closed by Stop must not close the one opened after it
		if generation != t.generation {
			return
		}
		t.cooling = false
		t.timer = nil
	})
	t.mu.Unlock()

	t.fn(arg)
	return true
}

// Stop closes the current window early and releases its timer.
func (t *Throttler[T]) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.cooling = false
	t.generation++
}
