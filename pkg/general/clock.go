package general

import "time"

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. SystemClock is backed by time.AfterFunc.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

var SystemClock Clock = systemClock{}

type timerOptions struct {
	clock Clock
}

// TimerOption configures a Debouncer or Throttler.
type TimerOption func(*timerOptions)

// WithClock replaces SystemClock.
func WithClock(clock Clock) TimerOption {
	return func(o *timerOptions) { o.clock = clock }
}

func buildTimerOptions(opts []TimerOption) timerOptions {
	o := timerOptions{clock: SystemClock}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
