package replay

import "time"

const (
	// DefaultInterval is the scheduler tick. It is independent of any action's per-key delay.
	DefaultInterval = time.Millisecond

	// DefaultCeiling is the largest repeat magnitude that will be replayed. Larger requests
	// are dropped when dequeued.
	DefaultCeiling = 20
)

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithInterval sets the tick interval.
func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithCeiling sets the repeat magnitude ceiling.
func WithCeiling(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.ceiling = n
		}
	}
}

// WithClock replaces the clock used for per-key delays.
func WithClock(c Clock) Option {
	return func(s *Scheduler) {
		s.clock = c
	}
}
