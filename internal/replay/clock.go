package replay

import (
	"context"
	"time"
)

// Clock waits out the hold time between key presses.
type Clock interface {
	// Sleep blocks for d or until ctx is done, whichever comes first.
	Sleep(ctx context.Context, d time.Duration) error
}

// ClockFunc adapts a function to Clock.
type ClockFunc func(ctx context.Context, d time.Duration) error

func (f ClockFunc) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// SystemClock sleeps on wall-clock timers.
var SystemClock Clock = ClockFunc(sleep)

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
