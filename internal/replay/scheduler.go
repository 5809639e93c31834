// Package replay drains the input queue, one repetition per tick, while the target is focused.
package replay

import (
	"context"
	"log/slog"
	"time"

	"github.com/connorhough/chatkeys/internal/focus"
	"github.com/connorhough/chatkeys/internal/input"
	"github.com/connorhough/chatkeys/internal/key"
	"github.com/connorhough/chatkeys/internal/queue"
)

// Injector presses and releases physical keys at the OS input layer.
type Injector interface {
	KeyDown(ctx context.Context, k key.Key) error
	KeyUp(ctx context.Context, k key.Key) error
}

// Result describes what a single tick did.
type Result int

const (
	// Unfocused means the target did not own focus and the queue was left untouched.
	Unfocused Result = iota
	// Idle means the queue was empty.
	Idle
	// Dropped means the front input was removed without being replayed.
	Dropped
	// Replayed means one repetition of the front input was performed.
	Replayed
)

func (r Result) String() string {
	switch r {
	case Unfocused:
		return "unfocused"
	case Idle:
		return "idle"
	case Dropped:
		return "dropped"
	case Replayed:
		return "replayed"
	}
	return "unknown"
}

// Scheduler is the single consumer of a Queue.
type Scheduler struct {
	queue    *queue.Queue
	gate     focus.Gate
	keys     Injector
	clock    Clock
	interval time.Duration
	ceiling  int
}

// New creates a Scheduler draining q into keys whenever gate reports focus.
func New(q *queue.Queue, gate focus.Gate, keys Injector, opts ...Option) *Scheduler {
	s := &Scheduler{
		queue:    q,
		gate:     gate,
		keys:     keys,
		clock:    SystemClock,
		interval: DefaultInterval,
		ceiling:  DefaultCeiling,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run ticks at the configured interval until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	slog.Info("Replay scheduler started", "interval", s.interval, "ceiling", s.ceiling)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			pending := s.queue.Snapshot()
			actions := make([]string, len(pending))
			for i, in := range pending {
				actions[i] = in.String()
			}
			slog.Info("Replay scheduler stopped", "pending", len(pending), "inputs", actions)
			return nil
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick advances at most one pending input by one repetition.
func (s *Scheduler) Tick(ctx context.Context) Result {
	if !s.gate.Focused(ctx) {
		return Unfocused
	}

	in, ok := s.queue.TakeFront()
	if !ok {
		return Idle
	}

	if in.Magnitude() > s.ceiling {
		slog.Warn("Dropping input above repeat ceiling",
			"id", in.ID, "action", in.Action, "presses", in.Presses, "ceiling", s.ceiling)
		return Dropped
	}
	if in.Done() {
		return Dropped
	}

	// A repetition always runs to completion, even if ctx is cancelled midway.
	s.replay(context.WithoutCancel(ctx), in)

	in.Decrement()
	if !in.Done() {
		s.queue.PushFront(in)
	}
	slog.Debug("Replayed input", "id", in.ID, "action", in.Action, "remaining", in.Magnitude())
	return Replayed
}

func (s *Scheduler) replay(ctx context.Context, in *input.Repeatable) {
	seq := in.Sequence()
	for _, k := range seq {
		if err := s.keys.KeyDown(ctx, k); err != nil {
			slog.Debug("Key press failed", "key", k, "error", err)
		}
		_ = s.clock.Sleep(ctx, in.Delay)
	}
	for _, k := range seq {
		if err := s.keys.KeyUp(ctx, k); err != nil {
			slog.Debug("Key release failed", "key", k, "error", err)
		}
	}
}
