// Package input defines the unit of queued work: a key sequence replayed a number of times.
package input

import (
	"fmt"
	"time"

	"github.com/connorhough/chatkeys/internal/key"
	"github.com/google/uuid"
)

// Repeatable is a key sequence plus the number of repetitions still to be replayed.
//
// Presses is signed. A negative value means "hold Modifier for every repetition" and its
// absolute value is the true repeat count. Zero means there is no work left.
type Repeatable struct {
	ID       uuid.UUID
	Action   string
	Keys     []key.Key
	Presses  int
	Delay    time.Duration
	Modifier key.Key
}

// New builds a Repeatable with a fresh ID.
func New(action string, keys []key.Key, presses int, delay time.Duration, modifier key.Key) *Repeatable {
	return &Repeatable{
		ID:       uuid.New(),
		Action:   action,
		Keys:     keys,
		Presses:  presses,
		Delay:    delay,
		Modifier: modifier,
	}
}

// Magnitude is the number of repetitions left regardless of the modifier toggle.
func (r *Repeatable) Magnitude() int {
	if r.Presses < 0 {
		return -r.Presses
	}
	return r.Presses
}

// Done reports whether the input carries no further work.
func (r *Repeatable) Done() bool {
	return r.Presses == 0
}

// Decrement removes one repetition, moving Presses toward zero and keeping its sign.
func (r *Repeatable) Decrement() {
	switch {
	case r.Presses > 0:
		r.Presses--
	case r.Presses < 0:
		r.Presses++
	}
}

// Sequence is the ordered list of keys pressed for one repetition.
func (r *Repeatable) Sequence() []key.Key {
	if r.Presses < 0 && r.Modifier != "" {
		seq := make([]key.Key, 0, len(r.Keys)+1)
		seq = append(seq, r.Modifier)
		return append(seq, r.Keys...)
	}
	return r.Keys
}

func (r *Repeatable) String() string {
	return fmt.Sprintf("%s x%d [%s] delay=%s", r.Action, r.Presses, key.Join(r.Sequence()), r.Delay)
}
