// Package queue holds pending replay work shared between chat producers and the scheduler.
package queue

import (
	"sync"

	"github.com/connorhough/chatkeys/internal/input"
)

// Queue is an unbounded last-in-first-out collection of pending inputs. New work and
// re-enqueued remainders both go to the front, and the scheduler always takes the front.
// All methods are safe for concurrent use; the lock is held only for the single access.
type Queue struct {
	mu    sync.Mutex
	items []*input.Repeatable
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{}
}

// PushFront places in at the front of the queue.
func (q *Queue) PushFront(in *input.Repeatable) {
	q.mu.Lock()
	defer q.mu.Unlock()
	// The front is the end of the slice so both ends of the hot path are O(1).
	q.items = append(q.items, in)
}

// TakeFront removes and returns the front item. ok is false when the queue is empty.
func (q *Queue) TakeFront() (in *input.Repeatable, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := len(q.items)
	if n == 0 {
		return nil, false
	}
	in = q.items[n-1]
	q.items[n-1] = nil
	q.items = q.items[:n-1]
	return in, true
}

// Len returns the number of pending items.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Snapshot returns the pending items front first. The returned slice is a copy, but the
// items are shared and must not be mutated by the caller.
func (q *Queue) Snapshot() []*input.Repeatable {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]*input.Repeatable, len(q.items))
	for i := range q.items {
		out[i] = q.items[len(q.items)-1-i]
	}
	return out
}
