package input

import (
	"reflect"
	"testing"
	"time"

	"github.com/connorhough/chatkeys/internal/key"
)

func TestMagnitudeAndDone(t *testing.T) {
	tests := []struct {
		presses   int
		magnitude int
		done      bool
	}{
		{presses: 3, magnitude: 3},
		{presses: -4, magnitude: 4},
		{presses: 0, magnitude: 0, done: true},
	}

	for _, tt := range tests {
		r := New("test", []key.Key{key.A}, tt.presses, 0, key.Shift)
		if got := r.Magnitude(); got != tt.magnitude {
			t.Errorf("presses %d: Magnitude() = %d, want %d", tt.presses, got, tt.magnitude)
		}
		if got := r.Done(); got != tt.done {
			t.Errorf("presses %d: Done() = %v, want %v", tt.presses, got, tt.done)
		}
	}
}

func TestDecrementMovesTowardZero(t *testing.T) {
	pos := New("pos", []key.Key{key.A}, 2, 0, "")
	pos.Decrement()
	if pos.Presses != 1 {
		t.Errorf("positive: got %d, want 1", pos.Presses)
	}

	neg := New("neg", []key.Key{key.A}, -2, 0, key.Shift)
	neg.Decrement()
	if neg.Presses != -1 {
		t.Errorf("negative: got %d, want -1", neg.Presses)
	}
	neg.Decrement()
	if !neg.Done() {
		t.Errorf("negative: expected done, presses=%d", neg.Presses)
	}

	zero := New("zero", []key.Key{key.A}, 0, 0, "")
	zero.Decrement()
	if zero.Presses != 0 {
		t.Errorf("zero: got %d, want 0", zero.Presses)
	}
}

func TestSequence(t *testing.T) {
	tests := []struct {
		name     string
		presses  int
		modifier key.Key
		want     []key.Key
	}{
		{name: "positive ignores modifier", presses: 2, modifier: key.Shift, want: []key.Key{key.A}},
		{name: "negative prepends modifier", presses: -2, modifier: key.Shift, want: []key.Key{key.Shift, key.A}},
		{name: "negative without modifier", presses: -2, want: []key.Key{key.A}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New("x", []key.Key{key.A}, tt.presses, 10*time.Millisecond, tt.modifier)
			if got := r.Sequence(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sequence() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewAssignsDistinctIDs(t *testing.T) {
	a := New("a", []key.Key{key.A}, 1, 0, "")
	b := New("b", []key.Key{key.B}, 1, 0, "")
	if a.ID == b.ID {
		t.Error("expected distinct IDs")
	}
}
