package games

import (
	"errors"
	"reflect"
	"testing"

	"github.com/connorhough/chatkeys/internal/game"
	"github.com/connorhough/chatkeys/internal/key"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		wantID    string
		wantTitle string
		wantErr   bool
	}{
		{name: "ftl", id: "ftl", wantID: "ftl", wantTitle: "FTL: Faster Than Light"},
		{name: "nds", id: "nds", wantID: "nds", wantTitle: "DeSmuME"},
		{name: "case and space insensitive", id: " FTL ", wantID: "ftl", wantTitle: "FTL: Faster Than Light"},
		{name: "unsupported", id: "tetris", wantErr: true},
		{name: "empty", id: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.id, game.Options{})
			if tt.wantErr {
				if !errors.Is(err, game.ErrUnsupportedGame) {
					t.Fatalf("expected ErrUnsupportedGame, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if g.ID() != tt.wantID {
				t.Errorf("ID() = %q, want %q", g.ID(), tt.wantID)
			}
			if g.WindowTitle() != tt.wantTitle {
				t.Errorf("WindowTitle() = %q, want %q", g.WindowTitle(), tt.wantTitle)
			}
		})
	}
}

func TestIDs(t *testing.T) {
	if got := IDs(); !reflect.DeepEqual(got, []string{"ftl", "nds"}) {
		t.Errorf("IDs() = %v", got)
	}
	if !Supported("nds") || Supported("gba") {
		t.Error("Supported returned wrong result")
	}
}

func TestNewPropagatesOptionErrors(t *testing.T) {
	_, err := New("ftl", game.Options{Keymap: map[string][]key.Key{"warp": {key.J}}})
	if err == nil {
		t.Fatal("expected keymap error")
	}
}
