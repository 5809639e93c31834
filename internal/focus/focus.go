// Package focus answers whether the target application currently owns input focus.
package focus

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Gate reports whether injected input would reach the target application.
type Gate interface {
	Focused(ctx context.Context) bool
}

// Func adapts a plain function to a Gate.
type Func func(ctx context.Context) bool

// Focused calls f.
func (f Func) Focused(ctx context.Context) bool {
	return f(ctx)
}

// Always is a Gate that is always focused.
var Always Gate = Func(func(context.Context) bool { return true })

// Titler returns the title of the foreground window.
type Titler interface {
	ActiveWindowTitle(ctx context.Context) (string, error)
}

// TitleGate is focused when the foreground window title contains Match. Matching is
// case-sensitive so that chat windows naming the game in lowercase never count as the game.
// A failed title query or an empty Match counts as unfocused.
type TitleGate struct {
	Titler Titler
	Match  string
}

// NewTitleGate creates a TitleGate.
func NewTitleGate(t Titler, match string) *TitleGate {
	return &TitleGate{Titler: t, Match: match}
}

// Focused implements Gate.
func (g *TitleGate) Focused(ctx context.Context) bool {
	title, err := g.Titler.ActiveWindowTitle(ctx)
	if err != nil {
		slog.Debug("Failed to read foreground window title", "error", err)
		return false
	}
	return g.Match != "" && strings.Contains(title, g.Match)
}

// Guarded serializes calls to a Gate whose backend is not safe for concurrent use.
type Guarded struct {
	mu   sync.Mutex
	gate Gate
}

// Guard wraps g.
func Guard(g Gate) *Guarded {
	return &Guarded{gate: g}
}

// Focused implements Gate.
func (g *Guarded) Focused(ctx context.Context) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gate.Focused(ctx)
}
