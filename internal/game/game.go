// Package game defines the contract every supported target application implements: a
// grammar turning chat command text into queued key input.
package game

import (
	"strings"
	"time"
	"unicode"

	"github.com/connorhough/chatkeys/internal/input"
	"github.com/connorhough/chatkeys/internal/key"
)

// Game is one supported target application.
type Game interface {
	// ID is the configuration identifier (e.g. "ftl").
	ID() string

	// Name is the human readable name.
	Name() string

	// WindowTitle is the substring identifying the application's window.
	WindowTitle() string

	// Parse turns command text (prefix already stripped) into an input ready to queue.
	// Failures are *ValidationError values.
	Parse(raw string) (*input.Repeatable, error)

	// Commands describes the accepted grammar.
	Commands() []Command
}

// Command documents one command family of a grammar.
type Command struct {
	Name    string
	Aliases []string
	Usage   string
}

// Options tunes a game at construction time.
type Options struct {
	// Delay overrides the game's per-key delay when positive.
	Delay time.Duration

	// Keymap overrides the key sequence of individual actions, by action name.
	Keymap map[string][]key.Key
}

// DelayOr returns o.Delay, or def when no override is set.
func (o Options) DelayOr(def time.Duration) time.Duration {
	if o.Delay > 0 {
		return o.Delay
	}
	return def
}

// Split separates raw into a lowercased command token and the remainder after the first
// run of whitespace. hasArg is false when there is no remainder.
func Split(raw string) (cmd, arg string, hasArg bool) {
	raw = strings.TrimSpace(raw)
	i := strings.IndexFunc(raw, unicode.IsSpace)
	if i < 0 {
		return strings.ToLower(raw), "", false
	}
	cmd = strings.ToLower(raw[:i])
	arg = strings.TrimSpace(raw[i:])
	return cmd, arg, arg != ""
}
