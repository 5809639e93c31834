// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// Output is where log records go and how to tell whether a person is watching.
type Output struct {
	W io.Writer

	// isTerminalFunc allows mocking of TTY detection
	isTerminalFunc func(fd int) bool
	fd             int
}

// Stderr returns an Output writing to os.Stderr.
func Stderr() *Output {
	return &Output{
		W:              os.Stderr,
		isTerminalFunc: term.IsTerminal,
		fd:             int(os.Stderr.Fd()),
	}
}

// IsTerminal reports whether the output is a TTY.
func (o *Output) IsTerminal() bool {
	if o.isTerminalFunc == nil {
		return false
	}
	return o.isTerminalFunc(o.fd)
}

// ParseLevel converts a log_level setting to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q (debug, info, warn, error)", s)
}

// NewLogger builds a logger: human readable text on a terminal, JSON otherwise.
func NewLogger(o *Output, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if o.IsTerminal() {
		return slog.New(slog.NewTextHandler(o.W, opts))
	}
	return slog.New(slog.NewJSONHandler(o.W, opts))
}

// Setup installs the default logger for the given level name.
func Setup(o *Output, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	slog.SetDefault(NewLogger(o, lvl))
	return nil
}
