// Package transport connects chat messages to the input queue.
package transport

import (
	"log/slog"
	"strings"

	"github.com/connorhough/chatkeys/internal/input"
)

// DefaultPrefix is the command prefix used when none is configured.
const DefaultPrefix = ";"

// Parser turns command text into queued input.
type Parser interface {
	Parse(raw string) (*input.Repeatable, error)
}

// Pusher accepts parsed input.
type Pusher interface {
	PushFront(in *input.Repeatable)
}

// Relay filters chat messages by prefix, parses them and pushes the result. It is safe for
// concurrent use by as many message handlers as the transport runs.
type Relay struct {
	prefix string
	parser Parser
	queue  Pusher
}

// NewRelay creates a Relay. An empty prefix selects DefaultPrefix.
func NewRelay(prefix string, parser Parser, queue Pusher) *Relay {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Relay{prefix: prefix, parser: parser, queue: queue}
}

// Prefix returns the command prefix.
func (r *Relay) Prefix() string {
	return r.prefix
}

// Command returns the text after the prefix when content is a command message.
func (r *Relay) Command(content string) (string, bool) {
	if len(content) <= len(r.prefix) || !strings.HasPrefix(content, r.prefix) {
		return "", false
	}
	return content[len(r.prefix):], true
}

// Handle processes one chat message and reports whether it queued input. Invalid commands
// are dropped without a reply.
func (r *Relay) Handle(author, content string) bool {
	text, ok := r.Command(content)
	if !ok {
		return false
	}
	in, err := r.parser.Parse(text)
	if err != nil {
		slog.Debug("Dropping invalid command", "author", author, "text", text, "error", err)
		return false
	}
	r.queue.PushFront(in)
	slog.Info("Queued input", "id", in.ID, "author", author, "action", in.Action, "presses", in.Presses)
	return true
}
