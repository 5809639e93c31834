// Package bot wires configuration, grammar, queue, scheduler and chat transport together.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/connorhough/chatkeys/internal/config"
	"github.com/connorhough/chatkeys/internal/focus"
	"github.com/connorhough/chatkeys/internal/game"
	"github.com/connorhough/chatkeys/internal/games"
	"github.com/connorhough/chatkeys/internal/keymap"
	"github.com/connorhough/chatkeys/internal/platform"
	"github.com/connorhough/chatkeys/internal/queue"
	"github.com/connorhough/chatkeys/internal/replay"
	"github.com/connorhough/chatkeys/internal/transport"
	"golang.org/x/sync/errgroup"
)

// Transport delivers chat messages to a relay until its context is cancelled.
type Transport interface {
	Run(ctx context.Context) error
}

// TransportFactory creates the chat transport for a token.
type TransportFactory func(token string, relay *transport.Relay) (Transport, error)

// Bot is a fully wired chat-to-keyboard bridge.
type Bot struct {
	game      game.Game
	queue     *queue.Queue
	scheduler *replay.Scheduler
	relay     *transport.Relay
	transport Transport
}

type options struct {
	platform     platform.Platform
	newTransport TransportFactory
	clock        replay.Clock
}

// Option customises how a Bot is built.
type Option func(*options)

// WithPlatform replaces the OS input backend chosen by the settings.
func WithPlatform(p platform.Platform) Option {
	return func(o *options) { o.platform = p }
}

// WithTransport replaces the Discord transport.
func WithTransport(f TransportFactory) Option {
	return func(o *options) { o.newTransport = f }
}

// WithClock replaces the clock used for per-key delays.
func WithClock(c replay.Clock) Option {
	return func(o *options) { o.clock = c }
}

func discordTransport(token string, relay *transport.Relay) (Transport, error) {
	return transport.NewDiscord(token, relay)
}

// New builds a Bot from validated settings. Failures are *config.Error or *transport.Error.
func New(s *config.Settings, opts ...Option) (*Bot, error) {
	o := &options{newTransport: discordTransport, clock: replay.SystemClock}
	for _, opt := range opts {
		opt(o)
	}

	g, err := NewGame(s.Game, s.KeyDelay, s.KeymapFile)
	if err != nil {
		return nil, err
	}

	if o.platform == nil {
		p, err := platform.New(s.Backend)
		if err != nil {
			return nil, config.ErrInvalid(config.KeyBackend, err.Error())
		}
		o.platform = p
	}

	title := s.WindowTitle
	if title == "" {
		title = g.WindowTitle()
	}
	gate := focus.Guard(focus.NewTitleGate(o.platform, title))

	q := queue.New()
	scheduler := replay.New(q, gate, o.platform,
		replay.WithInterval(s.TickInterval),
		replay.WithCeiling(s.RepeatCeiling),
		replay.WithClock(o.clock),
	)
	relay := transport.NewRelay(s.Prefix, g, q)

	t, err := o.newTransport(s.Token, relay)
	if err != nil {
		return nil, err
	}

	slog.Debug("Bot built", "game", g.ID(), "window_title", title, "prefix", s.Prefix)
	return &Bot{game: g, queue: q, scheduler: scheduler, relay: relay, transport: t}, nil
}

// NewGame builds the grammar for a game id, applying the per-key delay and the optional
// keymap file.
func NewGame(id string, delay time.Duration, keymapFile string) (game.Game, error) {
	if !games.Supported(id) {
		return nil, config.ErrInvalid(config.KeyGame, fmt.Sprintf("%q is either invalid or unsupported (supported: %s)", id, strings.Join(games.IDs(), ", ")))
	}

	opts := game.Options{Delay: delay}
	if keymapFile != "" {
		f, err := keymap.Load(keymapFile)
		if err != nil {
			return nil, config.ErrSource(config.KeyKeymapFile, err)
		}
		if opts.Keymap, err = f.For(id); err != nil {
			return nil, config.ErrSource(config.KeyKeymapFile, err)
		}
	}

	g, err := games.New(id, opts)
	if err != nil {
		return nil, config.ErrSource(config.KeyKeymapFile, err)
	}
	return g, nil
}

// Run starts the scheduler and the transport and blocks until ctx is cancelled or the
// transport fails. A cancelled context is a graceful shutdown and returns nil.
func (b *Bot) Run(ctx context.Context) error {
	slog.Info("Starting bot", "game", b.game.Name(), "prefix", b.relay.Prefix())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return b.scheduler.Run(gctx)
	})
	g.Go(func() error {
		return b.transport.Run(gctx)
	})
	return g.Wait()
}
