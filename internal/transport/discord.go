package transport

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Discord delivers messages from a Discord bot account to a Relay.
type Discord struct {
	session *discordgo.Session
	relay   *Relay
}

// NewDiscord creates a Discord transport. The token may be given with or without the
// "Bot " scheme.
func NewDiscord(token string, relay *Relay) (*Discord, error) {
	session, err := discordgo.New(botToken(token))
	if err != nil {
		return nil, &Error{Op: "create session", Err: err}
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	d := &Discord{session: session, relay: relay}
	session.AddHandler(d.onReady)
	session.AddHandler(d.onMessageCreate)
	return d, nil
}

// Run connects and blocks until ctx is cancelled, then disconnects.
func (d *Discord) Run(ctx context.Context) error {
	if err := d.session.Open(); err != nil {
		return &Error{Op: "connect", Err: err}
	}
	slog.Info("Connected to Discord")

	<-ctx.Done()

	if err := d.session.Close(); err != nil {
		return &Error{Op: "disconnect", Err: err}
	}
	slog.Info("Disconnected from Discord")
	return nil
}

func (d *Discord) onReady(s *discordgo.Session, r *discordgo.Ready) {
	status := fmt.Sprintf("the prefix %q", d.relay.Prefix())
	if err := s.UpdateListeningStatus(status); err != nil {
		slog.Warn("Failed to set presence", "error", err)
	}
	if r.User != nil {
		slog.Info("Ready", "user", r.User.Username, "guilds", len(r.Guilds))
	}
}

func (d *Discord) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Message == nil || m.Author == nil || m.Author.Bot {
		return
	}
	d.relay.Handle(m.Author.Username, m.Content)
}

func botToken(token string) string {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(token, "Bot ") {
		return token
	}
	return "Bot " + token
}
