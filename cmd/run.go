package cmd

import (
	"context"

	"github.com/connorhough/chatkeys/internal/bot"
	"github.com/connorhough/chatkeys/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runFlags maps run flags onto the configuration keys they override.
var runFlags = map[string]string{
	"game":         config.KeyGame,
	"prefix":       config.KeyPrefix,
	"token":        config.KeyToken,
	"backend":      config.KeyBackend,
	"window-title": config.KeyWindowTitle,
	"keymap":       config.KeyKeymapFile,
}

type runner interface {
	Run(ctx context.Context) error
}

// newBot is replaced in tests.
var newBot = func(s *config.Settings) (runner, error) {
	return bot.New(s)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Connect to chat and replay commands",
		Long: `Connect to Discord and turn prefixed chat messages into key presses.

Key presses are only sent while the game window has focus; commands received while it
does not are held until it does.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for flag, key := range runFlags {
				if cmd.Flags().Changed(flag) {
					value, _ := cmd.Flags().GetString(flag)
					viper.Set(key, value)
				}
			}

			settings, err := config.Load()
			if err != nil {
				return err
			}

			b, err := newBot(settings)
			if err != nil {
				return err
			}
			return b.Run(cmd.Context())
		},
	}

	cmd.Flags().String("game", "", "Target game (ftl, nds)")
	cmd.Flags().String("prefix", "", "Single-character command prefix")
	cmd.Flags().String("token", "", "Discord bot token (prefer CHATKEYS_TOKEN)")
	cmd.Flags().String("backend", "", "Input backend (robotgo, exec)")
	cmd.Flags().String("window-title", "", "Substring required in the active window title")
	cmd.Flags().String("keymap", "", "YAML file with per-action key overrides")

	return cmd
}
