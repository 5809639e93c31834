package cmd

import (
	"fmt"
	"strings"

	"github.com/connorhough/chatkeys/internal/bot"
	"github.com/connorhough/chatkeys/internal/config"
	"github.com/connorhough/chatkeys/internal/key"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <game> <command...>",
		Short: "Show what a chat command would press",
		Long: `Parse a command exactly as the bot would (without the prefix) and print the
resulting action, press count and key sequence. Nothing is queued or pressed.

Examples:
  chatkeys parse ftl shields 3
  chatkeys parse ftl "engines -2"
  chatkeys parse nds a 4`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := bot.NewGame(args[0], viper.GetDuration(config.KeyKeyDelay), viper.GetString(config.KeyKeymapFile))
			if err != nil {
				return err
			}

			in, err := g.Parse(strings.Join(args[1:], " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "action:   %s\n", in.Action)
			fmt.Fprintf(out, "presses:  %d\n", in.Presses)
			fmt.Fprintf(out, "delay:    %s\n", in.Delay)
			fmt.Fprintf(out, "sequence: %s\n", key.Join(in.Sequence()))
			return nil
		},
	}
}
