package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/connorhough/chatkeys/internal/bot"
	"github.com/connorhough/chatkeys/internal/games"
	"github.com/spf13/cobra"
)

func newGamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "games [game]",
		Short: "List supported games and their commands",
		Long: `Without arguments, list the supported games. With a game id, list the chat
commands that game accepts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()

			if len(args) == 0 {
				fmt.Fprintln(w, "ID\tNAME\tWINDOW")
				for _, id := range games.IDs() {
					g, err := bot.NewGame(id, 0, "")
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%s\t%s\t%s\n", g.ID(), g.Name(), g.WindowTitle())
				}
				return nil
			}

			g, err := bot.NewGame(args[0], 0, "")
			if err != nil {
				return err
			}
			fmt.Fprintln(w, "COMMAND\tALIASES\tARGUMENT")
			for _, c := range g.Commands() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, strings.Join(c.Aliases, ", "), c.Usage)
			}
			return nil
		},
	}
}
