package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"levelup/internal/engine"
	"levelup/internal/ui"
)

func newNoteCmd() *cobra.Command {
	var typ string
	cmd := &cobra.Command{
		Use:   "note <text...>",
		Short: "Add a note, reminder or achievement message",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			return withLoadedApp(ctx, func(a *app) error {
				msg, err := a.syn.AddChatMessage(ctx, strings.Join(args, " "), engine.ParseMessageType(typ))
				if err != nil && msg.ID == 0 {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", msg.TypeIcon(), msg.Text, ui.Muted.Render(msg.FormattedDateTime()))
				if err != nil {
					return fmt.Errorf("saved locally but not pushed: %w", userError(err))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", string(engine.MessageNote), "note|reminder|achievement")
	return cmd
}

func newNotesCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Show the message log",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLoadedApp(context.Background(), func(a *app) error {
				out := cmd.OutOrStdout()
				msgs := a.syn.Snapshot().Chat
				fmt.Fprintln(out, ui.Heading(ui.IconChat, "Notes"))
				if len(msgs) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("(empty)"))
					return nil
				}
				if limit > 0 && len(msgs) > limit {
					msgs = msgs[len(msgs)-limit:]
				}
				for _, m := range msgs {
					fmt.Fprintf(out, "%s %s %s\n", ui.Muted.Render(m.FormattedDateTime()), m.TypeIcon(), m.Text)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "show the latest n messages (0 for all)")
	return cmd
}
