package root

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"levelup/internal/tui"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the live dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return withLoadedApp(ctx, func(a *app) error {
				return tui.RunBoard(ctx, a.syn, a.cfg.Settings.Interval(), cmd.OutOrStdout())
			})
		},
	}
}
