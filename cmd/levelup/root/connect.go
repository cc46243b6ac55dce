package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"levelup/internal/syncer"
	"levelup/internal/ui"
)

func newConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Test the connection, then sync",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.syn.Probe(ctx); err != nil {
				return userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Connected ("+a.cfg.Settings.Backend+")"))

			report, err := a.syn.Pull(ctx)
			if err != nil {
				return userError(err)
			}
			printReport(cmd, report)
			return nil
		},
	}
}

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Pull every range from the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			report, err := a.load(ctx)
			if err != nil {
				return err
			}
			printReport(cmd, report)
			return nil
		},
	}
}

func printReport(cmd *cobra.Command, r syncer.PullReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Heading(ui.IconSync, "Synced"))
	fmt.Fprintln(out, ui.LabelValue("Quests", r.Quests))
	fmt.Fprintln(out, ui.LabelValue("Achievements", r.Achievements))
	fmt.Fprintln(out, ui.LabelValue("Resources updated", r.Resources))
	fmt.Fprintln(out, ui.LabelValue("Resource details", r.Details))
	fmt.Fprintln(out, ui.LabelValue("Messages", r.Messages))
	for _, w := range r.Warnings {
		fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" could not read "+w.Range+": "+w.Err.Error()))
	}
	fmt.Fprintln(out, ui.Muted.Render("run "+r.RunID))
}
