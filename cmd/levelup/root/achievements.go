package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"levelup/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "List achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLoadedApp(context.Background(), func(a *app) error {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Achievements"))
				list := a.syn.Snapshot().Achievements
				if len(list) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("(none yet)"))
				}
				for _, ach := range list {
					state := ui.Muted.Render(fmt.Sprintf("%d%%", ach.Progress))
					if ach.Unlocked {
						state = ui.Good.Render("unlocked")
						if ach.UnlockedDate != "" {
							state += ui.Muted.Render(" " + ach.UnlockedDate)
						}
					}
					fmt.Fprintf(out, "%s %s %s %s\n", ach.Icon, ach.Title, ui.TierText(ach), state)
					if ach.Description != "" {
						fmt.Fprintln(out, "   "+ui.Muted.Render(ach.Description))
					}
				}
				return nil
			})
		},
	}
}
