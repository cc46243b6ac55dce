package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"levelup/internal/engine"
	"levelup/internal/ui"
)

func newGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goals",
		Short: "Show the mission and goals by horizon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLoadedApp(context.Background(), func(a *app) error {
				out := cmd.OutOrStdout()
				g := a.syn.Snapshot().Goals
				fmt.Fprintln(out, ui.Heading(ui.IconTarget, "Goals"))
				if g.IsEmpty() {
					fmt.Fprintln(out, ui.Muted.Render("(no goals)"))
					return nil
				}
				if g.Mission != "" {
					fmt.Fprintln(out, ui.LabelValue("Mission", g.Mission))
				}
				printGoals(cmd, "Yearly", g.Yearly)
				printGoals(cmd, "Quarterly", g.Quarterly)
				printGoals(cmd, "Monthly", g.Monthly)
				return nil
			})
		},
	}
}

func printGoals(cmd *cobra.Command, title string, goals []engine.Goal) {
	if len(goals) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.H2.Render(title))
	for _, g := range goals {
		line := fmt.Sprintf("- %s %s %s", g.Title, ui.ProgressBar(float64(g.Progress), 10), ui.Percent(float64(g.Progress)))
		if g.Deadline != "" {
			line += ui.Muted.Render(" due " + g.Deadline)
		}
		fmt.Fprintln(out, line)
	}
}
