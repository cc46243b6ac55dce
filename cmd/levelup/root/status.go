package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"levelup/internal/engine"
	"levelup/internal/syncer"
	"levelup/internal/ui"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the character, stats and progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLoadedApp(context.Background(), func(a *app) error {
				printStatus(cmd, a.syn.Snapshot(), time.Now())
				return nil
			})
		},
	}
}

func printStatus(cmd *cobra.Command, st syncer.State, now time.Time) {
	out := cmd.OutOrStdout()
	c := st.Character
	fmt.Fprintln(out, ui.Heading(ui.IconSparkle, c.Name))
	if age := c.AgeDisplay(now); age != "" {
		fmt.Fprintln(out, ui.LabelValue("Age", age))
	}
	fmt.Fprintln(out, ui.LabelValue("Level", c.Level))
	fmt.Fprintln(out, ui.LabelValue("EXP", fmt.Sprintf("%d/%d %s", c.Exp, c.ExpToNext, ui.ProgressBar(c.ExpProgress(), 20))))
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, ui.H2.Render("📊 Stats"))
	for _, axis := range engine.StatAxes {
		fmt.Fprintln(out, "- "+ui.StatLine(axis, c.Stats.Get(axis)))
	}
	fmt.Fprintln(out, "")

	totals := st.Totals()
	fmt.Fprintln(out, ui.H2.Render("📈 Progress"))
	fmt.Fprintf(out, "- %s %d/%d %s\n", ui.Key.Render("Quests completed:"), totals.CompletedQuests, len(st.Quests), ui.Muted.Render("("+ui.Percent(totals.QuestRate)+")"))
	fmt.Fprintf(out, "- %s %d/%d %s\n", ui.Key.Render("Achievements:"), totals.Unlocked, len(st.Achievements), ui.Muted.Render("("+ui.Percent(totals.UnlockRate)+")"))
	fmt.Fprintf(out, "- %s %s\n", ui.Key.Render("Net worth:"), ui.FormatCurrency(totals.NetWorth))
	if len(totals.HighPriority) > 0 {
		fmt.Fprintf(out, "- %s %d\n", ui.Key.Render("Open high-priority quests:"), len(totals.HighPriority))
	}
	if !st.LastSync.IsZero() {
		fmt.Fprintln(out, ui.Muted.Render("last sync "+st.LastSync.Format("02/01/2006 15:04:05")))
	}
}
