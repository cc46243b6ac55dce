package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"levelup/internal/engine"
	"levelup/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	var showAll bool
	cmd := &cobra.Command{
		Use:   "quests",
		Short: "List quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLoadedApp(context.Background(), func(a *app) error {
				out := cmd.OutOrStdout()
				quests := a.syn.Snapshot().Quests
				fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Quests"))
				shown := 0
				for _, q := range quests {
					if q.IsCompleted() && !showAll {
						continue
					}
					printQuest(cmd, q)
					shown++
				}
				if shown == 0 {
					fmt.Fprintln(out, ui.Muted.Render("(no open quests)"))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "include completed quests")
	return cmd
}

func printQuest(cmd *cobra.Command, q engine.Quest) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s %s %s\n",
		ui.Key.Render(fmt.Sprintf("#%d", q.ID)),
		q.Title,
		q.DifficultyStars(),
		ui.PriorityText(q))
	detail := fmt.Sprintf("   %s · %s · +%d EXP · %s", q.RequiredStat, q.Category, q.RewardExp, ui.QuestStatusText(q))
	if q.Deadline != "" {
		detail += " · due " + q.Deadline
	}
	fmt.Fprintln(out, detail)
}

func newCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Complete a quest and collect its EXP",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("id must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := strconv.Atoi(args[0])
			ctx := context.Background()
			return withLoadedApp(ctx, func(a *app) error {
				out := cmd.OutOrStdout()
				res, err := a.syn.CompleteQuest(ctx, id)
				if !res.Changed {
					if err != nil {
						return userError(err)
					}
					fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Quest %d is unknown or already completed.", id)))
					return nil
				}
				fmt.Fprintln(out, ui.Good.Render(fmt.Sprintf("%s Completed: %s (+%d EXP)", ui.IconDone, res.Quest.Title, res.Quest.RewardExp)))
				fmt.Fprintln(out, ui.LabelValue("Level", res.Character.Level))
				fmt.Fprintln(out, ui.LabelValue("EXP", fmt.Sprintf("%d/%d", res.Character.Exp, res.Character.ExpToNext)))
				if res.LevelsGained > 0 {
					fmt.Fprintf(out, "%s +%d\n", ui.BadgeLevelUp, res.LevelsGained)
				}
				if err != nil {
					return fmt.Errorf("saved locally but not pushed: %w", userError(err))
				}
				return nil
			})
		},
	}
}
