package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"levelup/internal/engine"
	"levelup/internal/syncer"
	"levelup/internal/ui"
)

func newCharacterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "character",
		Short: "Show or edit the character",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLoadedApp(context.Background(), func(a *app) error {
				printStatus(cmd, a.syn.Snapshot(), time.Now())
				return nil
			})
		},
	}
	cmd.AddCommand(newCharacterSetCmd())
	return cmd
}

func newCharacterSetCmd() *cobra.Command {
	var (
		name      string
		avatar    string
		birthYear int
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Edit name, avatar or birth year and push the character block",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := engine.Fields{}
			if cmd.Flags().Changed("name") {
				f["name"] = name
			}
			if cmd.Flags().Changed("avatar") {
				f["avatar"] = avatar
			}
			if cmd.Flags().Changed("birth-year") {
				if birthYear < engine.MinBirthYear || birthYear > time.Now().Year() {
					return fmt.Errorf("birth year must be between %d and %d", engine.MinBirthYear, time.Now().Year())
				}
				f["birth_year"] = strconv.Itoa(birthYear)
			}
			if len(f) == 0 {
				return errors.New("nothing to change (use --name, --avatar or --birth-year)")
			}

			ctx := context.Background()
			return withLoadedApp(ctx, func(a *app) error {
				c, err := a.syn.UpdateCharacter(ctx, f)
				if errors.Is(err, syncer.ErrSyncInProgress) {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Saved "+c.Name))
				if err != nil {
					return fmt.Errorf("saved locally but not pushed: %w", userError(err))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "character name")
	cmd.Flags().StringVar(&avatar, "avatar", "", "avatar URL")
	cmd.Flags().IntVar(&birthYear, "birth-year", 0, "birth year")
	return cmd
}
