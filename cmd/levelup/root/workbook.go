package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"levelup/internal/config"
	"levelup/internal/ui"
)

func newWorkbookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workbook",
		Short: "Manage the local SQLite workbook",
	}
	cmd.AddCommand(newWorkbookInitCmd())
	return cmd
}

func newWorkbookInitCmd() *cobra.Command {
	var (
		path  string
		force bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the workbook and seed headers and defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg, err := config.Load(settingsPath)
			if err != nil {
				return err
			}
			if path == "" {
				path = cfg.Settings.WorkbookPath
			}
			logger := config.NewLogger(cfg.Env.LogLevel, nil)
			wb, err := openWorkbook(ctx, path, logger)
			if err != nil {
				return err
			}
			defer wb.Close()

			n, err := wb.Seed(ctx, force)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Seeded %d tabs", ui.IconDone, n)))
			if cfg.Settings.Backend != config.BackendSQLite {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("use it with: levelup settings set backend sqlite"))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "workbook file (default ~/.levelup.db)")
	cmd.Flags().BoolVar(&force, "force", false, "rewrite headers and defaults on tabs that already have data")
	return cmd
}
