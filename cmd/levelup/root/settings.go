package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"levelup/internal/config"
	"levelup/internal/ui"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change local settings",
	}
	cmd.AddCommand(newSettingsShowCmd(), newSettingsSetCmd())
	return cmd
}

func newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings (API key masked)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(settingsPath)
			if err != nil {
				return err
			}
			s := cfg.Settings.Masked()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconInfo, "Settings"))
			fmt.Fprintln(out, ui.LabelValue("File", cfg.Path))
			fmt.Fprintln(out, ui.LabelValue("backend", s.Backend))
			fmt.Fprintln(out, ui.LabelValue("sheet_id", s.SheetID))
			fmt.Fprintln(out, ui.LabelValue("api_key", s.APIKey))
			if s.WorkbookPath != "" {
				fmt.Fprintln(out, ui.LabelValue("workbook_path", s.WorkbookPath))
			}
			fmt.Fprintln(out, ui.LabelValue("auto_sync", s.AutoSync))
			fmt.Fprintln(out, ui.LabelValue("sync_interval", fmt.Sprintf("%d min", s.SyncInterval)))
			fmt.Fprintln(out, ui.LabelValue("theme", s.Theme))
			fmt.Fprintln(out, ui.LabelValue("language", s.Language))
			fmt.Fprintln(out, ui.LabelValue("notifications", s.Notifications))
			return nil
		},
	}
}

func newSettingsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting and save the file",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("key and value are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(settingsPath)
			if err != nil {
				return err
			}
			// Reload the file so env overrides are not persisted.
			s, err := config.LoadSettings(cfg.Path)
			if err != nil {
				return err
			}
			if err := s.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := config.SaveSettings(cfg.Path, s); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" "+args[0]+" saved"))
			return nil
		},
	}
}
