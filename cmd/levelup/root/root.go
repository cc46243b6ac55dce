package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"levelup/internal/ui"
)

const Version = "0.1.0"

var settingsPath string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "levelup",
		Short:         "Level Up: RPG self-development tracker",
		Long:          "Level Up tracks a character, quests, achievements, resources and goals kept in a spreadsheet (or a local SQLite workbook).",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	cmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "settings file (default: user config dir, or $LEVELUP_SETTINGS)")

	cmd.AddCommand(
		newConnectCmd(),
		newSyncCmd(),
		newStatusCmd(),
		newQuestsCmd(),
		newCompleteCmd(),
		newAchievementsCmd(),
		newResourcesCmd(),
		newNoteCmd(),
		newNotesCmd(),
		newCharacterCmd(),
		newGoalsCmd(),
		newSettingsCmd(),
		newWorkbookCmd(),
		newBoardCmd(),
		newExportCmd(),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
