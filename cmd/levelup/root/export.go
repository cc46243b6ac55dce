package root

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"levelup/internal/export"
)

func newExportCmd() *cobra.Command {
	var (
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a snapshot of the synced state as YAML or JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLoadedApp(context.Background(), func(a *app) error {
				snap := export.NewSnapshot(a.syn.Snapshot(), time.Now())
				var w io.Writer = cmd.OutOrStdout()
				if out != "" && out != "-" {
					f, err := os.Create(out)
					if err != nil {
						return fmt.Errorf("create %s: %w", out, err)
					}
					defer f.Close()
					w = f
				}
				return export.Write(w, snap, format)
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", export.FormatYAML, "yaml|json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}
