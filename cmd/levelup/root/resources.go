package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"levelup/internal/engine"
	"levelup/internal/ui"
)

func newResourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resources",
		Short: "Show resources and their details",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLoadedApp(context.Background(), func(a *app) error {
				out := cmd.OutOrStdout()
				st := a.syn.Snapshot()
				lang := a.cfg.Settings.Language

				fmt.Fprintln(out, ui.Heading(ui.IconMoney, "Resources"))
				for _, r := range st.Resources {
					fmt.Fprintf(out, "%s %s %s %s\n", r.Icon, ui.H2.Render(r.Name), ui.Muted.Render(fmt.Sprintf("L%d", r.Level)), ui.ProgressBar(float64(r.Progress), 10))
					if r.NextMilestone != "" {
						fmt.Fprintln(out, "   "+ui.LabelValue("Next", r.NextMilestone))
					}
					_, details, _ := st.Details.Lookup(r.Name)
					for _, d := range details {
						line := fmt.Sprintf("   #%d %s %s %s", d.ID, d.Name, ui.DetailTypeText(d), ui.SignedAmount(d.Contribution()))
						if !d.IsActive() {
							line = ui.Muted.Render(fmt.Sprintf("   #%d %s (inactive) %s", d.ID, d.Name, ui.FormatAmount("", d.Amount, lang)))
						}
						fmt.Fprintln(out, line)
					}
					if len(details) > 0 {
						fmt.Fprintln(out, "   "+ui.LabelValue("Total", ui.SignedAmount(engine.ResourceTotal(details))))
					}
				}
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.LabelValue("Net worth", ui.FormatCurrency(engine.NetWorth(st.Details))))
				return nil
			})
		},
	}
	cmd.AddCommand(newResourceAddCmd())
	return cmd
}

func newResourceAddCmd() *cobra.Command {
	var (
		amount float64
		typ    string
		notes  string
		date   string
		status string
	)
	cmd := &cobra.Command{
		Use:   "add <resource> <name>",
		Short: "Add a detail (asset, loan, investment, income, expense) to a resource",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("resource and name are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			return withLoadedApp(ctx, func(a *app) error {
				d, err := a.syn.AddResourceDetail(ctx, args[0], engine.ResourceDetail{
					Name:   args[1],
					Amount: amount,
					Type:   engine.ParseDetailType(typ),
					Notes:  notes,
					Date:   date,
					Status: engine.DetailStatus(status),
				})
				if err != nil && d.ID == 0 {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s #%d %s %s\n", ui.Good.Render(ui.IconPlus), d.Name, d.ID, ui.DetailTypeText(d), ui.FormatAmount("", d.Amount, a.cfg.Settings.Language))
				if err != nil {
					return fmt.Errorf("saved locally but not pushed: %w", userError(err))
				}
				return nil
			})
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount (required, positive)")
	cmd.Flags().StringVar(&typ, "type", string(engine.DetailAsset), "asset|loan|investment|income|expense")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&date, "date", "", "date as dd/mm/yyyy (default today)")
	cmd.Flags().StringVar(&status, "status", string(engine.DetailActive), "active|inactive")
	return cmd
}
