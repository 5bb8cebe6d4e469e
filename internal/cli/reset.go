package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/salted/internal/cli/render"
	"github.com/trebuchet-org/salted/internal/usecase"
)

// NewResetCmd creates the reset command
func NewResetCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe the local ledger and deployment history",
		Long: `Wipe the local ledger and the deployment history kept in .salted/.

Every salt becomes available again and all balances are gone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ResetLedger.Run(cmd.Context(), usecase.ResetLedgerParams{DryRun: dryRun})
			if err != nil {
				return err
			}

			if app.Config.Structured() {
				return render.Structured(cmd.OutOrStdout(), app.Config.Output, result)
			}

			out := cmd.OutOrStdout()
			switch {
			case !result.HasChanges():
				fmt.Fprintln(out, "Nothing to reset. The ledger is empty.")
			case !result.Applied:
				fmt.Fprintf(out, "Would remove %d accounts and %d deployments\n", result.Accounts, result.Deployments)
			default:
				fmt.Fprintln(out, render.FormatSuccess(fmt.Sprintf("Removed %d accounts and %d deployments", result.Accounts, result.Deployments)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Only show what would be removed")

	return cmd
}
