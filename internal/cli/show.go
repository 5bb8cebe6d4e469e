package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/salted/internal/cli/render"
	"github.com/trebuchet-org/salted/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var code bool

	cmd := &cobra.Command{
		Use:   "show <address|label>",
		Short: "Show the ledger state of an address",
		Long: `Show nonce, balance and code of an address in the local ledger, together with
the deployment that created it, if any.

A deployment label is matched against the history. When several deployments match,
you are asked to pick one.`,
		Example: `  salted show 0x1234567890abcdef1234567890abcdef12345678
  salted show counter --code`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			address, err := app.ResolveAccount.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			result, err := app.ShowAccount.Run(cmd.Context(), usecase.ShowAccountParams{
				Address:     address,
				IncludeCode: code,
			})
			if err != nil {
				return err
			}

			if app.Config.Structured() {
				return render.Structured(cmd.OutOrStdout(), app.Config.Output, result)
			}
			return render.NewAccountRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVar(&code, "code", false, "Include the runtime code")

	return cmd
}
