package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/salted/internal/cli/render"
	"github.com/trebuchet-org/salted/internal/usecase"
)

// NewPredictCmd creates the predict command
func NewPredictCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predict <salt>",
		Short: "Compute the address a salt deploys to",
		Long: `Compute where a deployment with the given salt lands, without touching the ledger.

The address depends only on the factory, the caller and the salt.`,
		Example: `  salted predict 0x01
  salted predict 0x5a17 --caller 0x1111111111111111111111111111111111111111`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			salt, err := parseSalt(args[0])
			if err != nil {
				return err
			}

			result, err := app.PredictAddress.Run(cmd.Context(), usecase.PredictAddressParams{Salt: salt})
			if err != nil {
				return err
			}

			if app.Config.Structured() {
				return render.Structured(cmd.OutOrStdout(), app.Config.Output, result)
			}
			return render.NewPredictionRenderer(cmd.OutOrStdout()).Render(result)
		},
	}
}
