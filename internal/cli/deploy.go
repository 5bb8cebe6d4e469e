package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/salted/internal/cli/render"
	"github.com/trebuchet-org/salted/internal/usecase"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var (
		file  string
		value string
		label string
		yes   bool
	)

	cmd := &cobra.Command{
		Use:   "deploy <salt> [init-code]",
		Short: "Deploy init code through the factory",
		Long: `Deploy contract init code through the factory at the address predicted for the salt.

Every failure is reported the same way: the factory reverts with DeploymentFailed()
and the ledger is left exactly as it was.`,
		Example: `  # Deploy inline init code
  salted deploy 0x01 0x69602a60005360016000f3600052600a6016f3 --label answer

  # Deploy init code from a file and send 1000 wei to the new contract
  salted deploy 0x02 --file out/Counter.bin --value 1000`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			salt, err := parseSalt(args[0])
			if err != nil {
				return err
			}
			var inline string
			if len(args) == 2 {
				inline = args[1]
			}
			payload, err := parsePayload(inline, file)
			if err != nil {
				return err
			}
			amount, err := parseAmount(value)
			if err != nil {
				return err
			}

			result, err := app.DeployContract.Run(cmd.Context(), usecase.DeployContractParams{
				Salt:        salt,
				Payload:     payload,
				Value:       amount,
				Label:       label,
				SkipConfirm: yes,
			})
			if err != nil {
				return err
			}

			if app.Config.Structured() {
				return render.Structured(cmd.OutOrStdout(), app.Config.Output, result.Deployment)
			}
			return render.NewDeploymentRenderer(cmd.OutOrStdout()).Render(result.Deployment)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read init code (hex) from a file")
	cmd.Flags().StringVar(&value, "value", "", "Wei sent along to the created contract")
	cmd.Flags().StringVarP(&label, "label", "l", "", "Label recorded in the deployment history")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
