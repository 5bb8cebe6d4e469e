package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/salted/internal/cli/render"
	"github.com/trebuchet-org/salted/internal/config"
	"github.com/trebuchet-org/salted/internal/usecase"
)

// NewFundCmd creates the fund command
func NewFundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fund <address> <wei>",
		Short: "Credit balance to an address in the local ledger",
		Long: `Credit balance to an address so it can send value with its deployments.
The amount is in wei, decimal or 0x-prefixed hex.`,
		Example: `  salted fund 0x1111111111111111111111111111111111111111 1000000000000000000`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			address, err := parseAddressArg(args[0])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			result, err := app.FundAccount.Run(cmd.Context(), usecase.FundAccountParams{
				Address: address,
				Amount:  amount,
			})
			if err != nil {
				return err
			}

			if app.Config.Structured() {
				return render.Structured(cmd.OutOrStdout(), app.Config.Output, result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess(fmt.Sprintf("%s now holds %s wei", result.Address, result.Balance)))
			return nil
		},
	}
}

func parseAddressArg(s string) (common.Address, error) {
	return config.ParseAddress(s)
}
