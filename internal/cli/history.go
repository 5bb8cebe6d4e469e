package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/salted/internal/cli/render"
	"github.com/trebuchet-org/salted/internal/usecase"
)

// NewHistoryCmd creates the history command
func NewHistoryCmd() *cobra.Command {
	var caller string

	cmd := &cobra.Command{
		Use:     "history [query]",
		Aliases: []string{"ls", "list"},
		Short:   "List past deployments",
		Long: `List deployments made through the factory, newest first.

An optional query fuzzy-matches labels and addresses.`,
		Example: `  salted history
  salted history counter
  salted history --by 0x1111111111111111111111111111111111111111`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListDeploymentsParams{Query: strings.Join(args, " ")}
			if caller != "" {
				addr, err := parseAddressArg(caller)
				if err != nil {
					return err
				}
				params.Caller = addr.Hex()
			}

			result, err := app.ListDeployments.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.Structured() {
				return render.Structured(cmd.OutOrStdout(), app.Config.Output, result.Deployments)
			}
			return render.NewDeploymentsRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVar(&caller, "by", "", "Only deployments made by this caller")

	return cmd
}
