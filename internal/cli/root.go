package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/salted/internal/app"
	"github.com/trebuchet-org/salted/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "salted",
		Short: "Deterministic, caller-namespaced contract deployments",
		Long: `salted deploys contracts through a factory whose addresses depend only on the
factory, the caller and a salt. The contract's init code does not affect the address,
and no other caller can claim it.

Deployments run against a local ledger kept in .salted/.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			appInstance.Logger.Debug("configuration loaded",
				"source", appInstance.Config.ConfigSource,
				"project", appInstance.Config.ProjectRoot,
				"factory", appInstance.Config.Factory,
				"caller", appInstance.Config.Caller,
			)

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().String("factory", "", "Factory address (overrides salted.toml)")
	rootCmd.PersistentFlags().String("caller", "", "Caller address (overrides salted.toml)")
	rootCmd.PersistentFlags().Uint64("gas-budget", 0, "Compute budget of a deployment")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "ledger",
		Title: "Ledger Commands",
	})

	for _, cmd := range []*cobra.Command{NewPredictCmd(), NewDeployCmd(), NewHistoryCmd()} {
		cmd.GroupID = "main"
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{NewShowCmd(), NewFundCmd(), NewResetCmd()} {
		cmd.GroupID = "ledger"
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
