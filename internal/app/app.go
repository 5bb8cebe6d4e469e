package app

import (
	"log/slog"

	"github.com/trebuchet-org/salted/internal/domain/config"
	"github.com/trebuchet-org/salted/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Use cases
	PredictAddress  *usecase.PredictAddress
	DeployContract  *usecase.DeployContract
	ShowAccount     *usecase.ShowAccount
	ResolveAccount  *usecase.ResolveAccount
	ListDeployments *usecase.ListDeployments
	FundAccount     *usecase.FundAccount
	ResetLedger     *usecase.ResetLedger
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	predictAddress *usecase.PredictAddress,
	deployContract *usecase.DeployContract,
	showAccount *usecase.ShowAccount,
	resolveAccount *usecase.ResolveAccount,
	listDeployments *usecase.ListDeployments,
	fundAccount *usecase.FundAccount,
	resetLedger *usecase.ResetLedger,
) (*App, error) {
	return &App{
		Config:          cfg,
		Logger:          logger,
		PredictAddress:  predictAddress,
		DeployContract:  deployContract,
		ShowAccount:     showAccount,
		ResolveAccount:  resolveAccount,
		ListDeployments: listDeployments,
		FundAccount:     fundAccount,
		ResetLedger:     resetLedger,
	}, nil
}
