//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/salted/internal/adapters"
	"github.com/trebuchet-org/salted/internal/config"
	"github.com/trebuchet-org/salted/internal/logging"
	"github.com/trebuchet-org/salted/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewPredictAddress,
		usecase.NewDeployContract,
		usecase.NewShowAccount,
		usecase.NewResolveAccount,
		usecase.NewListDeployments,
		usecase.NewFundAccount,
		usecase.NewResetLedger,

		// App
		NewApp,
	)
	return nil, nil
}
