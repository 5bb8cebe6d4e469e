package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/salted/internal/domain/config"
	"github.com/trebuchet-org/salted/internal/domain/models"
	"github.com/trebuchet-org/salted/pkg/derive"
)

// PredictAddressParams contains parameters for predicting an address
type PredictAddressParams struct {
	Salt common.Hash

	// Optional overrides of the configured caller and factory
	Caller  *common.Address
	Factory *common.Address
}

// PredictAddress computes where a deployment lands without touching any state
type PredictAddress struct {
	config *config.RuntimeConfig
}

// NewPredictAddress creates a new PredictAddress use case
func NewPredictAddress(cfg *config.RuntimeConfig) *PredictAddress {
	return &PredictAddress{config: cfg}
}

// Run executes the use case
func (uc *PredictAddress) Run(ctx context.Context, params PredictAddressParams) (*models.Prediction, error) {
	caller, factory := uc.config.Caller, uc.config.Factory
	if params.Caller != nil {
		caller = *params.Caller
	}
	if params.Factory != nil {
		factory = *params.Factory
	}
	return predict(params.Salt, caller, factory), nil
}

func predict(salt common.Hash, caller, factory common.Address) *models.Prediction {
	return &models.Prediction{
		Factory:        factory.Hex(),
		Caller:         caller.Hex(),
		Salt:           salt.Hex(),
		NamespacedSalt: derive.NamespacedSalt(salt, caller).Hex(),
		Relay:          derive.RelayAddress(salt, caller, factory).Hex(),
		Address:        derive.PredictedAddress(salt, caller, factory).Hex(),
	}
}
