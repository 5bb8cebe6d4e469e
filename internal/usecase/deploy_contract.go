package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/trebuchet-org/salted/internal/domain"
	"github.com/trebuchet-org/salted/internal/domain/config"
	"github.com/trebuchet-org/salted/internal/domain/models"
	"github.com/trebuchet-org/salted/pkg/factory"
)

// DeployContractParams contains parameters for deploying through the factory
type DeployContractParams struct {
	Salt    common.Hash
	Payload []byte
	Value   *uint256.Int
	Label   string

	// Optional overrides of the configured caller and gas budget
	Caller *common.Address
	Budget uint64

	// SkipConfirm deploys without asking, even in interactive mode
	SkipConfirm bool
}

// DeployContractResult contains the result of a deployment
type DeployContractResult struct {
	Prediction *models.Prediction
	Deployment *models.Deployment
}

// DeployContract runs the factory protocol against the local ledger
type DeployContract struct {
	config      *config.RuntimeConfig
	ledgers     LedgerStore
	deployments DeploymentStore
	executor    factory.Executor
	confirmer   Confirmer
	progress    ProgressSink
	log         *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	ledgers LedgerStore,
	deployments DeploymentStore,
	executor factory.Executor,
	confirmer Confirmer,
	progress ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		config:      cfg,
		ledgers:     ledgers,
		deployments: deployments,
		executor:    executor,
		confirmer:   confirmer,
		progress:    progress,
		log:         log,
	}
}

// Run executes the use case
func (uc *DeployContract) Run(ctx context.Context, params DeployContractParams) (*DeployContractResult, error) {
	caller := uc.config.Caller
	if params.Caller != nil {
		caller = *params.Caller
	}
	budget := uc.config.GasBudget
	if params.Budget != 0 {
		budget = params.Budget
	}
	value := params.Value
	if value == nil {
		value = new(uint256.Int)
	}

	prediction := predict(params.Salt, caller, uc.config.Factory)

	if !uc.config.NonInteractive && !params.SkipConfirm {
		prompt := fmt.Sprintf("Deploy %d bytes of init code to %s", len(params.Payload), prediction.Address)
		ok, err := uc.confirmer.Confirm(ctx, prompt)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrAborted
		}
	}

	l, err := uc.ledgers.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "deploying",
		Message: fmt.Sprintf("Deploying to %s", prediction.Address),
		Spinner: true,
	})

	f := factory.New(uc.config.Factory, l, uc.executor, factory.WithLogger(uc.log))
	res, err := f.Deploy(ctx, factory.DeployRequest{
		Caller:  caller,
		Salt:    params.Salt,
		Payload: params.Payload,
		Value:   value,
		Budget:  budget,
	})
	if err != nil {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: "failed", Message: "Deployment failed"})
		if errors.Is(err, factory.ErrDeploymentFailed) {
			return nil, domain.DeploymentFailedErr{
				Predicted: prediction.Address,
				Tag:       hexutil.Encode(factory.DeploymentFailedSelector),
			}
		}
		return nil, err
	}
	address := res.Address

	if err := uc.ledgers.Save(ctx, l); err != nil {
		return nil, fmt.Errorf("failed to save ledger: %w", err)
	}

	deployment := &models.Deployment{
		ID:           models.DeploymentID(prediction.Factory, prediction.Caller, prediction.Salt),
		Label:        params.Label,
		Address:      address.Hex(),
		Factory:      prediction.Factory,
		Caller:       prediction.Caller,
		Salt:         prediction.Salt,
		Relay:        res.Relay.Hex(),
		InitCodeHash: crypto.Keccak256Hash(params.Payload).Hex(),
		CodeHash:     l.CodeHash(address).Hex(),
		CodeSize:     l.CodeSize(address),
		Value:        value.Dec(),
		GasUsed:      res.GasUsed,
		CreatedAt:    time.Now(),
	}
	if err := uc.deployments.SaveDeployment(ctx, deployment); err != nil {
		return nil, fmt.Errorf("failed to record deployment: %w", err)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "completed",
		Message: fmt.Sprintf("Deployed %s", address.Hex()),
	})

	return &DeployContractResult{
		Prediction: prediction,
		Deployment: deployment,
	}, nil
}
