package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/salted/internal/domain"
	"github.com/trebuchet-org/salted/internal/domain/models"
)

// ShowAccountParams contains parameters for showing an account
type ShowAccountParams struct {
	Address     common.Address
	IncludeCode bool
}

// ShowAccount reads one account from the local ledger
type ShowAccount struct {
	ledgers     LedgerStore
	deployments DeploymentStore
}

// NewShowAccount creates a new ShowAccount use case
func NewShowAccount(ledgers LedgerStore, deployments DeploymentStore) *ShowAccount {
	return &ShowAccount{
		ledgers:     ledgers,
		deployments: deployments,
	}
}

// Run executes the use case
func (uc *ShowAccount) Run(ctx context.Context, params ShowAccountParams) (*models.AccountState, error) {
	l, err := uc.ledgers.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	acc, exists := l.Account(params.Address)
	state := &models.AccountState{
		Address:  params.Address.Hex(),
		Exists:   exists,
		Nonce:    acc.Nonce,
		Balance:  acc.Balance.Dec(),
		CodeSize: len(acc.Code),
		CodeHash: l.CodeHash(params.Address).Hex(),
	}
	if params.IncludeCode && len(acc.Code) > 0 {
		state.Code = hexutil.Encode(acc.Code)
	}

	dep, err := uc.deployments.GetDeploymentByAddress(ctx, params.Address.Hex())
	switch {
	case err == nil:
		state.Deployment = dep
	case errors.Is(err, domain.ErrNotFound):
	default:
		return nil, err
	}

	return state, nil
}
