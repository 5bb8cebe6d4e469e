package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/trebuchet-org/salted/internal/domain"
)

// FundAccountParams contains parameters for crediting an account
type FundAccountParams struct {
	Address common.Address
	Amount  *uint256.Int
}

// FundAccountResult contains the balance after funding
type FundAccountResult struct {
	Address string `json:"address" yaml:"address"`
	Balance string `json:"balance" yaml:"balance"`
}

// FundAccount credits balance on the local ledger so deployments can carry value
type FundAccount struct {
	ledgers LedgerStore
}

// NewFundAccount creates a new FundAccount use case
func NewFundAccount(ledgers LedgerStore) *FundAccount {
	return &FundAccount{ledgers: ledgers}
}

// Run executes the use case
func (uc *FundAccount) Run(ctx context.Context, params FundAccountParams) (*FundAccountResult, error) {
	if params.Amount == nil || params.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidAmount)
	}

	l, err := uc.ledgers.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	l.AddBalance(params.Address, params.Amount)

	if err := uc.ledgers.Save(ctx, l); err != nil {
		return nil, fmt.Errorf("failed to save ledger: %w", err)
	}

	return &FundAccountResult{
		Address: params.Address.Hex(),
		Balance: l.Balance(params.Address).Dec(),
	}, nil
}
