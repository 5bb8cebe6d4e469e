package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/salted/internal/domain"
	"github.com/trebuchet-org/salted/internal/domain/config"
	"github.com/trebuchet-org/salted/pkg/ledger"
)

// ResetLedgerParams contains parameters for resetting the local ledger
type ResetLedgerParams struct {
	DryRun bool // If true, only count what would be removed
}

// ResetLedgerResult contains what the reset removed, or would remove
type ResetLedgerResult struct {
	Accounts    int  `json:"accounts" yaml:"accounts"`
	Deployments int  `json:"deployments" yaml:"deployments"`
	Applied     bool `json:"applied" yaml:"applied"`
}

// HasChanges reports whether there is anything to reset
func (r *ResetLedgerResult) HasChanges() bool {
	return r.Accounts > 0 || r.Deployments > 0
}

// ResetLedger wipes the local ledger and the deployment history
type ResetLedger struct {
	config      *config.RuntimeConfig
	ledgers     LedgerStore
	deployments DeploymentStore
	confirmer   Confirmer
}

// NewResetLedger creates a new ResetLedger use case
func NewResetLedger(
	cfg *config.RuntimeConfig,
	ledgers LedgerStore,
	deployments DeploymentStore,
	confirmer Confirmer,
) *ResetLedger {
	return &ResetLedger{
		config:      cfg,
		ledgers:     ledgers,
		deployments: deployments,
		confirmer:   confirmer,
	}
}

// Run executes the reset ledger use case
func (uc *ResetLedger) Run(ctx context.Context, params ResetLedgerParams) (*ResetLedgerResult, error) {
	l, err := uc.ledgers.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	deployments, err := uc.deployments.ListDeployments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deployments: %w", err)
	}

	result := &ResetLedgerResult{
		Accounts:    len(l.Addresses()),
		Deployments: len(deployments),
	}
	if !result.HasChanges() || params.DryRun {
		return result, nil
	}

	if !uc.config.NonInteractive {
		prompt := fmt.Sprintf("Remove %d accounts and %d deployments? This cannot be undone", result.Accounts, result.Deployments)
		ok, err := uc.confirmer.Confirm(ctx, prompt)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrAborted
		}
	}

	if err := uc.ledgers.Save(ctx, ledger.New()); err != nil {
		return nil, fmt.Errorf("failed to reset ledger: %w", err)
	}
	if err := uc.deployments.Clear(ctx); err != nil {
		return nil, fmt.Errorf("failed to reset deployments: %w", err)
	}

	result.Applied = true
	return result, nil
}
