package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/trebuchet-org/salted/internal/domain"
	"github.com/trebuchet-org/salted/internal/domain/config"
	"github.com/trebuchet-org/salted/internal/domain/models"
)

// ResolveAccount turns an address or a deployment label into an address
type ResolveAccount struct {
	config   *config.RuntimeConfig
	list     *ListDeployments
	selector DeploymentSelector
}

// NewResolveAccount creates a new ResolveAccount use case
func NewResolveAccount(cfg *config.RuntimeConfig, list *ListDeployments, selector DeploymentSelector) *ResolveAccount {
	return &ResolveAccount{
		config:   cfg,
		list:     list,
		selector: selector,
	}
}

// Run executes the use case
func (uc *ResolveAccount) Run(ctx context.Context, identifier string) (common.Address, error) {
	if common.IsHexAddress(identifier) {
		return common.HexToAddress(identifier), nil
	}

	result, err := uc.list.Run(ctx, ListDeploymentsParams{Query: identifier})
	if err != nil {
		return common.Address{}, err
	}

	// exact labels win over fuzzy matches; labels are not unique
	candidates := lo.Filter(result.Deployments, func(dep *models.Deployment, _ int) bool {
		return dep.Label == identifier
	})
	if len(candidates) == 0 {
		candidates = result.Deployments
	}

	switch len(candidates) {
	case 0:
		return common.Address{}, fmt.Errorf("%w: no deployment matches %q", domain.ErrNotFound, identifier)
	case 1:
		return common.HexToAddress(candidates[0].Address), nil
	}

	if uc.config.NonInteractive {
		return common.Address{}, fmt.Errorf("%q matches %d deployments, use an address instead", identifier, len(candidates))
	}

	dep, err := uc.selector.SelectDeployment(ctx, candidates, fmt.Sprintf("Select a deployment matching %q", identifier))
	if err != nil {
		return common.Address{}, err
	}
	return common.HexToAddress(dep.Address), nil
}
