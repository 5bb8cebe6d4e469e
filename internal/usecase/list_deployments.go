package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/salted/internal/domain/models"
)

// ListDeploymentsParams contains parameters for listing deployments
type ListDeploymentsParams struct {
	// Query fuzzy-matches labels and addresses
	Query string
	// Caller keeps only deployments made by this caller
	Caller string
}

// ListDeploymentsResult contains the matching deployments, newest first
type ListDeploymentsResult struct {
	Deployments []*models.Deployment
	Total       int
}

// ListDeployments lists the deployment history
type ListDeployments struct {
	store DeploymentStore
	sink  ProgressSink
}

// NewListDeployments creates a new ListDeployments use case
func NewListDeployments(store DeploymentStore, sink ProgressSink) *ListDeployments {
	return &ListDeployments{
		store: store,
		sink:  sink,
	}
}

// Run executes the use case
func (uc *ListDeployments) Run(ctx context.Context, params ListDeploymentsParams) (*ListDeploymentsResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading deployments",
		Spinner: true,
	})

	all, err := uc.store.ListDeployments(ctx)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "loaded"})
	if err != nil {
		return nil, err
	}

	deployments := all
	if params.Caller != "" {
		deployments = lo.Filter(deployments, func(d *models.Deployment, _ int) bool {
			return strings.EqualFold(d.Caller, params.Caller)
		})
	}

	if params.Query != "" {
		deployments = fuzzyFilter(deployments, params.Query)
	} else {
		sort.SliceStable(deployments, func(i, j int) bool {
			return deployments[i].CreatedAt.After(deployments[j].CreatedAt)
		})
	}

	return &ListDeploymentsResult{
		Deployments: deployments,
		Total:       len(all),
	}, nil
}

// deploymentSource adapts deployments to fuzzy.Source
type deploymentSource []*models.Deployment

func (s deploymentSource) String(i int) string {
	return s[i].Label + " " + s[i].Address
}

func (s deploymentSource) Len() int {
	return len(s)
}

// fuzzyFilter returns the deployments matching query, best match first
func fuzzyFilter(deployments []*models.Deployment, query string) []*models.Deployment {
	matches := fuzzy.FindFrom(query, deploymentSource(deployments))
	return lo.Map(matches, func(m fuzzy.Match, _ int) *models.Deployment {
		return deployments[m.Index]
	})
}
