package usecase

import (
	"context"

	"github.com/trebuchet-org/salted/internal/domain/models"
	"github.com/trebuchet-org/salted/pkg/ledger"
)

// LedgerStore persists the local ledger deployments run against
type LedgerStore interface {
	// Load returns the stored ledger, or an empty one when none was saved yet
	Load(ctx context.Context) (*ledger.Ledger, error)
	Save(ctx context.Context, l *ledger.Ledger) error
}

// DeploymentStore handles persistence of deployment records
type DeploymentStore interface {
	GetDeployment(ctx context.Context, id string) (*models.Deployment, error)
	GetDeploymentByAddress(ctx context.Context, address string) (*models.Deployment, error)
	ListDeployments(ctx context.Context) ([]*models.Deployment, error)
	SaveDeployment(ctx context.Context, deployment *models.Deployment) error
	// Clear removes every deployment record
	Clear(ctx context.Context) error
}

// Confirmer asks the user to confirm an action
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// DeploymentSelector lets the user pick one of several matching deployments
type DeploymentSelector interface {
	SelectDeployment(ctx context.Context, deployments []*models.Deployment, prompt string) (*models.Deployment, error)
}

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
