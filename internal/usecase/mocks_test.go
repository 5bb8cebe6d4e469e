package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/salted/internal/domain/models"
	"github.com/trebuchet-org/salted/internal/usecase"
	"github.com/trebuchet-org/salted/pkg/ledger"
)

// MockDeploymentStore is a mock implementation of DeploymentStore
type MockDeploymentStore struct {
	mock.Mock
}

func (m *MockDeploymentStore) GetDeployment(ctx context.Context, id string) (*models.Deployment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deployment), args.Error(1)
}

func (m *MockDeploymentStore) GetDeploymentByAddress(ctx context.Context, address string) (*models.Deployment, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deployment), args.Error(1)
}

func (m *MockDeploymentStore) ListDeployments(ctx context.Context) ([]*models.Deployment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Deployment), args.Error(1)
}

func (m *MockDeploymentStore) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	args := m.Called(ctx, deployment)
	return args.Error(0)
}

func (m *MockDeploymentStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockConfirmer is a mock implementation of Confirmer
type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	args := m.Called(ctx, prompt)
	return args.Bool(0), args.Error(1)
}

// memLedgerStore keeps the ledger as a dump, like the file store does
type memLedgerStore struct {
	dump  *ledger.Dump
	saves int
}

func (s *memLedgerStore) Load(ctx context.Context) (*ledger.Ledger, error) {
	return ledger.FromDump(s.dump)
}

func (s *memLedgerStore) Save(ctx context.Context, l *ledger.Ledger) error {
	s.dump = l.Dump()
	s.saves++
	return nil
}

// MockProgressSink records progress events
type MockProgressSink struct {
	usecase.NopProgress
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

// MockDeploymentSelector is a mock implementation of DeploymentSelector
type MockDeploymentSelector struct {
	mock.Mock
}

func (m *MockDeploymentSelector) SelectDeployment(ctx context.Context, deployments []*models.Deployment, prompt string) (*models.Deployment, error) {
	args := m.Called(ctx, deployments, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deployment), args.Error(1)
}
