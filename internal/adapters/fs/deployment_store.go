package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/trebuchet-org/salted/internal/domain"
	"github.com/trebuchet-org/salted/internal/domain/config"
	"github.com/trebuchet-org/salted/internal/domain/models"
	"github.com/trebuchet-org/salted/internal/usecase"
)

// DeploymentStoreAdapter implements DeploymentStore with a JSON file keyed by deployment ID
type DeploymentStoreAdapter struct {
	path string
	mu   sync.Mutex
}

// NewDeploymentStoreAdapter creates a new DeploymentStoreAdapter
func NewDeploymentStoreAdapter(cfg *config.RuntimeConfig) *DeploymentStoreAdapter {
	return &DeploymentStoreAdapter{
		path: filepath.Join(cfg.DataDir, "deployments.json"),
	}
}

func (s *DeploymentStoreAdapter) load() (map[string]*models.Deployment, error) {
	deployments := make(map[string]*models.Deployment)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return deployments, nil
		}
		return nil, fmt.Errorf("failed to read deployments file: %w", err)
	}

	if err := json.Unmarshal(data, &deployments); err != nil {
		return nil, fmt.Errorf("failed to parse deployments file: %w", err)
	}
	return deployments, nil
}

// GetDeployment retrieves a deployment by ID
func (s *DeploymentStoreAdapter) GetDeployment(_ context.Context, id string) (*models.Deployment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deployments, err := s.load()
	if err != nil {
		return nil, err
	}
	dep, ok := deployments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return dep, nil
}

// GetDeploymentByAddress retrieves a deployment by its created address
func (s *DeploymentStoreAdapter) GetDeploymentByAddress(_ context.Context, address string) (*models.Deployment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deployments, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, dep := range deployments {
		if strings.EqualFold(dep.Address, address) {
			return dep, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListDeployments returns every deployment ordered by ID
func (s *DeploymentStoreAdapter) ListDeployments(_ context.Context) ([]*models.Deployment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deployments, err := s.load()
	if err != nil {
		return nil, err
	}

	result := make([]*models.Deployment, 0, len(deployments))
	for _, dep := range deployments {
		result = append(result, dep)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// SaveDeployment saves a deployment, replacing any record with the same ID
func (s *DeploymentStoreAdapter) SaveDeployment(_ context.Context, deployment *models.Deployment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if deployment.ID == "" {
		return fmt.Errorf("deployment without ID")
	}

	deployments, err := s.load()
	if err != nil {
		return err
	}
	deployments[deployment.ID] = deployment

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create deployments directory: %w", err)
	}

	data, err := json.MarshalIndent(deployments, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal deployments: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write deployments file: %w", err)
	}

	return nil
}

// Clear removes the deployments file
func (s *DeploymentStoreAdapter) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove deployments file: %w", err)
	}
	return nil
}

// Ensure DeploymentStoreAdapter implements DeploymentStore
var _ usecase.DeploymentStore = (*DeploymentStoreAdapter)(nil)
