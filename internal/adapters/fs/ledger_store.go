package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/salted/internal/domain/config"
	"github.com/trebuchet-org/salted/internal/usecase"
	"github.com/trebuchet-org/salted/pkg/ledger"
)

// LedgerStoreAdapter implements LedgerStore using the file system
type LedgerStoreAdapter struct {
	path string
}

// NewLedgerStoreAdapter creates a new LedgerStoreAdapter
func NewLedgerStoreAdapter(cfg *config.RuntimeConfig) *LedgerStoreAdapter {
	return &LedgerStoreAdapter{
		path: filepath.Join(cfg.DataDir, "ledger.json"),
	}
}

// Load reads the ledger from disk. Returns an empty ledger if the file does not exist.
func (s *LedgerStoreAdapter) Load(_ context.Context) (*ledger.Ledger, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ledger.New(), nil
		}
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}

	var dump ledger.Dump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("failed to parse ledger file: %w", err)
	}

	l, err := ledger.FromDump(&dump)
	if err != nil {
		return nil, fmt.Errorf("failed to restore ledger: %w", err)
	}
	return l, nil
}

// Save writes the ledger to disk, creating the directory if needed.
func (s *LedgerStoreAdapter) Save(_ context.Context, l *ledger.Ledger) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}

	data, err := json.MarshalIndent(l.Dump(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}

	// write then rename so a crash never leaves a half-written ledger
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write ledger file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}

	return nil
}

// GetPath returns the path to the ledger file
func (s *LedgerStoreAdapter) GetPath() string {
	return s.path
}

// Ensure LedgerStoreAdapter implements LedgerStore
var _ usecase.LedgerStore = (*LedgerStoreAdapter)(nil)
