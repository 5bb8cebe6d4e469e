package usecase_test

import (
	"context"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/salted/internal/domain"
	"github.com/trebuchet-org/salted/internal/domain/config"
	"github.com/trebuchet-org/salted/internal/domain/models"
	"github.com/trebuchet-org/salted/internal/usecase"
	"github.com/trebuchet-org/salted/pkg/ledger"
)

func fundedLedgerStore() *memLedgerStore {
	l := ledger.New()
	l.AddBalance(alice, uint256.NewInt(1))
	l.SetNonce(bob, 1)
	return &memLedgerStore{dump: l.Dump()}
}

func TestResetLedger(t *testing.T) {
	ctx := context.Background()
	records := []*models.Deployment{{ID: "a"}}

	t.Run("dry run leaves everything", func(t *testing.T) {
		ledgers := fundedLedgerStore()
		store := new(MockDeploymentStore)
		store.On("ListDeployments", ctx).Return(records, nil)

		uc := usecase.NewResetLedger(&config.RuntimeConfig{}, ledgers, store, nil)
		result, err := uc.Run(ctx, usecase.ResetLedgerParams{DryRun: true})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Accounts)
		assert.Equal(t, 1, result.Deployments)
		assert.False(t, result.Applied)
		assert.Zero(t, ledgers.saves)
		store.AssertNotCalled(t, "Clear", ctx)
	})

	t.Run("nothing to reset", func(t *testing.T) {
		store := new(MockDeploymentStore)
		store.On("ListDeployments", ctx).Return([]*models.Deployment{}, nil)

		uc := usecase.NewResetLedger(&config.RuntimeConfig{}, &memLedgerStore{}, store, nil)
		result, err := uc.Run(ctx, usecase.ResetLedgerParams{})
		require.NoError(t, err)
		assert.False(t, result.HasChanges())
	})

	t.Run("declined", func(t *testing.T) {
		ledgers := fundedLedgerStore()
		store := new(MockDeploymentStore)
		store.On("ListDeployments", ctx).Return(records, nil)
		confirmer := new(MockConfirmer)
		confirmer.On("Confirm", ctx, "Remove 2 accounts and 1 deployments? This cannot be undone").Return(false, nil)

		uc := usecase.NewResetLedger(&config.RuntimeConfig{}, ledgers, store, confirmer)
		_, err := uc.Run(ctx, usecase.ResetLedgerParams{})
		assert.ErrorIs(t, err, domain.ErrAborted)
		assert.Zero(t, ledgers.saves)
	})

	t.Run("applied", func(t *testing.T) {
		ledgers := fundedLedgerStore()
		store := new(MockDeploymentStore)
		store.On("ListDeployments", ctx).Return(records, nil)
		store.On("Clear", ctx).Return(nil)

		uc := usecase.NewResetLedger(&config.RuntimeConfig{NonInteractive: true}, ledgers, store, nil)
		result, err := uc.Run(ctx, usecase.ResetLedgerParams{})
		require.NoError(t, err)
		assert.True(t, result.Applied)
		assert.Empty(t, ledgers.dump.Accounts)
		store.AssertExpectations(t)
	})
}
