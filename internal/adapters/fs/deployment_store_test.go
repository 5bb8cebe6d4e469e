package fs

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/salted/internal/domain"
	"github.com/trebuchet-org/salted/internal/domain/config"
	"github.com/trebuchet-org/salted/internal/domain/models"
)

func TestDeploymentStore(t *testing.T) {
	ctx := context.Background()
	store := NewDeploymentStoreAdapter(&config.RuntimeConfig{DataDir: filepath.Join(t.TempDir(), ".salted")})

	list, err := store.ListDeployments(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	first := &models.Deployment{
		ID:        "0xfac/0x1111/0x01",
		Label:     "counter",
		Address:   "0xAbCd000000000000000000000000000000000001",
		CodeSize:  10,
		CreatedAt: time.Now().Truncate(time.Second),
	}
	second := &models.Deployment{
		ID:      "0xfac/0x1111/0x00",
		Address: "0xAbCd000000000000000000000000000000000002",
	}
	require.NoError(t, store.SaveDeployment(ctx, first))
	require.NoError(t, store.SaveDeployment(ctx, second))

	t.Run("by id", func(t *testing.T) {
		dep, err := store.GetDeployment(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "counter", dep.Label)
		assert.True(t, first.CreatedAt.Equal(dep.CreatedAt))
	})

	t.Run("by address ignores case", func(t *testing.T) {
		dep, err := store.GetDeploymentByAddress(ctx, "0xabcd000000000000000000000000000000000001")
		require.NoError(t, err)
		assert.Equal(t, first.ID, dep.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := store.GetDeployment(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = store.GetDeploymentByAddress(ctx, "0x0000000000000000000000000000000000000000")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list is ordered by id", func(t *testing.T) {
		list, err := store.ListDeployments(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, second.ID, list[0].ID)
		assert.Equal(t, first.ID, list[1].ID)
	})

	t.Run("rejects missing id", func(t *testing.T) {
		assert.Error(t, store.SaveDeployment(ctx, &models.Deployment{}))
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, store.Clear(ctx))
		list, err := store.ListDeployments(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)

		// clearing twice is fine
		require.NoError(t, store.Clear(ctx))
	})
}
