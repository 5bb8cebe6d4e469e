package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/salted/internal/domain/config"
)

func newTestLedgerStore(t *testing.T) *LedgerStoreAdapter {
	t.Helper()
	return NewLedgerStoreAdapter(&config.RuntimeConfig{DataDir: filepath.Join(t.TempDir(), ".salted")})
}

func TestLedgerStore_LoadEmpty(t *testing.T) {
	store := newTestLedgerStore(t)

	l, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, l.Addresses())
}

func TestLedgerStore_SaveAndLoad(t *testing.T) {
	store := newTestLedgerStore(t)
	ctx := context.Background()
	addr := common.HexToAddress("0x1111111111111111111111111111111111111111")

	l, err := store.Load(ctx)
	require.NoError(t, err)
	l.SetNonce(addr, 2)
	l.SetCode(addr, []byte{0x60, 0x2a})
	l.AddBalance(addr, uint256.NewInt(99))
	require.NoError(t, store.Save(ctx, l))

	_, err = os.Stat(store.GetPath())
	require.NoError(t, err)
	_, err = os.Stat(store.GetPath() + ".tmp")
	assert.True(t, os.IsNotExist(err))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), loaded.Nonce(addr))
	assert.Equal(t, []byte{0x60, 0x2a}, loaded.Code(addr))
	assert.Equal(t, uint64(99), loaded.Balance(addr).Uint64())
}

func TestLedgerStore_Corrupt(t *testing.T) {
	store := newTestLedgerStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.GetPath()), 0755))
	require.NoError(t, os.WriteFile(store.GetPath(), []byte("{not json"), 0644))

	_, err := store.Load(context.Background())
	assert.ErrorContains(t, err, "failed to parse ledger file")
}
