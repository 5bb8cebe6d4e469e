package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/salted/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestProvider(t *testing.T) {
	t.Run("defaults without salted.toml", func(t *testing.T) {
		dir := t.TempDir()

		cfg, err := Provider(SetupViper(dir, nil))
		require.NoError(t, err)

		assert.Equal(t, dir, cfg.ProjectRoot)
		assert.Equal(t, filepath.Join(dir, ".salted"), cfg.DataDir)
		assert.Equal(t, DefaultFactory, cfg.Factory)
		assert.Equal(t, common.Address{}, cfg.Caller)
		assert.Equal(t, uint64(DefaultGasBudget), cfg.GasBudget)
		assert.Equal(t, 5*time.Minute, cfg.Timeout)
		assert.Equal(t, "defaults", cfg.ConfigSource)
	})

	t.Run("reads salted.toml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "salted.toml", `
[factory]
address = "0x00000000000000000000000000000000000fac70"

[deployer]
caller = "0x1111111111111111111111111111111111111111"
gas_budget = 500000
`)

		cfg, err := Provider(SetupViper(dir, nil))
		require.NoError(t, err)

		assert.Equal(t, common.HexToAddress("0x00000000000000000000000000000000000fac70"), cfg.Factory)
		assert.Equal(t, common.HexToAddress("0x1111111111111111111111111111111111111111"), cfg.Caller)
		assert.Equal(t, uint64(500000), cfg.GasBudget)
		assert.Equal(t, "salted.toml", cfg.ConfigSource)
	})

	t.Run("environment overrides salted.toml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "salted.toml", `
[deployer]
caller = "0x1111111111111111111111111111111111111111"
`)
		t.Setenv("SALTED_CALLER", "0x2222222222222222222222222222222222222222")
		t.Setenv("SALTED_GAS_BUDGET", "42")

		cfg, err := Provider(SetupViper(dir, nil))
		require.NoError(t, err)

		assert.Equal(t, common.HexToAddress("0x2222222222222222222222222222222222222222"), cfg.Caller)
		assert.Equal(t, uint64(42), cfg.GasBudget)
	})

	t.Run("expands variables from .env", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".env", "SALTED_TEST_FACTORY=0x00000000000000000000000000000000000fac71\n")
		writeFile(t, dir, "salted.toml", `
[factory]
address = "${SALTED_TEST_FACTORY}"
`)
		t.Cleanup(func() { os.Unsetenv("SALTED_TEST_FACTORY") })

		cfg, err := Provider(SetupViper(dir, nil))
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress("0x00000000000000000000000000000000000fac71"), cfg.Factory)
	})

	t.Run("rejects a malformed address", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "salted.toml", `
[factory]
address = "0x1234"
`)

		_, err := Provider(SetupViper(dir, nil))
		assert.ErrorIs(t, err, domain.ErrInvalidAddress)
	})

	t.Run("rejects invalid toml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "salted.toml", "[factory\n")

		_, err := Provider(SetupViper(dir, nil))
		assert.Error(t, err)
	})
}

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("  0x1111111111111111111111111111111111111111 ")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x1111111111111111111111111111111111111111"), addr)

	for _, s := range []string{"", "0x", "0x11", "zz11111111111111111111111111111111111111"} {
		_, err := ParseAddress(s)
		assert.ErrorIs(t, err, domain.ErrInvalidAddress, s)
	}
}

func TestProvider_UsesViperProjectRoot(t *testing.T) {
	dir := t.TempDir()
	v := viper.New()
	v.Set("project_root", dir)

	cfg, err := Provider(v)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.ProjectRoot)
	assert.Zero(t, cfg.Timeout)
}

func TestProvider_OutputFormat(t *testing.T) {
	dir := t.TempDir()

	v := SetupViper(dir, nil)
	cfg, err := Provider(v)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output)
	assert.False(t, cfg.Structured())

	v.Set("output", "YAML")
	cfg, err = Provider(v)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output)
	assert.True(t, cfg.Structured())
	assert.False(t, cfg.JSON)

	v.Set("json", true)
	cfg, err = Provider(v)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)

	v.Set("json", false)
	v.Set("output", "xml")
	_, err = Provider(v)
	assert.ErrorContains(t, err, "unknown output format")
}
