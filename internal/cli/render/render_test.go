package render

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/salted/internal/domain/models"
	"github.com/trebuchet-org/salted/internal/usecase"
	"gopkg.in/yaml.v3"
)

func init() {
	color.NoColor = true
}

var testDeployment = &models.Deployment{
	ID:           "0xfac/0x1111/0x01",
	Label:        "counter",
	Address:      "0x6C1C8D6a3B2ab1Ce63b4eF3a3fC0cB6E8dE33D9b",
	Factory:      "0x00000000000000000000000000000000005a17Ed",
	Caller:       "0x1111111111111111111111111111111111111111",
	Salt:         "0x0000000000000000000000000000000000000000000000000000000000000001",
	Relay:        "0x2222222222222222222222222222222222222222",
	InitCodeHash: "0xabcd",
	CodeHash:     "0xef01",
	CodeSize:     10,
	Value:        "5",
	GasUsed:      69_420,
	CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
}

func TestStructured(t *testing.T) {
	p := &models.Prediction{Address: "0xabc", Relay: "0xdef"}

	var buf bytes.Buffer
	require.NoError(t, Structured(&buf, "json", p))
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "0xabc", decoded["address"])

	buf.Reset()
	require.NoError(t, Structured(&buf, "yaml", p))
	decoded = nil
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "0xdef", decoded["relay"])

	assert.Error(t, Structured(&buf, "xml", p))
}

func TestPredictionRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPredictionRenderer(&buf).Render(&models.Prediction{
		Address: "0xAAAA",
		Relay:   "0xBBBB",
	}))
	assert.Contains(t, buf.String(), "Predicted deployment")
	assert.Regexp(t, `Address:\s+0xAAAA`, buf.String())
	assert.Regexp(t, `Relay:\s+0xBBBB`, buf.String())
}

func TestDeploymentRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewDeploymentRenderer(&buf).Render(testDeployment))
	out := buf.String()
	assert.Contains(t, out, "Deployed counter")
	assert.Regexp(t, `Gas used:\s+69420`, out)
	assert.Regexp(t, `Value:\s+5 wei`, out)
	assert.Contains(t, out, "2026-01-02 03:04:05")
}

func TestAccountRenderer(t *testing.T) {
	t.Run("contract with deployment", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewAccountRenderer(&buf).Render(&models.AccountState{
			Address:    testDeployment.Address,
			Exists:     true,
			Nonce:      1,
			Balance:    "5",
			CodeSize:   10,
			CodeHash:   "0xef01",
			Deployment: testDeployment,
		}))
		assert.Contains(t, buf.String(), "Contract "+testDeployment.Address)
		assert.Contains(t, buf.String(), "Deployment\n")
	})

	t.Run("unused", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewAccountRenderer(&buf).Render(&models.AccountState{Address: "0x1", Balance: "0"}))
		assert.Contains(t, buf.String(), "Unused 0x1")
		assert.NotContains(t, buf.String(), "Code hash")
	})

	t.Run("occupied without code", func(t *testing.T) {
		assert.Equal(t, "occupied account", accountKind(&models.AccountState{Exists: true, Nonce: 1}))
		assert.Equal(t, "funded account", accountKind(&models.AccountState{Exists: true}))
	})
}

func TestDeploymentsRenderer(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewDeploymentsRenderer(&buf).Render(&usecase.ListDeploymentsResult{}))
		assert.Equal(t, "No deployments found\n", buf.String())
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		unlabeled := *testDeployment
		unlabeled.Label = ""
		require.NoError(t, NewDeploymentsRenderer(&buf).Render(&usecase.ListDeploymentsResult{
			Deployments: []*models.Deployment{testDeployment, &unlabeled},
			Total:       3,
		}))
		out := buf.String()
		assert.Contains(t, out, "LABEL")
		assert.Contains(t, out, "counter")
		assert.Contains(t, out, testDeployment.Address)
		assert.Contains(t, out, "0x1111…1111")
		assert.Contains(t, out, "Showing 2 of 3 deployments")
	})
}

func TestShortHex(t *testing.T) {
	assert.Equal(t, "0x1234", shortHex("0x1234"))
	assert.Equal(t, "0x1111…2222", shortHex("0x1111aaaaaaaaaaaaaaaa2222"))
}

func TestCalculateTableColumnWidths(t *testing.T) {
	widths := calculateTableColumnWidths(TableData{
		{"\x1b[32mab\x1b[0m", "x"},
		{"a", "xyz…"},
	})
	assert.Equal(t, []int{2, 4}, widths)
}
