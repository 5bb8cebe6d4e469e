package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Factory settings
	Factory   common.Address
	Caller    common.Address
	GasBudget uint64

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool   // Output in JSON format
	Output         string // "text", "json" or "yaml"
	Timeout        time.Duration

	// Config source tracking
	ConfigSource string // "salted.toml" or "defaults"
}

// Structured reports whether results are printed for machines rather than people
func (c *RuntimeConfig) Structured() bool {
	return c.JSON || (c.Output != "" && c.Output != "text")
}
