package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/salted/internal/domain"
	"github.com/trebuchet-org/salted/internal/domain/config"
)

const (
	// ConfigFileName is the project configuration file
	ConfigFileName = "salted.toml"

	// DataDirName holds the local ledger and deployment history
	DataDirName = ".salted"

	// DefaultGasBudget is the compute budget of a deployment when none is configured
	DefaultGasBudget = 10_000_000
)

// DefaultFactory is the factory address used when none is configured
var DefaultFactory = common.HexToAddress("0x00000000000000000000000000000000005a17ed")

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, DataDirName),
		Factory:        DefaultFactory,
		GasBudget:      DefaultGasBudget,
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Output:         strings.ToLower(v.GetString("output")),
		Timeout:        v.GetDuration("timeout"),
		ConfigSource:   "defaults",
	}

	switch {
	case cfg.JSON:
		cfg.Output = "json"
	case cfg.Output == "":
		cfg.Output = "text"
	case cfg.Output == "json":
		cfg.JSON = true
	case cfg.Output != "text" && cfg.Output != "yaml":
		return nil, fmt.Errorf("unknown output format %q (want text, json or yaml)", cfg.Output)
	}

	fileCfg, err := loadFileConfig(projectRoot)
	if err != nil {
		return nil, err
	}
	if fileCfg != nil {
		cfg.ConfigSource = ConfigFileName
		if err := applyFileConfig(cfg, fileCfg); err != nil {
			return nil, err
		}
	}

	// Flags and SALTED_* environment variables win over salted.toml
	if s := v.GetString("factory"); s != "" {
		if cfg.Factory, err = ParseAddress(s); err != nil {
			return nil, fmt.Errorf("factory: %w", err)
		}
	}
	if s := v.GetString("caller"); s != "" {
		if cfg.Caller, err = ParseAddress(s); err != nil {
			return nil, fmt.Errorf("caller: %w", err)
		}
	}
	if b := v.GetUint64("gas_budget"); b != 0 {
		cfg.GasBudget = b
	}

	return cfg, nil
}

func applyFileConfig(cfg *config.RuntimeConfig, fileCfg *config.FileConfig) error {
	var err error
	if fileCfg.Factory.Address != "" {
		if cfg.Factory, err = ParseAddress(fileCfg.Factory.Address); err != nil {
			return fmt.Errorf("%s [factory] address: %w", ConfigFileName, err)
		}
	}
	if fileCfg.Deployer.Caller != "" {
		if cfg.Caller, err = ParseAddress(fileCfg.Deployer.Caller); err != nil {
			return fmt.Errorf("%s [deployer] caller: %w", ConfigFileName, err)
		}
	}
	if fileCfg.Deployer.GasBudget != 0 {
		cfg.GasBudget = fileCfg.Deployer.GasBudget
	}
	return nil
}

// ParseAddress parses a hex address, rejecting anything that is not 20 bytes
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

// FindProjectRoot walks up from current directory to find salted.toml.
// The current directory is the project root when none is found.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("SALTED")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("output", "text")
	v.SetDefault("project_root", projectRoot)

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}
