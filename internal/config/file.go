package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/salted/internal/domain/config"
)

// loadDotEnv loads .env files from the project root without overriding
// variables that are already set.
func loadDotEnv(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadFileConfig loads and parses salted.toml if it exists.
// Returns (nil, nil) when salted.toml does not exist.
func loadFileConfig(projectRoot string) (*config.FileConfig, error) {
	loadDotEnv(projectRoot)

	path := filepath.Join(projectRoot, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var cfg config.FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}

	// Expand environment variables so addresses can live in .env
	cfg.Factory.Address = os.ExpandEnv(cfg.Factory.Address)
	cfg.Deployer.Caller = os.ExpandEnv(cfg.Deployer.Caller)

	return &cfg, nil
}
