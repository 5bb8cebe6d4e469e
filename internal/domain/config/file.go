package config

// FileConfig represents salted.toml
type FileConfig struct {
	Factory  FactoryConfig  `toml:"factory"`
	Deployer DeployerConfig `toml:"deployer"`
}

// FactoryConfig selects the factory deployments go through
type FactoryConfig struct {
	Address string `toml:"address,omitempty"`
}

// DeployerConfig holds the defaults of the deploying account
type DeployerConfig struct {
	Caller    string `toml:"caller,omitempty"`
	GasBudget uint64 `toml:"gas_budget,omitempty"`
}
