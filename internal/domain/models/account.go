package models

// AccountState is the ledger state of one address
type AccountState struct {
	Address  string `json:"address" yaml:"address"`
	Exists   bool   `json:"exists" yaml:"exists"`
	Nonce    uint64 `json:"nonce" yaml:"nonce"`
	Balance  string `json:"balance" yaml:"balance"`
	CodeSize int    `json:"codeSize" yaml:"codeSize"`
	CodeHash string `json:"codeHash" yaml:"codeHash"`
	Code     string `json:"code,omitempty" yaml:"code,omitempty"`

	// Deployment is set when the address was created through the factory
	Deployment *Deployment `json:"deployment,omitempty" yaml:"deployment,omitempty"`
}
