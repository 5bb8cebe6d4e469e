package models

import (
	"fmt"
	"time"
)

// Deployment represents a successful deployment through the factory
type Deployment struct {
	// Core identification
	ID      string `json:"id" yaml:"id"`           // e.g., "0xfac7.../0x1111.../0x0000...5a17"
	Label   string `json:"label" yaml:"label"`     // e.g., "counter-v1"
	Address string `json:"address" yaml:"address"` // Created contract address

	// Derivation inputs
	Factory string `json:"factory" yaml:"factory"`
	Caller  string `json:"caller" yaml:"caller"`
	Salt    string `json:"salt" yaml:"salt"`
	Relay   string `json:"relay" yaml:"relay"`

	// Created code
	InitCodeHash string `json:"initCodeHash" yaml:"initCodeHash"`
	CodeHash     string `json:"codeHash" yaml:"codeHash"`
	CodeSize     int    `json:"codeSize" yaml:"codeSize"`

	// Execution
	Value   string `json:"value" yaml:"value"` // decimal wei
	GasUsed uint64 `json:"gasUsed" yaml:"gasUsed"`

	// Metadata
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// DeploymentID builds the registry key of a deployment
func DeploymentID(factory, caller, salt string) string {
	return fmt.Sprintf("%s/%s/%s", factory, caller, salt)
}

// DisplayName returns the label, falling back to the address
func (d *Deployment) DisplayName() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Address
}
