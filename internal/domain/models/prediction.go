package models

// Prediction is the offline derivation of where a deployment lands
type Prediction struct {
	Factory        string `json:"factory" yaml:"factory"`
	Caller         string `json:"caller" yaml:"caller"`
	Salt           string `json:"salt" yaml:"salt"`
	NamespacedSalt string `json:"namespacedSalt" yaml:"namespacedSalt"`
	Relay          string `json:"relay" yaml:"relay"`
	Address        string `json:"address" yaml:"address"`
}
