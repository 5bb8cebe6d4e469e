package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidSalt is returned when a salt is not at most 32 bytes of hex
	ErrInvalidSalt = errors.New("invalid salt")

	// ErrInvalidPayload is returned when init code cannot be decoded
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrInvalidAmount is returned when a value is not a non-negative 256-bit integer
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAborted is returned when the user declines a confirmation
	ErrAborted = errors.New("aborted by user")
)

// DeploymentFailedErr is returned when the factory rejects a deployment. The factory
// never says why; Predicted is where the deployment would have landed.
type DeploymentFailedErr struct {
	Predicted string
	Tag       string
}

func (e DeploymentFailedErr) Error() string {
	return fmt.Sprintf("deployment to %s failed (revert %s)", e.Predicted, e.Tag)
}
