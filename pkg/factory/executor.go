package factory

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/holiman/uint256"
)

// Outcome classifies how a piece of init code finished.
type Outcome uint8

const (
	// OutcomeReturned means the code ran to completion. Body holds what it
	// returned, which becomes the created account's code and may be empty.
	OutcomeReturned Outcome = iota
	// OutcomeReverted means the code aborted explicitly, with or without data.
	OutcomeReverted
	// OutcomeTrapped means execution hit an illegal instruction or another
	// exceptional halt, including a rejected code deposit.
	OutcomeTrapped
	// OutcomeOutOfGas means the forwarded budget ran out.
	OutcomeOutOfGas
)

func (o Outcome) String() string {
	switch o {
	case OutcomeReturned:
		return "returned"
	case OutcomeReverted:
		return "reverted"
	case OutcomeTrapped:
		return "trapped"
	case OutcomeOutOfGas:
		return "out of gas"
	default:
		return "unknown"
	}
}

// InitCall describes one counter-scheme creation by Creator. Address is where
// the creation must land; State is the ledger view it runs against.
type InitCall struct {
	Creator common.Address
	Address common.Address
	Code    []byte
	Value   *uint256.Int
	Gas     uint64
	State   vm.StateDB
}

// InitResult is everything the factory observes about an execution.
type InitResult struct {
	Outcome Outcome
	Body    []byte
	GasUsed uint64
}

// Executor performs a creation with init code run as an opaque black box. On
// success the creator's counter, the moved value and the deposited code are
// left in State. A returned error means the execution could not be attempted
// or was cancelled; payload failures are reported through InitResult.Outcome.
type Executor interface {
	RunInitCode(ctx context.Context, call InitCall) (*InitResult, error)
}
