package factory

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
	"github.com/holiman/uint256"

	"github.com/trebuchet-org/salted/pkg/derive"
)

var errBudgetExhausted = errors.New("compute budget exhausted")

// Meter tracks the compute budget of one top-level call. Gas spent inside a
// scope that is later rolled back stays spent.
type Meter struct {
	limit     uint64
	remaining uint64
}

// NewMeter creates a meter holding budget.
func NewMeter(budget uint64) *Meter {
	return &Meter{limit: budget, remaining: budget}
}

func (m *Meter) charge(cost uint64) error {
	if cost > m.remaining {
		m.remaining = 0
		return errBudgetExhausted
	}
	m.remaining -= cost
	return nil
}

// forwardable is what a nested creation may use: all but one 64th of what is left.
func (m *Meter) forwardable() uint64 {
	return m.remaining - m.remaining/64
}

// Used returns the gas charged so far.
func (m *Meter) Used() uint64 {
	return m.limit - m.remaining
}

// Remaining returns the gas left.
func (m *Meter) Remaining() uint64 {
	return m.remaining
}

func words(n int) uint64 {
	return (uint64(n) + 31) / 32
}

func keccakCost(n int) uint64 {
	return params.Keccak256Gas + params.Keccak256WordGas*words(n)
}

var (
	namespaceCost = keccakCost(common.HashLength + common.AddressLength)

	relayCreationCost = params.Create2Gas +
		params.Keccak256WordGas*words(len(derive.RelayInitCode)) +
		params.CreateDataGas*uint64(len(derive.RelayRuntimeCode))

	verifyCost = params.WarmStorageReadCostEIP2929
)

func relayCallCost(value *uint256.Int) uint64 {
	cost := params.WarmStorageReadCostEIP2929
	if !value.IsZero() {
		cost += params.CallValueTransferGas
	}
	return cost
}
