// Package evm runs creation payloads on go-ethereum's interpreter.
package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/params"
	"github.com/holiman/uint256"

	"github.com/trebuchet-org/salted/pkg/factory"
)

var errNoState = errors.New("init call has no state")

// chainConfig activates every fork up to Cancun from genesis.
var chainConfig = func() *params.ChainConfig {
	zero := uint64(0)
	return &params.ChainConfig{
		ChainID:                 big.NewInt(1),
		HomesteadBlock:          new(big.Int),
		EIP150Block:             new(big.Int),
		EIP155Block:             new(big.Int),
		EIP158Block:             new(big.Int),
		ByzantiumBlock:          new(big.Int),
		ConstantinopleBlock:     new(big.Int),
		PetersburgBlock:         new(big.Int),
		IstanbulBlock:           new(big.Int),
		MuirGlacierBlock:        new(big.Int),
		BerlinBlock:             new(big.Int),
		LondonBlock:             new(big.Int),
		TerminalTotalDifficulty: new(big.Int),
		ShanghaiTime:            &zero,
		CancunTime:              &zero,
	}
}()

// Executor runs each payload as a contract creation on the state handed in
// with the call. The creation moves the value, bumps the creator's counter and
// deposits the returned code, exactly as the CREATE it stands for.
type Executor struct {
	blockNumber *big.Int
	time        uint64
}

// NewExecutor creates an executor on a post-merge chain.
func NewExecutor() *Executor {
	return &Executor{blockNumber: new(big.Int)}
}

// RunInitCode implements factory.Executor.
func (e *Executor) RunInitCode(ctx context.Context, call factory.InitCall) (*factory.InitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if call.State == nil {
		return nil, errNoState
	}
	if call.Gas == 0 {
		return &factory.InitResult{Outcome: factory.OutcomeOutOfGas}, nil
	}
	if addr := crypto.CreateAddress(call.Creator, call.State.GetNonce(call.Creator)); addr != call.Address {
		return nil, fmt.Errorf("creation by %s lands at %s, not %s", call.Creator, addr, call.Address)
	}
	value := call.Value
	if value == nil {
		value = new(uint256.Int)
	}

	evm := e.newEVM(call)
	rules := chainConfig.Rules(evm.Context.BlockNumber, true, evm.Context.Time)
	call.State.Prepare(rules, call.Creator, evm.Context.Coinbase, nil, vm.ActivePrecompiles(rules), nil)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			evm.Cancel()
		case <-done:
		}
	}()

	ret, _, leftOver, err := evm.Create(call.Creator, call.Code, call.Gas, value)
	// a cancelled interpreter stops as if the code had returned
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	res := &factory.InitResult{
		Outcome: classify(err),
		GasUsed: call.Gas - leftOver,
	}
	if res.Outcome == factory.OutcomeReturned {
		res.Body = ret
	}
	return res, nil
}

func (e *Executor) newEVM(call factory.InitCall) *vm.EVM {
	blockCtx := vm.BlockContext{
		CanTransfer: core.CanTransfer,
		Transfer:    core.Transfer,
		GetHash: func(n uint64) common.Hash {
			return crypto.Keccak256Hash(new(big.Int).SetUint64(n).Bytes())
		},
		BlockNumber: new(big.Int).Set(e.blockNumber),
		Time:        e.time,
		Difficulty:  new(big.Int),
		GasLimit:    call.Gas,
		BaseFee:     big.NewInt(params.InitialBaseFee),
		BlobBaseFee: big.NewInt(params.BlobTxMinBlobGasprice),
		Random:      &common.Hash{},
	}
	evm := vm.NewEVM(blockCtx, call.State, chainConfig, vm.Config{})
	evm.SetTxContext(vm.TxContext{
		Origin:   call.Creator,
		GasPrice: new(big.Int),
	})
	return evm
}

func classify(err error) factory.Outcome {
	switch {
	case err == nil:
		return factory.OutcomeReturned
	case errors.Is(err, vm.ErrExecutionReverted):
		return factory.OutcomeReverted
	case errors.Is(err, vm.ErrOutOfGas), errors.Is(err, vm.ErrCodeStoreOutOfGas):
		return factory.OutcomeOutOfGas
	default:
		return factory.OutcomeTrapped
	}
}

var _ factory.Executor = (*Executor)(nil)
