package factory

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
	"github.com/holiman/uint256"

	"github.com/trebuchet-org/salted/pkg/derive"
	"github.com/trebuchet-org/salted/pkg/ledger"
)

// errCreateFailed rolls back a failed inner creation. It never leaves the relay.
var errCreateFailed = errors.New("creation failed")

// Relay forwards a payload and a value into exactly one counter-scheme creation
// and hands back the created address. Payload failures turn into the zero
// address; the relay itself never aborts because of them.
type Relay struct {
	ledger *ledger.Ledger
	exec   Executor
}

// NewRelay creates a relay that runs payloads with exec against l.
func NewRelay(l *ledger.Ledger, exec Executor) *Relay {
	return &Relay{ledger: l, exec: exec}
}

// Invoke calls the relay at self from caller, moving value along with the call.
// The only errors returned are fail-closed conditions of the enclosing call:
// an exhausted budget, a cancelled context or an executor that could not run.
func (r *Relay) Invoke(ctx context.Context, caller, self common.Address, payload []byte, value *uint256.Int, m *Meter) (common.Address, error) {
	var created common.Address
	err := r.ledger.Atomic(func() error {
		if err := r.ledger.Transfer(caller, self, value); err != nil {
			return err
		}
		addr, err := r.create(ctx, self, payload, value, m)
		created = addr
		return err
	})
	return created, err
}

func (r *Relay) create(ctx context.Context, self common.Address, payload []byte, value *uint256.Int, m *Meter) (common.Address, error) {
	if err := m.charge(params.CreateGas); err != nil {
		return common.Address{}, err
	}

	nonce := r.ledger.Nonce(self)
	target, err := derive.CounterScheme(self, nonce)
	if err != nil {
		return common.Address{}, nil
	}

	gas := m.forwardable()
	err = r.ledger.Atomic(func() error {
		res, err := r.exec.RunInitCode(ctx, InitCall{
			Creator: self,
			Address: target,
			Code:    payload,
			Value:   value,
			Gas:     gas,
			State:   r.ledger.State(),
		})
		if err != nil {
			return err
		}
		if err := m.charge(min(res.GasUsed, gas)); err != nil {
			return err
		}

		switch res.Outcome {
		case OutcomeReturned:
			return nil
		case OutcomeOutOfGas:
			return errBudgetExhausted
		default:
			// failed creations still bump the counter; the scope drops the bump
			return errCreateFailed
		}
	})

	switch {
	case err == nil:
		return target, nil
	case errors.Is(err, errCreateFailed):
		return common.Address{}, nil
	default:
		return common.Address{}, err
	}
}
