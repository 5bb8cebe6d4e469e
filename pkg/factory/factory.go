// Package factory deploys arbitrary init code to an address that only depends
// on the factory, the caller and a caller-chosen salt.
//
// A deployment namespaces the salt with the caller, creates a single-use Relay
// at the hash-scheme address of that namespaced salt, lets the Relay create the
// payload with its first counter-scheme creation and checks that code was left
// behind. The whole sequence is one transactional unit on the ledger.
package factory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/trebuchet-org/salted/pkg/derive"
	"github.com/trebuchet-org/salted/pkg/ledger"
)

// Stage is a step of the deployment protocol.
type Stage uint8

const (
	StageStart Stage = iota
	StageNamespace
	StageDeployRelay
	StageInvokeRelay
	StageVerify
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageNamespace:
		return "namespace"
	case StageDeployRelay:
		return "deploy_relay"
	case StageInvokeRelay:
		return "invoke_relay"
	case StageVerify:
		return "verify"
	case StageDone:
		return "done"
	default:
		return fmt.Sprintf("stage(%d)", uint8(s))
	}
}

var (
	errRelayOccupied = errors.New("relay address already occupied")
	errNoAddress     = errors.New("relay returned the zero address")
	errEmptyCode     = errors.New("no code at created address")
)

// stageError records why and where a deployment failed. It is logged, never returned.
type stageError struct {
	stage Stage
	cause error
}

func (e *stageError) Error() string {
	return fmt.Sprintf("%s: %v", e.stage, e.cause)
}

func (e *stageError) Unwrap() error {
	return e.cause
}

// DeployRequest is one deployment attempt. Caller is the identity the salt is
// namespaced with; Budget is the compute budget of the whole call.
type DeployRequest struct {
	Caller  common.Address
	Salt    common.Hash
	Payload []byte
	Value   *uint256.Int
	Budget  uint64
}

// DeployResult describes a successful deployment.
type DeployResult struct {
	Address common.Address
	Relay   common.Address
	GasUsed uint64
}

// Factory orchestrates relay deployments against a ledger.
type Factory struct {
	address common.Address
	ledger  *ledger.Ledger
	relay   *Relay
	log     *slog.Logger

	// calls are ordered against the ledger one at a time
	mu sync.Mutex
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogger sets the logger internal failure causes are reported to.
func WithLogger(log *slog.Logger) Option {
	return func(f *Factory) {
		f.log = log
	}
}

// New creates a factory living at address.
func New(address common.Address, l *ledger.Ledger, exec Executor, opts ...Option) *Factory {
	f := &Factory{
		address: address,
		ledger:  l,
		relay:   NewRelay(l, exec),
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Address returns the factory address.
func (f *Factory) Address() common.Address {
	return f.address
}

// Predict returns where a deployment by caller with salt lands. It never touches the ledger.
func (f *Factory) Predict(salt common.Hash, caller common.Address) common.Address {
	return derive.PredictedAddress(salt, caller, f.address)
}

// Deploy runs the protocol for req. Every failure, whatever its cause, is
// reported as ErrDeploymentFailed and leaves the ledger as it was.
func (f *Factory) Deploy(ctx context.Context, req DeployRequest) (*DeployResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if req.Value == nil {
		req.Value = new(uint256.Int)
	}

	m := NewMeter(req.Budget)
	var res *DeployResult
	err := f.ledger.Atomic(func() error {
		var err error
		res, err = f.deploy(ctx, req, m)
		return err
	})
	if err != nil {
		var se *stageError
		if !errors.As(err, &se) {
			se = &stageError{stage: StageStart, cause: err}
		}
		f.log.Debug("deployment failed",
			"caller", req.Caller,
			"salt", req.Salt,
			"stage", se.stage,
			"cause", se.cause,
			"gas_used", m.Used(),
		)
		return nil, ErrDeploymentFailed
	}

	res.GasUsed = m.Used()
	f.log.Debug("deployment succeeded",
		"caller", req.Caller,
		"salt", req.Salt,
		"relay", res.Relay,
		"address", res.Address,
		"gas_used", res.GasUsed,
	)
	return res, nil
}

func (f *Factory) deploy(ctx context.Context, req DeployRequest, m *Meter) (*DeployResult, error) {
	stage := StageStart
	fail := func(cause error) (*DeployResult, error) {
		return nil, &stageError{stage: stage, cause: cause}
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	if err := f.ledger.Transfer(req.Caller, f.address, req.Value); err != nil {
		return fail(err)
	}

	stage = StageNamespace
	if err := m.charge(namespaceCost); err != nil {
		return fail(err)
	}
	namespaced := derive.NamespacedSalt(req.Salt, req.Caller)

	stage = StageDeployRelay
	if err := m.charge(relayCreationCost); err != nil {
		return fail(err)
	}
	relay := derive.HashScheme(namespaced, f.address, derive.RelayCodeHash)
	if f.ledger.Occupied(relay) {
		return fail(errRelayOccupied)
	}
	f.ledger.SetNonce(f.address, f.ledger.Nonce(f.address)+1)
	f.ledger.SetNonce(relay, 1)
	f.ledger.SetCode(relay, derive.RelayRuntimeCode)
	f.log.Debug("relay deployed", "relay", relay)

	stage = StageInvokeRelay
	if err := m.charge(relayCallCost(req.Value)); err != nil {
		return fail(err)
	}
	created, err := f.relay.Invoke(ctx, f.address, relay, req.Payload, req.Value, m)
	if err != nil {
		return fail(err)
	}

	stage = StageVerify
	if err := m.charge(verifyCost); err != nil {
		return fail(err)
	}
	if created == (common.Address{}) {
		return fail(errNoAddress)
	}
	if f.ledger.CodeSize(created) == 0 {
		return fail(errEmptyCode)
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	return &DeployResult{Address: created, Relay: relay}, nil
}
