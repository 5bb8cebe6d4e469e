package factory

import (
	"bytes"
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// DeploymentFailedSignature is the only failure the factory ever reports.
const DeploymentFailedSignature = "DeploymentFailed()"

var (
	// ErrDeploymentFailed is returned by Deploy for every failed deployment.
	ErrDeploymentFailed = errors.New("deployment failed")

	// DeploymentFailedSelector is the 4-byte tag a failed Call reverts with.
	DeploymentFailedSelector = crypto.Keccak256([]byte(DeploymentFailedSignature))[:4]
)

// RevertError is the failure of a Call. Its data is always DeploymentFailedSelector.
type RevertError struct {
	data []byte
}

func newRevertError() *RevertError {
	return &RevertError{data: bytes.Clone(DeploymentFailedSelector)}
}

func (e *RevertError) Error() string {
	return "execution reverted: " + DeploymentFailedSignature
}

// ErrorData returns the hex encoded revert data.
func (e *RevertError) ErrorData() interface{} {
	return hexutil.Encode(e.data)
}

// Data returns the raw revert data.
func (e *RevertError) Data() []byte {
	return bytes.Clone(e.data)
}

func (e *RevertError) Unwrap() error {
	return ErrDeploymentFailed
}

// Message is a raw call to the factory entry point.
type Message struct {
	Caller common.Address
	Data   []byte // [32-byte salt][payload]
	Value  *uint256.Int
	Gas    uint64
}

// PackCalldata builds the entry point input for salt and payload.
func PackCalldata(salt common.Hash, payload []byte) []byte {
	data := make([]byte, 0, common.HashLength+len(payload))
	data = append(data, salt.Bytes()...)
	return append(data, payload...)
}

// SplitCalldata splits entry point input into its salt and payload.
func SplitCalldata(data []byte) (common.Hash, []byte, bool) {
	if len(data) < common.HashLength {
		return common.Hash{}, nil, false
	}
	return common.BytesToHash(data[:common.HashLength]), data[common.HashLength:], true
}

// Call is the raw deployment entry point. On success it returns the created
// address left-padded to 32 bytes; on failure a *RevertError.
func (f *Factory) Call(ctx context.Context, msg Message) ([]byte, error) {
	salt, payload, ok := SplitCalldata(msg.Data)
	if !ok {
		return nil, newRevertError()
	}

	res, err := f.Deploy(ctx, DeployRequest{
		Caller:  msg.Caller,
		Salt:    salt,
		Payload: payload,
		Value:   msg.Value,
		Budget:  msg.Gas,
	})
	if err != nil {
		return nil, newRevertError()
	}
	return common.LeftPadBytes(res.Address.Bytes(), 32), nil
}
