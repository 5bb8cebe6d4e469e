package derive

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// relayRuntimeHex copies calldata to memory, CREATEs it with the call value and
// returns the 32-byte word holding the created address (zero on failure).
//
//	CALLDATASIZE RETURNDATASIZE RETURNDATASIZE CALLDATACOPY
//	CALLDATASIZE RETURNDATASIZE CALLVALUE CREATE
//	PUSH1 0 MSTORE PUSH1 32 PUSH1 0 RETURN
const relayRuntimeHex = "363d3d37363d34f060005260206000f3"

var (
	// RelayRuntimeCode is the code left at every relay address.
	RelayRuntimeCode = common.FromHex(relayRuntimeHex)

	// RelayInitCode deploys RelayRuntimeCode: PUSH16 <runtime> PUSH1 0 MSTORE PUSH1 16 PUSH1 16 RETURN.
	RelayInitCode = common.FromHex("6f" + relayRuntimeHex + "600052" + "6010" + "6010" + "f3")

	// RelayCodeHash is the init code hash fed to HashScheme for relay addresses.
	RelayCodeHash = crypto.Keccak256Hash(RelayInitCode)
)
