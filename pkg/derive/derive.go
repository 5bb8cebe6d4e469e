// Package derive computes the addresses produced by the two contract creation
// schemes used by the relay factory. Everything here is pure and can be called
// before anything is deployed.
package derive

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrOutOfRange is returned when a counter does not fit the supported 32-bit envelope.
var ErrOutOfRange = errors.New("counter out of range")

// MaxCounter is the largest counter CounterScheme models.
const MaxCounter = 1<<32 - 1

// hashSchemePrefix marks a hash-scheme preimage so it can never collide with a counter-scheme one.
const hashSchemePrefix = 0xff

// counterBucket describes how [creator, counter] is encoded for counters up to max.
type counterBucket struct {
	max    uint64
	prefix [2]byte // list header, then the 20-byte string header
	tag    byte    // string header for the counter, 0 when the counter is its own header
	width  int     // big-endian bytes of counter that follow the tag
}

// counterBuckets is ordered by max. A zero counter encodes as the empty string
// and counters up to 0x7f encode as a single literal byte.
var counterBuckets = [...]counterBucket{
	{max: 0, prefix: [2]byte{0xd6, 0x94}, tag: 0x80, width: 0},
	{max: 0x7f, prefix: [2]byte{0xd6, 0x94}, tag: 0, width: 1},
	{max: 0xff, prefix: [2]byte{0xd7, 0x94}, tag: 0x81, width: 1},
	{max: 0xffff, prefix: [2]byte{0xd8, 0x94}, tag: 0x82, width: 2},
	{max: 0xffffff, prefix: [2]byte{0xd9, 0x94}, tag: 0x83, width: 3},
	{max: MaxCounter, prefix: [2]byte{0xda, 0x94}, tag: 0x84, width: 4},
}

func bucketFor(counter uint64) (counterBucket, error) {
	for _, b := range counterBuckets {
		if counter <= b.max {
			return b, nil
		}
	}
	return counterBucket{}, ErrOutOfRange
}

// encodeCounter returns the preimage hashed by CounterScheme.
func encodeCounter(creator common.Address, counter uint64) ([]byte, error) {
	b, err := bucketFor(counter)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, len(b.prefix)+common.AddressLength+1+b.width)
	buf = append(buf, b.prefix[:]...)
	buf = append(buf, creator.Bytes()...)
	if b.tag != 0 {
		buf = append(buf, b.tag)
	}
	for i := b.width - 1; i >= 0; i-- {
		buf = append(buf, byte(counter>>(8*i)))
	}
	return buf, nil
}

// CounterScheme returns the address created by creator when its sequence counter is counter.
func CounterScheme(creator common.Address, counter uint64) (common.Address, error) {
	enc, err := encodeCounter(creator, counter)
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(crypto.Keccak256(enc)[12:]), nil
}

// HashScheme returns the address created by creator for a salt and the hash of the init code.
//
//	keccak256(0xff ++ creator ++ salt ++ codeHash)[12:]
func HashScheme(salt common.Hash, creator common.Address, codeHash common.Hash) common.Address {
	return common.BytesToAddress(crypto.Keccak256(
		[]byte{hashSchemePrefix},
		creator.Bytes(),
		salt.Bytes(),
		codeHash.Bytes(),
	)[12:])
}

// NamespacedSalt binds a raw salt to the caller so two callers never share an address space.
func NamespacedSalt(salt common.Hash, caller common.Address) common.Hash {
	return crypto.Keccak256Hash(salt.Bytes(), caller.Bytes())
}

// RelayAddress returns where factory places the relay for (caller, salt).
func RelayAddress(salt common.Hash, caller, factory common.Address) common.Address {
	return HashScheme(NamespacedSalt(salt, caller), factory, RelayCodeHash)
}

// TargetAddress returns where the relay for (caller, salt) creates the payload.
// The relay performs its only creation with counter 1.
func TargetAddress(salt common.Hash, caller, factory common.Address) common.Address {
	// counter 1 always sits in the literal-byte bucket
	addr, _ := CounterScheme(RelayAddress(salt, caller, factory), 1)
	return addr
}

// PredictedAddress is the address a successful deployment of (caller, salt) through factory
// ends up at, whatever the payload.
func PredictedAddress(salt common.Hash, caller, factory common.Address) common.Address {
	return TargetAddress(salt, caller, factory)
}
