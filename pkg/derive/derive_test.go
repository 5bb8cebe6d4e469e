package derive

import (
	"math"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	factory = common.HexToAddress("0x00000000000000000000000000000000000fac70")
	alice   = common.HexToAddress("0x1111111111111111111111111111111111111111")
	bob     = common.HexToAddress("0x2222222222222222222222222222222222222222")
	salt    = common.HexToHash("0x636dd1d57837e7dce61901468217da9975548dcb3ecc24d84567feb93cd11e36")
)

func TestCounterScheme_KnownVectors(t *testing.T) {
	creator := common.HexToAddress("0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0")
	expected := []string{
		"0xcd234a471b72ba2f1ccf0a70fcaba648a5eecd8d",
		"0x343c43a37d37dff08ae8c4a11544c718abb4fcf8",
		"0xf778b86fa74e846c4f0a1fbd1335fe81c00a0c91",
		"0xfffd933a0bc612844eaf0c6fe3e5b8e9b6c1d19c",
	}
	for nonce, want := range expected {
		got, err := CounterScheme(creator, uint64(nonce))
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress(want), got, "nonce %d", nonce)
	}
}

func TestCounterScheme_BucketBoundaries(t *testing.T) {
	counters := []uint64{
		0, 1, 0x7f,
		0x80, 0xff,
		0x100, 0xffff,
		0x10000, 0xffffff,
		0x1000000, MaxCounter,
	}
	for _, creator := range []common.Address{alice, bob, factory} {
		for _, counter := range counters {
			got, err := CounterScheme(creator, counter)
			require.NoError(t, err)
			assert.Equal(t, crypto.CreateAddress(creator, counter), got, "creator %s counter %#x", creator, counter)
		}
	}
}

func TestEncodeCounter_MatchesRLP(t *testing.T) {
	for _, counter := range []uint64{0, 5, 0x7f, 0x80, 0x1234, 0xabcdef, 0xdeadbeef} {
		want, err := rlp.EncodeToBytes([]interface{}{alice, counter})
		require.NoError(t, err)

		got, err := encodeCounter(alice, counter)
		require.NoError(t, err)
		assert.Equal(t, want, got, "counter %#x", counter)
	}
}

func TestCounterScheme_OutOfRange(t *testing.T) {
	for _, counter := range []uint64{MaxCounter + 1, 1 << 40, math.MaxUint64} {
		addr, err := CounterScheme(alice, counter)
		assert.ErrorIs(t, err, ErrOutOfRange)
		assert.Equal(t, common.Address{}, addr)
	}
}

func TestHashScheme(t *testing.T) {
	t.Run("eip-1014 example", func(t *testing.T) {
		codeHash := crypto.Keccak256Hash([]byte{0x00})
		got := HashScheme(common.Hash{}, common.Address{}, codeHash)
		assert.Equal(t, common.HexToAddress("0x4D1A2e2bB4F88F0250f26Ffff098B0b30B26BF38"), got)
	})

	t.Run("matches go-ethereum", func(t *testing.T) {
		codeHash := crypto.Keccak256Hash(RelayInitCode)
		want := crypto.CreateAddress2(factory, salt, codeHash.Bytes())
		assert.Equal(t, want, HashScheme(salt, factory, codeHash))
	})
}

func TestNamespacedSalt(t *testing.T) {
	want := crypto.Keccak256Hash(append(salt.Bytes(), alice.Bytes()...))
	assert.Equal(t, want, NamespacedSalt(salt, alice))
	assert.NotEqual(t, NamespacedSalt(salt, alice), NamespacedSalt(salt, bob))
}

func TestPredictedAddress(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		first := PredictedAddress(salt, alice, factory)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, PredictedAddress(salt, alice, factory))
		}
	})

	t.Run("namespaced per caller", func(t *testing.T) {
		assert.NotEqual(t, PredictedAddress(salt, alice, factory), PredictedAddress(salt, bob, factory))
	})

	t.Run("depends on factory", func(t *testing.T) {
		other := common.HexToAddress("0x00000000000000000000000000000000000fac71")
		assert.NotEqual(t, PredictedAddress(salt, alice, factory), PredictedAddress(salt, alice, other))
	})

	t.Run("composes relay and target", func(t *testing.T) {
		relay := RelayAddress(salt, alice, factory)
		assert.Equal(t, crypto.CreateAddress2(factory, NamespacedSalt(salt, alice), RelayCodeHash.Bytes()), relay)
		assert.Equal(t, crypto.CreateAddress(relay, 1), PredictedAddress(salt, alice, factory))
	})
}

func TestRelayCode(t *testing.T) {
	assert.Len(t, RelayRuntimeCode, 16)
	assert.Len(t, RelayInitCode, 1+16+3+2+2+1)
	assert.Equal(t, RelayRuntimeCode, RelayInitCode[1:17])
	assert.Equal(t, crypto.Keccak256Hash(RelayInitCode), RelayCodeHash)
}
