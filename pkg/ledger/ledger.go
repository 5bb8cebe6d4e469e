// Package ledger is an account store with nestable transactional scopes, kept
// in go-ethereum's in-memory state database. Writes made inside a scope are
// undone when the scope fails, without touching anything written before the
// scope opened.
//
// A Ledger is not safe for concurrent use; callers serialize access.
package ledger

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/core/state"
	"github.com/ethereum/go-ethereum/core/tracing"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/triedb"
	"github.com/holiman/uint256"
)

var (
	// ErrInsufficientBalance is returned when a debit exceeds the account balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// EmptyCodeHash is the code hash of an account without code.
	EmptyCodeHash = types.EmptyCodeHash
)

// Account is the state kept per address.
type Account struct {
	Nonce   uint64
	Balance *uint256.Int
	Code    []byte
	Storage map[common.Hash]common.Hash
}

// Ledger wraps a state database. Every write goes through a hooked view so the
// ledger knows which accounts and slots exist when it is exported.
type Ledger struct {
	db    *state.StateDB
	state vm.StateDB
	seen  map[common.Address]map[common.Hash]struct{}
	depth int
}

// New creates an empty ledger.
func New() *Ledger {
	db, err := state.New(types.EmptyRootHash, state.NewDatabase(triedb.NewDatabase(rawdb.NewMemoryDatabase(), nil), nil))
	if err != nil {
		// the empty root resolves without reading the trie
		panic(fmt.Sprintf("ledger: open state: %v", err))
	}
	l := &Ledger{
		db:   db,
		seen: make(map[common.Address]map[common.Hash]struct{}),
	}
	l.state = state.NewHookedState(db, &tracing.Hooks{
		OnBalanceChange: func(addr common.Address, _, _ *big.Int, _ tracing.BalanceChangeReason) {
			l.touch(addr)
		},
		OnNonceChange: func(addr common.Address, _, _ uint64) {
			l.touch(addr)
		},
		OnCodeChange: func(addr common.Address, _ common.Hash, _ []byte, _ common.Hash, _ []byte) {
			l.touch(addr)
		},
		OnStorageChange: func(addr common.Address, slot, _, _ common.Hash) {
			l.touch(addr)[slot] = struct{}{}
		},
	})
	return l
}

func (l *Ledger) touch(addr common.Address) map[common.Hash]struct{} {
	slots, ok := l.seen[addr]
	if !ok {
		slots = make(map[common.Hash]struct{})
		l.seen[addr] = slots
	}
	return slots
}

// State returns the view the interpreter runs against. Writes made through it
// belong to the innermost open scope.
func (l *Ledger) State() vm.StateDB {
	return l.state
}

// Snapshot marks the current revision of the state.
func (l *Ledger) Snapshot() int {
	return l.db.Snapshot()
}

// RevertToSnapshot undoes every write made after the snapshot was taken. It
// panics for a snapshot that was already reverted or settled.
func (l *Ledger) RevertToSnapshot(id int) {
	l.db.RevertToSnapshot(id)
}

// Atomic runs fn in a nested scope. If fn returns an error or panics, every write fn
// made is reverted; otherwise the writes become part of the enclosing scope. Writes
// are settled once the outermost scope commits.
func (l *Ledger) Atomic(fn func() error) (err error) {
	snap := l.db.Snapshot()
	l.depth++

	committed := false
	defer func() {
		l.depth--
		if !committed {
			l.db.RevertToSnapshot(snap)
			return
		}
		l.settle()
	}()

	if err = fn(); err != nil {
		return err
	}
	committed = true
	return nil
}

// Depth reports how many scopes are open.
func (l *Ledger) Depth() int {
	return l.depth
}

// settle drops the undo journal when no scope is open. Writes made outside
// a scope are final.
func (l *Ledger) settle() {
	if l.depth == 0 {
		l.db.Finalise(false)
	}
}

// Occupied reports whether a creation at addr would collide: the account has
// sent transactions, created contracts, or holds code.
func (l *Ledger) Occupied(addr common.Address) bool {
	return l.db.GetNonce(addr) != 0 || l.db.GetCodeSize(addr) != 0
}

// Nonce returns the sequence counter of addr.
func (l *Ledger) Nonce(addr common.Address) uint64 {
	return l.db.GetNonce(addr)
}

// SetNonce sets the sequence counter of addr.
func (l *Ledger) SetNonce(addr common.Address, nonce uint64) {
	l.state.SetNonce(addr, nonce, tracing.NonceChangeUnspecified)
	l.settle()
}

// Code returns a copy of the code at addr.
func (l *Ledger) Code(addr common.Address) []byte {
	return bytes.Clone(l.db.GetCode(addr))
}

// CodeSize returns the length of the code at addr.
func (l *Ledger) CodeSize(addr common.Address) int {
	return l.db.GetCodeSize(addr)
}

// CodeHash returns the keccak256 hash of the code at addr.
func (l *Ledger) CodeHash(addr common.Address) common.Hash {
	if l.db.GetCodeSize(addr) == 0 {
		return EmptyCodeHash
	}
	return l.db.GetCodeHash(addr)
}

// SetCode replaces the code at addr.
func (l *Ledger) SetCode(addr common.Address, code []byte) {
	l.state.SetCode(addr, bytes.Clone(code))
	l.settle()
}

// Storage returns the value of a storage slot of addr.
func (l *Ledger) Storage(addr common.Address, slot common.Hash) common.Hash {
	return l.db.GetState(addr, slot)
}

// SetStorage writes a storage slot of addr.
func (l *Ledger) SetStorage(addr common.Address, slot, value common.Hash) {
	l.state.SetState(addr, slot, value)
	l.settle()
}

// Balance returns a copy of the balance of addr.
func (l *Ledger) Balance(addr common.Address) *uint256.Int {
	return new(uint256.Int).Set(l.db.GetBalance(addr))
}

// AddBalance credits amount to addr.
func (l *Ledger) AddBalance(addr common.Address, amount *uint256.Int) {
	if amount == nil || amount.IsZero() {
		return
	}
	l.state.AddBalance(addr, amount, tracing.BalanceChangeUnspecified)
	l.settle()
}

// SubBalance debits amount from addr.
func (l *Ledger) SubBalance(addr common.Address, amount *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return nil
	}
	if bal := l.db.GetBalance(addr); bal.Lt(amount) {
		return fmt.Errorf("%w: %s has %s, needs %s", ErrInsufficientBalance, addr, bal.Dec(), amount.Dec())
	}
	l.state.SubBalance(addr, amount, tracing.BalanceChangeUnspecified)
	l.settle()
	return nil
}

// Transfer moves amount from one account to another.
func (l *Ledger) Transfer(from, to common.Address, amount *uint256.Int) error {
	if err := l.SubBalance(from, amount); err != nil {
		return err
	}
	l.AddBalance(to, amount)
	return nil
}

// Account returns a copy of the account at addr and whether it exists.
func (l *Ledger) Account(addr common.Address) (Account, bool) {
	if !l.db.Exist(addr) {
		return Account{Balance: new(uint256.Int)}, false
	}
	acc := Account{
		Nonce:   l.db.GetNonce(addr),
		Balance: l.Balance(addr),
		Code:    l.Code(addr),
	}
	for slot := range l.seen[addr] {
		value := l.db.GetState(addr, slot)
		if value == (common.Hash{}) {
			continue
		}
		if acc.Storage == nil {
			acc.Storage = make(map[common.Hash]common.Hash)
		}
		acc.Storage[slot] = value
	}
	return acc, true
}

// Addresses returns every non-empty account in ascending order.
func (l *Ledger) Addresses() []common.Address {
	addrs := make([]common.Address, 0, len(l.seen))
	for addr := range l.seen {
		if l.db.Exist(addr) && !l.db.Empty(addr) {
			addrs = append(addrs, addr)
		}
	}
	sort.Slice(addrs, func(i, j int) bool {
		return bytes.Compare(addrs[i][:], addrs[j][:]) < 0
	})
	return addrs
}
