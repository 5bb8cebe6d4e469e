package ledger

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// AccountDump is the serializable form of an account.
type AccountDump struct {
	Nonce   uint64                      `json:"nonce"`
	Balance string                      `json:"balance"`
	Code    hexutil.Bytes               `json:"code,omitempty"`
	Storage map[common.Hash]common.Hash `json:"storage,omitempty"`
}

// Dump is the serializable form of a ledger.
type Dump struct {
	Accounts map[common.Address]AccountDump `json:"accounts"`
}

// Dump exports the settled state. It must not be called while a scope is open.
func (l *Ledger) Dump() *Dump {
	addrs := l.Addresses()
	d := &Dump{Accounts: make(map[common.Address]AccountDump, len(addrs))}
	for _, addr := range addrs {
		acc, _ := l.Account(addr)
		d.Accounts[addr] = AccountDump{
			Nonce:   acc.Nonce,
			Balance: acc.Balance.Dec(),
			Code:    hexutil.Bytes(acc.Code),
			Storage: acc.Storage,
		}
	}
	return d
}

// FromDump rebuilds a ledger from an export.
func FromDump(d *Dump) (*Ledger, error) {
	l := New()
	if d == nil {
		return l, nil
	}
	for addr, acc := range d.Accounts {
		bal := new(uint256.Int)
		if acc.Balance != "" {
			var err error
			if bal, err = uint256.FromDecimal(acc.Balance); err != nil {
				return nil, fmt.Errorf("invalid balance for %s: %w", addr, err)
			}
		}
		if acc.Nonce != 0 {
			l.SetNonce(addr, acc.Nonce)
		}
		l.AddBalance(addr, bal)
		if len(acc.Code) > 0 {
			l.SetCode(addr, acc.Code)
		}
		for slot, value := range acc.Storage {
			l.SetStorage(addr, slot, value)
		}
	}
	return l, nil
}
