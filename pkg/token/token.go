package token

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

const DefaultDecimals uint8 = 18

type Config struct {
	Name     string
	Symbol   string
	Decimals uint8
	Owner    common.Address
}

type Token struct {
	name     string
	symbol   string
	decimals uint8

	mutex       sync.RWMutex
	owner       common.Address
	balances    map[common.Address]*big.Int
	totalSupply *big.Int
}

// New creates a token with zero supply. Config.Decimals of 0 falls back to
// DefaultDecimals; a token genuinely without sub-units is not supported.
func New(config Config) *Token {
	decimals := config.Decimals
	if decimals == 0 {
		decimals = DefaultDecimals
	}

	return &Token{
		name:        config.Name,
		symbol:      config.Symbol,
		decimals:    decimals,
		owner:       config.Owner,
		balances:    map[common.Address]*big.Int{},
		totalSupply: big.NewInt(0),
	}
}

// Name returns the token name.
func (t *Token) Name() string {
	return t.name
}

// Symbol returns the token symbol.
func (t *Token) Symbol() string {
	return t.symbol
}

// Decimals returns the number of decimal places in the token's smallest unit.
func (t *Token) Decimals() uint8 {
	return t.decimals
}

// Owner returns the account currently holding mint authority.
func (t *Token) Owner() common.Address {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.owner
}

// TotalSupply returns the circulating supply.
func (t *Token) TotalSupply() *big.Int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return new(big.Int).Set(t.totalSupply)
}

// BalanceOf returns the balance held by account. The result never aliases
// internal state.
func (t *Token) BalanceOf(account common.Address) *big.Int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	balance, exists := t.balances[account]
	if !exists {
		return big.NewInt(0)
	}
	return new(big.Int).Set(balance)
}

// Mint creates amount units into the to account. Only the token owner may
// mint. A zero amount is a legal no-op.
func (t *Token) Mint(caller common.Address, to common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return NewInvalidAmountError(formatAmount(amount))
	}
	if to == (common.Address{}) {
		return NewInvalidRecipientError()
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	if caller != t.owner {
		return NewUnauthorizedError(caller)
	}

	t.creditLocked(to, amount)
	t.totalSupply.Add(t.totalSupply, amount)
	return nil
}

// Burn destroys amount units from the caller's own balance.
func (t *Token) Burn(caller common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return NewInvalidAmountError(formatAmount(amount))
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	if err := t.debitLocked(caller, amount); err != nil {
		return err
	}
	t.totalSupply.Sub(t.totalSupply, amount)
	return nil
}

// Transfer moves amount units from the caller to the to account.
func (t *Token) Transfer(caller common.Address, to common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return NewInvalidAmountError(formatAmount(amount))
	}
	if to == (common.Address{}) {
		return NewInvalidRecipientError()
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	if err := t.debitLocked(caller, amount); err != nil {
		return err
	}
	t.creditLocked(to, amount)
	return nil
}

// TransferOwnership reassigns the single ownership slot. Only the current
// owner may call it; assigning ownership back to the caller is legal.
func (t *Token) TransferOwnership(caller common.Address, newOwner common.Address) error {
	if newOwner == (common.Address{}) {
		return NewInvalidRecipientError()
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	if caller != t.owner {
		return NewUnauthorizedError(caller)
	}

	t.owner = newOwner
	return nil
}

func (t *Token) creditLocked(account common.Address, amount *big.Int) {
	balance, exists := t.balances[account]
	if !exists {
		balance = big.NewInt(0)
		t.balances[account] = balance
	}
	balance.Add(balance, amount)
}

func (t *Token) debitLocked(account common.Address, amount *big.Int) error {
	balance, exists := t.balances[account]
	if !exists || balance.Cmp(amount) < 0 {
		available := "0"
		if exists {
			available = balance.String()
		}
		return NewInsufficientBalanceError(account, amount.String(), available)
	}
	balance.Sub(balance, amount)
	return nil
}

func formatAmount(amount *big.Int) string {
	if amount == nil {
		return "<nil>"
	}
	return amount.String()
}
