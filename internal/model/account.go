package model

import (
	"github.com/shopspring/decimal"
)

// Account is an immutable snapshot of one account's balance. Every mutation
// produces a new value; the current value is owned by the account's actor and
// never shared while mutable.
type Account struct {
	AccountID int64           `json:"accountId"`
	Balance   decimal.Decimal `json:"balance"`
}

// WithBalance returns a copy of the account holding the given balance.
func (a Account) WithBalance(balance decimal.Decimal) Account {
	return Account{
		AccountID: a.AccountID,
		Balance:   balance,
	}
}
