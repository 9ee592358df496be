package bankacct

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Middleware func(BankAccount) BankAccount

// DefaultWithdrawLimit is the per-transaction withdrawal ceiling applied when
// no override is configured.
var DefaultWithdrawLimit = decimal.NewFromInt(500)

// LimitedAccount rejects withdrawals above a fixed ceiling before the wrapped
// account ever sees them. Every other operation, observer registration
// included, delegates untouched so the wrapped account stays the single
// source of truth for balance and notifications.
type LimitedAccount struct {
	next  BankAccount
	limit decimal.Decimal
}

var (
	_ BankAccount = (*LimitedAccount)(nil)
)

func NewWithdrawLimit(limit decimal.Decimal) Middleware {
	return func(next BankAccount) BankAccount {
		return &LimitedAccount{
			next:  next,
			limit: limit,
		}
	}
}

func (l *LimitedAccount) Deposit(amount decimal.Decimal) error {
	return l.next.Deposit(amount)
}

func (l *LimitedAccount) Withdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(l.limit) {
		return ErrInvalidOperation{
			Reason: fmt.Sprintf("withdrawals are limited to $%s per transaction", l.limit),
		}
	}
	return l.next.Withdraw(amount)
}

func (l *LimitedAccount) Balance() decimal.Decimal {
	return l.next.Balance()
}

func (l *LimitedAccount) Close() {
	l.next.Close()
}

func (l *LimitedAccount) AddObserver(obs Observer) {
	l.next.AddObserver(obs)
}
