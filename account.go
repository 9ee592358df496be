package bankacct

//go:generate mockgen -source=account.go -destination=mocks/account.go -package=mocks

import (
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// BankAccount is the capability set shared by the concrete account and any
// decorator wrapping it.
type BankAccount interface {
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	Balance() decimal.Decimal
	Close()
	AddObserver(obs Observer)
}

// Account holds the balance for a single bank account and notifies its
// registered observers after every successful mutation, in registration order.
type Account struct {
	number    snowflake.ID
	balance   decimal.Decimal
	active    bool
	observers []Observer
}

var (
	_ BankAccount = (*Account)(nil)
)

// NewAccount opens an account with the given initial balance. The initial
// balance is taken as-is; negative values are not rejected here.
func NewAccount(number snowflake.ID, initial decimal.Decimal) *Account {
	return &Account{
		number:  number,
		balance: initial,
		active:  true,
	}
}

func (a *Account) Number() snowflake.ID {
	return a.number
}

// Deposit adds amount to the balance. Deposits are accepted even on a closed
// account; only the sign of the amount is checked.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeDeposit{Amount: amount}
	}
	a.balance = a.balance.Add(amount)
	a.notify("Deposited: $" + amount.String())
	return nil
}

// Withdraw subtracts amount from the balance. The closed-account check runs
// before the balance check.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !a.active {
		return ErrInvalidOperation{Reason: "this account is closed"}
	}
	if amount.GreaterThan(a.balance) {
		return ErrOverdraw{Amount: amount, Balance: a.balance}
	}
	a.balance = a.balance.Sub(amount)
	a.notify("Withdrew: $" + amount.String())
	return nil
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Close deactivates the account. Calling it again only re-notifies.
func (a *Account) Close() {
	a.active = false
	a.notify("Account has been closed")
}

// AddObserver appends obs to the notification list. No de-duplication.
func (a *Account) AddObserver(obs Observer) {
	a.observers = append(a.observers, obs)
}

func (a *Account) notify(message string) {
	for _, obs := range a.observers {
		obs.Update(message)
	}
}
