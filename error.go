package bankacct

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type ErrNegativeDeposit struct {
	Amount decimal.Decimal
}

func (e ErrNegativeDeposit) Error() string {
	return fmt.Sprintf("deposit must be positive, got $%s", e.Amount)
}

type ErrOverdraw struct {
	Amount  decimal.Decimal
	Balance decimal.Decimal
}

func (e ErrOverdraw) Error() string {
	return fmt.Sprintf("cannot withdraw more than the current balance of $%s", e.Balance)
}

type ErrInvalidOperation struct {
	Reason string
}

func (e ErrInvalidOperation) Error() string {
	return e.Reason
}
