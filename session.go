package bankacct

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Session runs one interactive pass: read an initial balance, open an
// account with a transaction logger attached, wrap it with the withdrawal
// ceiling, perform one deposit and one withdrawal, and report the final
// balance. The first failing step aborts the rest; the error is returned
// for the caller to dispatch via WriteSessionError.
type Session struct {
	In    io.Reader
	Out   io.Writer
	Log   *zerolog.Logger
	Limit decimal.Decimal
}

func (s *Session) Run() error {
	in := bufio.NewScanner(s.In)

	initial, err := s.promptAmount(in, "Enter initial balance: ")
	if err != nil {
		return err
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}
	acct := NewAccount(node.Generate(), initial)
	fmt.Fprintf(s.Out, "Bank Account Created: #%s\n", acct.Number())

	acct.AddObserver(NewTransactionLogger(s.Log))
	limited := NewWithdrawLimit(s.Limit)(acct)

	amount, err := s.promptAmount(in, "Enter deposit amount: ")
	if err != nil {
		return err
	}
	if err = limited.Deposit(amount); err != nil {
		return err
	}

	amount, err = s.promptAmount(in, "Enter withdraw amount: ")
	if err != nil {
		return err
	}
	if err = limited.Withdraw(amount); err != nil {
		return err
	}

	fmt.Fprintf(s.Out, "Final Balance: $%s\n", limited.Balance())
	return nil
}

func (s *Session) promptAmount(in *bufio.Scanner, prompt string) (decimal.Decimal, error) {
	fmt.Fprint(s.Out, prompt)
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return decimal.Zero, err
		}
		return decimal.Zero, io.ErrUnexpectedEOF
	}
	return decimal.NewFromString(strings.TrimSpace(in.Text()))
}

// WriteSessionError prints the kind-specific message for the three domain
// error kinds, falling back to a catch-all for anything else.
func WriteSessionError(w io.Writer, err error) {
	var (
		errnd ErrNegativeDeposit
		errod ErrOverdraw
		errio ErrInvalidOperation
	)
	switch {
	case errors.As(err, &errnd):
		fmt.Fprintf(w, "Error: %s\n", errnd.Error())
	case errors.As(err, &errod):
		fmt.Fprintf(w, "Error: %s\n", errod.Error())
	case errors.As(err, &errio):
		fmt.Fprintf(w, "Error: %s\n", errio.Error())
	default:
		fmt.Fprintf(w, "An unexpected error occurred: %s\n", err.Error())
	}
}
