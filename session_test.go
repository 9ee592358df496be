package bankacct_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmfrancisco/bankacct"
)

func newTestSession(input string) (*bankacct.Session, *bytes.Buffer, *bytes.Buffer) {
	var out, logbuf bytes.Buffer
	logger := zerolog.New(&logbuf)
	sess := &bankacct.Session{
		In:    strings.NewReader(input),
		Out:   &out,
		Log:   &logger,
		Limit: bankacct.DefaultWithdrawLimit,
	}
	return sess, &out, &logbuf
}

func TestSessionRun(t *testing.T) {
	t.Run("reports the final balance after one deposit and one withdrawal", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		sess, out, logbuf := newTestSession("1000\n200\n300\n")

		err := sess.Run()
		reqrd.Nil(err)
		as.Contains(out.String(), "Bank Account Created: #")
		as.Contains(out.String(), "Enter initial balance: ")
		as.Contains(out.String(), "Enter deposit amount: ")
		as.Contains(out.String(), "Enter withdraw amount: ")
		as.Contains(out.String(), "Final Balance: $900")
		// one log event per successful transaction
		as.Equal(2, strings.Count(logbuf.String(), "\n"))
		as.Contains(logbuf.String(), "Deposited: $200")
		as.Contains(logbuf.String(), "Withdrew: $300")
	})

	t.Run("aborts on a negative deposit without logging it", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		sess, out, logbuf := newTestSession("100\n-5\n")

		err := sess.Run()
		reqrd.NotNil(err)
		as.ErrorAs(err, &bankacct.ErrNegativeDeposit{})
		as.Empty(logbuf.String())
		as.NotContains(out.String(), "Final Balance")
	})

	t.Run("aborts when the withdrawal exceeds the ceiling", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		sess, _, logbuf := newTestSession("1000\n0\n600\n")

		err := sess.Run()
		reqrd.NotNil(err)
		as.ErrorAs(err, &bankacct.ErrInvalidOperation{})
		// the zero deposit succeeded and was logged; the withdrawal was not
		as.Equal(1, strings.Count(logbuf.String(), "\n"))
		as.NotContains(logbuf.String(), "Withdrew")
	})

	t.Run("aborts on an overdraw within the ceiling", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		sess, _, _ := newTestSession("100\n0\n200\n")

		err := sess.Run()
		reqrd.NotNil(err)
		as.ErrorAs(err, &bankacct.ErrOverdraw{})
	})

	t.Run("honors a ceiling override", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		sess, out, _ := newTestSession("1000\n0\n600\n")
		sess.Limit = decimal.NewFromInt(700)

		err := sess.Run()
		reqrd.Nil(err)
		as.Contains(out.String(), "Final Balance: $400")
	})

	t.Run("surfaces malformed numeric input", func(tt *testing.T) {
		as := assert.New(tt)
		sess, _, logbuf := newTestSession("not-a-number\n")

		err := sess.Run()
		as.NotNil(err)
		as.False(errors.As(err, &bankacct.ErrNegativeDeposit{}))
		as.False(errors.As(err, &bankacct.ErrOverdraw{}))
		as.False(errors.As(err, &bankacct.ErrInvalidOperation{}))
		as.Empty(logbuf.String())
	})
}

func TestWriteSessionError(t *testing.T) {
	t.Run("prints a kind-specific message per domain error", func(tt *testing.T) {
		as := assert.New(tt)

		var buf bytes.Buffer
		bankacct.WriteSessionError(&buf, bankacct.ErrNegativeDeposit{Amount: decimal.NewFromInt(-5)})
		as.Equal("Error: deposit must be positive, got $-5\n", buf.String())

		buf.Reset()
		bankacct.WriteSessionError(&buf, bankacct.ErrOverdraw{
			Amount:  decimal.NewFromInt(200),
			Balance: decimal.NewFromInt(100),
		})
		as.Equal("Error: cannot withdraw more than the current balance of $100\n", buf.String())

		buf.Reset()
		bankacct.WriteSessionError(&buf, bankacct.ErrInvalidOperation{Reason: "this account is closed"})
		as.Equal("Error: this account is closed\n", buf.String())
	})

	t.Run("falls back to a catch-all for anything else", func(tt *testing.T) {
		as := assert.New(tt)
		var buf bytes.Buffer
		sess, _, _ := newTestSession("gibberish\n")
		err := sess.Run()
		bankacct.WriteSessionError(&buf, err)
		as.Contains(buf.String(), "An unexpected error occurred: ")
	})
}
