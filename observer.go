package bankacct

//go:generate mockgen -source=observer.go -destination=mocks/observer.go -package=mocks

import (
	"github.com/rs/zerolog"
)

// Observer receives a human-readable message after each successful mutating
// operation on an account. Observers run synchronously and are trusted;
// a failure inside Update surfaces to the caller of the mutating operation.
type Observer interface {
	Update(message string)
}

// TransactionLogger is an Observer that emits one log event per transaction.
type TransactionLogger struct {
	log zerolog.Logger
}

var (
	_ Observer = (*TransactionLogger)(nil)
)

func NewTransactionLogger(log *zerolog.Logger) *TransactionLogger {
	return &TransactionLogger{
		log: log.With().Str("label", "transaction").Logger(),
	}
}

func (t *TransactionLogger) Update(message string) {
	t.log.Info().Msg(message)
}
