package gateway

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/cassiomorais/paygrid/internal/domain/payment"
	"github.com/rs/zerolog"
)

// CardValidator checks a card identifier against one gateway's acceptance
// rule. Implementations are pure predicates: no side effects, no errors,
// short or empty input is simply rejected.
type CardValidator interface {
	ValidateCard(cardNumber string) bool
}

// Processor submits an amount and card to a gateway and returns the
// transaction reference. Processing is simulated: the call is synchronous,
// never blocks and always succeeds. The card is assumed to have passed
// validation already.
type Processor interface {
	ProcessTransaction(ctx context.Context, amount payment.Amount, cardNumber string) payment.Reference
}

// TransactionLogger records a payment outcome in the gateway's own log
// format. Log must never fail the caller: sink errors are absorbed.
type TransactionLogger interface {
	Log(ctx context.Context, message string)
}

// Factory produces one gateway's components. Every creation call returns a
// fresh, independent instance, and all three always belong to the factory's
// own gateway. Mixing components across gateways is impossible by
// construction: each concrete factory hard-wires its own variants.
type Factory interface {
	// Name returns the gateway name.
	Name() string
	// CreateValidator returns this gateway's card validator.
	CreateValidator() CardValidator
	// CreateProcessor returns this gateway's transaction processor.
	CreateProcessor() Processor
	// CreateLogger returns this gateway's transaction logger.
	CreateLogger() TransactionLogger
}

type settings struct {
	tokens       TokenSource
	notices      zerolog.Logger
	sink         io.Writer
	sinkAttempts uint
	sinkDelay    time.Duration
}

func defaultSettings() settings {
	return settings{
		tokens:       UUIDTokens(),
		notices:      zerolog.New(os.Stdout).With().Timestamp().Logger(),
		sink:         os.Stdout,
		sinkAttempts: 3,
		sinkDelay:    25 * time.Millisecond,
	}
}

// Option customizes a gateway factory.
type Option func(*settings)

// WithTokenSource overrides the source of reference tokens. Tests inject a
// deterministic source here.
func WithTokenSource(ts TokenSource) Option {
	return func(s *settings) { s.tokens = ts }
}

// WithNoticeLogger routes processor progress notices to the given logger.
func WithNoticeLogger(l zerolog.Logger) Option {
	return func(s *settings) { s.notices = l }
}

// WithLogSink routes transaction log entries to the given writer.
func WithLogSink(w io.Writer) Option {
	return func(s *settings) { s.sink = w }
}

// WithSinkRetry tunes how often a failed transaction-log write is retried
// before the entry is dropped.
func WithSinkRetry(attempts uint, delay time.Duration) Option {
	return func(s *settings) {
		s.sinkAttempts = attempts
		s.sinkDelay = delay
	}
}

func applyOptions(opts []Option) settings {
	s := defaultSettings()
	for _, o := range opts {
		o(&s)
	}
	return s
}
