package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/cassiomorais/paygrid/internal/domain/payment"
	"github.com/rs/zerolog"
)

const (
	maxiName = "maxipay"
	maxiTag  = "MAXI"

	// MaxiPay only issues cards in the 5-series.
	maxiCardPrefix = "5"
)

// MaxiPayFactory produces components for MaxiPay: 16-character cards
// starting with "5".
type MaxiPayFactory struct {
	cfg settings
}

// NewMaxiPayFactory creates a MaxiPay factory.
func NewMaxiPayFactory(opts ...Option) *MaxiPayFactory {
	return &MaxiPayFactory{cfg: applyOptions(opts)}
}

func (f *MaxiPayFactory) Name() string { return maxiName }

func (f *MaxiPayFactory) CreateValidator() CardValidator {
	return maxiValidator{}
}

func (f *MaxiPayFactory) CreateProcessor() Processor {
	return &maxiProcessor{tokens: f.cfg.tokens, notices: f.cfg.notices}
}

func (f *MaxiPayFactory) CreateLogger() TransactionLogger {
	return &maxiLogger{
		log: zerolog.New(newLogWriter(f.cfg)).With().
			Timestamp().
			Str("provider", strings.ToUpper(maxiName)).
			Logger(),
	}
}

type maxiValidator struct{}

func (maxiValidator) ValidateCard(cardNumber string) bool {
	return len(cardNumber) == 16 && strings.HasPrefix(cardNumber, maxiCardPrefix)
}

type maxiProcessor struct {
	tokens  TokenSource
	notices zerolog.Logger
}

func (p *maxiProcessor) ProcessTransaction(ctx context.Context, amount payment.Amount, cardNumber string) payment.Reference {
	p.notices.Info().
		Str("gateway", maxiName).
		Str("amount", amount.String()).
		Msg("submitting transaction")
	return payment.Reference(fmt.Sprintf("%s-%s", maxiTag, p.tokens.Token()))
}

type maxiLogger struct {
	log zerolog.Logger
}

func (l *maxiLogger) Log(ctx context.Context, message string) {
	l.log.Info().Msg(message)
}
