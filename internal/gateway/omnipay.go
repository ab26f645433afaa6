package gateway

import (
	"context"
	"fmt"

	"github.com/cassiomorais/paygrid/internal/domain/payment"
	"github.com/rs/zerolog"
)

const (
	omniName = "omnipay"
	omniTag  = "OMNI"
)

// OmniPayFactory produces components for OmniPay, the least picky gateway:
// any 16-character card is accepted.
type OmniPayFactory struct {
	cfg settings
}

// NewOmniPayFactory creates an OmniPay factory.
func NewOmniPayFactory(opts ...Option) *OmniPayFactory {
	return &OmniPayFactory{cfg: applyOptions(opts)}
}

func (f *OmniPayFactory) Name() string { return omniName }

func (f *OmniPayFactory) CreateValidator() CardValidator {
	return omniValidator{}
}

func (f *OmniPayFactory) CreateProcessor() Processor {
	return &omniProcessor{tokens: f.cfg.tokens, notices: f.cfg.notices}
}

func (f *OmniPayFactory) CreateLogger() TransactionLogger {
	return &omniLogger{
		log: zerolog.New(newLogWriter(f.cfg)).With().
			Timestamp().
			Str("gateway", omniName).
			Logger(),
	}
}

type omniValidator struct{}

// ValidateCard accepts any card identifier of exactly 16 characters.
func (omniValidator) ValidateCard(cardNumber string) bool {
	return len(cardNumber) == 16
}

type omniProcessor struct {
	tokens  TokenSource
	notices zerolog.Logger
}

func (p *omniProcessor) ProcessTransaction(ctx context.Context, amount payment.Amount, cardNumber string) payment.Reference {
	p.notices.Info().
		Str("gateway", omniName).
		Str("amount", amount.String()).
		Msg("submitting transaction")
	return payment.Reference(fmt.Sprintf("%s-%s", omniTag, p.tokens.Token()))
}

type omniLogger struct {
	log zerolog.Logger
}

func (l *omniLogger) Log(ctx context.Context, message string) {
	l.log.Info().Msg(message)
}
