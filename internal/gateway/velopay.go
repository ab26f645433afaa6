package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/cassiomorais/paygrid/internal/domain/payment"
	"github.com/rs/zerolog"
)

const (
	veloName = "velopay"
	veloTag  = "VELO"

	veloCardPrefix = "4"
)

// VeloPayFactory produces components for VeloPay: 16-character cards
// starting with "4".
type VeloPayFactory struct {
	cfg settings
}

// NewVeloPayFactory creates a VeloPay factory.
func NewVeloPayFactory(opts ...Option) *VeloPayFactory {
	return &VeloPayFactory{cfg: applyOptions(opts)}
}

func (f *VeloPayFactory) Name() string { return veloName }

func (f *VeloPayFactory) CreateValidator() CardValidator {
	return veloValidator{}
}

func (f *VeloPayFactory) CreateProcessor() Processor {
	return &veloProcessor{tokens: f.cfg.tokens, notices: f.cfg.notices}
}

func (f *VeloPayFactory) CreateLogger() TransactionLogger {
	return &veloLogger{
		log: zerolog.New(newLogWriter(f.cfg)).With().
			Timestamp().
			Str("gateway", veloName).
			Str("tag", veloTag).
			Logger(),
	}
}

type veloValidator struct{}

func (veloValidator) ValidateCard(cardNumber string) bool {
	return len(cardNumber) == 16 && strings.HasPrefix(cardNumber, veloCardPrefix)
}

type veloProcessor struct {
	tokens  TokenSource
	notices zerolog.Logger
}

func (p *veloProcessor) ProcessTransaction(ctx context.Context, amount payment.Amount, cardNumber string) payment.Reference {
	p.notices.Info().
		Str("gateway", veloName).
		Str("amount", amount.String()).
		Msg("submitting transaction")
	return payment.Reference(fmt.Sprintf("%s-%s", veloTag, p.tokens.Token()))
}

type veloLogger struct {
	log zerolog.Logger
}

func (l *veloLogger) Log(ctx context.Context, message string) {
	l.log.Info().Msg(message)
}
