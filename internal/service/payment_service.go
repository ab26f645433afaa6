package service

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/cassiomorais/paygrid/internal/domain/errors"
	"github.com/cassiomorais/paygrid/internal/domain/payment"
	"github.com/cassiomorais/paygrid/internal/gateway"
	"github.com/cassiomorais/paygrid/internal/infrastructure/observability"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PaymentService processes payments through exactly one gateway. It draws
// the gateway's validator, processor and transaction logger from the
// factory once at construction and keeps them for its lifetime; the factory
// itself is not retained, so the component triple can never be re-bound or
// mixed with another gateway's.
type PaymentService struct {
	gateway   string
	validator gateway.CardValidator
	processor gateway.Processor
	txLog     gateway.TransactionLogger

	logger  zerolog.Logger
	metrics *observability.Metrics
	tracer  trace.Tracer
}

// PaymentServiceOption customizes a PaymentService.
type PaymentServiceOption func(*PaymentService)

// WithLogger routes service-level notices (rejections, progress) to l.
func WithLogger(l zerolog.Logger) PaymentServiceOption {
	return func(s *PaymentService) { s.logger = l }
}

// WithMetrics enables payment metrics.
func WithMetrics(m *observability.Metrics) PaymentServiceOption {
	return func(s *PaymentService) { s.metrics = m }
}

// NewPaymentService creates a PaymentService bound to the given gateway
// factory.
func NewPaymentService(f gateway.Factory, opts ...PaymentServiceOption) *PaymentService {
	s := &PaymentService{
		gateway:   f.Name(),
		validator: f.CreateValidator(),
		processor: f.CreateProcessor(),
		txLog:     f.CreateLogger(),
		logger:    zerolog.Nop(),
		tracer:    otel.Tracer("paygrid/service"),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Gateway returns the name of the gateway this service is bound to.
func (s *PaymentService) Gateway() string {
	return s.gateway
}

// ProcessPayment validates the card, submits the transaction and records
// the outcome. A card that fails the gateway's rule yields a receipt with
// StatusRejected and no error; the processor and transaction logger are not
// invoked in that case. An error is returned only for malformed input.
func (s *PaymentService) ProcessPayment(ctx context.Context, amount payment.Amount, cardNumber string) (*payment.Receipt, error) {
	ctx, span := s.tracer.Start(ctx, "PaymentService.ProcessPayment",
		trace.WithAttributes(attribute.String("payment.gateway", s.gateway)))
	defer span.End()

	if cardNumber == "" {
		return nil, domainErrors.NewValidationError("card_number", "must not be empty")
	}
	if amount.ValueCents < 0 {
		return nil, fmt.Errorf("%w: amount must be non-negative, got %d cents", domainErrors.ErrInvalidAmount, amount.ValueCents)
	}

	start := time.Now()

	if !s.validator.ValidateCard(cardNumber) {
		s.logger.Warn().
			Str("gateway", s.gateway).
			Str("amount", amount.String()).
			Msg("card failed validation, payment rejected")
		s.recordOutcome(span, payment.StatusRejected, start)
		s.countValidation("rejected")
		return payment.NewReceipt(s.gateway, payment.StatusRejected, "", amount), nil
	}
	s.countValidation("accepted")

	ref := s.processor.ProcessTransaction(ctx, amount, cardNumber)
	s.txLog.Log(ctx, fmt.Sprintf("payment of %s completed, reference %s", amount, ref))

	s.recordOutcome(span, payment.StatusCompleted, start)
	return payment.NewReceipt(s.gateway, payment.StatusCompleted, ref, amount), nil
}

func (s *PaymentService) recordOutcome(span trace.Span, status payment.Status, start time.Time) {
	span.SetAttributes(attribute.String("payment.status", string(status)))
	if s.metrics == nil {
		return
	}
	s.metrics.PaymentsTotal.WithLabelValues(s.gateway, string(status)).Inc()
	s.metrics.PaymentDuration.WithLabelValues(s.gateway).Observe(time.Since(start).Seconds())
}

func (s *PaymentService) countValidation(result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.CardValidationsTotal.WithLabelValues(s.gateway, result).Inc()
}
