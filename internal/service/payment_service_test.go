package service_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/cassiomorais/paygrid/internal/domain/errors"
	"github.com/cassiomorais/paygrid/internal/domain/payment"
	"github.com/cassiomorais/paygrid/internal/gateway"
	"github.com/cassiomorais/paygrid/internal/infrastructure/observability"
	"github.com/cassiomorais/paygrid/internal/service"
	"github.com/cassiomorais/paygrid/internal/testutil"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usd(cents int64) payment.Amount {
	return payment.Amount{ValueCents: cents, Currency: "USD"}
}

func TestNewPaymentService_DrawsEachComponentOnce(t *testing.T) {
	f := testutil.NewMockFactory("mockpay")

	svc := service.NewPaymentService(f)

	assert.Equal(t, "mockpay", svc.Gateway())
	assert.Equal(t, 1, f.ValidatorCalls)
	assert.Equal(t, 1, f.ProcessorCalls)
	assert.Equal(t, 1, f.LoggerCalls)
}

func TestProcessPayment_ValidCard_ProcessesAndLogsOnce(t *testing.T) {
	f := testutil.NewMockFactory("mockpay")
	f.Processor.ProcessTransactionFunc = func(ctx context.Context, amount payment.Amount, cardNumber string) payment.Reference {
		return "MOCK-abcd1234"
	}
	svc := service.NewPaymentService(f)

	receipt, err := svc.ProcessPayment(context.Background(), usd(15000), "1234567890123456")
	require.NoError(t, err)

	assert.True(t, receipt.Completed())
	assert.Equal(t, payment.Reference("MOCK-abcd1234"), receipt.Reference)
	assert.Equal(t, 1, f.Processor.CallCount())
	require.Len(t, f.Logger.Messages(), 1)
	assert.Contains(t, f.Logger.Messages()[0], "MOCK-abcd1234")
	assert.Contains(t, f.Logger.Messages()[0], "150.00 USD")
}

func TestProcessPayment_RejectedCard_NoProcessingNoLogging(t *testing.T) {
	f := testutil.NewMockFactory("mockpay")
	f.Validator.ValidateCardFunc = func(string) bool { return false }
	svc := service.NewPaymentService(f)

	receipt, err := svc.ProcessPayment(context.Background(), usd(30000), "1234567890123456")
	require.NoError(t, err)

	assert.Equal(t, payment.StatusRejected, receipt.Status)
	assert.Empty(t, receipt.Reference)
	assert.Equal(t, 0, f.Processor.CallCount())
	assert.Empty(t, f.Logger.Messages())
}

func TestProcessPayment_RejectedCard_EmitsRejectionNotice(t *testing.T) {
	sink := &testutil.CaptureSink{}
	f := testutil.NewMockFactory("mockpay")
	f.Validator.ValidateCardFunc = func(string) bool { return false }
	svc := service.NewPaymentService(f, service.WithLogger(zerolog.New(sink)))

	_, err := svc.ProcessPayment(context.Background(), usd(30000), "1234567890123456")
	require.NoError(t, err)

	assert.Contains(t, sink.String(), "payment rejected")
	assert.Contains(t, sink.String(), "mockpay")
}

func TestProcessPayment_ProcessorRunsBeforeLogger(t *testing.T) {
	var mu sync.Mutex
	var order []string

	f := testutil.NewMockFactory("mockpay")
	f.Processor.ProcessTransactionFunc = func(ctx context.Context, amount payment.Amount, cardNumber string) payment.Reference {
		mu.Lock()
		order = append(order, "process")
		mu.Unlock()
		return "MOCK-abcd1234"
	}
	f.Logger.LogFunc = func(ctx context.Context, message string) {
		mu.Lock()
		order = append(order, "log")
		mu.Unlock()
	}
	svc := service.NewPaymentService(f)

	_, err := svc.ProcessPayment(context.Background(), usd(100), "1234567890123456")
	require.NoError(t, err)

	assert.Equal(t, []string{"process", "log"}, order)
}

func TestProcessPayment_EmptyCard_FailsFast(t *testing.T) {
	f := testutil.NewMockFactory("mockpay")
	svc := service.NewPaymentService(f)

	receipt, err := svc.ProcessPayment(context.Background(), usd(100), "")

	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
	assert.Empty(t, f.Validator.Calls(), "validator must not see malformed input")
}

func TestProcessPayment_NegativeAmount_FailsFast(t *testing.T) {
	f := testutil.NewMockFactory("mockpay")
	svc := service.NewPaymentService(f)

	receipt, err := svc.ProcessPayment(context.Background(), usd(-100), "1234567890123456")

	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, errors.ErrInvalidAmount)
	assert.Equal(t, 0, f.Processor.CallCount())
}

func TestProcessPayment_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics("paygrid", reg)

	f := testutil.NewMockFactory("mockpay")
	svc := service.NewPaymentService(f, service.WithMetrics(metrics))

	_, err := svc.ProcessPayment(context.Background(), usd(100), "1234567890123456")
	require.NoError(t, err)

	completed := metrics.PaymentsTotal.WithLabelValues("mockpay", "completed")
	assert.Equal(t, float64(1), promtestutil.ToFloat64(completed))

	accepted := metrics.CardValidationsTotal.WithLabelValues("mockpay", "accepted")
	assert.Equal(t, float64(1), promtestutil.ToFloat64(accepted))
}

// End-to-end scenarios against the real gateways.

func quietGateway(sink *testutil.CaptureSink) []gateway.Option {
	return []gateway.Option{
		gateway.WithNoticeLogger(zerolog.Nop()),
		gateway.WithLogSink(sink),
	}
}

func TestScenario_OmniPayAcceptsGenericCard(t *testing.T) {
	sink := &testutil.CaptureSink{}
	svc := service.NewPaymentService(gateway.NewOmniPayFactory(quietGateway(sink)...))

	receipt, err := svc.ProcessPayment(context.Background(), usd(15000), "1234567890123456")
	require.NoError(t, err)

	assert.True(t, receipt.Completed())
	assert.True(t, strings.HasPrefix(string(receipt.Reference), "OMNI-"))
	assert.Contains(t, sink.String(), string(receipt.Reference))
}

func TestScenario_MaxiPayAcceptsFiveSeriesCard(t *testing.T) {
	sink := &testutil.CaptureSink{}
	svc := service.NewPaymentService(gateway.NewMaxiPayFactory(quietGateway(sink)...))

	receipt, err := svc.ProcessPayment(context.Background(), usd(20000), "5234567890123456")
	require.NoError(t, err)

	assert.True(t, receipt.Completed())
	assert.True(t, strings.HasPrefix(string(receipt.Reference), "MAXI-"))
}

func TestScenario_MaxiPayRejectsForeignCard(t *testing.T) {
	sink := &testutil.CaptureSink{}
	svc := service.NewPaymentService(gateway.NewMaxiPayFactory(quietGateway(sink)...))

	receipt, err := svc.ProcessPayment(context.Background(), usd(30000), "1234567890123456")
	require.NoError(t, err)

	assert.Equal(t, payment.StatusRejected, receipt.Status)
	assert.Empty(t, receipt.Reference)
	assert.Empty(t, sink.String(), "no transaction log entry for a rejected payment")
}

func TestScenario_ServiceNeverProducesForeignReference(t *testing.T) {
	svc := service.NewPaymentService(gateway.NewMaxiPayFactory(quietGateway(&testutil.CaptureSink{})...))

	for i := 0; i < 100; i++ {
		receipt, err := svc.ProcessPayment(context.Background(), usd(100), "5234567890123456")
		require.NoError(t, err)
		ref := string(receipt.Reference)
		assert.True(t, strings.HasPrefix(ref, "MAXI-"))
		assert.False(t, strings.HasPrefix(ref, "OMNI-"))
		assert.False(t, strings.HasPrefix(ref, "VELO-"))
	}
}
