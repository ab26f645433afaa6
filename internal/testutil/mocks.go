package testutil

import (
	"bytes"
	"context"
	"sync"

	"github.com/cassiomorais/paygrid/internal/domain/payment"
	"github.com/cassiomorais/paygrid/internal/gateway"
)

// --- Gateway component mocks ---
// Function-field mocks: set the Func to override, otherwise a benign default
// is used and calls are recorded.

// MockCardValidator is a mock implementation of gateway.CardValidator.
type MockCardValidator struct {
	mu    sync.Mutex
	calls []string

	ValidateCardFunc func(cardNumber string) bool
}

func (m *MockCardValidator) ValidateCard(cardNumber string) bool {
	m.mu.Lock()
	m.calls = append(m.calls, cardNumber)
	m.mu.Unlock()
	if m.ValidateCardFunc != nil {
		return m.ValidateCardFunc(cardNumber)
	}
	return true
}

// Calls returns the card numbers ValidateCard was invoked with.
func (m *MockCardValidator) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// MockProcessor is a mock implementation of gateway.Processor.
type MockProcessor struct {
	mu    sync.Mutex
	calls int

	ProcessTransactionFunc func(ctx context.Context, amount payment.Amount, cardNumber string) payment.Reference
}

func (m *MockProcessor) ProcessTransaction(ctx context.Context, amount payment.Amount, cardNumber string) payment.Reference {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.ProcessTransactionFunc != nil {
		return m.ProcessTransactionFunc(ctx, amount, cardNumber)
	}
	return "MOCK-00000000"
}

func (m *MockProcessor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MockTransactionLogger is a mock implementation of gateway.TransactionLogger.
type MockTransactionLogger struct {
	mu       sync.Mutex
	messages []string

	LogFunc func(ctx context.Context, message string)
}

func (m *MockTransactionLogger) Log(ctx context.Context, message string) {
	m.mu.Lock()
	m.messages = append(m.messages, message)
	m.mu.Unlock()
	if m.LogFunc != nil {
		m.LogFunc(ctx, message)
	}
}

func (m *MockTransactionLogger) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.messages...)
}

// MockFactory is a mock implementation of gateway.Factory that hands out
// fixed component instances.
type MockFactory struct {
	GatewayName string
	Validator   *MockCardValidator
	Processor   *MockProcessor
	Logger      *MockTransactionLogger

	ValidatorCalls int
	ProcessorCalls int
	LoggerCalls    int
}

// NewMockFactory creates a mock factory with recording components.
func NewMockFactory(name string) *MockFactory {
	return &MockFactory{
		GatewayName: name,
		Validator:   &MockCardValidator{},
		Processor:   &MockProcessor{},
		Logger:      &MockTransactionLogger{},
	}
}

func (f *MockFactory) Name() string { return f.GatewayName }

func (f *MockFactory) CreateValidator() gateway.CardValidator {
	f.ValidatorCalls++
	return f.Validator
}

func (f *MockFactory) CreateProcessor() gateway.Processor {
	f.ProcessorCalls++
	return f.Processor
}

func (f *MockFactory) CreateLogger() gateway.TransactionLogger {
	f.LoggerCalls++
	return f.Logger
}

// --- Test sinks and token sources ---

// CaptureSink is a concurrency-safe buffer for capturing log output.
type CaptureSink struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *CaptureSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *CaptureSink) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// StaticTokenSource always returns the same token, for reproducible
// reference-format assertions.
type StaticTokenSource struct {
	Value string
}

func (s StaticTokenSource) Token() string { return s.Value }
