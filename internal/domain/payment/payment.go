package payment

import (
	"fmt"
	"time"

	"github.com/cassiomorais/paygrid/internal/domain/errors"
	"github.com/google/uuid"
)

// Status represents the outcome of a payment attempt.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

// Reference is the opaque transaction identifier handed back by a gateway
// processor, in the form "<TAG>-<token>".
type Reference string

// Amount represents a monetary value as integer cents plus an ISO 4217
// currency code. Floating point never enters the domain layer.
type Amount struct {
	ValueCents int64
	Currency   string
}

// NewAmount validates and builds an Amount. Cents must be non-negative and
// the currency code must be three letters.
func NewAmount(valueCents int64, currency string) (Amount, error) {
	if valueCents < 0 {
		return Amount{}, fmt.Errorf("%w: amount must be non-negative, got %d", errors.ErrInvalidAmount, valueCents)
	}
	if len(currency) != 3 {
		return Amount{}, fmt.Errorf("%w: currency must be a 3-letter code, got %q", errors.ErrInvalidAmount, currency)
	}
	return Amount{ValueCents: valueCents, Currency: currency}, nil
}

func (a Amount) String() string {
	return fmt.Sprintf("%d.%02d %s", a.ValueCents/100, a.ValueCents%100, a.Currency)
}

// Receipt is the typed outcome of a ProcessPayment call. A rejected card
// yields a receipt with StatusRejected and an empty Reference.
type Receipt struct {
	ID          uuid.UUID
	Gateway     string
	Status      Status
	Reference   Reference
	Amount      Amount
	ProcessedAt time.Time
}

// Completed reports whether the payment reached the gateway and produced a
// transaction reference.
func (r *Receipt) Completed() bool {
	return r.Status == StatusCompleted
}

// NewReceipt builds a receipt for a finished ProcessPayment call.
func NewReceipt(gateway string, status Status, ref Reference, amount Amount) *Receipt {
	return &Receipt{
		ID:          uuid.New(),
		Gateway:     gateway,
		Status:      status,
		Reference:   ref,
		Amount:      amount,
		ProcessedAt: time.Now().UTC(),
	}
}
