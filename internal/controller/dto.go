package controller

import (
	"time"

	"github.com/cassiomorais/paygrid/internal/domain/payment"
)

// --- Request DTOs ---
// These DTOs handle HTTP/JSON concerns (float64 for money, validation tags).
// Controllers convert these to domain types before calling business logic.

// ProcessPaymentRequest holds the input for processing a payment.
type ProcessPaymentRequest struct {
	Gateway    string  `json:"gateway" validate:"required"`
	Amount     float64 `json:"amount" validate:"gte=0"`
	Currency   string  `json:"currency" validate:"required,len=3"`
	CardNumber string  `json:"card_number" validate:"required"`
}

// --- Response DTOs ---

// ReceiptResponse represents a payment receipt in API responses.
type ReceiptResponse struct {
	ID          string    `json:"id"`
	Gateway     string    `json:"gateway"`
	Status      string    `json:"status"`
	Reference   string    `json:"reference,omitempty"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	ProcessedAt time.Time `json:"processed_at"`
}

// GatewaysResponse lists the registered gateways.
type GatewaysResponse struct {
	Gateways []string `json:"gateways"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// FromReceipt converts a domain receipt to its API representation.
func FromReceipt(r *payment.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:          r.ID.String(),
		Gateway:     r.Gateway,
		Status:      string(r.Status),
		Reference:   string(r.Reference),
		Amount:      centsToFloat(r.Amount.ValueCents),
		Currency:    r.Amount.Currency,
		ProcessedAt: r.ProcessedAt,
	}
}
