package payment_test

import (
	"testing"

	"github.com/cassiomorais/paygrid/internal/domain/errors"
	"github.com/cassiomorais/paygrid/internal/domain/payment"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAmount_Valid(t *testing.T) {
	a, err := payment.NewAmount(15000, "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(15000), a.ValueCents)
	assert.Equal(t, "USD", a.Currency)
}

func TestNewAmount_ZeroIsValid(t *testing.T) {
	_, err := payment.NewAmount(0, "USD")
	assert.NoError(t, err)
}

func TestNewAmount_Negative(t *testing.T) {
	_, err := payment.NewAmount(-100, "USD")
	assert.ErrorIs(t, err, errors.ErrInvalidAmount)
}

func TestNewAmount_InvalidCurrencyLength(t *testing.T) {
	_, err := payment.NewAmount(1000, "US")
	assert.ErrorIs(t, err, errors.ErrInvalidAmount)

	_, err = payment.NewAmount(1000, "")
	assert.ErrorIs(t, err, errors.ErrInvalidAmount)
}

func TestAmount_String(t *testing.T) {
	a := payment.Amount{ValueCents: 15000, Currency: "USD"}
	assert.Equal(t, "150.00 USD", a.String())

	a = payment.Amount{ValueCents: 10050, Currency: "EUR"}
	assert.Equal(t, "100.50 EUR", a.String())

	a = payment.Amount{ValueCents: 7, Currency: "USD"}
	assert.Equal(t, "0.07 USD", a.String())
}

func TestNewReceipt_Completed(t *testing.T) {
	a := payment.Amount{ValueCents: 15000, Currency: "USD"}
	r := payment.NewReceipt("omnipay", payment.StatusCompleted, "OMNI-deadbeef", a)

	assert.NotEqual(t, uuid.Nil, r.ID)
	assert.Equal(t, "omnipay", r.Gateway)
	assert.True(t, r.Completed())
	assert.Equal(t, payment.Reference("OMNI-deadbeef"), r.Reference)
	assert.False(t, r.ProcessedAt.IsZero())
}

func TestNewReceipt_Rejected(t *testing.T) {
	a := payment.Amount{ValueCents: 30000, Currency: "USD"}
	r := payment.NewReceipt("maxipay", payment.StatusRejected, "", a)

	assert.False(t, r.Completed())
	assert.Empty(t, r.Reference)
}
