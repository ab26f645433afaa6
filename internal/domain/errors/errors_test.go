package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DomainError
		expected string
	}{
		{
			name: "with wrapped error",
			err: &DomainError{
				Code:    "payment_rejected",
				Message: "payment was rejected",
				Err:     errors.New("card rejected by gateway"),
			},
			expected: "payment was rejected: card rejected by gateway",
		},
		{
			name: "without wrapped error",
			err: &DomainError{
				Code:    "unknown_gateway",
				Message: "no such gateway registered",
				Err:     nil,
			},
			expected: "no such gateway registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := NewDomainError("code", "message", inner)

	assert.ErrorIs(t, err, inner)
}

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError("card_number", "must not be empty")

	assert.Equal(t, "validation failed for field card_number: must not be empty", err.Error())
}

func TestValidationError_UnwrapsToInvalidInput(t *testing.T) {
	err := NewValidationError("amount", "must be non-negative")

	assert.ErrorIs(t, err, ErrInvalidInput)
}
