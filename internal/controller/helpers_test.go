package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatToCents(t *testing.T) {
	assert.Equal(t, int64(15000), floatToCents(150.00))
	assert.Equal(t, int64(10050), floatToCents(100.50))
	assert.Equal(t, int64(1), floatToCents(0.01))
	assert.Equal(t, int64(0), floatToCents(0))
	// Round, don't truncate: 19.99 is 1998.9999... in binary.
	assert.Equal(t, int64(1999), floatToCents(19.99))
}

func TestCentsToFloat(t *testing.T) {
	assert.Equal(t, 150.00, centsToFloat(15000))
	assert.Equal(t, 0.07, centsToFloat(7))
}
