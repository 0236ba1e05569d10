package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindOrderNotFound, KindOf(OrderNotFound("order with id %d not found", 1)))
	assert.Equal(t, KindInvalidPayment, KindOf(InvalidPayment("no confirmation")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestWrapKeepsTheCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := GatewayIntegration(cause, "error talking to gateway for payment id '%s'", "mp-1")

	assert.Equal(t, KindGatewayIntegration, KindOf(err))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "mp-1")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestKindSurvivesFurtherWrapping(t *testing.T) {
	inner := OrderNotFound("order with id %d not found", 9)
	outer := fmt.Errorf("handling request: %w", inner)

	assert.Equal(t, KindOrderNotFound, KindOf(outer))
}
