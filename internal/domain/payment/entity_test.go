//go:build unit

package payment_test

import (
	"strings"
	"testing"
	"time"

	"field-reservation/internal/domain/money"
	"field-reservation/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAmount(t *testing.T) {
	expected := money.MustParse("75.00")

	cases := []struct {
		paid  string
		errIs error
	}{
		{paid: "75.00"},
		{paid: "75.01"},
		{paid: "74.99"},
		{paid: "75.005"},
		{paid: "75.02", errIs: payment.ErrAmountMismatch},
		{paid: "74.98", errIs: payment.ErrAmountMismatch},
		{paid: "0", errIs: payment.ErrAmountMismatch},
	}
	for _, c := range cases {
		t.Run(c.paid, func(t *testing.T) {
			err := payment.CheckAmount(expected, decimal.RequireFromString(c.paid))
			if c.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestNewOutcome(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	reservationID := uuid.New()
	amount := money.MustParse("75.00")

	t.Run("success completes the payment", func(t *testing.T) {
		p, err := payment.NewOutcome(reservationID, payment.MethodCard, amount, true, "  pay_123  ", now)
		require.NoError(t, err)
		assert.Equal(t, payment.StatusCompleted, p.Status())
		assert.Equal(t, reservationID, p.ReservationID())
		require.NotNil(t, p.ExternalID())
		assert.Equal(t, "pay_123", *p.ExternalID())
		assert.Equal(t, now, p.CreatedAt())
	})

	t.Run("failure records a failed attempt", func(t *testing.T) {
		p, err := payment.NewOutcome(reservationID, payment.MethodCash, amount, false, "", now)
		require.NoError(t, err)
		assert.Equal(t, payment.StatusFailed, p.Status())
		assert.Nil(t, p.ExternalID())
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := payment.NewOutcome(reservationID, payment.Method("barter"), amount, true, "", now)
		assert.ErrorIs(t, err, payment.ErrInvalidMethod)
	})

	t.Run("external id too long", func(t *testing.T) {
		_, err := payment.NewOutcome(reservationID, payment.MethodGateway, amount, true, strings.Repeat("x", 256), now)
		assert.ErrorIs(t, err, payment.ErrExternalIDTooLong)
	})
}
