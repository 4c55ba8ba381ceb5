//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"field-reservation/internal/domain/reservation"
	"field-reservation/internal/pkg/clock"
	"field-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourlyPriceCalculator(t *testing.T) {
	calc := reservation.NewHourlyPriceCalculator()

	cases := []struct {
		hourly  string
		minutes int
		want    string
	}{
		{hourly: "50.00", minutes: 90, want: "75.00"},
		{hourly: "50.00", minutes: 60, want: "50.00"},
		{hourly: "40.00", minutes: 30, want: "20.00"},
		{hourly: "33.33", minutes: 45, want: "25.00"},
		{hourly: "10.01", minutes: 30, want: "5.01"},
		{hourly: "0.00", minutes: 120, want: "0.00"},
		{hourly: "25.00", minutes: 480, want: "200.00"},
	}
	for _, c := range cases {
		t.Run(c.hourly+"x"+time.Duration(c.minutes*int(time.Minute)).String(), func(t *testing.T) {
			field := builder.NewFieldBuilder().WithHourlyPrice(c.hourly).BuildDomain()
			assert.Equal(t, c.want, calc.CalculatePrice(field, c.minutes).String())
		})
	}
}

func TestFactory(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	factory := reservation.NewFactory(clock.NewMockClock(now), reservation.NewHourlyPriceCalculator())
	field := builder.NewFieldBuilder().BuildDomain()
	date := builder.MustDate("2025-06-02")
	ten := builder.MustTime("10:00")

	t.Run("creates a pending reservation priced from the field", func(t *testing.T) {
		userID := uuid.New()
		res, err := factory.CreateReservation(field, userID, date, ten, 90)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.Equal(t, field.ID(), res.FieldID())
		assert.Equal(t, userID, res.UserID())
		assert.Equal(t, "75.00", res.Price().String())
		assert.Equal(t, "11:30", res.EndTime().String())
		assert.Equal(t, now, res.CreatedAt())
	})

	cases := []struct {
		name    string
		date    time.Time
		start   string
		minutes int
		errIs   error
	}{
		{name: "minimum duration", date: date, start: "10:00", minutes: reservation.MinDurationMinutes},
		{name: "maximum duration", date: date, start: "10:00", minutes: reservation.MaxDurationMinutes},
		{name: "too short", date: date, start: "10:00", minutes: 29, errIs: reservation.ErrInvalidDuration},
		{name: "too long", date: date, start: "10:00", minutes: 481, errIs: reservation.ErrInvalidDuration},
		{name: "starts now", date: builder.MustDate("2025-06-01"), start: "08:00", minutes: 60},
		{name: "started a minute ago", date: builder.MustDate("2025-06-01"), start: "07:59", minutes: 60, errIs: reservation.ErrStartInPast},
		{name: "yesterday", date: builder.MustDate("2025-05-31"), start: "10:00", minutes: 60, errIs: reservation.ErrStartInPast},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := factory.Validate(c.date, builder.MustTime(c.start), c.minutes)
			if c.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, c.errIs)
		})
	}
}
