package reservation

import (
	"time"

	"field-reservation/internal/domain/resource"
	"field-reservation/internal/domain/schedule"
	"field-reservation/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateReservation builds a pending reservation priced from the field's hourly rate.
// Availability and conflicts are checked by the caller.
func (f *Factory) CreateReservation(
	field *resource.Field,
	userID uuid.UUID,
	date time.Time,
	start schedule.TimeOfDay,
	durationMinutes int,
) (*Reservation, error) {
	if err := f.Validate(date, start, durationMinutes); err != nil {
		return nil, err
	}
	duration, _ := NewDuration(durationMinutes)
	price := f.PriceCalculator.CalculatePrice(field, duration.Minutes())

	return NewReservation(field.ID(), userID, date, start, duration, price, f.Clock.Now()), nil
}

// Validate checks the request shape: duration bounds and a start that is not in the past.
func (f *Factory) Validate(date time.Time, start schedule.TimeOfDay, durationMinutes int) error {
	if _, err := NewDuration(durationMinutes); err != nil {
		return err
	}
	now := f.Clock.Now()
	if start.On(date, now.Location()).Before(now) {
		return ErrStartInPast
	}
	return nil
}
