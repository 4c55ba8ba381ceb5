package shared

import (
	"context"
	"time"

	"field-reservation/internal/domain/reservation"
	"field-reservation/internal/domain/resource"
	"field-reservation/internal/domain/schedule"

	"github.com/google/uuid"
)

// AvailabilityCalculator derives the free slots of a field for one date.
type AvailabilityCalculator struct{}

func NewAvailabilityCalculator() *AvailabilityCalculator {
	return &AvailabilityCalculator{}
}

func (c *AvailabilityCalculator) AvailableSlots(ctx context.Context, reads CommandReads, fieldID uuid.UUID, date time.Time) ([]schedule.Slot, error) {
	field, err := reads.FieldByID(ctx, fieldID)
	if err != nil {
		return nil, Persistence(err)
	}
	return c.SlotsForField(ctx, reads, field, date)
}

// SlotsForField is AvailableSlots for an already loaded field.
func (c *AvailabilityCalculator) SlotsForField(ctx context.Context, reads CommandReads, field *resource.Field, date time.Time) ([]schedule.Slot, error) {
	date = schedule.NormalizeDate(date)

	templates, err := reads.SchedulesForDate(ctx, field.ID(), date)
	if err != nil {
		return nil, Persistence(err)
	}
	if len(schedule.Resolve(templates, date)) == 0 {
		return []schedule.Slot{}, nil
	}

	existing, err := reads.ActiveReservationsForDate(ctx, field.ID(), date)
	if err != nil {
		return nil, Persistence(err)
	}

	return schedule.AvailableSlots(templates, date, reservation.BusyIntervals(existing)), nil
}
