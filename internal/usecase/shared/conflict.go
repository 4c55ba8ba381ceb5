package shared

import (
	"context"
	"time"

	"field-reservation/internal/domain/reservation"
	"field-reservation/internal/domain/schedule"

	"github.com/google/uuid"
)

type ConflictDetector struct{}

func NewConflictDetector() *ConflictDetector {
	return &ConflictDetector{}
}

// FindConflict re-reads the held reservations of (fieldID, date) and returns the
// first one overlapping candidate, or nil.
func (d *ConflictDetector) FindConflict(
	ctx context.Context,
	reads CommandReads,
	fieldID uuid.UUID,
	date time.Time,
	candidate schedule.Interval,
	exclude *uuid.UUID,
) (*reservation.Reservation, error) {
	existing, err := reads.ActiveReservationsForDate(ctx, fieldID, schedule.NormalizeDate(date))
	if err != nil {
		return nil, Persistence(err)
	}
	return reservation.FindConflict(existing, candidate, exclude), nil
}
