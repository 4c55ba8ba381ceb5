package reservation

import (
	"field-reservation/internal/domain/schedule"

	"github.com/google/uuid"
)

// FindConflict returns the first slot-holding reservation in existing whose
// interval overlaps candidate, skipping exclude when set.
func FindConflict(existing []*Reservation, candidate schedule.Interval, exclude *uuid.UUID) *Reservation {
	for _, r := range existing {
		if !r.Status().HoldsSlot() {
			continue
		}
		if exclude != nil && r.ID() == *exclude {
			continue
		}
		if r.Interval().Overlaps(candidate) {
			return r
		}
	}
	return nil
}

// BusyIntervals collects the intervals held by slot-holding reservations.
func BusyIntervals(existing []*Reservation) []schedule.Interval {
	busy := make([]schedule.Interval, 0, len(existing))
	for _, r := range existing {
		if r.Status().HoldsSlot() {
			busy = append(busy, r.Interval())
		}
	}
	return busy
}
