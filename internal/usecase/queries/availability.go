package queries

import (
	"context"
	"time"

	"field-reservation/internal/domain/schedule"
	"field-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	GetAvailability(ctx context.Context, fieldID uuid.UUID, date time.Time) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	reads      shared.CommandReads
	calculator *shared.AvailabilityCalculator
}

func NewAvailabilityQueries(uow shared.UnitOfWork, calculator *shared.AvailabilityCalculator) AvailabilityQueries {
	return &availabilityQueriesImpl{reads: uow.CommandReads(), calculator: calculator}
}

func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, fieldID uuid.UUID, date time.Time) (*AvailabilityView, error) {
	date = schedule.NormalizeDate(date)
	slots, err := q.calculator.AvailableSlots(ctx, q.reads, fieldID, date)
	if err != nil {
		return nil, err
	}

	views := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, SlotView{
			StartTime:       s.Start.String(),
			EndTime:         s.End.String(),
			DurationMinutes: s.DurationMinutes,
		})
	}
	return &AvailabilityView{
		FieldID: fieldID,
		Date:    schedule.FormatDate(date),
		Slots:   views,
	}, nil
}
