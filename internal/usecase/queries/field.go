package queries

import (
	"context"

	"field-reservation/internal/domain/reservation"
	"field-reservation/internal/pkg/errs"
	"field-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type FieldReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FieldView, error)
	List(ctx context.Context) ([]*FieldView, error)
}

type FieldQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*FieldView, error)
	List(ctx context.Context) ([]*FieldView, error)
	Quote(ctx context.Context, fieldID uuid.UUID, durationMinutes int) (*QuoteView, error)
}

type fieldQueriesImpl struct {
	store   FieldReadStore
	reads   shared.CommandReads
	pricing *shared.PricingService
}

func NewFieldQueries(store FieldReadStore, uow shared.UnitOfWork, pricing *shared.PricingService) FieldQueries {
	return &fieldQueriesImpl{store: store, reads: uow.CommandReads(), pricing: pricing}
}

func (q *fieldQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*FieldView, error) {
	field, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, shared.Persistence(err)
	}
	return field, nil
}

func (q *fieldQueriesImpl) List(ctx context.Context) ([]*FieldView, error) {
	fields, err := q.store.List(ctx)
	if err != nil {
		return nil, shared.Persistence(err)
	}
	return fields, nil
}

func (q *fieldQueriesImpl) Quote(ctx context.Context, fieldID uuid.UUID, durationMinutes int) (*QuoteView, error) {
	if _, err := reservation.NewDuration(durationMinutes); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	price, err := q.pricing.Price(ctx, q.reads, fieldID, durationMinutes)
	if err != nil {
		return nil, err
	}
	return &QuoteView{
		FieldID:         fieldID,
		DurationMinutes: durationMinutes,
		PriceTotal:      price.String(),
	}, nil
}
