package queries

import (
	"context"

	"field-reservation/internal/pkg/errs"
	"field-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentReadStore interface {
	ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]*PaymentView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
}

type PaymentQueries interface {
	ListByReservation(ctx context.Context, reservationID uuid.UUID, actor shared.Actor) ([]*PaymentView, error)
	GetByID(ctx context.Context, id uuid.UUID, actor shared.Actor) (*PaymentView, error)
}

type paymentQueriesImpl struct {
	reservations ReservationQueries
	store        PaymentReadStore
}

func NewPaymentQueries(reservations ReservationQueries, store PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{reservations: reservations, store: store}
}

func (q *paymentQueriesImpl) ListByReservation(ctx context.Context, reservationID uuid.UUID, actor shared.Actor) ([]*PaymentView, error) {
	// Ownership is decided by the reservation the payments belong to.
	if _, err := q.reservations.GetByID(ctx, reservationID, actor); err != nil {
		return nil, err
	}
	payments, err := q.store.ListByReservation(ctx, reservationID)
	if err != nil {
		return nil, shared.Persistence(err)
	}
	return payments, nil
}

// GetByID is visible to the owner of the paid reservation and to staff.
func (q *paymentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor shared.Actor) (*PaymentView, error) {
	p, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, shared.Persistence(err)
	}
	if _, err := q.reservations.GetByID(ctx, p.ReservationID, actor); err != nil {
		if errs.KindOf(err) == errs.KindForbidden {
			return nil, errs.Wrapf(errs.ErrForbidden, "payment %s belongs to another user", id)
		}
		return nil, err
	}
	return p, nil
}
