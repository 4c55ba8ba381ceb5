package queries

import (
	"context"

	"field-reservation/internal/pkg/errs"
	"field-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, params ReservationListParams) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor shared.Actor) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter, actor shared.Actor, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor shared.Actor) (*ReservationView, error) {
	rv, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, shared.Persistence(err)
	}
	if !actor.CanAccess(rv.UserID) {
		return nil, errs.Wrapf(errs.ErrForbidden, "reservation %s belongs to another user", id)
	}
	return rv, nil
}

// List pages newest first. Regular users only ever see their own reservations.
func (q *reservationQueriesImpl) List(ctx context.Context, filter ReservationFilter, actor shared.Actor, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		return nil, nil, errs.Wrap(errs.ErrInvalidInput, "date_to is before date_from")
	}

	limit = ValidateLimit(limit)
	params := ReservationListParams{
		Filter: filter,
		Limit:  int32(limit + 1),
	}
	if !actor.Role.IsPrivileged() {
		owner := actor.ID
		params.UserID = &owner
	}
	if cursor != nil && cursor.After != "" {
		lastCreatedAt, lastID, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, err
		}
		params.AfterCreatedAt = &lastCreatedAt
		params.AfterID = &lastID
	}

	rows, err := q.store.List(ctx, params)
	if err != nil {
		return nil, nil, shared.Persistence(err)
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
