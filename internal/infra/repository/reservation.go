package repository

import (
	"context"
	"time"

	"field-reservation/internal/domain/reservation"
	"field-reservation/internal/infra"
	"field-reservation/internal/infra/repository/converter"
	sqlc "field-reservation/internal/infra/sqlc/generated"
	"field-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create surfaces an exclusion violation as KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	params := converter.ReservationToInfra(res)

	resultID, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return resultID, nil
}

func (r *ReservationRepository) UpdateStatus(
	ctx context.Context,
	tx sqlc.DBTX,
	id uuid.UUID,
	to, from reservation.Status,
	reason *string,
	now time.Time,
) (bool, error) {
	params := sqlc.UpdateReservationStatusParams{
		ToStatus:     to.String(),
		CancelReason: pgconv.StringPtrToPgtype(reason),
		UpdatedAt:    pgconv.TimeToPgtype(now),
		ID:           id,
		FromStatus:   from.String(),
	}

	affected, err := r.queries.UpdateReservationStatus(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update reservation status", err)
	}

	return affected == 1, nil
}
