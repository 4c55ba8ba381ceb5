package readstore

import (
	"context"

	"field-reservation/internal/domain/schedule"
	"field-reservation/internal/infra"
	sqlc "field-reservation/internal/infra/sqlc/generated"
	"field-reservation/internal/pkg/pgconv"
	"field-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadQueries interface {
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewByIDRow, error)
	ListReservationViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationViewsParams) ([]sqlc.ListReservationViewsRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	view, err := toReservationView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt reservation row", err)
	}
	return view, nil
}

func (r *ReservationReadStore) List(ctx context.Context, p queries.ReservationListParams) ([]*queries.ReservationView, error) {
	params := sqlc.ListReservationViewsParams{
		UserID:   pgconv.UUIDPtrToPgtype(p.UserID),
		FieldID:  pgconv.UUIDPtrToPgtype(p.Filter.FieldID),
		DateFrom: pgconv.DatePtrToPgtype(p.Filter.DateFrom),
		DateTo:   pgconv.DatePtrToPgtype(p.Filter.DateTo),
		AfterID:  pgconv.UUIDPtrToPgtype(p.AfterID),
		RowLimit: p.Limit,
	}
	if p.Filter.Status != nil {
		params.Status = pgconv.StringToPgtype(p.Filter.Status.String())
	}
	if p.AfterCreatedAt != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(*p.AfterCreatedAt)
	} else {
		params.AfterCreatedAt = pgtype.Timestamptz{Valid: false}
	}

	rows, err := r.queries.ListReservationViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		view, err := toReservationView(sqlc.GetReservationViewByIDRow(row))
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt reservation row", err)
		}
		result[i] = view
	}
	return result, nil
}

func toReservationView(row sqlc.GetReservationViewByIDRow) (*queries.ReservationView, error) {
	start, err := formatTimeOfDay(row.StartTime)
	if err != nil {
		return nil, err
	}
	duration := int(row.DurationMinutes)

	return &queries.ReservationView{
		ID:              row.ID,
		FieldID:         row.FieldID,
		FieldName:       row.FieldName,
		UserID:          row.UserID,
		Date:            schedule.FormatDate(pgconv.DateFromPgtype(row.Date)),
		StartTime:       start.String(),
		EndTime:         start.Add(duration).String(),
		DurationMinutes: duration,
		PriceTotal:      formatCents(row.PriceTotalCents),
		Status:          row.Status,
		CancelReason:    pgconv.StringPtrFromPgtype(row.CancelReason),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
