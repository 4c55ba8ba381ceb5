package readstore

import (
	"context"

	"field-reservation/internal/infra"
	sqlc "field-reservation/internal/infra/sqlc/generated"
	"field-reservation/internal/pkg/pgconv"
	"field-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentReadQueries interface {
	ListPaymentsByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.Payments, error)
	GetPaymentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payments, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      sqlc.DBTX
}

func NewPaymentReadStore(queries PaymentReadQueries, db sqlc.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPaymentsByReservation(ctx, r.db, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}

	result := make([]*queries.PaymentView, len(rows))
	for i, row := range rows {
		result[i] = paymentView(row)
	}
	return result, nil
}

func (r *PaymentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PaymentView, error) {
	row, err := r.queries.GetPaymentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by ID", err)
	}
	return paymentView(row), nil
}

func paymentView(row sqlc.Payments) *queries.PaymentView {
	return &queries.PaymentView{
		ID:            row.ID,
		ReservationID: row.ReservationID,
		Method:        row.Method,
		Amount:        formatCents(row.AmountCents),
		Status:        row.Status,
		ExternalID:    pgconv.StringPtrFromPgtype(row.ExternalID),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
