package readstore

import (
	"context"

	"field-reservation/internal/infra"
	sqlc "field-reservation/internal/infra/sqlc/generated"
	"field-reservation/internal/pkg/pgconv"
	"field-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type FieldReadQueries interface {
	GetFieldByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Fields, error)
	ListFields(ctx context.Context, db sqlc.DBTX) ([]sqlc.Fields, error)
}

type FieldReadStore struct {
	queries FieldReadQueries
	db      sqlc.DBTX
}

func NewFieldReadStore(queries FieldReadQueries, db sqlc.DBTX) *FieldReadStore {
	return &FieldReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *FieldReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.FieldView, error) {
	row, err := r.queries.GetFieldByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("field not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find field by ID", err)
	}
	return toFieldView(row), nil
}

func (r *FieldReadStore) List(ctx context.Context) ([]*queries.FieldView, error) {
	rows, err := r.queries.ListFields(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list fields", err)
	}

	result := make([]*queries.FieldView, len(rows))
	for i, row := range rows {
		result[i] = toFieldView(row)
	}
	return result, nil
}

func toFieldView(row sqlc.Fields) *queries.FieldView {
	return &queries.FieldView{
		ID:          row.ID,
		Name:        row.Name,
		Location:    row.Location,
		HourlyPrice: formatCents(row.HourlyPriceCents),
		Status:      row.Status,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
