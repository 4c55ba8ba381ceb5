package repository

import (
	"context"

	"field-reservation/internal/domain/resource"
	"field-reservation/internal/infra"
	"field-reservation/internal/infra/repository/converter"
	sqlc "field-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type FieldWriteQueries interface {
	CreateField(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateFieldParams) (uuid.UUID, error)
	UpdateField(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateFieldParams) (int64, error)
}

type FieldRepository struct {
	queries FieldWriteQueries
	db      sqlc.DBTX
}

func NewFieldRepository(queries FieldWriteQueries, db sqlc.DBTX) *FieldRepository {
	return &FieldRepository{
		queries: queries,
		db:      db,
	}
}

func (r *FieldRepository) Create(ctx context.Context, tx sqlc.DBTX, f *resource.Field) (uuid.UUID, error) {
	id, err := r.queries.CreateField(ctx, tx, converter.FieldToInfra(f))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create field", err)
	}
	return id, nil
}

// Update writes every mutable column. A missing row is reported as KindNotFound.
func (r *FieldRepository) Update(ctx context.Context, tx sqlc.DBTX, f *resource.Field) error {
	affected, err := r.queries.UpdateField(ctx, tx, converter.FieldUpdateToInfra(f))
	if err != nil {
		return infra.WrapRepoErr("failed to update field", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("field not found", nil, infra.KindNotFound)
	}
	return nil
}
