package repository

import (
	"context"

	"field-reservation/internal/domain/payment"
	"field-reservation/internal/infra"
	"field-reservation/internal/infra/repository/converter"
	sqlc "field-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) (uuid.UUID, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (uuid.UUID, error) {
	id, err := r.queries.CreatePayment(ctx, tx, converter.PaymentToInfra(p))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment", err)
	}
	return id, nil
}
