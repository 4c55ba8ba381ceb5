package converter

import (
	"field-reservation/internal/domain/money"
	"field-reservation/internal/domain/payment"
	sqlc "field-reservation/internal/infra/sqlc/generated"
	"field-reservation/internal/pkg/errs"
	"field-reservation/internal/pkg/pgconv"
)

func PaymentToInfra(p *payment.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		ID:            p.ID(),
		ReservationID: p.ReservationID(),
		Method:        string(p.Method()),
		AmountCents:   p.Amount().Cents(),
		Status:        p.Status().String(),
		ExternalID:    pgconv.StringPtrToPgtype(p.ExternalID()),
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PaymentFromRow(row sqlc.Payments) (*payment.Payment, error) {
	amount, err := money.FromCents(row.AmountCents)
	if err != nil {
		return nil, errs.Wrapf(err, "payment %s amount", row.ID)
	}
	return payment.ReconstructPayment(
		row.ID,
		row.ReservationID,
		payment.Method(row.Method),
		amount,
		payment.Status(row.Status),
		pgconv.StringPtrFromPgtype(row.ExternalID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
