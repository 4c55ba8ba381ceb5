package uow

import (
	"context"
	"time"

	"field-reservation/internal/domain/payment"
	"field-reservation/internal/domain/reservation"
	"field-reservation/internal/domain/resource"
	"field-reservation/internal/domain/schedule"
	"field-reservation/internal/infra"
	"field-reservation/internal/infra/repository/converter"
	sqlc "field-reservation/internal/infra/sqlc/generated"
	"field-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// commandReads loads aggregates through whichever DBTX it was bound to, so reads
// made inside Within observe the transaction's own writes.
type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX
}

func (r *commandReads) FieldByID(ctx context.Context, id uuid.UUID) (*resource.Field, error) {
	row, err := r.uow.q.GetFieldByID(ctx, r.dbtx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("field not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find field by ID", err)
	}

	field, err := converter.FieldFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt field row", err)
	}
	return field, nil
}

func (r *commandReads) SchedulesForDate(ctx context.Context, fieldID uuid.UUID, date time.Time) ([]*schedule.Template, error) {
	date = schedule.NormalizeDate(date)
	rows, err := r.uow.q.ListSchedulesForDate(ctx, r.dbtx, sqlc.ListSchedulesForDateParams{
		FieldID:    fieldID,
		TargetDate: pgconv.DateToPgtype(date),
		DayOfWeek:  int16(date.Weekday()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list schedules", err)
	}

	templates := make([]*schedule.Template, 0, len(rows))
	for _, row := range rows {
		tpl, err := converter.TemplateFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt schedule row", err)
		}
		templates = append(templates, tpl)
	}
	return templates, nil
}

func (r *commandReads) ActiveReservationsForDate(ctx context.Context, fieldID uuid.UUID, date time.Time) ([]*reservation.Reservation, error) {
	rows, err := r.uow.q.ListActiveReservationsForDate(ctx, r.dbtx, sqlc.ListActiveReservationsForDateParams{
		FieldID: fieldID,
		Date:    pgconv.DateToPgtype(date),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationFromRow(sqlc.GetReservationByIDRow(row))
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt reservation row", err)
		}
		result = append(result, res)
	}
	return result, nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.uow.q.GetReservationByID(ctx, r.dbtx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt reservation row", err)
	}
	return res, nil
}

func (r *commandReads) PaymentByExternalID(ctx context.Context, reservationID uuid.UUID, externalID string) (*payment.Payment, error) {
	row, err := r.uow.q.FindPaymentByExternalID(ctx, r.dbtx, sqlc.FindPaymentByExternalIDParams{
		ReservationID: reservationID,
		ExternalID:    pgconv.StringToPgtype(externalID),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by external ID", err)
	}

	p, err := converter.PaymentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt payment row", err)
	}
	return p, nil
}
