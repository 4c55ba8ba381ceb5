package converter

import (
	"field-reservation/internal/domain/money"
	"field-reservation/internal/domain/reservation"
	"field-reservation/internal/domain/schedule"
	sqlc "field-reservation/internal/infra/sqlc/generated"
	"field-reservation/internal/pkg/errs"
	"field-reservation/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:              res.ID(),
		FieldID:         res.FieldID(),
		UserID:          res.UserID(),
		Date:            pgconv.DateToPgtype(res.Date()),
		StartTime:       pgconv.MinutesToPgtype(res.StartTime().Minutes()),
		DurationMinutes: int32(res.DurationMinutes()),
		PriceTotalCents: res.Price().Cents(),
		Status:          res.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

// ReservationFromRow rebuilds the aggregate. Rows of ListActiveReservationsForDate
// share this shape and can be converted with sqlc.GetReservationByIDRow(row).
func ReservationFromRow(row sqlc.GetReservationByIDRow) (*reservation.Reservation, error) {
	minutes, err := pgconv.MinutesFromPgtype(row.StartTime)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s start_time", row.ID)
	}
	price, err := money.FromCents(row.PriceTotalCents)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s price", row.ID)
	}
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s", row.ID)
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.FieldID,
		row.UserID,
		pgconv.DateFromPgtype(row.Date),
		schedule.TimeOfDay(minutes),
		int(row.DurationMinutes),
		price,
		status,
		pgconv.StringPtrFromPgtype(row.CancelReason),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
