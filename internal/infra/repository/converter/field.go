package converter

import (
	"field-reservation/internal/domain/money"
	"field-reservation/internal/domain/resource"
	"field-reservation/internal/domain/schedule"
	sqlc "field-reservation/internal/infra/sqlc/generated"
	"field-reservation/internal/pkg/errs"
	"field-reservation/internal/pkg/pgconv"
)

func FieldFromRow(row sqlc.Fields) (*resource.Field, error) {
	price, err := money.FromCents(row.HourlyPriceCents)
	if err != nil {
		return nil, errs.Wrapf(err, "field %s hourly price", row.ID)
	}
	return resource.ReconstructField(
		row.ID,
		row.Name,
		row.Location,
		price,
		resource.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func FieldToInfra(f *resource.Field) sqlc.CreateFieldParams {
	return sqlc.CreateFieldParams{
		ID:               f.ID(),
		Name:             f.Name(),
		Location:         f.Location(),
		HourlyPriceCents: f.HourlyPrice().Cents(),
		Status:           string(f.Status()),
		CreatedAt:        pgconv.TimeToPgtype(f.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(f.UpdatedAt()),
	}
}

func FieldUpdateToInfra(f *resource.Field) sqlc.UpdateFieldParams {
	return sqlc.UpdateFieldParams{
		Name:             f.Name(),
		Location:         f.Location(),
		HourlyPriceCents: f.HourlyPrice().Cents(),
		Status:           string(f.Status()),
		UpdatedAt:        pgconv.TimeToPgtype(f.UpdatedAt()),
		ID:               f.ID(),
	}
}

func TemplateFromRow(row sqlc.ListSchedulesForDateRow) (*schedule.Template, error) {
	start, err := pgconv.MinutesFromPgtype(row.StartTime)
	if err != nil {
		return nil, errs.Wrapf(err, "schedule %s start_time", row.ID)
	}
	end, err := pgconv.MinutesFromPgtype(row.EndTime)
	if err != nil {
		return nil, errs.Wrapf(err, "schedule %s end_time", row.ID)
	}

	return schedule.ReconstructTemplate(
		row.ID,
		row.FieldID,
		pgconv.IntPtrFromPgtype(row.DayOfWeek),
		pgconv.DatePtrFromPgtype(row.SpecificDate),
		schedule.TimeOfDay(start),
		schedule.TimeOfDay(end),
		int(row.DurationMinutes),
		row.Active,
	)
}
