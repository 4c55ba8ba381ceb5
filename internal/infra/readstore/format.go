package readstore

import (
	"field-reservation/internal/domain/schedule"
	"field-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func formatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

func formatTimeOfDay(pt pgtype.Time) (schedule.TimeOfDay, error) {
	minutes, err := pgconv.MinutesFromPgtype(pt)
	if err != nil {
		return 0, err
	}
	return schedule.TimeOfDay(minutes), nil
}
