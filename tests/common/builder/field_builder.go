//go:build unit || e2e

package builder

import (
	"time"

	"field-reservation/internal/domain/money"
	"field-reservation/internal/domain/resource"
	sqlc "field-reservation/internal/infra/sqlc/generated"
	"field-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type FieldBuilder struct {
	ID          uuid.UUID
	Name        string
	Location    string
	HourlyPrice string
	Status      resource.Status
	CreatedAt   time.Time
}

func NewFieldBuilder() *FieldBuilder {
	return &FieldBuilder{
		ID:          uuid.New(),
		Name:        "Court A",
		Location:    "North wing",
		HourlyPrice: "50.00",
		Status:      resource.StatusActive,
		CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *FieldBuilder) With(mutate func(*FieldBuilder)) *FieldBuilder {
	mutate(f)
	return f
}

// Build methods
func (f *FieldBuilder) BuildDomain() *resource.Field {
	field, err := resource.ReconstructField(f.ID, f.Name, f.Location, money.MustParse(f.HourlyPrice), f.Status, f.CreatedAt, f.CreatedAt)
	if err != nil {
		panic(err)
	}
	return field
}

func (f *FieldBuilder) BuildInfra() sqlc.Fields {
	return sqlc.Fields{
		ID:               f.ID,
		Name:             f.Name,
		Location:         f.Location,
		HourlyPriceCents: money.MustParse(f.HourlyPrice).Cents(),
		Status:           string(f.Status),
		CreatedAt:        pgtype.Timestamptz{Time: f.CreatedAt, Valid: true},
		UpdatedAt:        pgtype.Timestamptz{Time: f.CreatedAt, Valid: true},
	}
}

func (f *FieldBuilder) BuildView() *queries.FieldView {
	return &queries.FieldView{
		ID:          f.ID,
		Name:        f.Name,
		Location:    f.Location,
		HourlyPrice: money.MustParse(f.HourlyPrice).String(),
		Status:      string(f.Status),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.CreatedAt,
	}
}

// Fluent builder methods
func (f *FieldBuilder) WithID(id uuid.UUID) *FieldBuilder {
	f.ID = id
	return f
}

func (f *FieldBuilder) WithName(name string) *FieldBuilder {
	f.Name = name
	return f
}

func (f *FieldBuilder) WithHourlyPrice(price string) *FieldBuilder {
	f.HourlyPrice = price
	return f
}

func (f *FieldBuilder) AsInactive() *FieldBuilder {
	f.Status = resource.StatusInactive
	return f
}
