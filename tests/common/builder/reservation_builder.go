//go:build unit || e2e

package builder

import (
	"time"

	"field-reservation/internal/domain/money"
	"field-reservation/internal/domain/reservation"
	"field-reservation/internal/domain/schedule"
	reqdto "field-reservation/internal/handler/dto/request"
	"field-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID              uuid.UUID
	FieldID         uuid.UUID
	FieldName       string
	UserID          uuid.UUID
	Date            string
	Start           string
	DurationMinutes int
	Price           string
	Status          reservation.Status
	CancelReason    *string
	CreatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:              uuid.New(),
		FieldID:         uuid.New(),
		FieldName:       "Court A",
		UserID:          uuid.New(),
		Date:            "2025-06-02",
		Start:           "10:00",
		DurationMinutes: 60,
		Price:           "50.00",
		Status:          reservation.StatusPending,
		CreatedAt:       time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID, r.FieldID, r.UserID,
		MustDate(r.Date), MustTime(r.Start), r.DurationMinutes,
		money.MustParse(r.Price), r.Status, r.CancelReason,
		r.CreatedAt, r.CreatedAt,
	)
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	start := MustTime(r.Start)
	return &queries.ReservationView{
		ID:              r.ID,
		FieldID:         r.FieldID,
		FieldName:       r.FieldName,
		UserID:          r.UserID,
		Date:            r.Date,
		StartTime:       start.String(),
		EndTime:         start.Add(r.DurationMinutes).String(),
		DurationMinutes: r.DurationMinutes,
		PriceTotal:      money.MustParse(r.Price).String(),
		Status:          r.Status.String(),
		CancelReason:    r.CancelReason,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.CreatedAt,
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		FieldID:         r.FieldID,
		Date:            r.Date,
		StartTime:       r.Start,
		DurationMinutes: r.DurationMinutes,
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	r.ID = id
	return r
}

func (r *ReservationBuilder) WithFieldID(fieldID uuid.UUID) *ReservationBuilder {
	r.FieldID = fieldID
	return r
}

func (r *ReservationBuilder) WithUserID(userID uuid.UUID) *ReservationBuilder {
	r.UserID = userID
	return r
}

func (r *ReservationBuilder) At(date, start string) *ReservationBuilder {
	r.Date = date
	r.Start = start
	return r
}

func (r *ReservationBuilder) OnDate(date time.Time) *ReservationBuilder {
	r.Date = schedule.FormatDate(date)
	return r
}

func (r *ReservationBuilder) WithDuration(minutes int) *ReservationBuilder {
	r.DurationMinutes = minutes
	return r
}

func (r *ReservationBuilder) WithPrice(price string) *ReservationBuilder {
	r.Price = price
	return r
}

func (r *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	r.Status = status
	return r
}

func (r *ReservationBuilder) WithCancelReason(reason string) *ReservationBuilder {
	r.CancelReason = &reason
	return r
}
