package response

import (
	"time"

	"field-reservation/internal/domain/reservation"
	"field-reservation/internal/domain/schedule"
	"field-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	FieldID         uuid.UUID `json:"field_id"`
	FieldName       string    `json:"field_name,omitempty"`
	UserID          uuid.UUID `json:"user_id"`
	Date            string    `json:"date" example:"2025-01-01"`
	StartTime       string    `json:"start_time" example:"09:00"`
	EndTime         string    `json:"end_time" example:"10:30"`
	DurationMinutes int       `json:"duration_minutes" example:"90"`
	PriceTotal      string    `json:"price_total" example:"75.00"`
	Status          string    `json:"status" example:"pending"`
	CancelReason    *string   `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ReservationListResponse struct {
	Items      []*ReservationResponse `json:"items"`
	NextCursor *string                `json:"next_cursor,omitempty"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return copyView[ReservationResponse](v)
}

func FromReservationViews(vs []*queries.ReservationView, next *queries.Cursor) *ReservationListResponse {
	resp := &ReservationListResponse{Items: copyViews[ReservationResponse](vs)}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}

// FromReservation renders a reservation straight from a command result.
func FromReservation(r *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:              r.ID(),
		FieldID:         r.FieldID(),
		UserID:          r.UserID(),
		Date:            schedule.FormatDate(r.Date()),
		StartTime:       r.StartTime().String(),
		EndTime:         r.EndTime().String(),
		DurationMinutes: r.DurationMinutes(),
		PriceTotal:      r.Price().String(),
		Status:          r.Status().String(),
		CancelReason:    r.CancelReason(),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}
}
