package queries

import (
	"time"

	"field-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type FieldView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	HourlyPrice string    `json:"hourly_price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SlotView struct {
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
}

type AvailabilityView struct {
	FieldID uuid.UUID  `json:"field_id"`
	Date    string     `json:"date"`
	Slots   []SlotView `json:"slots"`
}

type QuoteView struct {
	FieldID         uuid.UUID `json:"field_id"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceTotal      string    `json:"price_total"`
}

type ReservationView struct {
	ID              uuid.UUID `json:"id"`
	FieldID         uuid.UUID `json:"field_id"`
	FieldName       string    `json:"field_name"`
	UserID          uuid.UUID `json:"user_id"`
	Date            string    `json:"date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceTotal      string    `json:"price_total"`
	Status          string    `json:"status"`
	CancelReason    *string   `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type PaymentView struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	Method        string    `json:"method"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
	ExternalID    *string   `json:"external_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ReservationFilter struct {
	FieldID  *uuid.UUID
	Status   *reservation.Status
	DateFrom *time.Time
	DateTo   *time.Time
}

// ReservationListParams is the read store's view of a list request. A nil UserID
// lists every user's reservations.
type ReservationListParams struct {
	UserID         *uuid.UUID
	Filter         ReservationFilter
	AfterCreatedAt *time.Time
	AfterID        *uuid.UUID
	Limit          int32
}
