package response

import (
	"time"

	"field-reservation/internal/domain/resource"
	"field-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type FieldResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	HourlyPrice string    `json:"hourly_price" example:"50.00"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SlotResponse struct {
	StartTime       string `json:"start_time" example:"09:00"`
	EndTime         string `json:"end_time" example:"10:00"`
	DurationMinutes int    `json:"duration_minutes" example:"60"`
}

type AvailabilityResponse struct {
	FieldID uuid.UUID      `json:"field_id"`
	Date    string         `json:"date" example:"2025-01-01"`
	Slots   []SlotResponse `json:"slots"`
}

type QuoteResponse struct {
	FieldID         uuid.UUID `json:"field_id"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceTotal      string    `json:"price_total" example:"75.00"`
}

func FromFieldView(v *queries.FieldView) *FieldResponse {
	return copyView[FieldResponse](v)
}

func FromField(f *resource.Field) *FieldResponse {
	return &FieldResponse{
		ID:          f.ID(),
		Name:        f.Name(),
		Location:    f.Location(),
		HourlyPrice: f.HourlyPrice().String(),
		Status:      string(f.Status()),
		CreatedAt:   f.CreatedAt(),
		UpdatedAt:   f.UpdatedAt(),
	}
}

func FromFieldViews(vs []*queries.FieldView) []*FieldResponse {
	return copyViews[FieldResponse](vs)
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	slots := make([]SlotResponse, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = SlotResponse(s)
	}
	return &AvailabilityResponse{FieldID: v.FieldID, Date: v.Date, Slots: slots}
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	return copyView[QuoteResponse](v)
}
