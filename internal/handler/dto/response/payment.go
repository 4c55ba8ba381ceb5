package response

import (
	"time"

	"field-reservation/internal/domain/payment"
	"field-reservation/internal/usecase/commands"
	"field-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	Method        string    `json:"method" example:"card"`
	Amount        string    `json:"amount" example:"75.00"`
	Status        string    `json:"status" example:"completed"`
	ExternalID    *string   `json:"external_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PaymentOutcomeResponse struct {
	Payment     *PaymentResponse     `json:"payment"`
	Reservation *ReservationResponse `json:"reservation"`
}

func FromPaymentView(v *queries.PaymentView) *PaymentResponse {
	return copyView[PaymentResponse](v)
}

func FromPaymentViews(vs []*queries.PaymentView) []*PaymentResponse {
	return copyViews[PaymentResponse](vs)
}

func FromPayment(p *payment.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:            p.ID(),
		ReservationID: p.ReservationID(),
		Method:        string(p.Method()),
		Amount:        p.Amount().String(),
		Status:        p.Status().String(),
		ExternalID:    p.ExternalID(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func FromPaymentOutcome(r *commands.PaymentOutcomeResult) *PaymentOutcomeResponse {
	return &PaymentOutcomeResponse{
		Payment:     FromPayment(r.Payment),
		Reservation: FromReservation(r.Reservation),
	}
}
