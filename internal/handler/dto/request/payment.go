package request

import (
	"strings"

	"field-reservation/internal/domain/payment"
	"field-reservation/internal/pkg/errs"
	"field-reservation/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentOutcomeRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
	Success       *bool     `json:"success" binding:"required"`
	Amount        string    `json:"amount" binding:"required" example:"75.00"`
	Method        string    `json:"method" binding:"required" example:"card"`
	ExternalID    string    `json:"external_id,omitempty"`
}

func (r PaymentOutcomeRequest) ToCommand() (commands.PaymentOutcomeRequest, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil {
		return commands.PaymentOutcomeRequest{}, errs.Wrap(errs.ErrInvalidInput, "amount must be a decimal number")
	}
	method, err := payment.ParseMethod(r.Method)
	if err != nil {
		return commands.PaymentOutcomeRequest{}, errs.Mark(err, errs.ErrInvalidInput)
	}

	return commands.PaymentOutcomeRequest{
		ReservationID: r.ReservationID,
		Success:       *r.Success,
		Amount:        amount,
		Method:        method,
		ExternalID:    r.ExternalID,
	}, nil
}

const (
	GatewayEventCaptured = "payment.captured"
	GatewayEventFailed   = "payment.failed"
)

// GatewayWebhook is the subset of the payment gateway's webhook body we act on.
// Amounts are in minor units and the reservation is carried in the payment notes.
type GatewayWebhook struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID     string            `json:"id"`
				Amount int64             `json:"amount"`
				Notes  map[string]string `json:"notes"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// Handled reports whether the event settles a payment.
func (w GatewayWebhook) Handled() bool {
	return w.Event == GatewayEventCaptured || w.Event == GatewayEventFailed
}

func (w GatewayWebhook) ToCommand() (commands.PaymentOutcomeRequest, error) {
	entity := w.Payload.Payment.Entity
	reservationID, err := uuid.Parse(entity.Notes["reservation_id"])
	if err != nil {
		return commands.PaymentOutcomeRequest{}, errs.Wrap(errs.ErrInvalidInput, "webhook is missing notes.reservation_id")
	}

	return commands.PaymentOutcomeRequest{
		ReservationID: reservationID,
		Success:       w.Event == GatewayEventCaptured,
		Amount:        decimal.New(entity.Amount, -2),
		Method:        payment.MethodGateway,
		ExternalID:    entity.ID,
	}, nil
}
