package payment

import (
	"errors"
	"strings"
	"time"

	"field-reservation/internal/domain/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAmountMismatch    = errors.New("payment amount does not match reservation total")
	ErrInvalidMethod     = errors.New("invalid payment method")
	ErrExternalIDTooLong = errors.New("external payment id is too long")
)

const maxExternalIDLength = 255

// 0.01
var amountTolerance = decimal.New(1, -2)

// Payment records one payment attempt for a reservation.
type Payment struct {
	id            uuid.UUID
	reservationID uuid.UUID
	method        Method
	amount        money.Money
	status        Status
	externalID    *string
	createdAt     time.Time
	updatedAt     time.Time
}

// CheckAmount fails when paid differs from expected by more than one cent.
func CheckAmount(expected money.Money, paid decimal.Decimal) error {
	if paid.Sub(expected.Decimal()).Abs().GreaterThan(amountTolerance) {
		return ErrAmountMismatch
	}
	return nil
}

// NewOutcome records a settled payment: completed on success, failed otherwise.
func NewOutcome(reservationID uuid.UUID, method Method, amount money.Money, success bool, externalID string, now time.Time) (*Payment, error) {
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}
	externalID = strings.TrimSpace(externalID)
	if len(externalID) > maxExternalIDLength {
		return nil, ErrExternalIDTooLong
	}

	p := &Payment{
		id:            uuid.New(),
		reservationID: reservationID,
		method:        method,
		amount:        amount,
		status:        StatusFailed,
		createdAt:     now,
		updatedAt:     now,
	}
	if success {
		p.status = StatusCompleted
	}
	if externalID != "" {
		p.externalID = &externalID
	}
	return p, nil
}

func ReconstructPayment(id, reservationID uuid.UUID, method Method, amount money.Money, status Status, externalID *string, createdAt, updatedAt time.Time) *Payment {
	return &Payment{
		id:            id,
		reservationID: reservationID,
		method:        method,
		amount:        amount,
		status:        status,
		externalID:    externalID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (p *Payment) ID() uuid.UUID            { return p.id }
func (p *Payment) ReservationID() uuid.UUID { return p.reservationID }
func (p *Payment) Method() Method           { return p.method }
func (p *Payment) Amount() money.Money      { return p.amount }
func (p *Payment) Status() Status           { return p.status }
func (p *Payment) ExternalID() *string      { return p.externalID }
func (p *Payment) CreatedAt() time.Time     { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time     { return p.updatedAt }
