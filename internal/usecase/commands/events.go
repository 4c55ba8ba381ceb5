package commands

import (
	"context"
	"encoding/json"
	"time"

	"field-reservation/internal/domain/payment"
	"field-reservation/internal/domain/reservation"
	"field-reservation/internal/domain/schedule"
	"field-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	TopicReservationCreated   = "reservation.created"
	TopicReservationCancelled = "reservation.cancelled"
	TopicReservationConfirmed = "reservation.confirmed"
	TopicReservationCompleted = "reservation.completed"
	TopicPaymentFailed        = "payment.failed"

	eventJobKind = "event"
)

type ReservationEvent struct {
	Event           string     `json:"event"`
	ReservationID   uuid.UUID  `json:"reservation_id"`
	FieldID         uuid.UUID  `json:"field_id"`
	UserID          uuid.UUID  `json:"user_id"`
	Status          string     `json:"status"`
	Date            string     `json:"date"`
	StartTime       string     `json:"start_time"`
	DurationMinutes int        `json:"duration_minutes"`
	PriceTotal      string     `json:"price_total"`
	CancelReason    *string    `json:"cancel_reason,omitempty"`
	PaymentID       *uuid.UUID `json:"payment_id,omitempty"`
	OccurredAt      time.Time  `json:"occurred_at"`
}

func newReservationEvent(topic string, res *reservation.Reservation, now time.Time) ReservationEvent {
	return ReservationEvent{
		Event:           topic,
		ReservationID:   res.ID(),
		FieldID:         res.FieldID(),
		UserID:          res.UserID(),
		Status:          res.Status().String(),
		Date:            schedule.FormatDate(res.Date()),
		StartTime:       res.StartTime().String(),
		DurationMinutes: res.DurationMinutes(),
		PriceTotal:      res.Price().String(),
		CancelReason:    res.CancelReason(),
		OccurredAt:      now.UTC(),
	}
}

func (e ReservationEvent) withPayment(p *payment.Payment) ReservationEvent {
	id := p.ID()
	e.PaymentID = &id
	return e
}

// enqueueEvent writes the event to the outbox inside the caller's transaction.
func enqueueEvent(ctx context.Context, tx shared.Tx, event ReservationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), eventJobKind, event.Event, payload, event.OccurredAt)
}
