package shared

import (
	"context"
	"time"

	"field-reservation/internal/domain/payment"
	"field-reservation/internal/domain/reservation"
	"field-reservation/internal/domain/resource"
	"field-reservation/internal/domain/schedule"
	sqlc "field-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Fields() FieldRepository
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type FieldRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, f *resource.Field) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, f *resource.Field) error
}

type ReservationRepository interface {
	// Create fails with an infra KindConflict error when the interval overlaps a held slot.
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	// UpdateStatus applies the transition only while the stored status equals from.
	// A false result means another writer moved the reservation first.
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, to, from reservation.Status, reason *string, now time.Time) (bool, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (uuid.UUID, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastError string, retryAt time.Time, giveUp bool, now time.Time) error
}

// CommandReads are the lookups the write side needs, returned as domain objects.
type CommandReads interface {
	FieldByID(ctx context.Context, id uuid.UUID) (*resource.Field, error)
	// SchedulesForDate returns weekly rules for the date's weekday together with
	// overrides pinned to the date. Precedence is resolved by the caller.
	SchedulesForDate(ctx context.Context, fieldID uuid.UUID, date time.Time) ([]*schedule.Template, error)
	ActiveReservationsForDate(ctx context.Context, fieldID uuid.UUID, date time.Time) ([]*reservation.Reservation, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// PaymentByExternalID finds the earliest payment recorded for the reservation
	// under the gateway's payment id.
	PaymentByExternalID(ctx context.Context, reservationID uuid.UUID, externalID string) (*payment.Payment, error)
}

// EventPublisher delivers outbox events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}
