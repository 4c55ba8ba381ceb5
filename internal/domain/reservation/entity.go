package reservation

import (
	"errors"
	"time"

	"field-reservation/internal/domain/money"
	"field-reservation/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration           = errors.New("duration must be between 30 and 480 minutes")
	ErrInvalidStatus             = errors.New("invalid reservation status")
	ErrStartInPast               = errors.New("reservation cannot start in the past")
	ErrAlreadyTerminal           = errors.New("reservation is already cancelled or completed")
	ErrCancellationWindowExpired = errors.New("reservation starts in less than 24 hours")
	ErrInvalidTransition         = errors.New("invalid reservation status transition")
	ErrCancelReasonTooLong       = errors.New("cancel reason is too long")
)

type Reservation struct {
	id           uuid.UUID
	fieldID      uuid.UUID
	userID       uuid.UUID
	date         time.Time
	start        schedule.TimeOfDay
	duration     Duration
	price        money.Money
	status       Status
	cancelReason *string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewReservation(
	fieldID, userID uuid.UUID,
	date time.Time,
	start schedule.TimeOfDay,
	duration Duration,
	price money.Money,
	now time.Time,
) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		fieldID:   fieldID,
		userID:    userID,
		date:      schedule.NormalizeDate(date),
		start:     start,
		duration:  duration,
		price:     price,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructReservation(
	id, fieldID, userID uuid.UUID,
	date time.Time,
	start schedule.TimeOfDay,
	durationMinutes int,
	price money.Money,
	status Status,
	cancelReason *string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		fieldID:      fieldID,
		userID:       userID,
		date:         schedule.NormalizeDate(date),
		start:        start,
		duration:     Duration{minutes: durationMinutes},
		price:        price,
		status:       status,
		cancelReason: cancelReason,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Interval is the [start, start+duration) range the reservation occupies on its date.
func (r *Reservation) Interval() schedule.Interval {
	return schedule.NewInterval(r.start, r.duration.Minutes())
}

func (r *Reservation) EndTime() schedule.TimeOfDay {
	return r.start.Add(r.duration.Minutes())
}

// StartsAt places the reservation start on the timeline of loc.
func (r *Reservation) StartsAt(loc *time.Location) time.Time {
	return r.start.On(r.date, loc)
}

// CheckCancellable applies the cancellation policy at now. The start time is
// interpreted in now's location.
func (r *Reservation) CheckCancellable(now time.Time) error {
	if r.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if r.StartsAt(now.Location()).Sub(now) < CancellationWindow {
		return ErrCancellationWindowExpired
	}
	return nil
}

func (r *Reservation) Cancel(now time.Time, reason CancelReason) error {
	if err := r.CheckCancellable(now); err != nil {
		return err
	}
	text := reason.String()
	r.status = StatusCancelled
	r.cancelReason = &text
	r.updatedAt = now
	return nil
}

func (r *Reservation) Confirm(now time.Time) error {
	if r.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if r.status != StatusPending {
		return ErrInvalidTransition
	}
	r.status = StatusConfirmed
	r.updatedAt = now
	return nil
}

// CheckPayable reports whether a payment outcome may be applied.
func (r *Reservation) CheckPayable() error {
	if r.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if r.status != StatusPending {
		return ErrInvalidTransition
	}
	return nil
}

func (r *Reservation) Complete(now time.Time) error {
	if r.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if r.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	r.status = StatusCompleted
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Reservation) ID() uuid.UUID                 { return r.id }
func (r *Reservation) FieldID() uuid.UUID            { return r.fieldID }
func (r *Reservation) UserID() uuid.UUID             { return r.userID }
func (r *Reservation) Date() time.Time               { return r.date }
func (r *Reservation) StartTime() schedule.TimeOfDay { return r.start }
func (r *Reservation) DurationMinutes() int          { return r.duration.Minutes() }
func (r *Reservation) Price() money.Money            { return r.price }
func (r *Reservation) Status() Status                { return r.status }
func (r *Reservation) CancelReason() *string         { return r.cancelReason }
func (r *Reservation) CreatedAt() time.Time          { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time          { return r.updatedAt }
