package commands

import (
	"context"
	"log/slog"
	"time"

	"field-reservation/internal/domain/reservation"
	"field-reservation/internal/domain/resource"
	"field-reservation/internal/domain/schedule"
	"field-reservation/internal/pkg/clock"
	"field-reservation/internal/pkg/errs"
	"field-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	FieldID         uuid.UUID
	Date            time.Time
	StartTime       schedule.TimeOfDay
	DurationMinutes int
}

type CreateReservationResult struct {
	Reservation *reservation.Reservation
}

type ReservationCommands interface {
	Create(ctx context.Context, req CreateReservationRequest, actor shared.Actor) (*CreateReservationResult, error)
	Cancel(ctx context.Context, reservationID uuid.UUID, reason string, actor shared.Actor) (*reservation.Reservation, error)
	Complete(ctx context.Context, reservationID uuid.UUID, actor shared.Actor) (*reservation.Reservation, error)
}

type reservationUseCaseImpl struct {
	uow          shared.UnitOfWork
	factory      *reservation.Factory
	availability *shared.AvailabilityCalculator
	conflicts    *shared.ConflictDetector
	clock        clock.Clock
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	availability *shared.AvailabilityCalculator,
	conflicts *shared.ConflictDetector,
	clk clock.Clock,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:          uow,
		factory:      factory,
		availability: availability,
		conflicts:    conflicts,
		clock:        clk,
	}
}

func (uc *reservationUseCaseImpl) Create(ctx context.Context, req CreateReservationRequest, actor shared.Actor) (*CreateReservationResult, error) {
	if actor.ID == uuid.Nil {
		return nil, errs.Wrap(errs.ErrInvalidInput, "reservation requester is required")
	}
	date := schedule.NormalizeDate(req.Date)
	if err := uc.factory.Validate(date, req.StartTime, req.DurationMinutes); err != nil {
		return nil, markDomainErr(err)
	}

	var created *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = nil
		reads := tx.Reads()

		field, err := loadBookableField(ctx, reads, req.FieldID)
		if err != nil {
			return err
		}

		slots, err := uc.availability.SlotsForField(ctx, reads, field, date)
		if err != nil {
			return err
		}
		if !schedule.Offers(slots, req.StartTime) {
			return errs.Wrapf(errs.ErrSlotNotOffered, "%s is not an available start on %s", req.StartTime, schedule.FormatDate(date))
		}

		res, err := uc.factory.CreateReservation(field, actor.ID, date, req.StartTime, req.DurationMinutes)
		if err != nil {
			return markDomainErr(err)
		}

		conflict, err := uc.conflicts.FindConflict(ctx, reads, field.ID(), date, res.Interval(), nil)
		if err != nil {
			return err
		}
		if conflict != nil {
			return errs.Wrapf(errs.ErrSlotConflict, "overlaps reservation %s", conflict.ID())
		}

		// The exclusion constraint is the final guard against a concurrent insert.
		if _, err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return shared.Persistence(err)
		}
		if err := enqueueEvent(ctx, tx, newReservationEvent(TopicReservationCreated, res, uc.clock.Now())); err != nil {
			return shared.Persistence(err)
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "reservation created",
		"reservation_id", created.ID(),
		"field_id", created.FieldID(),
		"date", schedule.FormatDate(created.Date()),
		"start_time", created.StartTime().String())
	return &CreateReservationResult{Reservation: created}, nil
}

func (uc *reservationUseCaseImpl) Cancel(ctx context.Context, reservationID uuid.UUID, reason string, actor shared.Actor) (*reservation.Reservation, error) {
	cancelReason, err := reservation.NewCancelReason(reason)
	if err != nil {
		return nil, markDomainErr(err)
	}

	var cancelled *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := loadAccessibleReservation(ctx, tx.Reads(), reservationID, actor)
		if err != nil {
			return err
		}

		from := res.Status()
		now := uc.clock.Now()
		if err := res.Cancel(now, cancelReason); err != nil {
			return markDomainErr(err)
		}
		if err := applyTransition(ctx, tx, res, from, now); err != nil {
			return err
		}
		if err := enqueueEvent(ctx, tx, newReservationEvent(TopicReservationCancelled, res, now)); err != nil {
			return shared.Persistence(err)
		}
		cancelled = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// Complete is driven by an operator or a sweep once a confirmed booking has taken place.
func (uc *reservationUseCaseImpl) Complete(ctx context.Context, reservationID uuid.UUID, actor shared.Actor) (*reservation.Reservation, error) {
	if !actor.Role.IsPrivileged() {
		return nil, errs.Wrap(errs.ErrForbidden, "only staff may complete reservations")
	}

	var completed *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := loadAccessibleReservation(ctx, tx.Reads(), reservationID, actor)
		if err != nil {
			return err
		}

		from := res.Status()
		now := uc.clock.Now()
		if err := res.Complete(now); err != nil {
			return markDomainErr(err)
		}
		if err := applyTransition(ctx, tx, res, from, now); err != nil {
			return err
		}
		if err := enqueueEvent(ctx, tx, newReservationEvent(TopicReservationCompleted, res, now)); err != nil {
			return shared.Persistence(err)
		}
		completed = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}

func loadBookableField(ctx context.Context, reads shared.CommandReads, fieldID uuid.UUID) (*resource.Field, error) {
	field, err := reads.FieldByID(ctx, fieldID)
	if err != nil {
		err = shared.Persistence(err)
		if errs.KindOf(err) == errs.KindNotFound {
			return nil, errs.Wrapf(errs.ErrResourceUnavailable, "field %s does not exist", fieldID)
		}
		return nil, err
	}
	if !field.IsBookable() {
		return nil, errs.Wrapf(errs.ErrResourceUnavailable, "field %s is %s", fieldID, field.Status())
	}
	return field, nil
}

func loadAccessibleReservation(ctx context.Context, reads shared.CommandReads, reservationID uuid.UUID, actor shared.Actor) (*reservation.Reservation, error) {
	res, err := reads.ReservationByID(ctx, reservationID)
	if err != nil {
		return nil, shared.Persistence(err)
	}
	if !actor.CanAccess(res.UserID()) {
		return nil, errs.Wrapf(errs.ErrForbidden, "reservation %s belongs to another user", reservationID)
	}
	return res, nil
}

// applyTransition persists res.Status() only if the stored status is still from.
func applyTransition(ctx context.Context, tx shared.Tx, res *reservation.Reservation, from reservation.Status, now time.Time) error {
	ok, err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res.ID(), res.Status(), from, res.CancelReason(), now)
	if err != nil {
		return shared.Persistence(err)
	}
	if !ok {
		return errs.Wrapf(errs.ErrConcurrentUpdate, "reservation %s is no longer %s", res.ID(), from)
	}
	return nil
}
