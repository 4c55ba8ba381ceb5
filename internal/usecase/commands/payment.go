package commands

import (
	"context"
	"log/slog"
	"strings"

	"field-reservation/internal/domain/money"
	"field-reservation/internal/domain/payment"
	"field-reservation/internal/domain/reservation"
	"field-reservation/internal/pkg/clock"
	"field-reservation/internal/pkg/errs"
	"field-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentOutcomeRequest struct {
	ReservationID uuid.UUID
	Success       bool
	Amount        decimal.Decimal
	Method        payment.Method
	ExternalID    string
}

type PaymentOutcomeResult struct {
	Payment     *payment.Payment
	Reservation *reservation.Reservation
	// AlreadyApplied is set when the gateway payment id was recorded before with
	// the same outcome. Nothing is written in that case.
	AlreadyApplied bool
}

type PaymentCommands interface {
	RecordOutcome(ctx context.Context, req PaymentOutcomeRequest, actor shared.Actor) (*PaymentOutcomeResult, error)
}

type paymentUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPaymentUseCase(uow shared.UnitOfWork, clk clock.Clock) PaymentCommands {
	return &paymentUseCaseImpl{uow: uow, clock: clk}
}

// RecordOutcome applies a settled payment to its reservation. A successful payment
// confirms a pending reservation; a failed one is recorded and leaves it pending.
// Redelivery of an outcome already recorded under the same external id is a no-op.
func (uc *paymentUseCaseImpl) RecordOutcome(ctx context.Context, req PaymentOutcomeRequest, actor shared.Actor) (*PaymentOutcomeResult, error) {
	if !req.Method.IsValid() {
		return nil, markDomainErr(payment.ErrInvalidMethod)
	}

	var result *PaymentOutcomeResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		res, err := loadAccessibleReservation(ctx, tx.Reads(), req.ReservationID, actor)
		if err != nil {
			return err
		}

		prior, err := priorOutcome(ctx, tx.Reads(), res.ID(), req)
		if err != nil {
			return err
		}
		if prior != nil {
			result = &PaymentOutcomeResult{Payment: prior, Reservation: res, AlreadyApplied: true}
			return nil
		}

		if err := payment.CheckAmount(res.Price(), req.Amount); err != nil {
			return errs.Wrapf(markDomainErr(err), "paid %s, expected %s", req.Amount.StringFixed(2), res.Price())
		}
		if err := res.CheckPayable(); err != nil {
			return markDomainErr(err)
		}

		amount, err := money.FromDecimal(req.Amount)
		if err != nil {
			return markDomainErr(err)
		}
		now := uc.clock.Now()
		p, err := payment.NewOutcome(res.ID(), req.Method, amount, req.Success, req.ExternalID, now)
		if err != nil {
			return markDomainErr(err)
		}
		if _, err := tx.Payments().Create(ctx, tx.DB(), p); err != nil {
			return shared.Persistence(err)
		}

		topic := TopicPaymentFailed
		if req.Success {
			from := res.Status()
			if err := res.Confirm(now); err != nil {
				return markDomainErr(err)
			}
			if err := applyTransition(ctx, tx, res, from, now); err != nil {
				return err
			}
			topic = TopicReservationConfirmed
		}
		if err := enqueueEvent(ctx, tx, newReservationEvent(topic, res, now).withPayment(p)); err != nil {
			return shared.Persistence(err)
		}

		result = &PaymentOutcomeResult{Payment: p, Reservation: res}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.AlreadyApplied {
		slog.InfoContext(ctx, "payment outcome already recorded",
			"reservation_id", req.ReservationID,
			"payment_id", result.Payment.ID(),
			"external_id", req.ExternalID)
		return result, nil
	}
	if !req.Success {
		slog.WarnContext(ctx, "payment failed",
			"reservation_id", req.ReservationID,
			"payment_id", result.Payment.ID(),
			"method", req.Method)
	}
	return result, nil
}

// priorOutcome returns the payment already recorded for this gateway id with the
// same result, or nil.
func priorOutcome(ctx context.Context, reads shared.CommandReads, reservationID uuid.UUID, req PaymentOutcomeRequest) (*payment.Payment, error) {
	externalID := strings.TrimSpace(req.ExternalID)
	if externalID == "" {
		return nil, nil
	}
	prior, err := reads.PaymentByExternalID(ctx, reservationID, externalID)
	if err != nil {
		err = shared.Persistence(err)
		if errs.KindOf(err) == errs.KindNotFound {
			return nil, nil
		}
		return nil, err
	}
	if (prior.Status() == payment.StatusCompleted) != req.Success {
		return nil, nil
	}
	return prior, nil
}
