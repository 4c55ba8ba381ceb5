package commands

import (
	"errors"

	"field-reservation/internal/domain/money"
	"field-reservation/internal/domain/payment"
	"field-reservation/internal/domain/reservation"
	"field-reservation/internal/domain/resource"
	"field-reservation/internal/domain/schedule"
	"field-reservation/internal/pkg/errs"
)

var domainErrorKinds = []struct {
	target error
	kind   error
}{
	{reservation.ErrAlreadyTerminal, errs.ErrAlreadyTerminal},
	{reservation.ErrCancellationWindowExpired, errs.ErrCancellationWindowExpired},
	{reservation.ErrInvalidTransition, errs.ErrInvalidTransition},
	{payment.ErrAmountMismatch, errs.ErrAmountMismatch},
	{reservation.ErrInvalidDuration, errs.ErrInvalidInput},
	{reservation.ErrStartInPast, errs.ErrInvalidInput},
	{reservation.ErrCancelReasonTooLong, errs.ErrInvalidInput},
	{schedule.ErrInvalidTimeOfDay, errs.ErrInvalidInput},
	{schedule.ErrInvalidDate, errs.ErrInvalidInput},
	{payment.ErrInvalidMethod, errs.ErrInvalidInput},
	{payment.ErrExternalIDTooLong, errs.ErrInvalidInput},
	{money.ErrNegativeAmount, errs.ErrInvalidInput},
	{resource.ErrEmptyFieldName, errs.ErrInvalidInput},
	{resource.ErrFieldNameTooLong, errs.ErrInvalidInput},
	{resource.ErrInvalidStatus, errs.ErrInvalidInput},
	{resource.ErrNoChanges, errs.ErrInvalidInput},
}

// markDomainErr attaches the engine kind matching a domain rule violation.
// Unrecognised errors are returned as they are.
func markDomainErr(err error) error {
	if err == nil {
		return nil
	}
	for _, m := range domainErrorKinds {
		if errors.Is(err, m.target) {
			return errs.Mark(err, m.kind)
		}
	}
	return err
}
