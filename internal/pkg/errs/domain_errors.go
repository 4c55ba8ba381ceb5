package errs

import "errors"

// Sentinels shared by the reservation engine. Lower layers attach them with Mark
// so callers can branch on a stable kind regardless of the wrapped cause.
var (
	ErrNotFound                  = errors.New("not found")
	ErrResourceUnavailable       = errors.New("resource unavailable")
	ErrSlotNotOffered            = errors.New("slot not offered")
	ErrSlotConflict              = errors.New("slot conflict")
	ErrCancellationWindowExpired = errors.New("cancellation window expired")
	ErrAlreadyTerminal           = errors.New("reservation already terminal")
	ErrAmountMismatch            = errors.New("payment amount mismatch")
	ErrPersistenceFailure        = errors.New("persistence failure")

	ErrInvalidInput      = errors.New("invalid input")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrConcurrentUpdate  = errors.New("reservation modified concurrently")
)
