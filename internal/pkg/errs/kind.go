package errs

import cr "github.com/cockroachdb/errors"

type Kind string

const (
	KindUnknown                   Kind = "Unknown"
	KindNotFound                  Kind = "NotFound"
	KindResourceUnavailable       Kind = "ResourceUnavailable"
	KindSlotNotOffered            Kind = "SlotNotOffered"
	KindSlotConflict              Kind = "SlotConflict"
	KindCancellationWindowExpired Kind = "CancellationWindowExpired"
	KindAlreadyTerminal           Kind = "AlreadyTerminal"
	KindAmountMismatch            Kind = "AmountMismatch"
	KindPersistenceFailure        Kind = "PersistenceFailure"
	KindInvalidInput              Kind = "InvalidInput"
	KindForbidden                 Kind = "Forbidden"
	KindInvalidTransition         Kind = "InvalidTransition"
	KindConcurrentUpdate          Kind = "ConcurrentUpdate"
)

// Order matters: an error marked with several sentinels reports the first match.
var kindTable = []struct {
	sentinel error
	kind     Kind
}{
	{ErrSlotConflict, KindSlotConflict},
	{ErrConcurrentUpdate, KindConcurrentUpdate},
	{ErrNotFound, KindNotFound},
	{ErrResourceUnavailable, KindResourceUnavailable},
	{ErrSlotNotOffered, KindSlotNotOffered},
	{ErrCancellationWindowExpired, KindCancellationWindowExpired},
	{ErrAlreadyTerminal, KindAlreadyTerminal},
	{ErrAmountMismatch, KindAmountMismatch},
	{ErrInvalidInput, KindInvalidInput},
	{ErrForbidden, KindForbidden},
	{ErrInvalidTransition, KindInvalidTransition},
	{ErrPersistenceFailure, KindPersistenceFailure},
}

// KindOf returns the engine error kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	for _, k := range kindTable {
		if cr.Is(err, k.sentinel) {
			return k.kind
		}
	}
	return KindUnknown
}

func (k Kind) String() string {
	return string(k)
}
