package reservation

import (
	"strings"
	"time"
)

const (
	MinDurationMinutes = 30
	MaxDurationMinutes = 480

	// CancellationWindow is the minimum lead time before start for a cancellation.
	CancellationWindow = 24 * time.Hour

	DefaultCancelReason  = "cancelled by user"
	MaxCancelReasonChars = 500
)

type Duration struct {
	minutes int
}

func NewDuration(minutes int) (Duration, error) {
	if minutes < MinDurationMinutes || minutes > MaxDurationMinutes {
		return Duration{}, ErrInvalidDuration
	}
	return Duration{minutes: minutes}, nil
}

func (d Duration) Minutes() int {
	return d.minutes
}

type CancelReason struct {
	value string
}

// NewCancelReason trims the input and falls back to DefaultCancelReason when blank.
func NewCancelReason(value string) (CancelReason, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		value = DefaultCancelReason
	}
	if len([]rune(value)) > MaxCancelReasonChars {
		return CancelReason{}, ErrCancelReasonTooLong
	}
	return CancelReason{value: value}, nil
}

func (r CancelReason) String() string {
	return r.value
}
