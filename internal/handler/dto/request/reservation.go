package request

import (
	"strings"
	"time"

	"field-reservation/internal/domain/reservation"
	"field-reservation/internal/domain/schedule"
	"field-reservation/internal/pkg/errs"
	"field-reservation/internal/usecase/commands"
	"field-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	FieldID         uuid.UUID `json:"field_id" binding:"required"`
	Date            string    `json:"date" binding:"required" example:"2025-01-01"`
	StartTime       string    `json:"start_time" binding:"required" example:"09:00"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,min=1" example:"60"`
}

func (r CreateReservationRequest) ToCommand() (commands.CreateReservationRequest, error) {
	date, err := schedule.ParseDate(r.Date)
	if err != nil {
		return commands.CreateReservationRequest{}, errs.Mark(err, errs.ErrInvalidInput)
	}
	start, err := schedule.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return commands.CreateReservationRequest{}, errs.Mark(err, errs.ErrInvalidInput)
	}

	return commands.CreateReservationRequest{
		FieldID:         r.FieldID,
		Date:            date,
		StartTime:       start,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

type CancelReservationRequest struct {
	Reason string `json:"reason" example:"rain forecast"`
}

type ListReservationsQuery struct {
	FieldID  string `form:"field_id"`
	Status   string `form:"status"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
	After    string `form:"after"`
	Limit    int    `form:"limit"`
}

func (q ListReservationsQuery) ToFilter() (queries.ReservationFilter, error) {
	var filter queries.ReservationFilter

	if s := strings.TrimSpace(q.FieldID); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return filter, errs.Mark(err, errs.ErrInvalidInput)
		}
		filter.FieldID = &id
	}
	if s := strings.TrimSpace(q.Status); s != "" {
		status, err := reservation.ParseStatus(s)
		if err != nil {
			return filter, errs.Mark(err, errs.ErrInvalidInput)
		}
		filter.Status = &status
	}

	var err error
	if filter.DateFrom, err = parseOptionalDate(q.DateFrom); err != nil {
		return filter, err
	}
	if filter.DateTo, err = parseOptionalDate(q.DateTo); err != nil {
		return filter, err
	}
	return filter, nil
}

func (q ListReservationsQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}

func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := schedule.ParseDate(s)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	return &d, nil
}
