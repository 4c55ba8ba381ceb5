//go:build unit || e2e

package builder

import (
	"time"

	"field-reservation/internal/domain/schedule"

	"github.com/google/uuid"
)

type ScheduleBuilder struct {
	FieldID      uuid.UUID
	DayOfWeek    *int
	SpecificDate *time.Time
	Start        string
	End          string
	SlotMinutes  int
	Active       bool
}

// NewScheduleBuilder defaults to a weekly Monday window of 09:00-12:00 in hour slots.
func NewScheduleBuilder(fieldID uuid.UUID) *ScheduleBuilder {
	monday := int(time.Monday)
	return &ScheduleBuilder{
		FieldID:     fieldID,
		DayOfWeek:   &monday,
		Start:       "09:00",
		End:         "12:00",
		SlotMinutes: 60,
		Active:      true,
	}
}

func (s *ScheduleBuilder) Weekly(day time.Weekday) *ScheduleBuilder {
	d := int(day)
	s.DayOfWeek = &d
	s.SpecificDate = nil
	return s
}

func (s *ScheduleBuilder) On(date time.Time) *ScheduleBuilder {
	s.DayOfWeek = nil
	s.SpecificDate = &date
	return s
}

func (s *ScheduleBuilder) Window(start, end string) *ScheduleBuilder {
	s.Start = start
	s.End = end
	return s
}

func (s *ScheduleBuilder) WithSlotMinutes(minutes int) *ScheduleBuilder {
	s.SlotMinutes = minutes
	return s
}

func (s *ScheduleBuilder) AsInactive() *ScheduleBuilder {
	s.Active = false
	return s
}

func (s *ScheduleBuilder) BuildDomain() *schedule.Template {
	t, err := schedule.ReconstructTemplate(uuid.New(), s.FieldID, s.DayOfWeek, s.SpecificDate,
		MustTime(s.Start), MustTime(s.End), s.SlotMinutes, s.Active)
	if err != nil {
		panic(err)
	}
	return t
}

func MustTime(hhmm string) schedule.TimeOfDay {
	t, err := schedule.ParseTimeOfDay(hhmm)
	if err != nil {
		panic(err)
	}
	return t
}

func MustDate(yyyymmdd string) time.Time {
	d, err := schedule.ParseDate(yyyymmdd)
	if err != nil {
		panic(err)
	}
	return d
}
