package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const DefaultSlotMinutes = 60

var (
	ErrAmbiguousRule      = errors.New("template must set exactly one of day_of_week or specific_date")
	ErrInvalidDayOfWeek   = errors.New("day_of_week must be between 0 and 6")
	ErrInvalidWindow      = errors.New("start_time must be before end_time")
	ErrInvalidSlotMinutes = errors.New("duration_minutes must be positive")
)

// Template is one opening window of a field, either recurring weekly or
// pinned to a specific date.
type Template struct {
	id           uuid.UUID
	fieldID      uuid.UUID
	dayOfWeek    *time.Weekday
	specificDate *time.Time
	window       Interval
	slotMinutes  int
	active       bool
}

func NewWeeklyTemplate(fieldID uuid.UUID, dayOfWeek int, start, end TimeOfDay, slotMinutes int) (*Template, error) {
	return newTemplate(uuid.New(), fieldID, &dayOfWeek, nil, start, end, slotMinutes, true)
}

func NewOverrideTemplate(fieldID uuid.UUID, date time.Time, start, end TimeOfDay, slotMinutes int) (*Template, error) {
	return newTemplate(uuid.New(), fieldID, nil, &date, start, end, slotMinutes, true)
}

// ReconstructTemplate rebuilds a stored template, validating the same rules as creation.
func ReconstructTemplate(id, fieldID uuid.UUID, dayOfWeek *int, specificDate *time.Time, start, end TimeOfDay, slotMinutes int, active bool) (*Template, error) {
	return newTemplate(id, fieldID, dayOfWeek, specificDate, start, end, slotMinutes, active)
}

func newTemplate(id, fieldID uuid.UUID, dayOfWeek *int, specificDate *time.Time, start, end TimeOfDay, slotMinutes int, active bool) (*Template, error) {
	if (dayOfWeek == nil) == (specificDate == nil) {
		return nil, ErrAmbiguousRule
	}
	if start >= end {
		return nil, ErrInvalidWindow
	}
	if slotMinutes == 0 {
		slotMinutes = DefaultSlotMinutes
	}
	if slotMinutes < 0 {
		return nil, ErrInvalidSlotMinutes
	}

	t := &Template{
		id:          id,
		fieldID:     fieldID,
		window:      Interval{Start: start, End: end},
		slotMinutes: slotMinutes,
		active:      active,
	}
	if dayOfWeek != nil {
		if *dayOfWeek < 0 || *dayOfWeek > 6 {
			return nil, ErrInvalidDayOfWeek
		}
		wd := time.Weekday(*dayOfWeek)
		t.dayOfWeek = &wd
	} else {
		d := NormalizeDate(*specificDate)
		t.specificDate = &d
	}
	return t, nil
}

func (t *Template) ID() uuid.UUID {
	return t.id
}

func (t *Template) FieldID() uuid.UUID {
	return t.fieldID
}

func (t *Template) DayOfWeek() (time.Weekday, bool) {
	if t.dayOfWeek == nil {
		return 0, false
	}
	return *t.dayOfWeek, true
}

func (t *Template) SpecificDate() (time.Time, bool) {
	if t.specificDate == nil {
		return time.Time{}, false
	}
	return *t.specificDate, true
}

func (t *Template) Window() Interval {
	return t.window
}

func (t *Template) SlotMinutes() int {
	return t.slotMinutes
}

func (t *Template) IsActive() bool {
	return t.active
}

func (t *Template) IsOverride() bool {
	return t.specificDate != nil
}

func (t *Template) AppliesTo(date time.Time) bool {
	if !t.active {
		return false
	}
	if t.specificDate != nil {
		return t.specificDate.Equal(NormalizeDate(date))
	}
	return *t.dayOfWeek == date.Weekday()
}

// Slots walks the window in slot-sized steps. A trailing step that would
// run past the window end is not emitted.
func (t *Template) Slots() []Slot {
	slots := make([]Slot, 0, t.window.Minutes()/t.slotMinutes)
	for cur := t.window.Start; cur.Add(t.slotMinutes) <= t.window.End; cur = cur.Add(t.slotMinutes) {
		slots = append(slots, Slot{
			Start:           cur,
			End:             cur.Add(t.slotMinutes),
			DurationMinutes: t.slotMinutes,
		})
	}
	return slots
}
