package schedule

import "time"

// Resolve picks the templates that govern date. Date-specific overrides win over
// weekly rules: when at least one active override exists only overrides are kept.
// Input order is preserved.
func Resolve(templates []*Template, date time.Time) []*Template {
	var overrides, weekly []*Template
	for _, t := range templates {
		if !t.AppliesTo(date) {
			continue
		}
		if t.IsOverride() {
			overrides = append(overrides, t)
		} else {
			weekly = append(weekly, t)
		}
	}
	if len(overrides) > 0 {
		return overrides
	}
	return weekly
}

// AvailableSlots generates candidate slots from the templates resolved for date
// and drops any slot overlapping a busy interval. Slots come out in template
// order, then chronologically. Overlapping templates can produce duplicate
// candidates; they are returned as-is.
func AvailableSlots(templates []*Template, date time.Time, busy []Interval) []Slot {
	available := []Slot{}
	for _, t := range Resolve(templates, date) {
		for _, slot := range t.Slots() {
			if overlapsAny(slot.Interval(), busy) {
				continue
			}
			available = append(available, slot)
		}
	}
	return available
}

// Offers reports whether a slot starting at start is present in slots.
func Offers(slots []Slot, start TimeOfDay) bool {
	for _, s := range slots {
		if s.Start == start {
			return true
		}
	}
	return false
}

func overlapsAny(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}
