package facility

import (
	"fmt"
	"sort"
	"time"
)

// TimeSlot is one bookable start time on a facility's weekly template.
// StartTime uses the fixed-width 24h form "15:04" so lexical order is
// chronological order.
type TimeSlot struct {
	StartTime       string
	AvailableCourts int
}

// Facility is a venue with courts, a weekly availability template, and a set
// of blackout dates on which the whole venue is closed.
type Facility struct {
	ID               string
	Name             string
	Location         string
	TotalCourts      int
	WeeklySchedule   map[time.Weekday][]TimeSlot
	UnavailableDates []time.Time
}

func (f Facility) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("facility id is required")
	}
	if f.Name == "" {
		return fmt.Errorf("facility name is required")
	}
	if f.TotalCourts < 1 {
		return fmt.Errorf("facility total courts must be at least 1")
	}
	for day, slots := range f.WeeklySchedule {
		for _, slot := range slots {
			if _, err := time.Parse("15:04", slot.StartTime); err != nil {
				return fmt.Errorf("facility slot time %q on %s: %w", slot.StartTime, day, err)
			}
			if slot.AvailableCourts < 1 {
				return fmt.Errorf("facility slot %s on %s must offer at least 1 court", slot.StartTime, day)
			}
		}
	}

	return nil
}

// Day normalizes a timestamp to its calendar date at midnight UTC. All match
// and blackout dates in the engine are stored in this form.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AvailabilityOn returns the facility's bookable slots for one calendar date
// in start time order. A blackout date has no slots regardless of the weekly
// template. Slots already claimed by booked matches are not subtracted here;
// that is the conflict checker's concern.
func (f Facility) AvailabilityOn(date time.Time) []TimeSlot {
	day := Day(date)
	for _, blackout := range f.UnavailableDates {
		if Day(blackout).Equal(day) {
			return nil
		}
	}

	slots := f.WeeklySchedule[day.Weekday()]
	out := make([]TimeSlot, len(slots))
	copy(out, slots)
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })

	return out
}
