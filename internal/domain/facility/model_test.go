package facility

import (
	"testing"
	"time"
)

func testFacility() Facility {
	return Facility{
		ID:          "fac-1",
		Name:        "High Point",
		TotalCourts: 6,
		WeeklySchedule: map[time.Weekday][]TimeSlot{
			time.Saturday: {
				{StartTime: "10:30", AvailableCourts: 4},
				{StartTime: "09:00", AvailableCourts: 2},
			},
		},
		UnavailableDates: []time.Time{
			time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestAvailabilityOnSortsSlots(t *testing.T) {
	f := testFacility()
	saturday := time.Date(2026, time.March, 7, 17, 30, 0, 0, time.UTC)

	slots := f.AvailabilityOn(saturday)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[0].StartTime != "09:00" || slots[1].StartTime != "10:30" {
		t.Fatalf("slots not in start time order: %+v", slots)
	}
}

func TestAvailabilityOnBlackoutDate(t *testing.T) {
	f := testFacility()
	// March 14 is a Saturday with template slots, but it is blacked out.
	blackout := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)

	if slots := f.AvailabilityOn(blackout); len(slots) != 0 {
		t.Fatalf("expected no slots on a blackout date, got %+v", slots)
	}
}

func TestAvailabilityOnDayWithoutTemplate(t *testing.T) {
	f := testFacility()
	monday := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)

	if slots := f.AvailabilityOn(monday); len(slots) != 0 {
		t.Fatalf("expected no slots on a day without template entries, got %+v", slots)
	}
}

func TestDayNormalizesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("MST", -7*60*60)
	stamp := time.Date(2026, time.March, 7, 23, 45, 0, 0, loc)

	got := Day(stamp)
	if got.Hour() != 0 || got.Minute() != 0 || got.Location() != time.UTC {
		t.Fatalf("expected midnight UTC, got %v", got)
	}
	if got.Day() != 7 {
		t.Fatalf("Day must keep the wall-clock calendar date, got %v", got)
	}
}

func TestFacilityValidate(t *testing.T) {
	f := testFacility()
	if err := f.Validate(); err != nil {
		t.Fatalf("valid facility rejected: %v", err)
	}

	bad := testFacility()
	bad.WeeklySchedule[time.Saturday] = []TimeSlot{{StartTime: "9am", AvailableCourts: 2}}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for malformed slot time")
	}

	zero := testFacility()
	zero.TotalCourts = 0
	if err := zero.Validate(); err == nil {
		t.Fatalf("expected error for zero courts")
	}
}
