package usecase

import (
	"errors"
	"reflect"
	"testing"
)

func morningSlots() []slotCapacity {
	return []slotCapacity{
		{StartTime: "09:00", Remaining: 2},
		{StartTime: "10:30", Remaining: 4},
	}
}

func TestPlanLineTimesAutoSingleSlot(t *testing.T) {
	t.Parallel()

	times, err := planLineTimes(morningSlots(), planRequest{
		NumLines:   3,
		TimeOption: TimeOptionAuto,
	})
	if err != nil {
		t.Fatalf("plan line times: %v", err)
	}

	want := []string{"10:30", "10:30", "10:30"}
	if !reflect.DeepEqual(times, want) {
		t.Fatalf("unexpected times: got=%v want=%v", times, want)
	}
}

func TestPlanLineTimesAutoNoSingleSlot(t *testing.T) {
	t.Parallel()

	_, err := planLineTimes(morningSlots(), planRequest{
		NumLines:   5,
		TimeOption: TimeOptionAuto,
	})
	if !errors.Is(err, ErrNoSingleSlot) {
		t.Fatalf("expected ErrNoSingleSlot, got %v", err)
	}
}

func TestPlanLineTimesAutoSplitPacksEarliestFirst(t *testing.T) {
	t.Parallel()

	times, err := planLineTimes(morningSlots(), planRequest{
		NumLines:        3,
		AllowSplitLines: true,
		TimeOption:      TimeOptionAuto,
	})
	if err != nil {
		t.Fatalf("plan line times: %v", err)
	}

	want := []string{"09:00", "09:00", "10:30"}
	if !reflect.DeepEqual(times, want) {
		t.Fatalf("unexpected times: got=%v want=%v", times, want)
	}
}

func TestPlanLineTimesAutoSplitInsufficientCapacity(t *testing.T) {
	t.Parallel()

	_, err := planLineTimes(morningSlots(), planRequest{
		NumLines:        7,
		AllowSplitLines: true,
		TimeOption:      TimeOptionAuto,
	})
	if !errors.Is(err, ErrInsufficientCapacity) {
		t.Fatalf("expected ErrInsufficientCapacity, got %v", err)
	}
}

func TestPlanLineTimesSameTime(t *testing.T) {
	t.Parallel()

	times, err := planLineTimes(morningSlots(), planRequest{
		NumLines:   2,
		TimeOption: TimeOptionSame,
		SameTime:   "09:00",
	})
	if err != nil {
		t.Fatalf("plan line times: %v", err)
	}
	want := []string{"09:00", "09:00"}
	if !reflect.DeepEqual(times, want) {
		t.Fatalf("unexpected times: got=%v want=%v", times, want)
	}

	if _, err := planLineTimes(morningSlots(), planRequest{
		NumLines:   3,
		TimeOption: TimeOptionSame,
		SameTime:   "09:00",
	}); !errors.Is(err, ErrCapacity) {
		t.Fatalf("expected ErrCapacity for over-subscribed slot, got %v", err)
	}

	if _, err := planLineTimes(morningSlots(), planRequest{
		NumLines:   1,
		TimeOption: TimeOptionSame,
		SameTime:   "13:00",
	}); !errors.Is(err, ErrCapacity) {
		t.Fatalf("expected ErrCapacity for unknown slot, got %v", err)
	}
}

func TestPlanLineTimesCustom(t *testing.T) {
	t.Parallel()

	times, err := planLineTimes(morningSlots(), planRequest{
		NumLines:    3,
		TimeOption:  TimeOptionCustom,
		CustomTimes: []string{"10:30", "09:00", "10:30"},
	})
	if err != nil {
		t.Fatalf("plan line times: %v", err)
	}
	want := []string{"09:00", "10:30", "10:30"}
	if !reflect.DeepEqual(times, want) {
		t.Fatalf("expected ascending times: got=%v want=%v", times, want)
	}

	if _, err := planLineTimes(morningSlots(), planRequest{
		NumLines:    2,
		TimeOption:  TimeOptionCustom,
		CustomTimes: []string{"09:00"},
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for count mismatch, got %v", err)
	}

	if _, err := planLineTimes(morningSlots(), planRequest{
		NumLines:    3,
		TimeOption:  TimeOptionCustom,
		CustomTimes: []string{"09:00", "09:00", "09:00"},
	}); !errors.Is(err, ErrCapacity) {
		t.Fatalf("expected ErrCapacity for over-subscribed custom slot, got %v", err)
	}
}

func TestPlanLineTimesPartialAssignsNothing(t *testing.T) {
	t.Parallel()

	times, err := planLineTimes(morningSlots(), planRequest{
		NumLines:        3,
		TimeOption:      TimeOptionAuto,
		PartialSchedule: true,
	})
	if err != nil {
		t.Fatalf("plan line times: %v", err)
	}
	if len(times) != 0 {
		t.Fatalf("expected no line times in partial mode, got %v", times)
	}
}

func TestPlanLineTimesRejectsUnknownOption(t *testing.T) {
	t.Parallel()

	_, err := planLineTimes(morningSlots(), planRequest{
		NumLines:   1,
		TimeOption: TimeOption("whenever"),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
