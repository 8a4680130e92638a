package usecase

import (
	"fmt"
	"sort"
)

// TimeOption selects how line start times are chosen when scheduling.
type TimeOption string

const (
	// TimeOptionAuto searches the day's slots in time order and packs lines
	// greedily into the first slot(s) with capacity.
	TimeOptionAuto TimeOption = "auto"
	// TimeOptionSame puts every line at one caller-given start time.
	TimeOptionSame TimeOption = "same"
	// TimeOptionCustom takes one caller-given start time per line.
	TimeOptionCustom TimeOption = "custom"
)

// slotCapacity is one start time with the courts still free once bookings
// already committed that day are subtracted.
type slotCapacity struct {
	StartTime string
	Remaining int
}

type planRequest struct {
	NumLines        int
	AllowSplitLines bool
	TimeOption      TimeOption
	SameTime        string
	CustomTimes     []string
	PartialSchedule bool
}

// planLineTimes assigns a start time to every line of a match out of the
// day's remaining capacity, or explains why it cannot. Slots must already be
// in start time order. In partial mode no lines are assigned at all; the
// caller records only the facility and date.
func planLineTimes(slots []slotCapacity, req planRequest) ([]string, error) {
	if req.PartialSchedule {
		return nil, nil
	}
	if req.NumLines < 1 {
		return nil, fmt.Errorf("%w: num lines must be at least 1", ErrInvalidInput)
	}

	switch req.TimeOption {
	case TimeOptionSame:
		return planSameTime(slots, req)
	case TimeOptionCustom:
		return planCustomTimes(slots, req)
	case TimeOptionAuto, "":
		return planAutoTimes(slots, req)
	default:
		return nil, fmt.Errorf("%w: unknown time option %q", ErrInvalidInput, req.TimeOption)
	}
}

func planSameTime(slots []slotCapacity, req planRequest) ([]string, error) {
	if req.SameTime == "" {
		return nil, fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}

	for _, slot := range slots {
		if slot.StartTime != req.SameTime {
			continue
		}
		if slot.Remaining < req.NumLines {
			return nil, fmt.Errorf("%w: slot %s has %d court(s) free, need %d", ErrCapacity, slot.StartTime, slot.Remaining, req.NumLines)
		}
		return repeatTime(req.SameTime, req.NumLines), nil
	}

	return nil, fmt.Errorf("%w: no slot at %s", ErrCapacity, req.SameTime)
}

func planCustomTimes(slots []slotCapacity, req planRequest) ([]string, error) {
	if len(req.CustomTimes) != req.NumLines {
		return nil, fmt.Errorf("%w: got %d time(s) for %d line(s)", ErrInvalidInput, len(req.CustomTimes), req.NumLines)
	}

	remaining := make(map[string]int, len(slots))
	for _, slot := range slots {
		remaining[slot.StartTime] = slot.Remaining
	}

	times := make([]string, 0, req.NumLines)
	for _, t := range req.CustomTimes {
		left, ok := remaining[t]
		if !ok {
			return nil, fmt.Errorf("%w: no slot at %s", ErrCapacity, t)
		}
		if left < 1 {
			return nil, fmt.Errorf("%w: slot %s is over-subscribed", ErrCapacity, t)
		}
		remaining[t] = left - 1
		times = append(times, t)
	}

	sort.Strings(times)
	return times, nil
}

func planAutoTimes(slots []slotCapacity, req planRequest) ([]string, error) {
	if !req.AllowSplitLines {
		// Every line must share one synchronized start.
		for _, slot := range slots {
			if slot.Remaining >= req.NumLines {
				return repeatTime(slot.StartTime, req.NumLines), nil
			}
		}
		return nil, fmt.Errorf("%w: no slot offers %d court(s)", ErrNoSingleSlot, req.NumLines)
	}

	total := 0
	for _, slot := range slots {
		total += slot.Remaining
	}
	if total < req.NumLines {
		return nil, fmt.Errorf("%w: %d court(s) free across the day, need %d", ErrInsufficientCapacity, total, req.NumLines)
	}

	// Pack each slot full before moving on, minimizing distinct start times.
	times := make([]string, 0, req.NumLines)
	left := req.NumLines
	for _, slot := range slots {
		take := slot.Remaining
		if take > left {
			take = left
		}
		times = append(times, repeatTime(slot.StartTime, take)...)
		left -= take
		if left == 0 {
			break
		}
	}

	return times, nil
}

func repeatTime(t string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = t
	}
	return out
}
