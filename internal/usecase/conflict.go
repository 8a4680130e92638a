package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/raoldfi/tennis-app-sub000/internal/domain/facility"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/match"
)

// ConflictChecker answers two questions about a proposed placement: how much
// facility capacity is actually left at each slot once committed matches are
// subtracted, and whether either team is already booked at an overlapping
// time. It re-reads current bookings on every call rather than caching a
// snapshot, so matches competing for the last court inside one bulk run are
// resolved first-come-first-served in processing order.
type ConflictChecker struct {
	matchRepo match.Repository
}

func NewConflictChecker(matchRepo match.Repository) *ConflictChecker {
	return &ConflictChecker{matchRepo: matchRepo}
}

// remainingCapacityOn subtracts each committed line at the facility on the
// date from its slot. The match being (re)scheduled is excluded so it does
// not collide with its own previous booking.
func (c *ConflictChecker) remainingCapacityOn(ctx context.Context, fac facility.Facility, date time.Time, excludeMatchID string) ([]slotCapacity, error) {
	slots := fac.AvailabilityOn(date)
	remaining := make([]slotCapacity, len(slots))
	for i, slot := range slots {
		remaining[i] = slotCapacity{StartTime: slot.StartTime, Remaining: slot.AvailableCourts}
	}

	booked, err := c.matchRepo.ListByFacilityDate(ctx, fac.ID, facility.Day(date))
	if err != nil {
		return nil, fmt.Errorf("list matches by facility and date: %w", err)
	}

	for _, b := range booked {
		if b.ID == excludeMatchID {
			continue
		}
		for _, t := range b.ScheduledTimes {
			for i := range remaining {
				if remaining[i].StartTime != t {
					continue
				}
				if remaining[i].Remaining > 0 {
					remaining[i].Remaining--
				}
				break
			}
		}
	}

	return remaining, nil
}

// checkTeamsFree rejects the placement when either team of m already has a
// match on the same date at an overlapping time.
func (c *ConflictChecker) checkTeamsFree(ctx context.Context, m match.Match, date time.Time, times []string) error {
	others, err := c.matchRepo.ListByLeague(ctx, m.LeagueID)
	if err != nil {
		return fmt.Errorf("list matches by league: %w", err)
	}

	day := facility.Day(date)
	for _, other := range others {
		if other.ID == m.ID || other.Date == nil || !facility.Day(*other.Date).Equal(day) {
			continue
		}
		if !other.Involves(m.HomeTeamID) && !other.Involves(m.VisitorTeamID) {
			continue
		}
		if timesOverlap(times, other.ScheduledTimes) {
			return fmt.Errorf("%w: a team is already committed to match %s at an overlapping time", ErrConflict, other.ID)
		}
	}

	return nil
}

// timesOverlap reports whether two matches on the same date collide: they
// share a start time, or both are date-only placements with no times to
// tell apart.
func timesOverlap(a, b []string) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	for _, ta := range a {
		for _, tb := range b {
			if ta == tb {
				return true
			}
		}
	}
	return false
}
