package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/raoldfi/tennis-app-sub000/internal/domain/facility"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/league"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/match"
)

// ScheduleMatchInput is the incoming payload for placing one match.
type ScheduleMatchInput struct {
	FacilityID  string
	Date        *time.Time
	NumLines    int // 0 = the match's expected line count
	TimeOption  TimeOption
	SameTime    string
	CustomTimes []string
	// PartialSchedule records only the facility and date, leaving every
	// line time unassigned.
	PartialSchedule bool
}

// ScheduleService places, clears, and deletes single matches. A failed
// schedule call leaves the match exactly as it was.
type ScheduleService struct {
	leagueRepo   league.Repository
	facilityRepo facility.Repository
	matchRepo    match.Repository
	conflicts    *ConflictChecker
	logger       *slog.Logger

	// placeMu serializes the capacity re-read and the commit of Schedule.
	// Callers scheduling different leagues still share facilities, so the
	// re-read and the update must form one critical section.
	placeMu sync.Mutex
}

func NewScheduleService(
	leagueRepo league.Repository,
	facilityRepo facility.Repository,
	matchRepo match.Repository,
	conflicts *ConflictChecker,
	logger *slog.Logger,
) *ScheduleService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ScheduleService{
		leagueRepo:   leagueRepo,
		facilityRepo: facilityRepo,
		matchRepo:    matchRepo,
		conflicts:    conflicts,
		logger:       logger,
	}
}

// Schedule assigns the match a facility, date, and line start times. The
// remaining facility capacity is re-read immediately before the assignment
// is committed.
func (s *ScheduleService) Schedule(ctx context.Context, matchID string, input ScheduleMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Schedule")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.FacilityID) == "" {
		return match.Match{}, fmt.Errorf("%w: facility id is required", ErrInvalidInput)
	}
	if input.Date == nil {
		return match.Match{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	lg, exists, err := s.leagueRepo.GetByID(ctx, m.LeagueID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: league=%s", ErrNotFound, m.LeagueID)
	}

	fac, exists, err := s.facilityRepo.GetByID(ctx, strings.TrimSpace(input.FacilityID))
	if err != nil {
		return match.Match{}, fmt.Errorf("get facility: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: facility=%s", ErrNotFound, input.FacilityID)
	}

	numLines := input.NumLines
	if numLines == 0 {
		numLines = m.NumLines
	}
	if numLines == 0 {
		numLines = lg.NumLinesPerMatch
	}
	if numLines < 1 {
		return match.Match{}, fmt.Errorf("%w: num lines must be at least 1", ErrInvalidInput)
	}

	date := facility.Day(*input.Date)

	s.placeMu.Lock()
	defer s.placeMu.Unlock()

	remaining, err := s.conflicts.remainingCapacityOn(ctx, fac, date, m.ID)
	if err != nil {
		return match.Match{}, err
	}

	times, err := planLineTimes(remaining, planRequest{
		NumLines:        numLines,
		AllowSplitLines: lg.AllowSplitLines,
		TimeOption:      input.TimeOption,
		SameTime:        strings.TrimSpace(input.SameTime),
		CustomTimes:     input.CustomTimes,
		PartialSchedule: input.PartialSchedule,
	})
	if err != nil {
		return match.Match{}, err
	}

	if err := s.conflicts.checkTeamsFree(ctx, m, date, times); err != nil {
		return match.Match{}, err
	}

	updated := m
	updated.FacilityID = fac.ID
	updated.Date = &date
	updated.ScheduledTimes = times
	updated.NumLines = numLines

	if err := s.matchRepo.Update(ctx, updated); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}

	s.logger.InfoContext(ctx, "match scheduled",
		"match_id", updated.ID,
		"facility_id", updated.FacilityID,
		"date", date.Format("2006-01-02"),
		"lines", len(times),
	)

	return updated, nil
}

// Unschedule clears the match's facility, date, and times. It succeeds
// whenever the match exists, scheduled or not.
func (s *ScheduleService) Unschedule(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Unschedule")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	updated := m
	updated.FacilityID = ""
	updated.Date = nil
	updated.ScheduledTimes = nil

	if err := s.matchRepo.Update(ctx, updated); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}

	return updated, nil
}

// Delete removes a match, refusing while any part of a committed plan would
// be destroyed with it.
func (s *ScheduleService) Delete(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Delete")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	if m.IsScheduled() || m.IsPartiallyScheduled() {
		return fmt.Errorf("%w: match=%s must be unscheduled first", ErrDeleteUnsafe, matchID)
	}

	if err := s.matchRepo.Delete(ctx, matchID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	return nil
}
