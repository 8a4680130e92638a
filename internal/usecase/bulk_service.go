package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/raoldfi/tennis-app-sub000/internal/domain/facility"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/league"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/match"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/team"
)

// BulkOperation names what a bulk run does to each match in scope.
type BulkOperation string

const (
	BulkOperationAutoSchedule BulkOperation = "auto_schedule"
	BulkOperationUnschedule   BulkOperation = "unschedule"
	BulkOperationDelete       BulkOperation = "delete"
)

// BulkScopeKind names how the match set of a bulk run is selected.
type BulkScopeKind string

const (
	BulkScopeAll      BulkScopeKind = "all"
	BulkScopeLeague   BulkScopeKind = "league"
	BulkScopeFiltered BulkScopeKind = "filtered"
)

// BulkScope is the explicit scope descriptor a bulk run receives; there is
// no ambient filter state. Filter is an opaque predicate over match fields
// and applies on top of the league scope when LeagueID is set.
type BulkScope struct {
	Kind     BulkScopeKind
	LeagueID string
	Filter   func(match.Match) bool
}

// BulkOutcome classifies what happened to one match in a bulk run. Skipped
// is not an error: it marks matches the operation chose to leave alone.
type BulkOutcome string

const (
	BulkOutcomeSucceeded BulkOutcome = "succeeded"
	BulkOutcomeSkipped   BulkOutcome = "skipped"
	BulkOutcomeFailed    BulkOutcome = "failed"
)

// BulkDetail is the per-match row of a bulk result. FacilityID and Date are
// set when an auto-schedule attempt landed the match somewhere.
type BulkDetail struct {
	MatchID    string
	Outcome    BulkOutcome
	Detail     string
	FacilityID string
	Date       *time.Time
}

// BulkResult reports every match a bulk run touched, in processing order.
// Counts are always derived from the detail rows, never stored beside them.
type BulkResult struct {
	Operation BulkOperation
	Scope     BulkScope
	Details   []BulkDetail
}

func (r BulkResult) SucceededCount() int { return r.countOutcome(BulkOutcomeSucceeded) }
func (r BulkResult) SkippedCount() int   { return r.countOutcome(BulkOutcomeSkipped) }
func (r BulkResult) FailedCount() int    { return r.countOutcome(BulkOutcomeFailed) }

// HasWarnings reports whether the caller should surface the run as a partial
// success rather than a plain one.
func (r BulkResult) HasWarnings() bool {
	return r.SkippedCount() > 0 || r.FailedCount() > 0
}

func (r BulkResult) countOutcome(outcome BulkOutcome) int {
	count := 0
	for _, d := range r.Details {
		if d.Outcome == outcome {
			count++
		}
	}
	return count
}

// SeasonWindow bounds the date search of auto-scheduling for one league.
type SeasonWindow interface {
	WindowFor(ctx context.Context, lg league.League) (start, end time.Time, err error)
}

// DefaultSeasonWindow serves the league's own dates when set and the
// configured season bounds otherwise.
type DefaultSeasonWindow struct {
	Start time.Time
	End   time.Time
}

func (w DefaultSeasonWindow) WindowFor(_ context.Context, lg league.League) (time.Time, time.Time, error) {
	start, end := w.Start, w.End
	if lg.StartDate != nil {
		start = *lg.StartDate
	}
	if lg.EndDate != nil {
		end = *lg.EndDate
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: season window for league %s is empty", ErrInvalidInput, lg.ID)
	}
	return facility.Day(start), facility.Day(end), nil
}

// BulkService drives schedule, unschedule, and delete over a scoped set of
// matches. Matches are processed independently and strictly in order: one
// match failing never aborts the rest, and the run always returns a result.
type BulkService struct {
	leagueRepo   league.Repository
	teamRepo     team.Repository
	facilityRepo facility.Repository
	matchRepo    match.Repository
	scheduler    *ScheduleService
	window       SeasonWindow
	logger       *slog.Logger
}

func NewBulkService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	facilityRepo facility.Repository,
	matchRepo match.Repository,
	scheduler *ScheduleService,
	window SeasonWindow,
	logger *slog.Logger,
) *BulkService {
	if logger == nil {
		logger = slog.Default()
	}

	return &BulkService{
		leagueRepo:   leagueRepo,
		teamRepo:     teamRepo,
		facilityRepo: facilityRepo,
		matchRepo:    matchRepo,
		scheduler:    scheduler,
		window:       window,
		logger:       logger,
	}
}

// Run executes one bulk operation. Only scope resolution can fail the call
// as a whole; per-match errors are folded into the result's failed or
// skipped buckets.
func (s *BulkService) Run(ctx context.Context, op BulkOperation, scope BulkScope) (BulkResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BulkService.Run")
	defer span.End()

	switch op {
	case BulkOperationAutoSchedule, BulkOperationUnschedule, BulkOperationDelete:
	default:
		return BulkResult{}, fmt.Errorf("%w: unknown bulk operation %q", ErrInvalidInput, op)
	}

	matches, err := s.resolveScope(ctx, scope)
	if err != nil {
		return BulkResult{}, err
	}

	result := BulkResult{Operation: op, Scope: scope, Details: make([]BulkDetail, 0, len(matches))}
	for _, m := range matches {
		var detail BulkDetail
		switch op {
		case BulkOperationAutoSchedule:
			detail = s.autoScheduleOne(ctx, m)
		case BulkOperationUnschedule:
			detail = s.unscheduleOne(ctx, m)
		case BulkOperationDelete:
			detail = s.deleteOne(ctx, m)
		}
		result.Details = append(result.Details, detail)
	}

	if result.HasWarnings() {
		s.logger.WarnContext(ctx, "bulk run finished with warnings",
			"operation", string(op),
			"succeeded", result.SucceededCount(),
			"skipped", result.SkippedCount(),
			"failed", result.FailedCount(),
		)
	} else {
		s.logger.InfoContext(ctx, "bulk run finished",
			"operation", string(op),
			"succeeded", result.SucceededCount(),
		)
	}

	return result, nil
}

func (s *BulkService) resolveScope(ctx context.Context, scope BulkScope) ([]match.Match, error) {
	switch scope.Kind {
	case BulkScopeAll:
		matches, err := s.matchRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list matches: %w", err)
		}
		return matches, nil

	case BulkScopeLeague:
		leagueID := strings.TrimSpace(scope.LeagueID)
		if leagueID == "" {
			return nil, fmt.Errorf("%w: league id is required for league scope", ErrInvalidInput)
		}
		_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
		if err != nil {
			return nil, fmt.Errorf("get league: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
		}
		matches, err := s.matchRepo.ListByLeague(ctx, leagueID)
		if err != nil {
			return nil, fmt.Errorf("list matches by league: %w", err)
		}
		return matches, nil

	case BulkScopeFiltered:
		if scope.Filter == nil {
			return nil, fmt.Errorf("%w: filter predicate is required for filtered scope", ErrInvalidInput)
		}
		var (
			base []match.Match
			err  error
		)
		if leagueID := strings.TrimSpace(scope.LeagueID); leagueID != "" {
			base, err = s.matchRepo.ListByLeague(ctx, leagueID)
		} else {
			base, err = s.matchRepo.List(ctx)
		}
		if err != nil {
			return nil, fmt.Errorf("list matches for filtered scope: %w", err)
		}
		matches := make([]match.Match, 0, len(base))
		for _, m := range base {
			if scope.Filter(m) {
				matches = append(matches, m)
			}
		}
		return matches, nil

	default:
		return nil, fmt.Errorf("%w: unknown bulk scope %q", ErrInvalidInput, scope.Kind)
	}
}

// autoScheduleOne walks candidate facility/date combinations until one
// accepts the match: the home team's facility first, then the rest in id
// order, each across the league's season window with preferred days tried
// before backup days before everything else. A match that already holds
// line times is skipped; one holding only a facility and date keeps that
// placement and gets times assigned there.
func (s *BulkService) autoScheduleOne(ctx context.Context, m match.Match) BulkDetail {
	if m.IsScheduled() {
		return BulkDetail{MatchID: m.ID, Outcome: BulkOutcomeSkipped, Detail: "already scheduled"}
	}
	if m.HasPlacement() {
		return s.completePlacedOne(ctx, m)
	}

	lg, exists, err := s.leagueRepo.GetByID(ctx, m.LeagueID)
	if err != nil {
		return BulkDetail{MatchID: m.ID, Outcome: BulkOutcomeFailed, Detail: fmt.Sprintf("get league: %v", err)}
	}
	if !exists {
		return BulkDetail{MatchID: m.ID, Outcome: BulkOutcomeFailed, Detail: fmt.Sprintf("league %s not found", m.LeagueID)}
	}

	start, end, err := s.window.WindowFor(ctx, lg)
	if err != nil {
		return BulkDetail{MatchID: m.ID, Outcome: BulkOutcomeFailed, Detail: err.Error()}
	}

	candidates, err := s.candidateFacilities(ctx, lg, m)
	if err != nil {
		return BulkDetail{MatchID: m.ID, Outcome: BulkOutcomeFailed, Detail: err.Error()}
	}

	dates := candidateDates(lg, start, end)

	var lastErr error
	for _, fac := range candidates {
		for _, date := range dates {
			if len(fac.AvailabilityOn(date)) == 0 {
				continue
			}
			d := date
			updated, err := s.scheduler.Schedule(ctx, m.ID, ScheduleMatchInput{
				FacilityID: fac.ID,
				Date:       &d,
				TimeOption: TimeOptionAuto,
			})
			if err == nil {
				return BulkDetail{
					MatchID:    m.ID,
					Outcome:    BulkOutcomeSucceeded,
					Detail:     fmt.Sprintf("scheduled at %s on %s", fac.ID, d.Format("2006-01-02")),
					FacilityID: updated.FacilityID,
					Date:       updated.Date,
				}
			}
			lastErr = err
		}
	}

	detail := "no facility/date combination available"
	if lastErr != nil {
		detail = lastErr.Error()
	}
	return BulkDetail{MatchID: m.ID, Outcome: BulkOutcomeFailed, Detail: detail}
}

// completePlacedOne assigns line times to a match that was placed without
// any, at the facility and date it already committed to. The placement was
// a deliberate choice, so a full line-time plan failing there fails the
// match rather than moving it.
func (s *BulkService) completePlacedOne(ctx context.Context, m match.Match) BulkDetail {
	d := *m.Date
	updated, err := s.scheduler.Schedule(ctx, m.ID, ScheduleMatchInput{
		FacilityID: m.FacilityID,
		Date:       &d,
		TimeOption: TimeOptionAuto,
	})
	if err != nil {
		return BulkDetail{MatchID: m.ID, Outcome: BulkOutcomeFailed, Detail: err.Error()}
	}

	return BulkDetail{
		MatchID:    m.ID,
		Outcome:    BulkOutcomeSucceeded,
		Detail:     fmt.Sprintf("completed line times at %s on %s", updated.FacilityID, d.Format("2006-01-02")),
		FacilityID: updated.FacilityID,
		Date:       updated.Date,
	}
}

func (s *BulkService) unscheduleOne(ctx context.Context, m match.Match) BulkDetail {
	if _, err := s.scheduler.Unschedule(ctx, m.ID); err != nil {
		return BulkDetail{MatchID: m.ID, Outcome: BulkOutcomeFailed, Detail: err.Error()}
	}
	return BulkDetail{MatchID: m.ID, Outcome: BulkOutcomeSucceeded}
}

func (s *BulkService) deleteOne(ctx context.Context, m match.Match) BulkDetail {
	err := s.scheduler.Delete(ctx, m.ID)
	switch {
	case err == nil:
		return BulkDetail{MatchID: m.ID, Outcome: BulkOutcomeSucceeded}
	case errors.Is(err, ErrDeleteUnsafe):
		// A safety refusal, not a failure: the match keeps its plan.
		return BulkDetail{MatchID: m.ID, Outcome: BulkOutcomeSkipped, Detail: "match is scheduled; unschedule it first"}
	default:
		return BulkDetail{MatchID: m.ID, Outcome: BulkOutcomeFailed, Detail: err.Error()}
	}
}

// candidateFacilities orders the facilities an auto-schedule attempt should
// try: the home team's home facility, then every other facility in id order.
func (s *BulkService) candidateFacilities(ctx context.Context, lg league.League, m match.Match) ([]facility.Facility, error) {
	all, err := s.facilityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}

	homeFacilityID := ""
	homeTeam, exists, err := s.teamRepo.GetByID(ctx, lg.ID, m.HomeTeamID)
	if err != nil {
		return nil, fmt.Errorf("get home team: %w", err)
	}
	if exists {
		homeFacilityID = homeTeam.HomeFacilityID
	}

	ordered := make([]facility.Facility, 0, len(all))
	for _, fac := range all {
		if fac.ID == homeFacilityID {
			ordered = append(ordered, fac)
			break
		}
	}
	for _, fac := range all {
		if fac.ID != homeFacilityID {
			ordered = append(ordered, fac)
		}
	}

	return ordered, nil
}

// candidateDates lists the window's dates with the league's preferred days
// first, backup days second, and the rest last; chronological within each
// pass.
func candidateDates(lg league.League, start, end time.Time) []time.Time {
	preferred := weekdaySet(lg.PreferredDays)
	backup := weekdaySet(lg.BackupDays)

	var preferredDates, backupDates, otherDates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch {
		case preferred[d.Weekday()]:
			preferredDates = append(preferredDates, d)
		case backup[d.Weekday()]:
			backupDates = append(backupDates, d)
		default:
			otherDates = append(otherDates, d)
		}
	}

	out := make([]time.Time, 0, len(preferredDates)+len(backupDates)+len(otherDates))
	out = append(out, preferredDates...)
	out = append(out, backupDates...)
	out = append(out, otherDates...)
	return out
}

func weekdaySet(days []time.Weekday) map[time.Weekday]bool {
	set := make(map[time.Weekday]bool, len(days))
	for _, day := range days {
		set[day] = true
	}
	return set
}
