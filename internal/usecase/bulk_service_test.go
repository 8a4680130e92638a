package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/raoldfi/tennis-app-sub000/internal/domain/facility"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/league"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/match"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/team"
	"github.com/raoldfi/tennis-app-sub000/internal/infrastructure/repository/memory"
)

type bulkFixture struct {
	matchRepo *memory.MatchRepository
	service   *BulkService
}

func newBulkFixture(
	t *testing.T,
	leagues []league.League,
	teams []team.Team,
	facilities []facility.Facility,
	matches []match.Match,
) bulkFixture {
	t.Helper()

	leagueRepo := memory.NewLeagueRepository(leagues)
	teamRepo := memory.NewTeamRepository(teams)
	facilityRepo := memory.NewFacilityRepository(facilities)
	matchRepo := memory.NewMatchRepository(matches)

	scheduler := NewScheduleService(
		leagueRepo,
		facilityRepo,
		matchRepo,
		NewConflictChecker(matchRepo),
		discardLogger(),
	)
	service := NewBulkService(
		leagueRepo,
		teamRepo,
		facilityRepo,
		matchRepo,
		scheduler,
		DefaultSeasonWindow{Start: saturday, End: saturday},
		discardLogger(),
	)

	return bulkFixture{matchRepo: matchRepo, service: service}
}

func bulkLeague(id string) league.League {
	start := saturday
	end := saturday
	return league.League{
		ID:               id,
		Name:             "Bulk League",
		Year:             2026,
		NumMatches:       5,
		NumLinesPerMatch: 3,
		PreferredDays:    []time.Weekday{time.Saturday},
		StartDate:        &start,
		EndDate:          &end,
	}
}

func disjointTeams(leagueID string, count int) []team.Team {
	teams := make([]team.Team, 0, count)
	for i := 1; i <= count; i++ {
		id := fmt.Sprintf("team-%02d", i)
		teams = append(teams, team.Team{ID: id, LeagueID: leagueID, Name: "Team " + id})
	}
	return teams
}

func disjointMatches(leagueID string, count int) []match.Match {
	matches := make([]match.Match, 0, count)
	for i := 1; i <= count; i++ {
		matches = append(matches, unscheduledMatch(
			fmt.Sprintf("m-%d", i),
			leagueID,
			fmt.Sprintf("team-%02d", i*2-1),
			fmt.Sprintf("team-%02d", i*2),
			3,
		))
	}
	return matches
}

func TestBulkServiceAutoScheduleFillsUntilCapacityRunsOut(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	lg := bulkLeague("lg-bulk")
	// Capacity for exactly three 3-line matches: two at 09:00, one at 10:30.
	fix := newBulkFixture(t,
		[]league.League{lg},
		disjointTeams(lg.ID, 10),
		[]facility.Facility{saturdayFacility("fac-main",
			facility.TimeSlot{StartTime: "09:00", AvailableCourts: 6},
			facility.TimeSlot{StartTime: "10:30", AvailableCourts: 3},
		)},
		disjointMatches(lg.ID, 5),
	)

	result, err := fix.service.Run(ctx, BulkOperationAutoSchedule, BulkScope{
		Kind:     BulkScopeLeague,
		LeagueID: lg.ID,
	})
	if err != nil {
		t.Fatalf("bulk run: %v", err)
	}

	if result.SucceededCount() != 3 || result.FailedCount() != 2 {
		t.Fatalf("expected 3 succeeded / 2 failed, got %d / %d", result.SucceededCount(), result.FailedCount())
	}
	if !result.HasWarnings() {
		t.Fatalf("expected warnings on a partial run")
	}
	if len(result.Details) != 5 {
		t.Fatalf("expected one detail row per match, got %d", len(result.Details))
	}
	for i, d := range result.Details {
		wantID := fmt.Sprintf("m-%d", i+1)
		if d.MatchID != wantID {
			t.Fatalf("detail %d out of order: got=%s want=%s", i, d.MatchID, wantID)
		}
	}
	for _, d := range result.Details[:3] {
		if d.Outcome != BulkOutcomeSucceeded {
			t.Fatalf("match %s expected succeeded, got %s (%s)", d.MatchID, d.Outcome, d.Detail)
		}
		if d.FacilityID != "fac-main" || d.Date == nil {
			t.Fatalf("match %s missing placement in detail: %+v", d.MatchID, d)
		}
	}
	for _, d := range result.Details[3:] {
		if d.Outcome != BulkOutcomeFailed {
			t.Fatalf("match %s expected failed, got %s", d.MatchID, d.Outcome)
		}
	}
}

func TestBulkServiceAutoScheduleSkipsPlacedMatches(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	lg := bulkLeague("lg-skip")
	date := saturday
	placed := unscheduledMatch("m-1", lg.ID, "team-01", "team-02", 3)
	placed.FacilityID = "fac-main"
	placed.Date = &date
	placed.ScheduledTimes = []string{"09:00", "09:00", "09:00"}

	fix := newBulkFixture(t,
		[]league.League{lg},
		disjointTeams(lg.ID, 4),
		[]facility.Facility{saturdayFacility("fac-main",
			facility.TimeSlot{StartTime: "09:00", AvailableCourts: 6},
		)},
		[]match.Match{placed, unscheduledMatch("m-2", lg.ID, "team-03", "team-04", 3)},
	)

	result, err := fix.service.Run(ctx, BulkOperationAutoSchedule, BulkScope{
		Kind:     BulkScopeLeague,
		LeagueID: lg.ID,
	})
	if err != nil {
		t.Fatalf("bulk run: %v", err)
	}

	if result.SkippedCount() != 1 || result.SucceededCount() != 1 {
		t.Fatalf("expected 1 skipped / 1 succeeded, got %d / %d", result.SkippedCount(), result.SucceededCount())
	}
}

func TestBulkServiceDeleteSkipsScheduledMatches(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	lg := bulkLeague("lg-del")
	date := saturday
	scheduled := unscheduledMatch("m-1", lg.ID, "team-01", "team-02", 3)
	scheduled.FacilityID = "fac-main"
	scheduled.Date = &date
	scheduled.ScheduledTimes = []string{"09:00", "09:00", "09:00"}

	fix := newBulkFixture(t,
		[]league.League{lg},
		disjointTeams(lg.ID, 4),
		[]facility.Facility{saturdayFacility("fac-main",
			facility.TimeSlot{StartTime: "09:00", AvailableCourts: 6},
		)},
		[]match.Match{scheduled, unscheduledMatch("m-2", lg.ID, "team-03", "team-04", 3)},
	)

	result, err := fix.service.Run(ctx, BulkOperationDelete, BulkScope{Kind: BulkScopeAll})
	if err != nil {
		t.Fatalf("bulk run: %v", err)
	}

	if result.SkippedCount() != 1 || result.SucceededCount() != 1 {
		t.Fatalf("expected 1 skipped / 1 succeeded, got %d / %d", result.SkippedCount(), result.SucceededCount())
	}

	if _, exists, _ := fix.matchRepo.GetByID(ctx, "m-1"); !exists {
		t.Fatalf("scheduled match must survive a bulk delete")
	}
	if _, exists, _ := fix.matchRepo.GetByID(ctx, "m-2"); exists {
		t.Fatalf("unscheduled match should have been deleted")
	}
}

func TestBulkServiceUnscheduleClearsEverything(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	lg := bulkLeague("lg-unsched")
	date := saturday
	matches := disjointMatches(lg.ID, 2)
	for i := range matches {
		matches[i].FacilityID = "fac-main"
		matches[i].Date = &date
		matches[i].ScheduledTimes = []string{"09:00"}
	}

	fix := newBulkFixture(t,
		[]league.League{lg},
		disjointTeams(lg.ID, 4),
		[]facility.Facility{saturdayFacility("fac-main",
			facility.TimeSlot{StartTime: "09:00", AvailableCourts: 6},
		)},
		matches,
	)

	result, err := fix.service.Run(ctx, BulkOperationUnschedule, BulkScope{Kind: BulkScopeAll})
	if err != nil {
		t.Fatalf("bulk run: %v", err)
	}
	if result.SucceededCount() != 2 || result.HasWarnings() {
		t.Fatalf("expected clean run of 2, got %d succeeded warnings=%t", result.SucceededCount(), result.HasWarnings())
	}

	remaining, err := fix.matchRepo.List(ctx)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	for _, m := range remaining {
		if m.HasPlacement() || len(m.ScheduledTimes) != 0 {
			t.Fatalf("match %s still placed after bulk unschedule", m.ID)
		}
	}
}

func TestBulkServiceFilteredScope(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	lg := bulkLeague("lg-filter")
	date := saturday
	scheduled := unscheduledMatch("m-1", lg.ID, "team-01", "team-02", 3)
	scheduled.FacilityID = "fac-main"
	scheduled.Date = &date
	scheduled.ScheduledTimes = []string{"09:00", "09:00", "09:00"}

	fix := newBulkFixture(t,
		[]league.League{lg},
		disjointTeams(lg.ID, 4),
		[]facility.Facility{saturdayFacility("fac-main",
			facility.TimeSlot{StartTime: "09:00", AvailableCourts: 6},
		)},
		[]match.Match{scheduled, unscheduledMatch("m-2", lg.ID, "team-03", "team-04", 3)},
	)

	result, err := fix.service.Run(ctx, BulkOperationDelete, BulkScope{
		Kind:     BulkScopeFiltered,
		LeagueID: lg.ID,
		Filter:   func(m match.Match) bool { return !m.HasPlacement() },
	})
	if err != nil {
		t.Fatalf("bulk run: %v", err)
	}

	if len(result.Details) != 1 || result.Details[0].MatchID != "m-2" {
		t.Fatalf("filter should have scoped the run to m-2, got %+v", result.Details)
	}
	if result.SucceededCount() != 1 {
		t.Fatalf("expected the filtered match deleted, got %d succeeded", result.SucceededCount())
	}
}

func TestBulkServiceRunValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	lg := bulkLeague("lg-validate")
	fix := newBulkFixture(t, []league.League{lg}, nil, nil, nil)

	if _, err := fix.service.Run(ctx, BulkOperation("defragment"), BulkScope{Kind: BulkScopeAll}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown operation, got %v", err)
	}
	if _, err := fix.service.Run(ctx, BulkOperationUnschedule, BulkScope{Kind: BulkScopeKind("cosmic")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown scope, got %v", err)
	}
	if _, err := fix.service.Run(ctx, BulkOperationUnschedule, BulkScope{Kind: BulkScopeLeague, LeagueID: "ghost"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown league, got %v", err)
	}
	if _, err := fix.service.Run(ctx, BulkOperationUnschedule, BulkScope{Kind: BulkScopeFiltered}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for filtered scope without predicate, got %v", err)
	}
}

func TestBulkServiceAutoScheduleCompletesPlacedButTimelessMatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	lg := bulkLeague("lg-compl")
	date := saturday
	placed := unscheduledMatch("m-1", lg.ID, "team-01", "team-02", 3)
	placed.FacilityID = "fac-main"
	placed.Date = &date

	fix := newBulkFixture(t,
		[]league.League{lg},
		disjointTeams(lg.ID, 2),
		[]facility.Facility{
			saturdayFacility("fac-main", facility.TimeSlot{StartTime: "09:00", AvailableCourts: 3}),
			saturdayFacility("fac-other", facility.TimeSlot{StartTime: "09:00", AvailableCourts: 6}),
		},
		[]match.Match{placed},
	)

	result, err := fix.service.Run(ctx, BulkOperationAutoSchedule, BulkScope{
		Kind:     BulkScopeLeague,
		LeagueID: lg.ID,
	})
	if err != nil {
		t.Fatalf("bulk run: %v", err)
	}
	if result.SucceededCount() != 1 || result.SkippedCount() != 0 {
		t.Fatalf("expected the placed match to be completed, got %+v", result.Details)
	}

	stored, _, err := fix.matchRepo.GetByID(ctx, "m-1")
	if err != nil {
		t.Fatalf("reload match: %v", err)
	}
	if stored.FacilityID != "fac-main" || stored.Date == nil || !stored.Date.Equal(saturday) {
		t.Fatalf("completion moved the match: %+v", stored)
	}
	if !stored.IsFullyScheduled() {
		t.Fatalf("expected all line times assigned, got %v", stored.ScheduledTimes)
	}
}

func TestBulkServiceAutoScheduleDoesNotMovePlacedMatchWithoutCapacity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	lg := bulkLeague("lg-stuck")
	date := saturday
	placed := unscheduledMatch("m-1", lg.ID, "team-01", "team-02", 3)
	placed.FacilityID = "fac-tiny"
	placed.Date = &date

	// fac-tiny cannot hold three lines; the committed placement must fail
	// rather than migrate to fac-roomy.
	fix := newBulkFixture(t,
		[]league.League{lg},
		disjointTeams(lg.ID, 2),
		[]facility.Facility{
			saturdayFacility("fac-tiny", facility.TimeSlot{StartTime: "09:00", AvailableCourts: 1}),
			saturdayFacility("fac-roomy", facility.TimeSlot{StartTime: "09:00", AvailableCourts: 6}),
		},
		[]match.Match{placed},
	)

	result, err := fix.service.Run(ctx, BulkOperationAutoSchedule, BulkScope{
		Kind:     BulkScopeLeague,
		LeagueID: lg.ID,
	})
	if err != nil {
		t.Fatalf("bulk run: %v", err)
	}
	if result.FailedCount() != 1 {
		t.Fatalf("expected a failed completion, got %+v", result.Details)
	}

	stored, _, err := fix.matchRepo.GetByID(ctx, "m-1")
	if err != nil {
		t.Fatalf("reload match: %v", err)
	}
	if stored.FacilityID != "fac-tiny" || len(stored.ScheduledTimes) != 0 {
		t.Fatalf("failed completion must leave the placement untouched, got %+v", stored)
	}
}
