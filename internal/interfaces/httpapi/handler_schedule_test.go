package httpapi

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/raoldfi/tennis-app-sub000/internal/domain/facility"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/league"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/match"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/team"
	"github.com/raoldfi/tennis-app-sub000/internal/infrastructure/repository/memory"
	idgen "github.com/raoldfi/tennis-app-sub000/internal/platform/id"
	"github.com/raoldfi/tennis-app-sub000/internal/usecase"
)

// newTestRouter wires the full handler stack over memory repositories: one
// league with two teams, one Saturday facility, and one unscheduled match.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	start := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 28, 0, 0, 0, 0, time.UTC)

	leagueRepo := memory.NewLeagueRepository([]league.League{{
		ID:               "lg-http",
		Name:             "HTTP Test League",
		Year:             2026,
		NumMatches:       3,
		NumLinesPerMatch: 3,
		PreferredDays:    []time.Weekday{time.Saturday},
		StartDate:        &start,
		EndDate:          &end,
	}})
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team-a", LeagueID: "lg-http", Name: "Team A"},
		{ID: "team-b", LeagueID: "lg-http", Name: "Team B"},
	})
	facilityRepo := memory.NewFacilityRepository([]facility.Facility{{
		ID:          "fac-main",
		Name:        "Main Facility",
		TotalCourts: 6,
		WeeklySchedule: map[time.Weekday][]facility.TimeSlot{
			time.Saturday: {
				{StartTime: "09:00", AvailableCourts: 2},
				{StartTime: "10:30", AvailableCourts: 4},
			},
		},
	}})
	matchRepo := memory.NewMatchRepository([]match.Match{{
		ID:            "m-http",
		LeagueID:      "lg-http",
		HomeTeamID:    "team-a",
		VisitorTeamID: "team-b",
		NumLines:      3,
	}})

	conflicts := usecase.NewConflictChecker(matchRepo)
	leagueSvc := usecase.NewLeagueService(leagueRepo, teamRepo, facilityRepo, matchRepo)
	fixtureSvc := usecase.NewFixtureService(leagueRepo, teamRepo, matchRepo, idgen.NewRandomGenerator(), logger)
	scheduleSvc := usecase.NewScheduleService(leagueRepo, facilityRepo, matchRepo, conflicts, logger)
	bulkSvc := usecase.NewBulkService(leagueRepo, teamRepo, facilityRepo, matchRepo, scheduleSvc,
		usecase.DefaultSeasonWindow{Start: start, End: end}, logger)
	seasonSvc := usecase.NewSeasonService(leagueRepo, bulkSvc, 1, nil)

	handler := NewHandler(leagueSvc, fixtureSvc, scheduleSvc, bulkSvc, seasonSvc, logger)
	return NewRouter(handler, logger, []string{"*"}, "job-token")
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestScheduleMatchEndpoint(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"facility_id":"fac-main","date":"2026-03-07"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/matches/m-http/schedule", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", body)
	}
	if got, _ := data["status"].(string); got != "scheduled" {
		t.Fatalf("expected status=scheduled, got %v", data["status"])
	}
	if got, _ := data["facility_id"].(string); got != "fac-main" {
		t.Fatalf("expected facility_id=fac-main, got %v", data["facility_id"])
	}
	times, ok := data["scheduled_times"].([]any)
	if !ok || len(times) != 3 {
		t.Fatalf("expected 3 scheduled times, got %v", data["scheduled_times"])
	}
}

func TestScheduleMatchEndpointRejectsUnknownFields(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"facility_id":"fac-main","date":"2026-03-07","court":"center"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/matches/m-http/schedule", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestScheduleMatchEndpointUnknownMatch(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"facility_id":"fac-main","date":"2026-03-07"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/matches/ghost/schedule", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestUnscheduleMatchEndpoint(t *testing.T) {
	router := newTestRouter(t)

	schedule := httptest.NewRequest(http.MethodPost, "/v1/matches/m-http/schedule",
		strings.NewReader(`{"facility_id":"fac-main","date":"2026-03-07"}`))
	schedule.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, schedule)
	if rec.Code != http.StatusOK {
		t.Fatalf("schedule setup failed: %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/matches/m-http/unschedule", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	data, _ := body["data"].(map[string]any)
	if got, _ := data["status"].(string); got != "unscheduled" {
		t.Fatalf("expected status=unscheduled, got %v", data["status"])
	}
}

func TestBulkEndpointFilteredScopeRequiresStatus(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"operation":"unschedule","scope":{"kind":"filtered","league_id":"lg-http"}}`
	req := httptest.NewRequest(http.MethodPost, "/v1/matches/bulk", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAutoScheduleJobEndpointRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/auto-schedule", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/auto-schedule", nil)
	req.Header.Set("X-Internal-Job-Token", "job-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 with token, got %d: %s", rec.Code, rec.Body.String())
	}
}
