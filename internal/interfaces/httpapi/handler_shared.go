package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/raoldfi/tennis-app-sub000/internal/domain/facility"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/league"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/match"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/team"
	"github.com/raoldfi/tennis-app-sub000/internal/usecase"
)

const dateLayout = "2006-01-02"

type Handler struct {
	leagueService   *usecase.LeagueService
	fixtureService  *usecase.FixtureService
	scheduleService *usecase.ScheduleService
	bulkService     *usecase.BulkService
	seasonService   *usecase.SeasonService
	logger          *slog.Logger
	validator       *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	fixtureService *usecase.FixtureService,
	scheduleService *usecase.ScheduleService,
	bulkService *usecase.BulkService,
	seasonService *usecase.SeasonService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		leagueService:   leagueService,
		fixtureService:  fixtureService,
		scheduleService: scheduleService,
		bulkService:     bulkService,
		seasonService:   seasonService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type leagueDTO struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Year             int      `json:"year"`
	Section          string   `json:"section"`
	Region           string   `json:"region"`
	AgeGroup         string   `json:"age_group"`
	Division         string   `json:"division"`
	NumMatches       int      `json:"num_matches"`
	NumLinesPerMatch int      `json:"num_lines_per_match"`
	AllowSplitLines  bool     `json:"allow_split_lines"`
	PreferredDays    []string `json:"preferred_days"`
	BackupDays       []string `json:"backup_days"`
	StartDate        string   `json:"start_date,omitempty"`
	EndDate          string   `json:"end_date,omitempty"`
}

type teamDTO struct {
	ID             string   `json:"id"`
	LeagueID       string   `json:"league_id"`
	Name           string   `json:"name"`
	Captain        string   `json:"captain,omitempty"`
	HomeFacilityID string   `json:"home_facility_id,omitempty"`
	PreferredDays  []string `json:"preferred_days,omitempty"`
}

type timeSlotDTO struct {
	StartTime       string `json:"start_time"`
	AvailableCourts int    `json:"available_courts"`
}

type facilityDTO struct {
	ID               string                   `json:"id"`
	Name             string                   `json:"name"`
	Location         string                   `json:"location,omitempty"`
	TotalCourts      int                      `json:"total_courts"`
	WeeklySchedule   map[string][]timeSlotDTO `json:"weekly_schedule"`
	UnavailableDates []string                 `json:"unavailable_dates,omitempty"`
}

type matchDTO struct {
	ID             string   `json:"id"`
	LeagueID       string   `json:"league_id"`
	HomeTeamID     string   `json:"home_team_id"`
	VisitorTeamID  string   `json:"visitor_team_id"`
	FacilityID     string   `json:"facility_id,omitempty"`
	Date           string   `json:"date,omitempty"`
	ScheduledTimes []string `json:"scheduled_times,omitempty"`
	NumLines       int      `json:"num_lines"`
	Status         string   `json:"status"`
}

func leagueToDTO(l league.League) leagueDTO {
	return leagueDTO{
		ID:               l.ID,
		Name:             l.Name,
		Year:             l.Year,
		Section:          l.Section,
		Region:           l.Region,
		AgeGroup:         l.AgeGroup,
		Division:         l.Division,
		NumMatches:       l.NumMatches,
		NumLinesPerMatch: l.NumLinesPerMatch,
		AllowSplitLines:  l.AllowSplitLines,
		PreferredDays:    weekdaysToNames(l.PreferredDays),
		BackupDays:       weekdaysToNames(l.BackupDays),
		StartDate:        formatDate(l.StartDate),
		EndDate:          formatDate(l.EndDate),
	}
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:             t.ID,
		LeagueID:       t.LeagueID,
		Name:           t.Name,
		Captain:        t.Captain,
		HomeFacilityID: t.HomeFacilityID,
		PreferredDays:  weekdaysToNames(t.PreferredDays),
	}
}

func facilityToDTO(f facility.Facility) facilityDTO {
	schedule := make(map[string][]timeSlotDTO, len(f.WeeklySchedule))
	for day, slots := range f.WeeklySchedule {
		items := make([]timeSlotDTO, 0, len(slots))
		for _, slot := range slots {
			items = append(items, timeSlotDTO{
				StartTime:       slot.StartTime,
				AvailableCourts: slot.AvailableCourts,
			})
		}
		schedule[weekdayName(day)] = items
	}

	blackouts := make([]string, 0, len(f.UnavailableDates))
	for _, d := range f.UnavailableDates {
		blackouts = append(blackouts, d.Format(dateLayout))
	}

	return facilityDTO{
		ID:               f.ID,
		Name:             f.Name,
		Location:         f.Location,
		TotalCourts:      f.TotalCourts,
		WeeklySchedule:   schedule,
		UnavailableDates: blackouts,
	}
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:             m.ID,
		LeagueID:       m.LeagueID,
		HomeTeamID:     m.HomeTeamID,
		VisitorTeamID:  m.VisitorTeamID,
		FacilityID:     m.FacilityID,
		Date:           formatDate(m.Date),
		ScheduledTimes: m.ScheduledTimes,
		NumLines:       m.NumLines,
		Status:         matchStatus(m),
	}
}

const (
	matchStatusUnscheduled        = "unscheduled"
	matchStatusScheduled          = "scheduled"
	matchStatusPartiallyScheduled = "partially_scheduled"
)

// matchStatus derives the reporting status from placement fields; it is
// never stored.
func matchStatus(m match.Match) string {
	switch {
	case !m.HasPlacement():
		return matchStatusUnscheduled
	case m.IsFullyScheduled():
		return matchStatusScheduled
	default:
		return matchStatusPartiallyScheduled
	}
}

func matchStatusPredicate(status string) (func(match.Match) bool, error) {
	switch status {
	case matchStatusUnscheduled, matchStatusScheduled, matchStatusPartiallyScheduled:
		return func(m match.Match) bool { return matchStatus(m) == status }, nil
	default:
		return nil, fmt.Errorf("%w: unknown match status %q", usecase.ErrInvalidInput, status)
	}
}

func weekdaysToNames(days []time.Weekday) []string {
	if len(days) == 0 {
		return nil
	}
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, weekdayName(d))
	}
	return out
}

func weekdayName(d time.Weekday) string {
	return strings.ToLower(d.String())
}

func formatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(dateLayout)
}

func parseDate(raw string) (time.Time, error) {
	parsed, err := time.ParseInLocation(dateLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", usecase.ErrInvalidInput, raw)
	}
	return parsed, nil
}
