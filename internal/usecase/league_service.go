package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/raoldfi/tennis-app-sub000/internal/domain/facility"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/league"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/match"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/team"
)

// LeagueService serves the read side of the API: leagues, their teams and
// matches, and the facility catalog.
type LeagueService struct {
	leagueRepo   league.Repository
	teamRepo     team.Repository
	facilityRepo facility.Repository
	matchRepo    match.Repository
}

func NewLeagueService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	facilityRepo facility.Repository,
	matchRepo match.Repository,
) *LeagueService {
	return &LeagueService{
		leagueRepo:   leagueRepo,
		teamRepo:     teamRepo,
		facilityRepo: facilityRepo,
		matchRepo:    matchRepo,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (league.League, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	lg, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return lg, nil
}

func (s *LeagueService) ListTeamsByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	if _, err := s.GetLeague(ctx, leagueID); err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByLeague(ctx, strings.TrimSpace(leagueID))
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}

	return teams, nil
}

func (s *LeagueService) ListFacilities(ctx context.Context) ([]facility.Facility, error) {
	facilities, err := s.facilityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}

	return facilities, nil
}

func (s *LeagueService) ListMatchesByLeague(ctx context.Context, leagueID string) ([]match.Match, error) {
	if _, err := s.GetLeague(ctx, leagueID); err != nil {
		return nil, err
	}

	matches, err := s.matchRepo.ListByLeague(ctx, strings.TrimSpace(leagueID))
	if err != nil {
		return nil, fmt.Errorf("list matches by league: %w", err)
	}

	return matches, nil
}

func (s *LeagueService) GetMatch(ctx context.Context, matchID string) (match.Match, error) {
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

	return m, nil
}
