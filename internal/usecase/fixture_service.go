package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/raoldfi/tennis-app-sub000/internal/domain/league"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/match"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/team"
	idgen "github.com/raoldfi/tennis-app-sub000/internal/platform/id"
)

// byeTeamID is the ghost entrant the circle method pairs against when the
// league has an odd team count. Pairings touching it become bye rounds and
// are filtered out before any match is created.
const byeTeamID = ""

// GenerateResult reports how many fixtures a generation call added. Repeat
// calls on an unchanged league top up nothing and report zero.
type GenerateResult struct {
	CreatedCount int
}

// FixtureService produces the unscheduled fixture list for a league: a
// balanced round-robin in which every team plays exactly NumMatches times.
type FixtureService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	matchRepo  match.Repository
	idGen      idgen.Generator
	logger     *slog.Logger
}

func NewFixtureService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	idGen idgen.Generator,
	logger *slog.Logger,
) *FixtureService {
	if logger == nil {
		logger = slog.Default()
	}

	return &FixtureService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		idGen:      idGen,
		logger:     logger,
	}
}

// Generate creates the matches still needed for every team in the league to
// reach the league's NumMatches target. Existing matches count toward the
// target, so generation is an idempotent top-up.
func (s *FixtureService) Generate(ctx context.Context, leagueID string) (GenerateResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Generate")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return GenerateResult{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	lg, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return GenerateResult{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("list teams by league: %w", err)
	}
	if len(teams) < 2 {
		return GenerateResult{}, fmt.Errorf("%w: league %s has %d team(s), need at least 2", ErrInsufficientTeams, leagueID, len(teams))
	}
	if lg.NumMatches*len(teams)%2 != 0 {
		return GenerateResult{}, fmt.Errorf("%w: %d teams x %d matches each cannot be paired evenly", ErrUnfairSchedule, len(teams), lg.NumMatches)
	}

	existing, err := s.matchRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("list matches by league: %w", err)
	}

	deficit := make(map[string]int, len(teams))
	homeCount := make(map[string]int, len(teams))
	teamIDs := make([]string, 0, len(teams))
	for _, t := range teams {
		deficit[t.ID] = lg.NumMatches
		teamIDs = append(teamIDs, t.ID)
	}
	for _, m := range existing {
		deficit[m.HomeTeamID]--
		deficit[m.VisitorTeamID]--
		homeCount[m.HomeTeamID]++
	}

	pairs := roundRobinPairs(teamIDs)

	created := 0
	for !allSatisfied(deficit) {
		progress := false
		for _, pair := range pairs {
			if deficit[pair[0]] <= 0 || deficit[pair[1]] <= 0 {
				continue
			}

			home, visitor := chooseHome(pair[0], pair[1], homeCount)
			id, err := s.idGen.NewID()
			if err != nil {
				return GenerateResult{CreatedCount: created}, fmt.Errorf("new match id: %w", err)
			}

			m := match.Match{
				ID:            id,
				LeagueID:      lg.ID,
				HomeTeamID:    home,
				VisitorTeamID: visitor,
				NumLines:      lg.NumLinesPerMatch,
			}
			if err := s.matchRepo.Create(ctx, m); err != nil {
				return GenerateResult{CreatedCount: created}, fmt.Errorf("create match: %w", err)
			}

			deficit[home]--
			deficit[visitor]--
			homeCount[home]++
			created++
			progress = true

			if allSatisfied(deficit) {
				break
			}
		}
		if !progress {
			// Existing matches left a deficit no round-robin pass can close
			// (e.g. one team short while everyone else is done).
			return GenerateResult{CreatedCount: created}, fmt.Errorf("%w: remaining deficit cannot be paired", ErrUnfairSchedule)
		}
	}

	s.logger.InfoContext(ctx, "fixtures generated",
		"league_id", lg.ID,
		"teams", len(teams),
		"created", created,
	)

	return GenerateResult{CreatedCount: created}, nil
}

// roundRobinPairs lists every unordered team pair once, in circle-method
// round order: each team meets every other team before any pair repeats,
// and each round touches every team at most once.
func roundRobinPairs(teamIDs []string) [][2]string {
	ids := append([]string(nil), teamIDs...)
	sort.Strings(ids)
	if len(ids)%2 == 1 {
		ids = append(ids, byeTeamID)
	}

	n := len(ids)
	pairs := make([][2]string, 0, n*(n-1)/2)
	rotation := append([]string(nil), ids...)

	for round := 0; round < n-1; round++ {
		for i := 0; i < n/2; i++ {
			a, b := rotation[i], rotation[n-1-i]
			if a == byeTeamID || b == byeTeamID {
				continue
			}
			pairs = append(pairs, [2]string{a, b})
		}

		// Circle method: hold the first entrant, rotate the rest clockwise.
		last := rotation[n-1]
		copy(rotation[2:], rotation[1:n-1])
		rotation[1] = last
	}

	return pairs
}

// chooseHome gives the home slot to the team with fewer home matches so far;
// ties go to the lower team id so results are deterministic.
func chooseHome(a, b string, homeCount map[string]int) (home, visitor string) {
	if homeCount[a] < homeCount[b] {
		return a, b
	}
	if homeCount[b] < homeCount[a] {
		return b, a
	}
	if a < b {
		return a, b
	}
	return b, a
}

func allSatisfied(deficit map[string]int) bool {
	for _, remaining := range deficit {
		if remaining > 0 {
			return false
		}
	}
	return true
}
