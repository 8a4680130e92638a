package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/raoldfi/tennis-app-sub000/internal/config"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/facility"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/league"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/match"
	"github.com/raoldfi/tennis-app-sub000/internal/domain/team"
	"github.com/raoldfi/tennis-app-sub000/internal/infrastructure/repository/memory"
	"github.com/raoldfi/tennis-app-sub000/internal/infrastructure/repository/postgres"
	"github.com/raoldfi/tennis-app-sub000/internal/interfaces/httpapi"
	idgen "github.com/raoldfi/tennis-app-sub000/internal/platform/id"
	"github.com/raoldfi/tennis-app-sub000/internal/platform/logging"
	"github.com/raoldfi/tennis-app-sub000/internal/usecase"
)

// NewHTTPServer wires repositories, services, and the router into a ready
// http.Server. The returned cleanup closes whatever the wiring opened.
func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, func(), error) {
	cleanup := func() {}

	var (
		leagueRepo   league.Repository
		teamRepo     team.Repository
		facilityRepo facility.Repository
		matchRepo    match.Repository
	)

	if cfg.UseMemoryRepositories() {
		logger.Info("using in-memory repositories", "reason", "DB_URL empty")
		leagueRepo = memory.NewLeagueRepository(memory.SeedLeagues())
		teamRepo = memory.NewTeamRepository(memory.SeedTeams())
		facilityRepo = memory.NewFacilityRepository(memory.SeedFacilities())
		matchRepo = memory.NewMatchRepository(nil)
	} else {
		db, err := openDatabase(cfg)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() { _ = db.Close() }

		seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := postgres.BootstrapSeed(seedCtx, db); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("bootstrap seed: %w", err)
		}

		leagueRepo = postgres.NewLeagueRepository(db)
		teamRepo = postgres.NewTeamRepository(db)
		facilityRepo = postgres.NewFacilityRepository(db)
		matchRepo = postgres.NewMatchRepository(db)
	}

	conflicts := usecase.NewConflictChecker(matchRepo)
	leagueSvc := usecase.NewLeagueService(leagueRepo, teamRepo, facilityRepo, matchRepo)
	fixtureSvc := usecase.NewFixtureService(leagueRepo, teamRepo, matchRepo, idgen.NewRandomGenerator(), logger)
	scheduleSvc := usecase.NewScheduleService(leagueRepo, facilityRepo, matchRepo, conflicts, logger)
	bulkSvc := usecase.NewBulkService(
		leagueRepo,
		teamRepo,
		facilityRepo,
		matchRepo,
		scheduleSvc,
		seasonWindowFromConfig(cfg),
		logger,
	)
	seasonSvc := usecase.NewSeasonService(leagueRepo, bulkSvc, cfg.AutoScheduleWorkers, logging.Default())

	handler := httpapi.NewHandler(leagueSvc, fixtureSvc, scheduleSvc, bulkSvc, seasonSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

// seasonWindowFromConfig falls back to the calendar year when no season
// bounds are configured; leagues carrying their own dates override either
// way.
func seasonWindowFromConfig(cfg config.Config) usecase.DefaultSeasonWindow {
	now := time.Now().UTC()
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)

	if cfg.SeasonStart != nil {
		start = *cfg.SeasonStart
	}
	if cfg.SeasonEnd != nil {
		end = *cfg.SeasonEnd
	}

	return usecase.DefaultSeasonWindow{Start: start, End: end}
}
