package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/raoldfi/tennis-app-sub000/internal/domain/league"
	"github.com/raoldfi/tennis-app-sub000/internal/platform/logging"
)

const (
	seasonStatusSuccess = "success"
	seasonStatusSkipped = "skipped"
	seasonStatusFailed  = "failed"

	defaultSeasonWorkers = 4
)

// SeasonAutoScheduleInput selects which leagues a season-wide auto-schedule
// covers. Empty LeagueIDs means every league.
type SeasonAutoScheduleInput struct {
	LeagueIDs []string
	Workers   int
}

// SeasonTaskResult is the outcome of auto-scheduling one league.
type SeasonTaskResult struct {
	LeagueID   string
	Status     string
	Message    string
	Succeeded  int
	Skipped    int
	Failed     int
	DurationMs int64
}

// SeasonResult aggregates the per-league tasks of one season run.
type SeasonResult struct {
	Tasks        []SeasonTaskResult
	SuccessCount int
	SkippedCount int
	FailedCount  int
}

// SeasonService fans bulk auto-scheduling out across leagues on a worker
// pool. League IDs are deduplicated before submission, so no two workers
// ever touch the same league; within each league the bulk run stays
// strictly sequential.
type SeasonService struct {
	leagueRepo     league.Repository
	bulk           *BulkService
	defaultWorkers int
	logger         *logging.Logger
}

func NewSeasonService(leagueRepo league.Repository, bulk *BulkService, defaultWorkers int, logger *logging.Logger) *SeasonService {
	if defaultWorkers <= 0 {
		defaultWorkers = defaultSeasonWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &SeasonService{
		leagueRepo:     leagueRepo,
		bulk:           bulk,
		defaultWorkers: defaultWorkers,
		logger:         logger,
	}
}

// AutoSchedule runs bulk auto-schedule for every selected league and
// returns one task row per league, ordered by league id.
func (s *SeasonService) AutoSchedule(ctx context.Context, input SeasonAutoScheduleInput) (SeasonResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.AutoSchedule")
	defer span.End()

	leagueIDs, err := s.resolveLeagueIDs(ctx, input.LeagueIDs)
	if err != nil {
		return SeasonResult{}, err
	}
	if len(leagueIDs) == 0 {
		return SeasonResult{}, nil
	}

	workers := input.Workers
	if workers <= 0 {
		workers = s.defaultWorkers
	}
	if workers > len(leagueIDs) {
		workers = len(leagueIDs)
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return SeasonResult{}, errors.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	results := make(chan SeasonTaskResult, len(leagueIDs))

	var successCount atomic.Int32
	var skippedCount atomic.Int32
	var failedCount atomic.Int32

	var workersWG sync.WaitGroup
	for _, leagueID := range leagueIDs {
		leagueID := leagueID
		workersWG.Add(1)
		if err := pool.Submit(func() {
			defer workersWG.Done()

			start := time.Now()
			row := s.autoScheduleLeague(ctx, leagueID)
			row.DurationMs = time.Since(start).Milliseconds()

			switch row.Status {
			case seasonStatusSuccess:
				successCount.Add(1)
			case seasonStatusSkipped:
				skippedCount.Add(1)
			default:
				failedCount.Add(1)
			}

			results <- row
		}); err != nil {
			workersWG.Done()
			return SeasonResult{}, errors.Wrap(err, "submit league to worker pool")
		}
	}

	workersWG.Wait()
	close(results)

	result := SeasonResult{Tasks: make([]SeasonTaskResult, 0, len(leagueIDs))}
	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].LeagueID < result.Tasks[j].LeagueID
	})

	result.SuccessCount = int(successCount.Load())
	result.SkippedCount = int(skippedCount.Load())
	result.FailedCount = int(failedCount.Load())

	s.logger.InfoContext(ctx, "season auto-schedule finished",
		"leagues", len(result.Tasks),
		"success", result.SuccessCount,
		"skipped", result.SkippedCount,
		"failed", result.FailedCount,
	)

	return result, nil
}

func (s *SeasonService) autoScheduleLeague(ctx context.Context, leagueID string) SeasonTaskResult {
	row := SeasonTaskResult{LeagueID: leagueID}

	bulkResult, err := s.bulk.Run(ctx, BulkOperationAutoSchedule, BulkScope{
		Kind:     BulkScopeLeague,
		LeagueID: leagueID,
	})
	if err != nil {
		row.Status = seasonStatusFailed
		row.Message = err.Error()
		return row
	}

	row.Succeeded = bulkResult.SucceededCount()
	row.Skipped = bulkResult.SkippedCount()
	row.Failed = bulkResult.FailedCount()

	switch {
	case row.Failed > 0:
		row.Status = seasonStatusFailed
		row.Message = fmt.Sprintf("%d match(es) could not be placed", row.Failed)
	case row.Succeeded == 0:
		row.Status = seasonStatusSkipped
		row.Message = "no unscheduled matches"
	default:
		row.Status = seasonStatusSuccess
	}

	return row
}

func (s *SeasonService) resolveLeagueIDs(ctx context.Context, requested []string) ([]string, error) {
	if len(requested) == 0 {
		leagues, err := s.leagueRepo.List(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "list leagues")
		}
		ids := make([]string, 0, len(leagues))
		for _, lg := range leagues {
			ids = append(ids, lg.ID)
		}
		return ids, nil
	}

	seen := make(map[string]struct{}, len(requested))
	ids := make([]string, 0, len(requested))
	for _, raw := range requested {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: league ids are required", ErrInvalidInput)
	}

	sort.Strings(ids)
	return ids, nil
}
