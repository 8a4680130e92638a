package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/raoldfi/tennis-app-sub000/internal/usecase"
)

type autoScheduleJobRequest struct {
	LeagueIDs []string `json:"league_ids" validate:"omitempty,dive,required"`
	Workers   int      `json:"workers" validate:"omitempty,gt=0"`
}

type seasonTaskDTO struct {
	LeagueID   string `json:"league_id"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	Succeeded  int    `json:"succeeded"`
	Skipped    int    `json:"skipped"`
	Failed     int    `json:"failed"`
	DurationMs int64  `json:"duration_ms"`
}

type seasonResultDTO struct {
	Tasks        []seasonTaskDTO `json:"tasks"`
	SuccessCount int             `json:"success_count"`
	SkippedCount int             `json:"skipped_count"`
	FailedCount  int             `json:"failed_count"`
}

func (h *Handler) RunAutoScheduleJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAutoScheduleJob")
	defer span.End()

	req, err := decodeAutoScheduleJobRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.seasonService.AutoSchedule(ctx, usecase.SeasonAutoScheduleInput{
		LeagueIDs: req.LeagueIDs,
		Workers:   req.Workers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "auto-schedule job failed", "league_ids", req.LeagueIDs, "error", err)
		writeError(ctx, w, err)
		return
	}

	tasks := make([]seasonTaskDTO, 0, len(result.Tasks))
	for _, task := range result.Tasks {
		tasks = append(tasks, seasonTaskDTO{
			LeagueID:   task.LeagueID,
			Status:     task.Status,
			Message:    task.Message,
			Succeeded:  task.Succeeded,
			Skipped:    task.Skipped,
			Failed:     task.Failed,
			DurationMs: task.DurationMs,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, seasonResultDTO{
		Tasks:        tasks,
		SuccessCount: result.SuccessCount,
		SkippedCount: result.SkippedCount,
		FailedCount:  result.FailedCount,
	})
}

// decodeAutoScheduleJobRequest tolerates an empty body: the scheduler may
// trigger a full-season run with no payload at all.
func decodeAutoScheduleJobRequest(r *http.Request) (autoScheduleJobRequest, error) {
	var req autoScheduleJobRequest

	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return autoScheduleJobRequest{}, nil
		}
		return autoScheduleJobRequest{}, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return req, nil
}
