package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/raoldfi/tennis-app-sub000/internal/usecase"
)

type scheduleMatchRequest struct {
	FacilityID string `json:"facility_id" validate:"required"`
	Date       string `json:"date" validate:"required"`
	// NumLines overrides the match's expected line count; 0 keeps it.
	NumLines        int      `json:"num_lines" validate:"omitempty,gt=0"`
	TimeOption      string   `json:"time_option" validate:"omitempty,oneof=auto same custom"`
	SameTime        string   `json:"same_time"`
	CustomTimes     []string `json:"custom_times" validate:"omitempty,dive,required"`
	PartialSchedule bool     `json:"partial_schedule"`
}

func (h *Handler) ScheduleMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScheduleMatch")
	defer span.End()

	matchID := r.PathValue("matchID")

	var req scheduleMatchRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	timeOption := usecase.TimeOption(req.TimeOption)
	if req.TimeOption == "" {
		timeOption = usecase.TimeOptionAuto
	}

	m, err := h.scheduleService.Schedule(ctx, matchID, usecase.ScheduleMatchInput{
		FacilityID:      req.FacilityID,
		Date:            &date,
		NumLines:        req.NumLines,
		TimeOption:      timeOption,
		SameTime:        req.SameTime,
		CustomTimes:     req.CustomTimes,
		PartialSchedule: req.PartialSchedule,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "schedule match failed",
			"match_id", matchID,
			"facility_id", req.FacilityID,
			"date", req.Date,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) UnscheduleMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UnscheduleMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	m, err := h.scheduleService.Unschedule(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "unschedule match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	if err := h.scheduleService.Delete(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": matchID})
}
