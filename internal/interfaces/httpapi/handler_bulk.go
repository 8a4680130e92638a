package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/raoldfi/tennis-app-sub000/internal/usecase"
)

type bulkScopeRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=all league filtered"`
	LeagueID string `json:"league_id"`
	// Status narrows a filtered scope to matches in one derived status.
	Status string `json:"status" validate:"omitempty,oneof=unscheduled scheduled partially_scheduled"`
}

type bulkOperationRequest struct {
	Operation string           `json:"operation" validate:"required,oneof=auto_schedule unschedule delete"`
	Scope     bulkScopeRequest `json:"scope" validate:"required"`
}

type bulkDetailDTO struct {
	MatchID    string `json:"match_id"`
	Outcome    string `json:"outcome"`
	Detail     string `json:"detail,omitempty"`
	FacilityID string `json:"facility_id,omitempty"`
	Date       string `json:"date,omitempty"`
}

type bulkResultDTO struct {
	Operation      string          `json:"operation"`
	SucceededCount int             `json:"succeeded_count"`
	SkippedCount   int             `json:"skipped_count"`
	FailedCount    int             `json:"failed_count"`
	HasWarnings    bool            `json:"has_warnings"`
	Details        []bulkDetailDTO `json:"details"`
}

func (h *Handler) RunBulkOperation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunBulkOperation")
	defer span.End()

	var req bulkOperationRequest
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

	scope := usecase.BulkScope{
		Kind:     usecase.BulkScopeKind(req.Scope.Kind),
		LeagueID: req.Scope.LeagueID,
	}
	if scope.Kind == usecase.BulkScopeFiltered {
		if req.Scope.Status == "" {
			writeError(ctx, w, fmt.Errorf("%w: status is required for filtered scope", usecase.ErrInvalidInput))
			return
		}
		predicate, err := matchStatusPredicate(req.Scope.Status)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		scope.Filter = predicate
	}

	result, err := h.bulkService.Run(ctx, usecase.BulkOperation(req.Operation), scope)
	if err != nil {
		h.logger.WarnContext(ctx, "bulk operation failed",
			"operation", req.Operation,
			"scope_kind", req.Scope.Kind,
			"league_id", req.Scope.LeagueID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bulkResultToDTO(result))
}

func bulkResultToDTO(result usecase.BulkResult) bulkResultDTO {
	details := make([]bulkDetailDTO, 0, len(result.Details))
	for _, d := range result.Details {
		details = append(details, bulkDetailDTO{
			MatchID:    d.MatchID,
			Outcome:    string(d.Outcome),
			Detail:     d.Detail,
			FacilityID: d.FacilityID,
			Date:       formatDate(d.Date),
		})
	}

	return bulkResultDTO{
		Operation:      string(result.Operation),
		SucceededCount: result.SucceededCount(),
		SkippedCount:   result.SkippedCount(),
		FailedCount:    result.FailedCount(),
		HasWarnings:    result.HasWarnings(),
		Details:        details,
	}
}
