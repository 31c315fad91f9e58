package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ecoaction/ecopoints-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// ActionHandler handles eco-action HTTP requests
type ActionHandler struct {
	actions *service.ActionService
	logger  *slog.Logger
}

// NewActionHandler creates a new eco-action handler
func NewActionHandler(actions *service.ActionService, logger *slog.Logger) *ActionHandler {
	return &ActionHandler{
		actions: actions,
		logger:  logger,
	}
}

// ListSteps handles GET /api/action/steps
func (h *ActionHandler) ListSteps(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.actions.Steps())
}

// ListRewards handles GET /api/action/rewards
func (h *ActionHandler) ListRewards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.actions.Rewards())
}

// CompleteStep handles POST /api/action/steps/{stepId}/complete
// Credits the step reward:
// - 200: step result with the new balance
// - 400: invalid step ID format
// - 404: unknown step
func (h *ActionHandler) CompleteStep(w http.ResponseWriter, r *http.Request) {
	stepID, err := strconv.Atoi(chi.URLParam(r, "stepId"))
	if err != nil {
		h.logger.Warn("invalid step ID format", "stepId", chi.URLParam(r, "stepId"), "error", err)
		writeError(w, http.StatusBadRequest, "Invalid step ID")
		return
	}

	result, err := h.actions.CompleteStep(r.Context(), stepID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownStep) {
			writeError(w, http.StatusNotFound, "Step not found")
			return
		}

		h.logger.Error("failed to complete step", "stepId", stepID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.logger.Info("step completed", "stepId", stepID, "balance", result.Balance)
	writeJSON(w, http.StatusOK, result)
}

// UploadPhoto handles POST /api/action/photos
// Records a waste-sorting photo upload and credits the photo reward
func (h *ActionHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.actions.UploadPhoto(r.Context())
	if err != nil {
		h.logger.Error("failed to record photo upload", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.logger.Info("photo upload recorded", "upload_id", receipt.ID, "balance", receipt.Balance)
	writeJSON(w, http.StatusOK, receipt)
}
