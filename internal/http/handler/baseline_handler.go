package handler

import (
	"net/http"

	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/coretech/stack-tracker/internal/service"
	"go.uber.org/zap"
)

type BaselineHandler struct {
	baselineService *service.BaselineService
	logger          *zap.Logger
}

func NewBaselineHandler(baselineService *service.BaselineService, logger *zap.Logger) *BaselineHandler {
	return &BaselineHandler{
		baselineService: baselineService,
		logger:          logger,
	}
}

// List godoc
// @Summary List baselines
// @Tags Baselines
// @Produce json
// @Success 200 {object} domain.ListResponse{data=[]domain.BaselineDTO}
// @Failure 500 {object} domain.APIError
// @Router /baselines [get]
func (h *BaselineHandler) List(w http.ResponseWriter, r *http.Request) {
	baselines, err := h.baselineService.List(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to list baselines")
		return
	}

	respondJSON(w, http.StatusOK, domain.ListResponse{Data: baselines, Total: len(baselines)})
}

// GetByID godoc
// @Summary Get baseline
// @Tags Baselines
// @Produce json
// @Param id path string true "Baseline ID" format(uuid)
// @Success 200 {object} domain.BaselineDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /baselines/{id} [get]
func (h *BaselineHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "baseline")
	if !ok {
		return
	}

	baseline, err := h.baselineService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to get baseline")
		return
	}

	respondJSON(w, http.StatusOK, baseline)
}

// Create godoc
// @Summary Create baseline
// @Description A tool may not appear in both the required and the optional list
// @Tags Baselines
// @Accept json
// @Produce json
// @Param baseline body domain.CreateBaselineRequest true "Baseline data"
// @Success 201 {object} domain.BaselineDTO
// @Failure 400 {object} domain.APIError
// @Router /baselines [post]
func (h *BaselineHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateBaselineRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	baseline, err := h.baselineService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to create baseline")
		return
	}

	w.Header().Set("Location", "/api/v1/baselines/"+baseline.ID.String())
	respondJSON(w, http.StatusCreated, baseline)
}

// Update godoc
// @Summary Update baseline
// @Tags Baselines
// @Accept json
// @Produce json
// @Param id path string true "Baseline ID" format(uuid)
// @Param baseline body domain.UpdateBaselineRequest true "Baseline data"
// @Success 200 {object} domain.BaselineDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /baselines/{id} [put]
func (h *BaselineHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "baseline")
	if !ok {
		return
	}

	var req domain.UpdateBaselineRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	baseline, err := h.baselineService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to update baseline")
		return
	}

	respondJSON(w, http.StatusOK, baseline)
}

// Delete godoc
// @Summary Delete baseline
// @Description Fails with 409 while customers are still assigned to the baseline
// @Tags Baselines
// @Param id path string true "Baseline ID" format(uuid)
// @Success 204
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /baselines/{id} [delete]
func (h *BaselineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "baseline")
	if !ok {
		return
	}

	if err := h.baselineService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err, "Failed to delete baseline")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
