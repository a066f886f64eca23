package handler

import (
	"net/http"

	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/coretech/stack-tracker/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ToolHandler struct {
	toolService *service.ToolService
	logger      *zap.Logger
}

func NewToolHandler(toolService *service.ToolService, logger *zap.Logger) *ToolHandler {
	return &ToolHandler{
		toolService: toolService,
		logger:      logger,
	}
}

// List godoc
// @Summary List tools
// @Description Get the tool catalog, optionally limited to one category
// @Tags Tools
// @Produce json
// @Param categoryId query string false "Filter by category" format(uuid)
// @Success 200 {object} domain.ListResponse{data=[]domain.ToolDTO}
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /tools [get]
func (h *ToolHandler) List(w http.ResponseWriter, r *http.Request) {
	var categoryID *uuid.UUID
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid category ID format")
			return
		}
		categoryID = &id
	}

	tools, err := h.toolService.List(r.Context(), categoryID)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to list tools")
		return
	}

	respondJSON(w, http.StatusOK, domain.ListResponse{Data: tools, Total: len(tools)})
}

// GetByID godoc
// @Summary Get tool
// @Tags Tools
// @Produce json
// @Param id path string true "Tool ID" format(uuid)
// @Success 200 {object} domain.ToolDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /tools/{id} [get]
func (h *ToolHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "tool")
	if !ok {
		return
	}

	tool, err := h.toolService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to get tool")
		return
	}

	respondJSON(w, http.StatusOK, tool)
}

// Create godoc
// @Summary Create tool
// @Tags Tools
// @Accept json
// @Produce json
// @Param tool body domain.CreateToolRequest true "Tool data"
// @Success 201 {object} domain.ToolDTO
// @Failure 400 {object} domain.APIError
// @Router /tools [post]
func (h *ToolHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateToolRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tool, err := h.toolService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to create tool")
		return
	}

	w.Header().Set("Location", "/api/v1/tools/"+tool.ID.String())
	respondJSON(w, http.StatusCreated, tool)
}

// Update godoc
// @Summary Update tool
// @Tags Tools
// @Accept json
// @Produce json
// @Param id path string true "Tool ID" format(uuid)
// @Param tool body domain.UpdateToolRequest true "Tool data"
// @Success 200 {object} domain.ToolDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /tools/{id} [put]
func (h *ToolHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "tool")
	if !ok {
		return
	}

	var req domain.UpdateToolRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tool, err := h.toolService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to update tool")
		return
	}

	respondJSON(w, http.StatusOK, tool)
}

// Delete godoc
// @Summary Delete tool
// @Tags Tools
// @Param id path string true "Tool ID" format(uuid)
// @Success 204
// @Failure 404 {object} domain.APIError
// @Router /tools/{id} [delete]
func (h *ToolHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "tool")
	if !ok {
		return
	}

	if err := h.toolService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err, "Failed to delete tool")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
