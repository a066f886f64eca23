package handler

import (
	"net/http"

	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/coretech/stack-tracker/internal/service"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	logger          *zap.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// List godoc
// @Summary List categories
// @Description Get all tool categories ordered by sort order
// @Tags Categories
// @Produce json
// @Success 200 {object} domain.ListResponse{data=[]domain.CategoryDTO}
// @Failure 500 {object} domain.APIError
// @Router /categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.List(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to list categories")
		return
	}

	respondJSON(w, http.StatusOK, domain.ListResponse{Data: categories, Total: len(categories)})
}

// GetByID godoc
// @Summary Get category
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID" format(uuid)
// @Success 200 {object} domain.CategoryDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "category")
	if !ok {
		return
	}

	category, err := h.categoryService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to get category")
		return
	}

	respondJSON(w, http.StatusOK, category)
}

// Create godoc
// @Summary Create category
// @Tags Categories
// @Accept json
// @Produce json
// @Param category body domain.CreateCategoryRequest true "Category data"
// @Success 201 {object} domain.CategoryDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /categories [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	category, err := h.categoryService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to create category")
		return
	}

	w.Header().Set("Location", "/api/v1/categories/"+category.ID.String())
	respondJSON(w, http.StatusCreated, category)
}

// Update godoc
// @Summary Update category
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID" format(uuid)
// @Param category body domain.UpdateCategoryRequest true "Category data"
// @Success 200 {object} domain.CategoryDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "category")
	if !ok {
		return
	}

	var req domain.UpdateCategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	category, err := h.categoryService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to update category")
		return
	}

	respondJSON(w, http.StatusOK, category)
}

// Delete godoc
// @Summary Delete category
// @Description Deletes the category and every tool in it
// @Tags Categories
// @Param id path string true "Category ID" format(uuid)
// @Success 204
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "category")
	if !ok {
		return
	}

	if err := h.categoryService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err, "Failed to delete category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
