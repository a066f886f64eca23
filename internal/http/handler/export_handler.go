package handler

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/coretech/stack-tracker/internal/storage"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ExportHandler streams stored gap report exports back to clients
type ExportHandler struct {
	storage storage.Storage
	logger  *zap.Logger
}

func NewExportHandler(store storage.Storage, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{
		storage: store,
		logger:  logger,
	}
}

// Download godoc
// @Summary Download a stored export
// @Tags Exports
// @Produce plain
// @Param path path string true "Storage path returned by the export endpoint"
// @Success 200 {string} string "File content"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /exports/{path} [get]
func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		respondWithError(w, http.StatusNotFound, "File storage is not configured")
		return
	}

	storagePath := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if storagePath == "" {
		respondWithError(w, http.StatusBadRequest, "Missing storage path")
		return
	}

	reader, err := h.storage.Download(r.Context(), storagePath)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidPath):
			respondWithError(w, http.StatusBadRequest, "Invalid storage path")
		case errors.Is(err, storage.ErrObjectNotFound):
			respondWithError(w, http.StatusNotFound, "Export not found")
		default:
			h.logger.Error("failed to download export", zap.String("path", storagePath), zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to download export")
		}
		return
	}
	defer reader.Close()

	filename := path.Base(storagePath)
	contentType := mime.TypeByExtension(path.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Warn("export download interrupted", zap.String("path", storagePath), zap.Error(err))
	}
}
