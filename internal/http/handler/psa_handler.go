package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/coretech/stack-tracker/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PSAHandler serves the ConnectWise integration endpoints
type PSAHandler struct {
	settingsService *service.SettingsService
	mappingService  *service.PSAMappingService
	syncService     *service.SyncService
	logger          *zap.Logger
}

func NewPSAHandler(
	settingsService *service.SettingsService,
	mappingService *service.PSAMappingService,
	syncService *service.SyncService,
	logger *zap.Logger,
) *PSAHandler {
	return &PSAHandler{
		settingsService: settingsService,
		mappingService:  mappingService,
		syncService:     syncService,
		logger:          logger,
	}
}

// GetSettings godoc
// @Summary Get PSA settings
// @Description The private key is never returned; hasPrivateKey reports whether one is stored
// @Tags PSA
// @Produce json
// @Success 200 {object} domain.SettingsDTO
// @Failure 404 {object} domain.APIError "Settings not configured"
// @Router /psa/settings [get]
func (h *PSAHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to get PSA settings")
		return
	}

	respondJSON(w, http.StatusOK, settings)
}

// SaveSettings godoc
// @Summary Save PSA settings
// @Description Omit privateKey or send null to keep the stored key
// @Tags PSA
// @Accept json
// @Produce json
// @Param settings body domain.SaveSettingsRequest true "Settings"
// @Success 200 {object} domain.SettingsDTO
// @Failure 400 {object} domain.APIError
// @Router /psa/settings [put]
func (h *PSAHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var req domain.SaveSettingsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	settings, err := h.settingsService.Save(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to save PSA settings")
		return
	}

	respondJSON(w, http.StatusOK, settings)
}

// TestConnection godoc
// @Summary Test PSA connection
// @Description Tests the supplied credentials, or the stored settings when the body is empty.
// @Description A supplied blank private key falls back to the stored one.
// @Tags PSA
// @Accept json
// @Produce json
// @Param credentials body domain.TestConnectionRequest false "Credentials"
// @Success 200 {object} domain.ConnectionResultDTO
// @Failure 400 {object} domain.APIError
// @Router /psa/test-connection [post]
func (h *PSAHandler) TestConnection(w http.ResponseWriter, r *http.Request) {
	var req domain.TestConnectionRequest
	if r.Body != nil {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if len(body) > 0 {
			if err := parseJSON(body, &req); err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid request body")
				return
			}
			if err := validate.Struct(req); err != nil {
				respondValidationError(w, err)
				return
			}
		}
	}

	result, err := h.settingsService.TestConnection(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to test PSA connection")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// ListCompanyTypes godoc
// @Summary List PSA company types
// @Tags PSA
// @Produce json
// @Success 200 {object} domain.ListResponse{data=[]domain.CompanyTypeDTO}
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /psa/company-types [get]
func (h *PSAHandler) ListCompanyTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.settingsService.ListCompanyTypes(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to list PSA company types")
		return
	}

	respondJSON(w, http.StatusOK, domain.ListResponse{Data: types, Total: len(types)})
}

// ListTypeMappings godoc
// @Summary List company type mappings
// @Tags PSA
// @Produce json
// @Success 200 {object} domain.ListResponse{data=[]domain.TypeMappingDTO}
// @Router /psa/type-mappings [get]
func (h *PSAHandler) ListTypeMappings(w http.ResponseWriter, r *http.Request) {
	mappings, err := h.mappingService.ListTypeMappings(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to list type mappings")
		return
	}

	respondJSON(w, http.StatusOK, domain.ListResponse{Data: mappings, Total: len(mappings)})
}

// CreateTypeMapping godoc
// @Summary Create company type mapping
// @Tags PSA
// @Accept json
// @Produce json
// @Param mapping body domain.CreateTypeMappingRequest true "Mapping"
// @Success 201 {object} domain.TypeMappingDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /psa/type-mappings [post]
func (h *PSAHandler) CreateTypeMapping(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTypeMappingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	mapping, err := h.mappingService.CreateTypeMapping(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to create type mapping")
		return
	}

	respondJSON(w, http.StatusCreated, mapping)
}

// UpdateTypeMapping godoc
// @Summary Update company type mapping
// @Tags PSA
// @Accept json
// @Produce json
// @Param id path string true "Mapping ID" format(uuid)
// @Param mapping body domain.UpdateTypeMappingRequest true "Mapping"
// @Success 200 {object} domain.TypeMappingDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /psa/type-mappings/{id} [put]
func (h *PSAHandler) UpdateTypeMapping(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "type mapping")
	if !ok {
		return
	}

	var req domain.UpdateTypeMappingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	mapping, err := h.mappingService.UpdateTypeMapping(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to update type mapping")
		return
	}

	respondJSON(w, http.StatusOK, mapping)
}

// DeleteTypeMapping godoc
// @Summary Delete company type mapping
// @Tags PSA
// @Param id path string true "Mapping ID" format(uuid)
// @Success 204
// @Failure 404 {object} domain.APIError
// @Router /psa/type-mappings/{id} [delete]
func (h *PSAHandler) DeleteTypeMapping(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "type mapping")
	if !ok {
		return
	}

	if err := h.mappingService.DeleteTypeMapping(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err, "Failed to delete type mapping")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListSkuMappings godoc
// @Summary List SKU mappings
// @Tags PSA
// @Produce json
// @Success 200 {object} domain.ListResponse{data=[]domain.SkuMappingDTO}
// @Router /psa/sku-mappings [get]
func (h *PSAHandler) ListSkuMappings(w http.ResponseWriter, r *http.Request) {
	mappings, err := h.mappingService.ListSkuMappings(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to list SKU mappings")
		return
	}

	respondJSON(w, http.StatusOK, domain.ListResponse{Data: mappings, Total: len(mappings)})
}

// CreateSkuMapping godoc
// @Summary Create SKU mapping
// @Tags PSA
// @Accept json
// @Produce json
// @Param mapping body domain.CreateSkuMappingRequest true "Mapping"
// @Success 201 {object} domain.SkuMappingDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /psa/sku-mappings [post]
func (h *PSAHandler) CreateSkuMapping(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSkuMappingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	mapping, err := h.mappingService.CreateSkuMapping(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to create SKU mapping")
		return
	}

	respondJSON(w, http.StatusCreated, mapping)
}

// UpdateSkuMapping godoc
// @Summary Update SKU mapping
// @Tags PSA
// @Accept json
// @Produce json
// @Param id path string true "Mapping ID" format(uuid)
// @Param mapping body domain.UpdateSkuMappingRequest true "Mapping"
// @Success 200 {object} domain.SkuMappingDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /psa/sku-mappings/{id} [put]
func (h *PSAHandler) UpdateSkuMapping(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "SKU mapping")
	if !ok {
		return
	}

	var req domain.UpdateSkuMappingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	mapping, err := h.mappingService.UpdateSkuMapping(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to update SKU mapping")
		return
	}

	respondJSON(w, http.StatusOK, mapping)
}

// DeleteSkuMapping godoc
// @Summary Delete SKU mapping
// @Tags PSA
// @Param id path string true "Mapping ID" format(uuid)
// @Success 204
// @Failure 404 {object} domain.APIError
// @Router /psa/sku-mappings/{id} [delete]
func (h *PSAHandler) DeleteSkuMapping(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "SKU mapping")
	if !ok {
		return
	}

	if err := h.mappingService.DeleteSkuMapping(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err, "Failed to delete SKU mapping")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// StartSync godoc
// @Summary Start a PSA sync
// @Description Starts a full reconciliation in the background. Poll /psa/sync/progress for its state.
// @Tags PSA
// @Produce json
// @Success 202 {object} domain.SyncProgress
// @Failure 409 {object} domain.APIError "A sync is already running"
// @Router /psa/sync [post]
func (h *PSAHandler) StartSync(w http.ResponseWriter, r *http.Request) {
	progress, err := h.syncService.Start(r.Context(), domain.SyncTriggerManual)
	if err != nil {
		if errors.Is(err, service.ErrSyncAlreadyRunning) {
			respondWithError(w, http.StatusConflict, "A sync is already running")
			return
		}
		handleServiceError(w, h.logger, err, "Failed to start PSA sync")
		return
	}

	respondJSON(w, http.StatusAccepted, progress)
}

// SyncProgress godoc
// @Summary Get sync progress
// @Description Progress of the running or most recent sync since the API started
// @Tags PSA
// @Produce json
// @Success 200 {object} domain.SyncProgress
// @Success 204 "No sync has run"
// @Router /psa/sync/progress [get]
func (h *PSAHandler) SyncProgress(w http.ResponseWriter, r *http.Request) {
	progress := h.syncService.Progress()
	if progress == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	respondJSON(w, http.StatusOK, progress)
}

// SyncLogs godoc
// @Summary List sync runs
// @Tags PSA
// @Produce json
// @Param limit query int false "Maximum entries (max 200)" default(20)
// @Success 200 {object} domain.ListResponse{data=[]domain.SyncRunDTO}
// @Failure 400 {object} domain.APIError
// @Router /psa/sync-logs [get]
func (h *PSAHandler) SyncLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	runs, err := h.syncService.ListRuns(r.Context(), limit)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to list sync runs")
		return
	}

	respondJSON(w, http.StatusOK, domain.ListResponse{Data: runs, Total: len(runs)})
}

// SyncCompany godoc
// @Summary Resync one PSA company
// @Description Runs the import pipeline for a single company without writing a sync log entry
// @Tags PSA
// @Produce json
// @Param companyId path int true "PSA company ID"
// @Success 200 {object} domain.CompanySyncResult
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 422 {object} domain.APIError "Integration not ready"
// @Router /psa/sync/companies/{companyId} [post]
func (h *PSAHandler) SyncCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := strconv.Atoi(chi.URLParam(r, "companyId"))
	if err != nil || companyID < 1 {
		respondWithError(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	result, err := h.syncService.SyncCompany(r.Context(), companyID)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to sync company")
		return
	}

	respondJSON(w, http.StatusOK, result)
}
