package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/coretech/stack-tracker/internal/service"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	customerService  *service.CustomerService
	gapReportService *service.GapReportService
	logger           *zap.Logger
}

func NewCustomerHandler(customerService *service.CustomerService, gapReportService *service.GapReportService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService:  customerService,
		gapReportService: gapReportService,
		logger:           logger,
	}
}

// List godoc
// @Summary List customers
// @Description Get all customers ordered by name, optionally filtered by a case-insensitive name search
// @Tags Customers
// @Produce json
// @Param search query string false "Search by name"
// @Success 200 {object} domain.ListResponse{data=[]domain.CustomerDTO}
// @Failure 500 {object} domain.APIError
// @Router /customers [get]
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	customers, err := h.customerService.List(r.Context(), search)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to list customers")
		return
	}

	respondJSON(w, http.StatusOK, domain.ListResponse{Data: customers, Total: len(customers)})
}

// GetByID godoc
// @Summary Get customer
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID" format(uuid)
// @Success 200 {object} domain.CustomerDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "customer")
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to get customer")
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

// Create godoc
// @Summary Create customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param customer body domain.CreateCustomerRequest true "Customer data"
// @Success 201 {object} domain.CustomerDTO
// @Failure 400 {object} domain.APIError
// @Router /customers [post]
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCustomerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	customer, err := h.customerService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to create customer")
		return
	}

	w.Header().Set("Location", "/api/v1/customers/"+customer.ID.String())
	respondJSON(w, http.StatusCreated, customer)
}

// BulkCreate godoc
// @Summary Create many customers
// @Description Inserts every customer or none. Errors name the offending row.
// @Tags Customers
// @Accept json
// @Produce json
// @Param customers body domain.BulkCreateCustomersRequest true "Customers"
// @Success 201 {object} domain.BulkCreateCustomersResponse
// @Failure 400 {object} domain.APIError
// @Router /customers/bulk [post]
func (h *CustomerHandler) BulkCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.BulkCreateCustomersRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.customerService.BulkCreate(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to create customers")
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// Update godoc
// @Summary Update customer
// @Description Replaces the editable fields. The PSA link is left untouched.
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID" format(uuid)
// @Param customer body domain.UpdateCustomerRequest true "Customer data"
// @Success 200 {object} domain.CustomerDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "customer")
	if !ok {
		return
	}

	var req domain.UpdateCustomerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	customer, err := h.customerService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to update customer")
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

// Delete godoc
// @Summary Delete customer
// @Tags Customers
// @Param id path string true "Customer ID" format(uuid)
// @Success 204
// @Failure 404 {object} domain.APIError
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "customer")
	if !ok {
		return
	}

	if err := h.customerService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err, "Failed to delete customer")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GapReport godoc
// @Summary Get gap report
// @Description Compares the customer's current tools with its baseline
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID" format(uuid)
// @Success 200 {object} domain.GapReportDTO
// @Failure 404 {object} domain.APIError
// @Router /customers/{id}/gap-report [get]
func (h *CustomerHandler) GapReport(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "customer")
	if !ok {
		return
	}

	report, err := h.gapReportService.Generate(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to generate gap report")
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// GapReportText godoc
// @Summary Download gap report as text
// @Tags Customers
// @Produce plain
// @Param id path string true "Customer ID" format(uuid)
// @Success 200 {string} string "Plain-text report"
// @Failure 404 {object} domain.APIError
// @Router /customers/{id}/gap-report.txt [get]
func (h *CustomerHandler) GapReportText(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "customer")
	if !ok {
		return
	}

	text, filename, err := h.gapReportService.RenderText(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to render gap report")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

// ExportGapReport godoc
// @Summary Store gap report
// @Description Renders the text report and writes it to file storage
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID" format(uuid)
// @Success 201 {object} domain.GapReportExportDTO
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /customers/{id}/gap-report/export [post]
func (h *CustomerHandler) ExportGapReport(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id", "customer")
	if !ok {
		return
	}

	export, err := h.gapReportService.Export(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "Failed to export gap report")
		return
	}

	w.Header().Set("Location", "/exports/"+export.StoragePath)
	respondJSON(w, http.StatusCreated, export)
}
