package service

import (
	"errors"
	"strings"
)

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict (e.g., duplicate)
	ErrConflict = errors.New("resource conflict")

	// ErrCategoryNotFound is returned when a category is not found
	ErrCategoryNotFound = errors.New("category not found")

	// ErrToolNotFound is returned when a tool is not found
	ErrToolNotFound = errors.New("tool not found")

	// ErrBaselineNotFound is returned when a baseline is not found
	ErrBaselineNotFound = errors.New("baseline not found")

	// ErrCustomerNotFound is returned when a customer is not found
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrTypeMappingNotFound is returned when a company type mapping is not found
	ErrTypeMappingNotFound = errors.New("type mapping not found")

	// ErrSkuMappingNotFound is returned when a SKU mapping is not found
	ErrSkuMappingNotFound = errors.New("sku mapping not found")

	// ErrBaselineInUse is returned when deleting a baseline that customers still reference
	ErrBaselineInUse = errors.New("baseline is assigned to one or more customers")

	// ErrBaselineToolOverlap is returned when a tool is both required and optional
	ErrBaselineToolOverlap = errors.New("a tool cannot be both required and optional")

	// ErrSettingsNotConfigured is returned when the PSA settings row does not exist yet
	ErrSettingsNotConfigured = errors.New("ConnectWise settings not configured")

	// ErrPrivateKeyRequired is returned when the first settings save carries no private key
	ErrPrivateKeyRequired = errors.New("private key is required")

	// ErrSyncAlreadyRunning is returned when a sync is requested while another one is in flight
	ErrSyncAlreadyRunning = errors.New("sync already running")

	// ErrIntegrationDisabled is returned when the PSA settings exist but are switched off
	ErrIntegrationDisabled = errors.New("ConnectWise integration is not enabled")

	// ErrNoImportableTypes is returned when no type mapping is flagged for import
	ErrNoImportableTypes = errors.New("No company types configured for import. Please set up type mappings first.")

	// ErrNoBaselines is returned when a sync has no baseline to assign customers to
	ErrNoBaselines = errors.New("No baselines configured. Please create a baseline first.")

	// ErrSyncAborted wraps the reason a single-company sync could not start
	ErrSyncAborted = errors.New("sync aborted")
)

// isUniqueViolation matches unique constraint failures from PostgreSQL and SQLite
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
