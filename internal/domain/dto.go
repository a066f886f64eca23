package domain

import (
	"github.com/google/uuid"
)

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// ListResponse wraps an unpaginated collection
type ListResponse struct {
	Data  interface{} `json:"data"`
	Total int         `json:"total"`
}

// ============================================================================
// Catalog
// ============================================================================

type CategoryDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   string    `json:"createdAt"` // ISO 8601
	UpdatedAt   string    `json:"updatedAt"` // ISO 8601
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	SortOrder   int    `json:"sortOrder" validate:"gte=0"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	SortOrder   int    `json:"sortOrder" validate:"gte=0"`
}

type ToolDTO struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Vendor     *string   `json:"vendor,omitempty"`
	CategoryID uuid.UUID `json:"categoryId"`
	Tags       []string  `json:"tags"`
}

type CreateToolRequest struct {
	Name       string    `json:"name" validate:"required,max=200"`
	Vendor     *string   `json:"vendor,omitempty" validate:"omitempty,max=200"`
	CategoryID uuid.UUID `json:"categoryId" validate:"required"`
	Tags       []string  `json:"tags" validate:"omitempty,dive,max=100"`
}

type UpdateToolRequest struct {
	Name       string    `json:"name" validate:"required,max=200"`
	Vendor     *string   `json:"vendor,omitempty" validate:"omitempty,max=200"`
	CategoryID uuid.UUID `json:"categoryId" validate:"required"`
	Tags       []string  `json:"tags" validate:"omitempty,dive,max=100"`
}

type BaselineDTO struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	RequiredToolIDs []string  `json:"requiredToolIds"`
	OptionalToolIDs []string  `json:"optionalToolIds"`
	CreatedAt       string    `json:"createdAt"`
	UpdatedAt       string    `json:"updatedAt"`
}

type CreateBaselineRequest struct {
	Name            string   `json:"name" validate:"required,max=200"`
	Description     string   `json:"description" validate:"max=2000"`
	RequiredToolIDs []string `json:"requiredToolIds" validate:"omitempty,dive,uuid"`
	OptionalToolIDs []string `json:"optionalToolIds" validate:"omitempty,dive,uuid"`
}

type UpdateBaselineRequest struct {
	Name            string   `json:"name" validate:"required,max=200"`
	Description     string   `json:"description" validate:"max=2000"`
	RequiredToolIDs []string `json:"requiredToolIds" validate:"omitempty,dive,uuid"`
	OptionalToolIDs []string `json:"optionalToolIds" validate:"omitempty,dive,uuid"`
}

// ============================================================================
// Customers
// ============================================================================

type CustomerDTO struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Address            *string   `json:"address"`
	PrimaryContactName *string   `json:"primaryContactName"`
	CustomerPhone      *string   `json:"customerPhone"`
	ContactPhone       *string   `json:"contactPhone"`
	ContactEmail       *string   `json:"contactEmail"`
	ServiceTiers       []string  `json:"serviceTiers"`
	CurrentToolIDs     []string  `json:"currentToolIds"`
	BaselineID         uuid.UUID `json:"baselineId"`
	ExternalCompanyID  *int      `json:"externalCompanyId"`
	LastExternalSyncAt *string   `json:"lastExternalSyncAt"`
	CreatedAt          string    `json:"createdAt"`
	UpdatedAt          string    `json:"updatedAt"`
}

type CreateCustomerRequest struct {
	Name               string    `json:"name" validate:"required,max=300"`
	Address            *string   `json:"address,omitempty" validate:"omitempty,max=1000"`
	PrimaryContactName *string   `json:"primaryContactName,omitempty" validate:"omitempty,max=300"`
	CustomerPhone      *string   `json:"customerPhone,omitempty" validate:"omitempty,max=100"`
	ContactPhone       *string   `json:"contactPhone,omitempty" validate:"omitempty,max=100"`
	ContactEmail       *string   `json:"contactEmail,omitempty" validate:"omitempty,email,max=300"`
	ServiceTiers       []string  `json:"serviceTiers" validate:"required,min=1,dive,oneof=Essentials MSP Break-Fix"`
	CurrentToolIDs     []string  `json:"currentToolIds" validate:"omitempty,dive,uuid"`
	BaselineID         uuid.UUID `json:"baselineId" validate:"required"`
}

type UpdateCustomerRequest struct {
	Name               string    `json:"name" validate:"required,max=300"`
	Address            *string   `json:"address,omitempty" validate:"omitempty,max=1000"`
	PrimaryContactName *string   `json:"primaryContactName,omitempty" validate:"omitempty,max=300"`
	CustomerPhone      *string   `json:"customerPhone,omitempty" validate:"omitempty,max=100"`
	ContactPhone       *string   `json:"contactPhone,omitempty" validate:"omitempty,max=100"`
	ContactEmail       *string   `json:"contactEmail,omitempty" validate:"omitempty,email,max=300"`
	ServiceTiers       []string  `json:"serviceTiers" validate:"required,min=1,dive,oneof=Essentials MSP Break-Fix"`
	CurrentToolIDs     []string  `json:"currentToolIds" validate:"omitempty,dive,uuid"`
	BaselineID         uuid.UUID `json:"baselineId" validate:"required"`
}

// BulkCreateCustomersRequest is the output contract of the spreadsheet importer
type BulkCreateCustomersRequest struct {
	Customers []CreateCustomerRequest `json:"customers" validate:"required,min=1,max=1000,dive"`
}

type BulkCreateCustomersResponse struct {
	Created   int           `json:"created"`
	Customers []CustomerDTO `json:"customers"`
}

// ============================================================================
// Gap report
// ============================================================================

type CoverageDTO struct {
	Covered int     `json:"covered"`
	Total   int     `json:"total"`
	Pct     float64 `json:"pct"`
	// Rounded is Pct rounded to the nearest whole percent
	Rounded int `json:"rounded"`
}

type CategoryCoverageDTO struct {
	CategoryID   uuid.UUID `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	Covered      int       `json:"covered"`
	Total        int       `json:"total"`
	Pct          float64   `json:"pct"`
}

type GapCoverageDTO struct {
	// Required counts required tools only; this is the figure the text export prints
	Required CoverageDTO `json:"required"`
	// Overall folds optional tools into the denominator
	Overall    CoverageDTO           `json:"overall"`
	ByCategory []CategoryCoverageDTO `json:"byCategory"`
}

type GapReportDTO struct {
	Customer                CustomerDTO    `json:"customer"`
	Baseline                BaselineDTO    `json:"baseline"`
	Coverage                GapCoverageDTO `json:"coverage"`
	MissingTools            []ToolDTO      `json:"missingTools"`
	OptionalRecommendations []ToolDTO      `json:"optionalRecommendations"`
	TotalRequired           int            `json:"totalRequired"`
	TotalOptional           int            `json:"totalOptional"`
	MissingRequiredCount    int            `json:"missingRequiredCount"`
	MissingOptionalCount    int            `json:"missingOptionalCount"`
	GeneratedAt             string         `json:"generatedAt"`
}

type GapReportExportDTO struct {
	Filename    string `json:"filename"`
	StoragePath string `json:"storagePath"`
	Size        int64  `json:"size"`
}

// ============================================================================
// PSA integration
// ============================================================================

type SettingsDTO struct {
	ID                uuid.UUID   `json:"id"`
	CompanyID         string      `json:"companyId"`
	PublicKey         string      `json:"publicKey"`
	HasPrivateKey     bool        `json:"hasPrivateKey"`
	SiteURL           string      `json:"siteUrl"`
	ClientID          string      `json:"clientId"`
	Enabled           bool        `json:"enabled"`
	DefaultBaselineID *uuid.UUID  `json:"defaultBaselineId"`
	LastSyncAt        *string     `json:"lastSyncAt"`
	LastSyncStatus    *SyncStatus `json:"lastSyncStatus"`
	LastSyncMessage   *string     `json:"lastSyncMessage"`
}

// SaveSettingsRequest replaces the PSA settings. PrivateKey omitted or null keeps the stored key.
type SaveSettingsRequest struct {
	CompanyID         string       `json:"companyId" validate:"required,max=200"`
	PublicKey         string       `json:"publicKey" validate:"required,max=200"`
	PrivateKey        SecretUpdate `json:"privateKey" swaggertype:"string"`
	SiteURL           string       `json:"siteUrl" validate:"required,max=500"`
	ClientID          string       `json:"clientId" validate:"required,max=200"`
	Enabled           bool         `json:"enabled"`
	DefaultBaselineID *uuid.UUID   `json:"defaultBaselineId,omitempty"`
}

// TestConnectionRequest checks credentials before they are saved. An empty body tests the stored settings.
type TestConnectionRequest struct {
	CompanyID  string       `json:"companyId" validate:"omitempty,max=200"`
	PublicKey  string       `json:"publicKey" validate:"omitempty,max=200"`
	PrivateKey SecretUpdate `json:"privateKey" swaggertype:"string"`
	SiteURL    string       `json:"siteUrl" validate:"omitempty,max=500"`
	ClientID   string       `json:"clientId" validate:"omitempty,max=200"`
}

// IsEmpty reports whether no credential field was supplied
func (r *TestConnectionRequest) IsEmpty() bool {
	return r.CompanyID == "" && r.PublicKey == "" && r.SiteURL == "" && r.ClientID == "" && !r.PrivateKey.Replaces()
}

type ConnectionResultDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CompanyTypeDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type TypeMappingDTO struct {
	ID               uuid.UUID  `json:"id"`
	ExternalTypeName string     `json:"externalTypeName"`
	BaselineID       *uuid.UUID `json:"baselineId"`
	ServiceTiers     []string   `json:"serviceTiers"`
	ShouldImport     bool       `json:"shouldImport"`
}

type CreateTypeMappingRequest struct {
	ExternalTypeName string     `json:"externalTypeName" validate:"required,max=200"`
	BaselineID       *uuid.UUID `json:"baselineId,omitempty"`
	ServiceTiers     []string   `json:"serviceTiers" validate:"omitempty,dive,oneof=Essentials MSP Break-Fix"`
	ShouldImport     bool       `json:"shouldImport"`
}

type UpdateTypeMappingRequest struct {
	ExternalTypeName string     `json:"externalTypeName" validate:"required,max=200"`
	BaselineID       *uuid.UUID `json:"baselineId,omitempty"`
	ServiceTiers     []string   `json:"serviceTiers" validate:"omitempty,dive,oneof=Essentials MSP Break-Fix"`
	ShouldImport     bool       `json:"shouldImport"`
}

type SkuMappingDTO struct {
	ID          uuid.UUID  `json:"id"`
	SKU         string     `json:"sku"`
	Description *string    `json:"description"`
	ToolID      *uuid.UUID `json:"toolId"`
}

type CreateSkuMappingRequest struct {
	SKU         string     `json:"sku" validate:"required,max=200"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	ToolID      *uuid.UUID `json:"toolId,omitempty"`
}

type UpdateSkuMappingRequest struct {
	SKU         string     `json:"sku" validate:"required,max=200"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	ToolID      *uuid.UUID `json:"toolId,omitempty"`
}

type SyncRunDTO struct {
	ID                  uuid.UUID     `json:"id"`
	StartedAt           string        `json:"startedAt"`
	CompletedAt         *string       `json:"completedAt"`
	Status              SyncRunStatus `json:"status"`
	Trigger             string        `json:"trigger"`
	CompaniesFound      int           `json:"companiesFound"`
	CompaniesImported   int           `json:"companiesImported"`
	CompaniesUpdated    int           `json:"companiesUpdated"`
	CompaniesSkipped    int           `json:"companiesSkipped"`
	AgreementsProcessed int           `json:"agreementsProcessed"`
	ToolsActivated      int           `json:"toolsActivated"`
	DurationMs          int64         `json:"durationMs"`
	Errors              []string      `json:"errors"`
	Warnings            []SyncWarning `json:"warnings"`
}
