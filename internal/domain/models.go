package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// BeforeCreate assigns an id when the caller did not provide one
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// ServiceTier describes a customer's support contract level
type ServiceTier string

const (
	ServiceTierEssentials ServiceTier = "Essentials"
	ServiceTierMSP        ServiceTier = "MSP"
	ServiceTierBreakFix   ServiceTier = "Break-Fix"
)

// DefaultServiceTiers is applied when a type mapping carries no tiers
var DefaultServiceTiers = StringList{string(ServiceTierEssentials)}

// IsValidServiceTier reports whether s is one of the known tiers
func IsValidServiceTier(s string) bool {
	switch ServiceTier(s) {
	case ServiceTierEssentials, ServiceTierMSP, ServiceTierBreakFix:
		return true
	}
	return false
}

// Category groups tools for display and coverage rollups
type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text;not null;default:''"`
	SortOrder   int    `gorm:"not null;default:0;index"`
}

// Tool is a piece of software a customer may run
type Tool struct {
	BaseModel
	Name       string     `gorm:"type:varchar(200);not null"`
	Vendor     *string    `gorm:"type:varchar(200)"`
	CategoryID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Tags       StringList `gorm:"not null"`
}

// Baseline is a named target set of required and optional tools
type Baseline struct {
	BaseModel
	Name            string     `gorm:"type:varchar(200);not null"`
	Description     string     `gorm:"type:text;not null;default:''"`
	RequiredToolIDs StringList `gorm:"column:required_tool_ids;not null"`
	OptionalToolIDs StringList `gorm:"column:optional_tool_ids;not null"`
}

// Customer is a managed-services customer and the tools it currently runs
type Customer struct {
	BaseModel
	Name               string     `gorm:"type:varchar(300);not null;index"`
	Address            *string    `gorm:"type:text"`
	PrimaryContactName *string    `gorm:"type:varchar(300)"`
	CustomerPhone      *string    `gorm:"type:varchar(100)"`
	ContactPhone       *string    `gorm:"type:varchar(100)"`
	ContactEmail       *string    `gorm:"type:varchar(300)"`
	ServiceTiers       StringList `gorm:"not null"`
	CurrentToolIDs     StringList `gorm:"column:current_tool_ids;not null"`
	BaselineID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	ExternalCompanyID  *int       `gorm:"uniqueIndex"`
	LastExternalSyncAt *time.Time
}

// TypeMapping decides whether and how a PSA company type becomes a customer
type TypeMapping struct {
	BaseModel
	ExternalTypeName string     `gorm:"type:varchar(200);not null;uniqueIndex"`
	BaselineID       *uuid.UUID `gorm:"type:uuid"`
	ServiceTiers     StringList `gorm:"not null"`
	ShouldImport     bool       `gorm:"not null;default:false"`
}

func (TypeMapping) TableName() string {
	return "psa_type_mappings"
}

// SkuMapping links a PSA product identifier to a tool
type SkuMapping struct {
	BaseModel
	SKU         string     `gorm:"column:sku;type:varchar(200);not null;uniqueIndex"`
	Description *string    `gorm:"type:text"`
	ToolID      *uuid.UUID `gorm:"type:uuid"`
}

func (SkuMapping) TableName() string {
	return "psa_sku_mappings"
}

// SyncRunStatus is the persisted outcome of a reconciliation run
type SyncRunStatus string

const (
	SyncRunStatusCompleted           SyncRunStatus = "completed"
	SyncRunStatusCompletedWithErrors SyncRunStatus = "completed_with_errors"
	SyncRunStatusError               SyncRunStatus = "error"
)

// SyncRun is the append-only log entry written once per reconciliation run
type SyncRun struct {
	ID                  uuid.UUID     `gorm:"type:uuid;primaryKey"`
	StartedAt           time.Time     `gorm:"not null;index"`
	CompletedAt         *time.Time
	Status              SyncRunStatus `gorm:"type:varchar(50);not null"`
	Trigger             string        `gorm:"type:varchar(50);not null;default:'manual'"`
	CompaniesFound      int           `gorm:"not null;default:0"`
	CompaniesImported   int           `gorm:"not null;default:0"`
	CompaniesUpdated    int           `gorm:"not null;default:0"`
	CompaniesSkipped    int           `gorm:"not null;default:0"`
	AgreementsProcessed int           `gorm:"not null;default:0"`
	ToolsActivated      int           `gorm:"not null;default:0"`
	DurationMs          int64         `gorm:"not null;default:0"`
	Errors              StringList    `gorm:"not null"`
	Warnings            SyncWarnings  `gorm:"type:text;not null"`
}

func (SyncRun) TableName() string {
	return "psa_sync_runs"
}

// BeforeCreate assigns an id when the caller did not provide one
func (r *SyncRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// SyncStatus is the last-sync status kept on the settings record
type SyncStatus string

const (
	SyncStatusSuccess             SyncStatus = "success"
	SyncStatusCompletedWithErrors SyncStatus = "completed_with_errors"
	SyncStatusError               SyncStatus = "error"
)

// Settings holds the PSA credentials and the last sync outcome. At most one row exists.
type Settings struct {
	BaseModel
	CompanyID         string     `gorm:"type:varchar(200);not null"`
	PublicKey         string     `gorm:"type:varchar(200);not null"`
	PrivateKey        string     `gorm:"type:varchar(500);not null"`
	SiteURL           string     `gorm:"column:site_url;type:varchar(500);not null"`
	ClientID          string     `gorm:"type:varchar(200);not null"`
	Enabled           bool       `gorm:"not null;default:false"`
	DefaultBaselineID *uuid.UUID `gorm:"type:uuid"`
	LastSyncAt        *time.Time
	LastSyncStatus    *SyncStatus `gorm:"type:varchar(50)"`
	LastSyncMessage   *string     `gorm:"type:text"`
}

func (Settings) TableName() string {
	return "psa_settings"
}
