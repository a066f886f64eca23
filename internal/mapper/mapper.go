package mapper

import (
	"time"

	"github.com/coretech/stack-tracker/internal/coverage"
	"github.com/coretech/stack-tracker/internal/domain"
)

const timestampLayout = "2006-01-02T15:04:05Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// ToCategoryDTO converts Category to CategoryDTO
func ToCategoryDTO(category *domain.Category) domain.CategoryDTO {
	return domain.CategoryDTO{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		SortOrder:   category.SortOrder,
		CreatedAt:   formatTime(category.CreatedAt),
		UpdatedAt:   formatTime(category.UpdatedAt),
	}
}

// ToToolDTO converts Tool to ToolDTO
func ToToolDTO(tool *domain.Tool) domain.ToolDTO {
	return domain.ToolDTO{
		ID:         tool.ID,
		Name:       tool.Name,
		Vendor:     tool.Vendor,
		CategoryID: tool.CategoryID,
		Tags:       nonNil(tool.Tags),
	}
}

// ToToolDTOs converts a slice of tools
func ToToolDTOs(tools []domain.Tool) []domain.ToolDTO {
	dtos := make([]domain.ToolDTO, len(tools))
	for i := range tools {
		dtos[i] = ToToolDTO(&tools[i])
	}
	return dtos
}

// ToBaselineDTO converts Baseline to BaselineDTO
func ToBaselineDTO(baseline *domain.Baseline) domain.BaselineDTO {
	return domain.BaselineDTO{
		ID:              baseline.ID,
		Name:            baseline.Name,
		Description:     baseline.Description,
		RequiredToolIDs: nonNil(baseline.RequiredToolIDs),
		OptionalToolIDs: nonNil(baseline.OptionalToolIDs),
		CreatedAt:       formatTime(baseline.CreatedAt),
		UpdatedAt:       formatTime(baseline.UpdatedAt),
	}
}

// ToCustomerDTO converts Customer to CustomerDTO
func ToCustomerDTO(customer *domain.Customer) domain.CustomerDTO {
	return domain.CustomerDTO{
		ID:                 customer.ID,
		Name:               customer.Name,
		Address:            customer.Address,
		PrimaryContactName: customer.PrimaryContactName,
		CustomerPhone:      customer.CustomerPhone,
		ContactPhone:       customer.ContactPhone,
		ContactEmail:       customer.ContactEmail,
		ServiceTiers:       nonNil(customer.ServiceTiers),
		CurrentToolIDs:     nonNil(customer.CurrentToolIDs),
		BaselineID:         customer.BaselineID,
		ExternalCompanyID:  customer.ExternalCompanyID,
		LastExternalSyncAt: formatTimePtr(customer.LastExternalSyncAt),
		CreatedAt:          formatTime(customer.CreatedAt),
		UpdatedAt:          formatTime(customer.UpdatedAt),
	}
}

// ToTypeMappingDTO converts TypeMapping to TypeMappingDTO
func ToTypeMappingDTO(m *domain.TypeMapping) domain.TypeMappingDTO {
	return domain.TypeMappingDTO{
		ID:               m.ID,
		ExternalTypeName: m.ExternalTypeName,
		BaselineID:       m.BaselineID,
		ServiceTiers:     nonNil(m.ServiceTiers),
		ShouldImport:     m.ShouldImport,
	}
}

// ToSkuMappingDTO converts SkuMapping to SkuMappingDTO
func ToSkuMappingDTO(m *domain.SkuMapping) domain.SkuMappingDTO {
	return domain.SkuMappingDTO{
		ID:          m.ID,
		SKU:         m.SKU,
		Description: m.Description,
		ToolID:      m.ToolID,
	}
}

// ToSettingsDTO converts Settings to SettingsDTO. The private key is never exposed.
func ToSettingsDTO(s *domain.Settings) domain.SettingsDTO {
	return domain.SettingsDTO{
		ID:                s.ID,
		CompanyID:         s.CompanyID,
		PublicKey:         s.PublicKey,
		HasPrivateKey:     s.PrivateKey != "",
		SiteURL:           s.SiteURL,
		ClientID:          s.ClientID,
		Enabled:           s.Enabled,
		DefaultBaselineID: s.DefaultBaselineID,
		LastSyncAt:        formatTimePtr(s.LastSyncAt),
		LastSyncStatus:    s.LastSyncStatus,
		LastSyncMessage:   s.LastSyncMessage,
	}
}

// ToSyncRunDTO converts SyncRun to SyncRunDTO
func ToSyncRunDTO(run *domain.SyncRun) domain.SyncRunDTO {
	warnings := []domain.SyncWarning(run.Warnings)
	if warnings == nil {
		warnings = []domain.SyncWarning{}
	}
	return domain.SyncRunDTO{
		ID:                  run.ID,
		StartedAt:           formatTime(run.StartedAt),
		CompletedAt:         formatTimePtr(run.CompletedAt),
		Status:              run.Status,
		Trigger:             run.Trigger,
		CompaniesFound:      run.CompaniesFound,
		CompaniesImported:   run.CompaniesImported,
		CompaniesUpdated:    run.CompaniesUpdated,
		CompaniesSkipped:    run.CompaniesSkipped,
		AgreementsProcessed: run.AgreementsProcessed,
		ToolsActivated:      run.ToolsActivated,
		DurationMs:          run.DurationMs,
		Errors:              nonNil(run.Errors),
		Warnings:            warnings,
	}
}

func toCoverageDTO(r coverage.Result) domain.CoverageDTO {
	return domain.CoverageDTO{
		Covered: r.Covered,
		Total:   r.Total,
		Pct:     r.Pct,
		Rounded: r.Rounded(),
	}
}

// ToGapReportDTO converts a computed gap report
func ToGapReportDTO(report *coverage.Report, generatedAt time.Time) domain.GapReportDTO {
	byCategory := make([]domain.CategoryCoverageDTO, len(report.Categories))
	for i, row := range report.Categories {
		byCategory[i] = domain.CategoryCoverageDTO{
			CategoryID:   row.Category.ID,
			CategoryName: row.Category.Name,
			Covered:      row.Covered,
			Total:        row.Total,
			Pct:          row.Pct,
		}
	}

	return domain.GapReportDTO{
		Customer: ToCustomerDTO(&report.Customer),
		Baseline: ToBaselineDTO(&report.Baseline),
		Coverage: domain.GapCoverageDTO{
			Required:   toCoverageDTO(report.Required),
			Overall:    toCoverageDTO(report.Overall),
			ByCategory: byCategory,
		},
		MissingTools:            ToToolDTOs(report.MissingRequired),
		OptionalRecommendations: ToToolDTOs(report.Recommendations),
		TotalRequired:           report.TotalRequired,
		TotalOptional:           report.TotalOptional,
		MissingRequiredCount:    len(report.MissingRequired),
		MissingOptionalCount:    len(report.Recommendations),
		GeneratedAt:             formatTime(generatedAt),
	}
}
