package mapper_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/coretech/stack-tracker/internal/coverage"
	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/coretech/stack-tracker/internal/mapper"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCustomerDTO_NilListsBecomeEmpty(t *testing.T) {
	synced := time.Date(2024, 3, 5, 10, 30, 0, 0, time.FixedZone("CET", 3600))
	customer := &domain.Customer{
		BaseModel:          domain.BaseModel{ID: uuid.New()},
		Name:               "Acme",
		LastExternalSyncAt: &synced,
	}

	dto := mapper.ToCustomerDTO(customer)
	assert.NotNil(t, dto.ServiceTiers)
	assert.NotNil(t, dto.CurrentToolIDs)
	require.NotNil(t, dto.LastExternalSyncAt)
	assert.Equal(t, "2024-03-05T09:30:00Z", *dto.LastExternalSyncAt)

	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"currentToolIds":[]`)
}

func TestToSettingsDTO_HidesPrivateKey(t *testing.T) {
	dto := mapper.ToSettingsDTO(&domain.Settings{CompanyID: "acme", PrivateKey: "secret"})
	assert.True(t, dto.HasPrivateKey)

	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")

	assert.False(t, mapper.ToSettingsDTO(&domain.Settings{}).HasPrivateKey)
}

func TestToSyncRunDTO_EmptyWarnings(t *testing.T) {
	dto := mapper.ToSyncRunDTO(&domain.SyncRun{Status: domain.SyncRunStatusCompleted})
	assert.NotNil(t, dto.Warnings)
	assert.NotNil(t, dto.Errors)
	assert.Nil(t, dto.CompletedAt)
}

func TestToGapReportDTO(t *testing.T) {
	category := domain.Category{BaseModel: domain.BaseModel{ID: uuid.New()}, Name: "Endpoint Security"}
	edr := domain.Tool{BaseModel: domain.BaseModel{ID: uuid.New()}, Name: "SentinelOne", CategoryID: category.ID}
	report := &coverage.Report{
		Customer: domain.Customer{Name: "Acme"},
		Baseline: domain.Baseline{Name: "SMB Standard"},
		Required: coverage.Result{Covered: 2, Total: 3, Pct: 200.0 / 3},
		Overall:  coverage.Result{Covered: 1, Total: 2, Pct: 50},
		Categories: []coverage.CategoryRow{
			{Category: category, Result: coverage.Result{Covered: 0, Total: 1, Pct: 0}},
		},
		MissingRequired: []domain.Tool{edr},
		TotalRequired:   3,
		TotalOptional:   1,
	}
	generated := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	dto := mapper.ToGapReportDTO(report, generated)
	assert.Equal(t, 67, dto.Coverage.Required.Rounded)
	assert.Equal(t, 50, dto.Coverage.Overall.Rounded)
	require.Len(t, dto.Coverage.ByCategory, 1)
	assert.Equal(t, "Endpoint Security", dto.Coverage.ByCategory[0].CategoryName)
	assert.Equal(t, 1, dto.MissingRequiredCount)
	assert.Equal(t, 0, dto.MissingOptionalCount)
	assert.NotNil(t, dto.OptionalRecommendations)
	assert.Equal(t, "2024-01-02T03:04:05Z", dto.GeneratedAt)
}
