package repository

import (
	"context"

	"github.com/coretech/stack-tracker/internal/domain"
)

// MappingStore is the read-only view of mappings and catalog data the sync engine works from
type MappingStore struct {
	typeMappings *TypeMappingRepository
	skuMappings  *SkuMappingRepository
	tools        *ToolRepository
	baselines    *BaselineRepository
}

func NewMappingStore(
	typeMappings *TypeMappingRepository,
	skuMappings *SkuMappingRepository,
	tools *ToolRepository,
	baselines *BaselineRepository,
) *MappingStore {
	return &MappingStore{
		typeMappings: typeMappings,
		skuMappings:  skuMappings,
		tools:        tools,
		baselines:    baselines,
	}
}

func (s *MappingStore) AllTypeMappings(ctx context.Context) ([]domain.TypeMapping, error) {
	return s.typeMappings.List(ctx)
}

func (s *MappingStore) AllSkuMappings(ctx context.Context) ([]domain.SkuMapping, error) {
	return s.skuMappings.List(ctx)
}

func (s *MappingStore) AllTools(ctx context.Context) ([]domain.Tool, error) {
	return s.tools.List(ctx, nil)
}

// AllBaselines returns baselines oldest first
func (s *MappingStore) AllBaselines(ctx context.Context) ([]domain.Baseline, error) {
	return s.baselines.List(ctx)
}
