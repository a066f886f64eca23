package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/coretech/stack-tracker/internal/mapper"
	"github.com/coretech/stack-tracker/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PSAMappingService manages the company type and product SKU mapping tables
type PSAMappingService struct {
	typeRepo     *repository.TypeMappingRepository
	skuRepo      *repository.SkuMappingRepository
	baselineRepo *repository.BaselineRepository
	toolRepo     *repository.ToolRepository
	logger       *zap.Logger
}

// NewPSAMappingService creates a new mapping service instance
func NewPSAMappingService(
	typeRepo *repository.TypeMappingRepository,
	skuRepo *repository.SkuMappingRepository,
	baselineRepo *repository.BaselineRepository,
	toolRepo *repository.ToolRepository,
	logger *zap.Logger,
) *PSAMappingService {
	return &PSAMappingService{
		typeRepo:     typeRepo,
		skuRepo:      skuRepo,
		baselineRepo: baselineRepo,
		toolRepo:     toolRepo,
		logger:       logger,
	}
}

// ListTypeMappings returns all company type mappings ordered by type name
func (s *PSAMappingService) ListTypeMappings(ctx context.Context) ([]domain.TypeMappingDTO, error) {
	mappings, err := s.typeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list type mappings: %w", err)
	}
	dtos := make([]domain.TypeMappingDTO, len(mappings))
	for i := range mappings {
		dtos[i] = mapper.ToTypeMappingDTO(&mappings[i])
	}
	return dtos, nil
}

func (s *PSAMappingService) CreateTypeMapping(ctx context.Context, req *domain.CreateTypeMappingRequest) (*domain.TypeMappingDTO, error) {
	mapping := &domain.TypeMapping{}
	if err := s.applyTypeMapping(ctx, mapping, req.ExternalTypeName, req.BaselineID, req.ServiceTiers, req.ShouldImport); err != nil {
		return nil, err
	}

	if err := s.typeRepo.Create(ctx, mapping); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: company type %q is already mapped", ErrConflict, mapping.ExternalTypeName)
		}
		return nil, fmt.Errorf("failed to create type mapping: %w", err)
	}

	dto := mapper.ToTypeMappingDTO(mapping)
	return &dto, nil
}

func (s *PSAMappingService) UpdateTypeMapping(ctx context.Context, id uuid.UUID, req *domain.UpdateTypeMappingRequest) (*domain.TypeMappingDTO, error) {
	mapping, err := s.typeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTypeMappingNotFound
		}
		return nil, fmt.Errorf("failed to get type mapping: %w", err)
	}

	if err := s.applyTypeMapping(ctx, mapping, req.ExternalTypeName, req.BaselineID, req.ServiceTiers, req.ShouldImport); err != nil {
		return nil, err
	}

	if err := s.typeRepo.Update(ctx, mapping); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: company type %q is already mapped", ErrConflict, mapping.ExternalTypeName)
		}
		return nil, fmt.Errorf("failed to update type mapping: %w", err)
	}

	dto := mapper.ToTypeMappingDTO(mapping)
	return &dto, nil
}

func (s *PSAMappingService) DeleteTypeMapping(ctx context.Context, id uuid.UUID) error {
	if _, err := s.typeRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTypeMappingNotFound
		}
		return fmt.Errorf("failed to get type mapping: %w", err)
	}
	if err := s.typeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete type mapping: %w", err)
	}
	return nil
}

func (s *PSAMappingService) applyTypeMapping(ctx context.Context, mapping *domain.TypeMapping, name string, baselineID *uuid.UUID, tiers []string, shouldImport bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: externalTypeName is required", ErrInvalidInput)
	}

	list := domain.StringList(tiers).Distinct()
	for _, tier := range list {
		if !domain.IsValidServiceTier(tier) {
			return fmt.Errorf("%w: unknown service tier %q", ErrInvalidInput, tier)
		}
	}
	if len(list) == 0 {
		list = append(domain.StringList{}, domain.DefaultServiceTiers...)
	}

	if baselineID != nil {
		if _, err := s.baselineRepo.GetByID(ctx, *baselineID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: baseline %s does not exist", ErrInvalidInput, *baselineID)
			}
			return fmt.Errorf("failed to get baseline: %w", err)
		}
	}

	mapping.ExternalTypeName = name
	mapping.BaselineID = baselineID
	mapping.ServiceTiers = list
	mapping.ShouldImport = shouldImport
	return nil
}

// ListSkuMappings returns all SKU mappings ordered by SKU
func (s *PSAMappingService) ListSkuMappings(ctx context.Context) ([]domain.SkuMappingDTO, error) {
	mappings, err := s.skuRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sku mappings: %w", err)
	}
	dtos := make([]domain.SkuMappingDTO, len(mappings))
	for i := range mappings {
		dtos[i] = mapper.ToSkuMappingDTO(&mappings[i])
	}
	return dtos, nil
}

func (s *PSAMappingService) CreateSkuMapping(ctx context.Context, req *domain.CreateSkuMappingRequest) (*domain.SkuMappingDTO, error) {
	mapping := &domain.SkuMapping{}
	if err := s.applySkuMapping(ctx, mapping, req.SKU, req.Description, req.ToolID); err != nil {
		return nil, err
	}

	if err := s.skuRepo.Create(ctx, mapping); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: sku %q is already mapped", ErrConflict, mapping.SKU)
		}
		return nil, fmt.Errorf("failed to create sku mapping: %w", err)
	}

	dto := mapper.ToSkuMappingDTO(mapping)
	return &dto, nil
}

func (s *PSAMappingService) UpdateSkuMapping(ctx context.Context, id uuid.UUID, req *domain.UpdateSkuMappingRequest) (*domain.SkuMappingDTO, error) {
	mapping, err := s.skuRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkuMappingNotFound
		}
		return nil, fmt.Errorf("failed to get sku mapping: %w", err)
	}

	if err := s.applySkuMapping(ctx, mapping, req.SKU, req.Description, req.ToolID); err != nil {
		return nil, err
	}

	if err := s.skuRepo.Update(ctx, mapping); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: sku %q is already mapped", ErrConflict, mapping.SKU)
		}
		return nil, fmt.Errorf("failed to update sku mapping: %w", err)
	}

	dto := mapper.ToSkuMappingDTO(mapping)
	return &dto, nil
}

func (s *PSAMappingService) DeleteSkuMapping(ctx context.Context, id uuid.UUID) error {
	if _, err := s.skuRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSkuMappingNotFound
		}
		return fmt.Errorf("failed to get sku mapping: %w", err)
	}
	if err := s.skuRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete sku mapping: %w", err)
	}
	return nil
}

func (s *PSAMappingService) applySkuMapping(ctx context.Context, mapping *domain.SkuMapping, sku string, description *string, toolID *uuid.UUID) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return fmt.Errorf("%w: sku is required", ErrInvalidInput)
	}
	if toolID != nil {
		if _, err := s.toolRepo.GetByID(ctx, *toolID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: tool %s does not exist", ErrInvalidInput, *toolID)
			}
			return fmt.Errorf("failed to get tool: %w", err)
		}
	}

	mapping.SKU = sku
	mapping.Description = description
	mapping.ToolID = toolID
	return nil
}
