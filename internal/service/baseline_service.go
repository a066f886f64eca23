package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/coretech/stack-tracker/internal/mapper"
	"github.com/coretech/stack-tracker/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BaselineService handles business logic for baselines
type BaselineService struct {
	baselineRepo *repository.BaselineRepository
	toolRepo     *repository.ToolRepository
	customerRepo *repository.CustomerRepository
	logger       *zap.Logger
}

// NewBaselineService creates a new baseline service instance
func NewBaselineService(
	baselineRepo *repository.BaselineRepository,
	toolRepo *repository.ToolRepository,
	customerRepo *repository.CustomerRepository,
	logger *zap.Logger,
) *BaselineService {
	return &BaselineService{
		baselineRepo: baselineRepo,
		toolRepo:     toolRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (s *BaselineService) Create(ctx context.Context, req *domain.CreateBaselineRequest) (*domain.BaselineDTO, error) {
	required, optional, err := s.validateToolSets(ctx, req.RequiredToolIDs, req.OptionalToolIDs)
	if err != nil {
		return nil, err
	}

	baseline := &domain.Baseline{
		Name:            req.Name,
		Description:     req.Description,
		RequiredToolIDs: required,
		OptionalToolIDs: optional,
	}

	if err := s.baselineRepo.Create(ctx, baseline); err != nil {
		return nil, fmt.Errorf("failed to create baseline: %w", err)
	}

	dto := mapper.ToBaselineDTO(baseline)
	return &dto, nil
}

func (s *BaselineService) GetByID(ctx context.Context, id uuid.UUID) (*domain.BaselineDTO, error) {
	baseline, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToBaselineDTO(baseline)
	return &dto, nil
}

func (s *BaselineService) List(ctx context.Context) ([]domain.BaselineDTO, error) {
	baselines, err := s.baselineRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list baselines: %w", err)
	}

	dtos := make([]domain.BaselineDTO, len(baselines))
	for i := range baselines {
		dtos[i] = mapper.ToBaselineDTO(&baselines[i])
	}
	return dtos, nil
}

func (s *BaselineService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateBaselineRequest) (*domain.BaselineDTO, error) {
	baseline, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	required, optional, err := s.validateToolSets(ctx, req.RequiredToolIDs, req.OptionalToolIDs)
	if err != nil {
		return nil, err
	}

	baseline.Name = req.Name
	baseline.Description = req.Description
	baseline.RequiredToolIDs = required
	baseline.OptionalToolIDs = optional

	if err := s.baselineRepo.Update(ctx, baseline); err != nil {
		return nil, fmt.Errorf("failed to update baseline: %w", err)
	}

	dto := mapper.ToBaselineDTO(baseline)
	return &dto, nil
}

// Delete removes a baseline that no customer is assigned to
func (s *BaselineService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}

	inUse, err := s.customerRepo.CountByBaseline(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count customers: %w", err)
	}
	if inUse > 0 {
		return fmt.Errorf("%w (%d customers)", ErrBaselineInUse, inUse)
	}

	if err := s.baselineRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete baseline: %w", err)
	}
	return nil
}

func (s *BaselineService) get(ctx context.Context, id uuid.UUID) (*domain.Baseline, error) {
	baseline, err := s.baselineRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBaselineNotFound
		}
		return nil, fmt.Errorf("failed to get baseline: %w", err)
	}
	return baseline, nil
}

// validateToolSets de-duplicates both lists, rejects overlap and unknown tools
func (s *BaselineService) validateToolSets(ctx context.Context, required, optional []string) (domain.StringList, domain.StringList, error) {
	req := domain.StringList(required).Distinct()
	opt := domain.StringList(optional).Distinct()

	for _, id := range opt {
		if req.Contains(id) {
			return nil, nil, fmt.Errorf("%w: %w (%s)", ErrInvalidInput, ErrBaselineToolOverlap, id)
		}
	}

	if err := ensureToolsExist(ctx, s.toolRepo, append(append([]string{}, req...), opt...)); err != nil {
		return nil, nil, err
	}
	return req, opt, nil
}
