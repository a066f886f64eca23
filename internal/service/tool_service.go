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

// ToolService handles business logic for the tool catalog
type ToolService struct {
	toolRepo     *repository.ToolRepository
	categoryRepo *repository.CategoryRepository
	logger       *zap.Logger
}

// NewToolService creates a new tool service instance
func NewToolService(
	toolRepo *repository.ToolRepository,
	categoryRepo *repository.CategoryRepository,
	logger *zap.Logger,
) *ToolService {
	return &ToolService{
		toolRepo:     toolRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *ToolService) Create(ctx context.Context, req *domain.CreateToolRequest) (*domain.ToolDTO, error) {
	if err := s.ensureCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	tool := &domain.Tool{
		Name:       req.Name,
		Vendor:     req.Vendor,
		CategoryID: req.CategoryID,
		Tags:       domain.StringList(req.Tags).Distinct(),
	}

	if err := s.toolRepo.Create(ctx, tool); err != nil {
		return nil, fmt.Errorf("failed to create tool: %w", err)
	}

	dto := mapper.ToToolDTO(tool)
	return &dto, nil
}

func (s *ToolService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ToolDTO, error) {
	tool, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToToolDTO(tool)
	return &dto, nil
}

// List returns all tools, or only those of one category when categoryID is set
func (s *ToolService) List(ctx context.Context, categoryID *uuid.UUID) ([]domain.ToolDTO, error) {
	tools, err := s.toolRepo.List(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	return mapper.ToToolDTOs(tools), nil
}

func (s *ToolService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateToolRequest) (*domain.ToolDTO, error) {
	tool, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tool.CategoryID != req.CategoryID {
		if err := s.ensureCategory(ctx, req.CategoryID); err != nil {
			return nil, err
		}
	}

	tool.Name = req.Name
	tool.Vendor = req.Vendor
	tool.CategoryID = req.CategoryID
	tool.Tags = domain.StringList(req.Tags).Distinct()

	if err := s.toolRepo.Update(ctx, tool); err != nil {
		return nil, fmt.Errorf("failed to update tool: %w", err)
	}

	dto := mapper.ToToolDTO(tool)
	return &dto, nil
}

// Delete removes a tool. Baselines and customers that still list its id keep the
// stale reference; coverage math ignores ids that no longer resolve.
func (s *ToolService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.toolRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tool: %w", err)
	}
	return nil
}

func (s *ToolService) get(ctx context.Context, id uuid.UUID) (*domain.Tool, error) {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrToolNotFound
		}
		return nil, fmt.Errorf("failed to get tool: %w", err)
	}
	return tool, nil
}

func (s *ToolService) ensureCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category %s does not exist", ErrInvalidInput, id)
		}
		return fmt.Errorf("failed to get category: %w", err)
	}
	return nil
}

// ensureToolsExist checks that every id parses and names an existing tool
func ensureToolsExist(ctx context.Context, toolRepo *repository.ToolRepository, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	unique := domain.StringList(ids).Distinct()
	parsed := make([]uuid.UUID, 0, len(unique))
	for _, raw := range unique {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("%w: tool id %q is not a valid UUID", ErrInvalidInput, raw)
		}
		parsed = append(parsed, id)
	}
	found, err := toolRepo.CountExisting(ctx, parsed)
	if err != nil {
		return fmt.Errorf("failed to check tools: %w", err)
	}
	if found != len(parsed) {
		return fmt.Errorf("%w: %d of %d tool ids do not exist", ErrInvalidInput, len(parsed)-found, len(parsed))
	}
	return nil
}
