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

// CategoryService handles business logic for tool categories
type CategoryService struct {
	categoryRepo *repository.CategoryRepository
	logger       *zap.Logger
}

// NewCategoryService creates a new category service instance
func NewCategoryService(categoryRepo *repository.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *CategoryService) Create(ctx context.Context, req *domain.CreateCategoryRequest) (*domain.CategoryDTO, error) {
	category := &domain.Category{
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	dto := mapper.ToCategoryDTO(category)
	return &dto, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CategoryDTO, error) {
	category, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToCategoryDTO(category)
	return &dto, nil
}

func (s *CategoryService) List(ctx context.Context) ([]domain.CategoryDTO, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	dtos := make([]domain.CategoryDTO, len(categories))
	for i := range categories {
		dtos[i] = mapper.ToCategoryDTO(&categories[i])
	}
	return dtos, nil
}

func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateCategoryRequest) (*domain.CategoryDTO, error) {
	category, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.Description = req.Description
	category.SortOrder = req.SortOrder

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	dto := mapper.ToCategoryDTO(category)
	return &dto, nil
}

// Delete removes a category together with its tools
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	category, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.logger.Info("category deleted with its tools",
		zap.String("category_id", id.String()),
		zap.String("name", category.Name))
	return nil
}

func (s *CategoryService) get(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}
