package repository

import (
	"context"

	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ToolRepository struct {
	db *gorm.DB
}

func NewToolRepository(db *gorm.DB) *ToolRepository {
	return &ToolRepository{db: db}
}

func (r *ToolRepository) Create(ctx context.Context, tool *domain.Tool) error {
	return r.db.WithContext(ctx).Create(tool).Error
}

func (r *ToolRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tool, error) {
	var tool domain.Tool
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tool).Error
	if err != nil {
		return nil, err
	}
	return &tool, nil
}

// List returns tools ordered by name, optionally limited to one category
func (r *ToolRepository) List(ctx context.Context, categoryID *uuid.UUID) ([]domain.Tool, error) {
	var tools []domain.Tool
	query := r.db.WithContext(ctx).Model(&domain.Tool{})
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	err := query.Order("name ASC").Find(&tools).Error
	return tools, err
}

func (r *ToolRepository) Update(ctx context.Context, tool *domain.Tool) error {
	return r.db.WithContext(ctx).Save(tool).Error
}

func (r *ToolRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Tool{}, "id = ?", id).Error
}

// CountExisting returns how many of ids exist as tools
func (r *ToolRepository) CountExisting(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Tool{}).Where("id IN ?", ids).Count(&count).Error
	return int(count), err
}
