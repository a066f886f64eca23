package repository

import (
	"context"

	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaselineRepository struct {
	db *gorm.DB
}

func NewBaselineRepository(db *gorm.DB) *BaselineRepository {
	return &BaselineRepository{db: db}
}

func (r *BaselineRepository) Create(ctx context.Context, baseline *domain.Baseline) error {
	return r.db.WithContext(ctx).Create(baseline).Error
}

func (r *BaselineRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Baseline, error) {
	var baseline domain.Baseline
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&baseline).Error
	if err != nil {
		return nil, err
	}
	return &baseline, nil
}

// List returns baselines oldest first. The sync fallback relies on this order.
func (r *BaselineRepository) List(ctx context.Context) ([]domain.Baseline, error) {
	var baselines []domain.Baseline
	err := r.db.WithContext(ctx).Order("created_at ASC").Order("name ASC").Find(&baselines).Error
	return baselines, err
}

func (r *BaselineRepository) Update(ctx context.Context, baseline *domain.Baseline) error {
	return r.db.WithContext(ctx).Save(baseline).Error
}

func (r *BaselineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Baseline{}, "id = ?", id).Error
}
