package repository

import (
	"context"
	"errors"

	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TypeMappingRepository struct {
	db *gorm.DB
}

func NewTypeMappingRepository(db *gorm.DB) *TypeMappingRepository {
	return &TypeMappingRepository{db: db}
}

func (r *TypeMappingRepository) Create(ctx context.Context, mapping *domain.TypeMapping) error {
	return r.db.WithContext(ctx).Create(mapping).Error
}

func (r *TypeMappingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TypeMapping, error) {
	var mapping domain.TypeMapping
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&mapping).Error
	if err != nil {
		return nil, err
	}
	return &mapping, nil
}

// GetByExternalTypeName returns the mapping for a PSA company type, or nil when none exists
func (r *TypeMappingRepository) GetByExternalTypeName(ctx context.Context, name string) (*domain.TypeMapping, error) {
	var mapping domain.TypeMapping
	err := r.db.WithContext(ctx).Where("external_type_name = ?", name).First(&mapping).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mapping, nil
}

func (r *TypeMappingRepository) List(ctx context.Context) ([]domain.TypeMapping, error) {
	var mappings []domain.TypeMapping
	err := r.db.WithContext(ctx).Order("external_type_name ASC").Find(&mappings).Error
	return mappings, err
}

func (r *TypeMappingRepository) Update(ctx context.Context, mapping *domain.TypeMapping) error {
	return r.db.WithContext(ctx).Save(mapping).Error
}

func (r *TypeMappingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.TypeMapping{}, "id = ?", id).Error
}

type SkuMappingRepository struct {
	db *gorm.DB
}

func NewSkuMappingRepository(db *gorm.DB) *SkuMappingRepository {
	return &SkuMappingRepository{db: db}
}

func (r *SkuMappingRepository) Create(ctx context.Context, mapping *domain.SkuMapping) error {
	return r.db.WithContext(ctx).Create(mapping).Error
}

func (r *SkuMappingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SkuMapping, error) {
	var mapping domain.SkuMapping
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&mapping).Error
	if err != nil {
		return nil, err
	}
	return &mapping, nil
}

// GetBySKU returns the mapping for a product identifier, or nil when none exists
func (r *SkuMappingRepository) GetBySKU(ctx context.Context, sku string) (*domain.SkuMapping, error) {
	var mapping domain.SkuMapping
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&mapping).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mapping, nil
}

func (r *SkuMappingRepository) List(ctx context.Context) ([]domain.SkuMapping, error) {
	var mappings []domain.SkuMapping
	err := r.db.WithContext(ctx).Order("sku ASC").Find(&mappings).Error
	return mappings, err
}

func (r *SkuMappingRepository) Update(ctx context.Context, mapping *domain.SkuMapping) error {
	return r.db.WithContext(ctx).Save(mapping).Error
}

func (r *SkuMappingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.SkuMapping{}, "id = ?", id).Error
}
