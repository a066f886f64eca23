package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// CreateMany inserts all customers in one transaction. Either all are stored or none.
func (r *CustomerRepository) CreateMany(ctx context.Context, customers []*domain.Customer) error {
	if len(customers) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(customers, 100).Error
	})
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetByExternalCompanyID returns the customer linked to a PSA company, or nil when none is
func (r *CustomerRepository) GetByExternalCompanyID(ctx context.Context, externalID int) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.WithContext(ctx).Where("external_company_id = ?", externalID).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// List returns customers ordered by name, optionally filtered by a case-insensitive name search
func (r *CustomerRepository) List(ctx context.Context, search string) ([]domain.Customer, error) {
	var customers []domain.Customer
	query := r.db.WithContext(ctx).Model(&domain.Customer{})
	if search != "" {
		searchPattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchPattern)
	}
	err := query.Order("name ASC").Find(&customers).Error
	return customers, err
}

func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Customer{}, "id = ?", id).Error
}

// CountByBaseline counts customers assigned to a baseline
func (r *CustomerRepository) CountByBaseline(ctx context.Context, baselineID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Customer{}).Where("baseline_id = ?", baselineID).Count(&count).Error
	return int(count), err
}
