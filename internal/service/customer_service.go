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

type CustomerService struct {
	customerRepo *repository.CustomerRepository
	baselineRepo *repository.BaselineRepository
	toolRepo     *repository.ToolRepository
	logger       *zap.Logger
}

func NewCustomerService(
	customerRepo *repository.CustomerRepository,
	baselineRepo *repository.BaselineRepository,
	toolRepo *repository.ToolRepository,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		baselineRepo: baselineRepo,
		toolRepo:     toolRepo,
		logger:       logger,
	}
}

func (s *CustomerService) Create(ctx context.Context, req *domain.CreateCustomerRequest) (*domain.CustomerDTO, error) {
	customer, err := s.build(ctx, req, map[uuid.UUID]bool{})
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	dto := mapper.ToCustomerDTO(customer)
	return &dto, nil
}

// BulkCreate validates every row first and then inserts all of them atomically.
// A single invalid row rejects the whole batch and names its index.
func (s *CustomerService) BulkCreate(ctx context.Context, req *domain.BulkCreateCustomersRequest) (*domain.BulkCreateCustomersResponse, error) {
	checked := map[uuid.UUID]bool{}
	customers := make([]*domain.Customer, 0, len(req.Customers))
	for i := range req.Customers {
		customer, err := s.build(ctx, &req.Customers[i], checked)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		customers = append(customers, customer)
	}

	if err := s.customerRepo.CreateMany(ctx, customers); err != nil {
		return nil, fmt.Errorf("failed to import customers: %w", err)
	}

	s.logger.Info("bulk customer import completed", zap.Int("count", len(customers)))

	dtos := make([]domain.CustomerDTO, len(customers))
	for i, c := range customers {
		dtos[i] = mapper.ToCustomerDTO(c)
	}
	return &domain.BulkCreateCustomersResponse{Created: len(dtos), Customers: dtos}, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CustomerDTO, error) {
	customer, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToCustomerDTO(customer)
	return &dto, nil
}

func (s *CustomerService) List(ctx context.Context, search string) ([]domain.CustomerDTO, error) {
	customers, err := s.customerRepo.List(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	dtos := make([]domain.CustomerDTO, len(customers))
	for i := range customers {
		dtos[i] = mapper.ToCustomerDTO(&customers[i])
	}
	return dtos, nil
}

// Update replaces the editable fields. The PSA link and its sync timestamp are kept.
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateCustomerRequest) (*domain.CustomerDTO, error) {
	customer, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields, err := s.build(ctx, (*domain.CreateCustomerRequest)(req), map[uuid.UUID]bool{})
	if err != nil {
		return nil, err
	}

	customer.Name = fields.Name
	customer.Address = fields.Address
	customer.PrimaryContactName = fields.PrimaryContactName
	customer.CustomerPhone = fields.CustomerPhone
	customer.ContactPhone = fields.ContactPhone
	customer.ContactEmail = fields.ContactEmail
	customer.ServiceTiers = fields.ServiceTiers
	customer.CurrentToolIDs = fields.CurrentToolIDs
	customer.BaselineID = fields.BaselineID

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	dto := mapper.ToCustomerDTO(customer)
	return &dto, nil
}

func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}

func (s *CustomerService) get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

// build validates a request and turns it into an unsaved customer. checked caches
// baseline ids already confirmed to exist.
func (s *CustomerService) build(ctx context.Context, req *domain.CreateCustomerRequest, checked map[uuid.UUID]bool) (*domain.Customer, error) {
	tiers := domain.StringList(req.ServiceTiers).Distinct()
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: at least one service tier is required", ErrInvalidInput)
	}
	for _, tier := range tiers {
		if !domain.IsValidServiceTier(tier) {
			return nil, fmt.Errorf("%w: unknown service tier %q", ErrInvalidInput, tier)
		}
	}

	if !checked[req.BaselineID] {
		if _, err := s.baselineRepo.GetByID(ctx, req.BaselineID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: baseline %s does not exist", ErrInvalidInput, req.BaselineID)
			}
			return nil, fmt.Errorf("failed to get baseline: %w", err)
		}
		checked[req.BaselineID] = true
	}

	toolIDs := domain.StringList(req.CurrentToolIDs).Distinct()
	if err := ensureToolsExist(ctx, s.toolRepo, toolIDs); err != nil {
		return nil, err
	}

	return &domain.Customer{
		Name:               req.Name,
		Address:            req.Address,
		PrimaryContactName: req.PrimaryContactName,
		CustomerPhone:      req.CustomerPhone,
		ContactPhone:       req.ContactPhone,
		ContactEmail:       req.ContactEmail,
		ServiceTiers:       tiers,
		CurrentToolIDs:     toolIDs,
		BaselineID:         req.BaselineID,
	}, nil
}
