package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/coretech/stack-tracker/internal/mapper"
	"github.com/coretech/stack-tracker/internal/psa"
	"github.com/coretech/stack-tracker/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SettingsService manages the PSA credentials record
type SettingsService struct {
	settingsRepo *repository.SettingsRepository
	baselineRepo *repository.BaselineRepository
	newClient    ClientFactory
	logger       *zap.Logger
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(
	settingsRepo *repository.SettingsRepository,
	baselineRepo *repository.BaselineRepository,
	newClient ClientFactory,
	logger *zap.Logger,
) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		baselineRepo: baselineRepo,
		newClient:    newClient,
		logger:       logger,
	}
}

// Get returns the stored settings without the private key
func (s *SettingsService) Get(ctx context.Context) (*domain.SettingsDTO, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	if settings == nil {
		return nil, ErrSettingsNotConfigured
	}
	dto := mapper.ToSettingsDTO(settings)
	return &dto, nil
}

// Save creates or replaces the settings. The stored private key is kept unless the
// request carries a replacement; an explicit empty replacement is rejected.
func (s *SettingsService) Save(ctx context.Context, req *domain.SaveSettingsRequest) (*domain.SettingsDTO, error) {
	if req.PrivateKey.Replaces() && strings.TrimSpace(req.PrivateKey.Value()) == "" {
		return nil, fmt.Errorf("%w: privateKey must not be empty; omit it to keep the stored key", ErrInvalidInput)
	}

	if req.DefaultBaselineID != nil {
		if _, err := s.baselineRepo.GetByID(ctx, *req.DefaultBaselineID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: baseline %s does not exist", ErrInvalidInput, *req.DefaultBaselineID)
			}
			return nil, fmt.Errorf("failed to get baseline: %w", err)
		}
	}

	saved, err := s.settingsRepo.Save(ctx, func(current *domain.Settings) (*domain.Settings, error) {
		next := &domain.Settings{}
		if current != nil {
			*next = *current
		}

		switch {
		case req.PrivateKey.Replaces():
			next.PrivateKey = req.PrivateKey.Value()
		case current == nil:
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrPrivateKeyRequired)
		}

		next.CompanyID = req.CompanyID
		next.PublicKey = req.PublicKey
		next.SiteURL = req.SiteURL
		next.ClientID = req.ClientID
		next.Enabled = req.Enabled
		next.DefaultBaselineID = req.DefaultBaselineID
		return next, nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	s.logger.Info("PSA settings saved",
		zap.String("site_url", saved.SiteURL),
		zap.Bool("enabled", saved.Enabled),
		zap.Bool("private_key_replaced", req.PrivateKey.Replaces()))

	dto := mapper.ToSettingsDTO(saved)
	return &dto, nil
}

// TestConnection checks credentials against the PSA. A nil or empty request tests the
// stored settings; otherwise the supplied fields are used and a missing private key
// falls back to the stored one. Failures are reported in the result, not as errors.
func (s *SettingsService) TestConnection(ctx context.Context, req *domain.TestConnectionRequest) (*domain.ConnectionResultDTO, error) {
	stored, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	var creds psa.Credentials
	if req == nil || req.IsEmpty() {
		if stored == nil {
			return &domain.ConnectionResultDTO{Success: false, Message: ErrSettingsNotConfigured.Error()}, nil
		}
		creds = credentialsFrom(stored)
	} else {
		if req.CompanyID == "" || req.PublicKey == "" || req.SiteURL == "" || req.ClientID == "" {
			return nil, fmt.Errorf("%w: companyId, publicKey, siteUrl and clientId are required", ErrInvalidInput)
		}
		creds = psa.Credentials{
			CompanyID: req.CompanyID,
			PublicKey: req.PublicKey,
			SiteURL:   req.SiteURL,
			ClientID:  req.ClientID,
		}
		if req.PrivateKey.Replaces() && req.PrivateKey.Value() != "" {
			creds.PrivateKey = req.PrivateKey.Value()
		} else if stored != nil {
			creds.PrivateKey = stored.PrivateKey
		}
		if creds.PrivateKey == "" {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrPrivateKeyRequired)
		}
	}

	result := s.newClient(creds).TestConnection(ctx)
	if !result.Success {
		s.logger.Warn("PSA connection test failed", zap.String("message", result.Message))
	}
	return &domain.ConnectionResultDTO{Success: result.Success, Message: result.Message}, nil
}

// ListCompanyTypes fetches the company types defined in the PSA using the stored settings
func (s *SettingsService) ListCompanyTypes(ctx context.Context) ([]domain.CompanyTypeDTO, error) {
	stored, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	if stored == nil {
		return nil, ErrSettingsNotConfigured
	}

	types, err := s.newClient(credentialsFrom(stored)).ListCompanyTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list company types: %w", err)
	}

	dtos := make([]domain.CompanyTypeDTO, len(types))
	for i, t := range types {
		dtos[i] = domain.CompanyTypeDTO{ID: t.ID, Name: t.Name}
	}
	return dtos, nil
}
