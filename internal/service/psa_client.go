package service

import (
	"context"
	"net/http"

	"github.com/coretech/stack-tracker/internal/config"
	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/coretech/stack-tracker/internal/observability"
	"github.com/coretech/stack-tracker/internal/psa"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// PSAClient is the part of the PSA client used by the settings and sync services
type PSAClient interface {
	TestConnection(ctx context.Context) psa.ConnectionResult
	ListCompanyTypes(ctx context.Context) ([]psa.CompanyType, error)
	GetAllCompanies(ctx context.Context, conditions string, onProgress func(soFar, total int)) ([]psa.Company, error)
	GetCompany(ctx context.Context, companyID int) (*psa.Company, error)
	GetContact(ctx context.Context, contactID int) (*psa.Contact, error)
	GetCompanyProductSKUs(ctx context.Context, companyID int) (*psa.ProductSKUs, error)
}

// ClientFactory builds a PSA client for a credential set. Clients are built per
// operation because credentials can change between calls.
type ClientFactory func(creds psa.Credentials) PSAClient

// NewPSAClientFactory returns a factory that shares one HTTP client, breaker and
// metrics observer across every client it builds. metrics may be nil.
func NewPSAClientFactory(cfg *config.PSAConfig, metrics *observability.Metrics, logger *zap.Logger) ClientFactory {
	httpClient := &http.Client{Timeout: cfg.RequestTimeoutDuration()}

	var breaker *gobreaker.CircuitBreaker
	if cfg.BreakerEnabled {
		breaker = psa.NewCircuitBreaker("psa")
	}

	return func(creds psa.Credentials) PSAClient {
		opts := []psa.Option{
			psa.WithHTTPClient(httpClient),
			psa.WithLogger(logger),
		}
		if breaker != nil {
			opts = append(opts, psa.WithCircuitBreaker(breaker))
		}
		if metrics != nil {
			opts = append(opts, psa.WithRequestObserver(metrics.ObservePSARequest))
		}
		return psa.NewClient(creds, opts...)
	}
}

func credentialsFrom(s *domain.Settings) psa.Credentials {
	return psa.Credentials{
		CompanyID:  s.CompanyID,
		PublicKey:  s.PublicKey,
		PrivateKey: s.PrivateKey,
		SiteURL:    s.SiteURL,
		ClientID:   s.ClientID,
	}
}
