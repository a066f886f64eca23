package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/coretech/stack-tracker/internal/coverage"
	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/coretech/stack-tracker/internal/mapper"
	"github.com/coretech/stack-tracker/internal/observability"
	"github.com/coretech/stack-tracker/internal/repository"
	"github.com/coretech/stack-tracker/internal/storage"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const exportContentType = "text/plain; charset=utf-8"

// GapReportService builds coverage reports for customers
type GapReportService struct {
	customerRepo *repository.CustomerRepository
	baselineRepo *repository.BaselineRepository
	toolRepo     *repository.ToolRepository
	categoryRepo *repository.CategoryRepository
	storage      storage.Storage
	metrics      *observability.Metrics
	logger       *zap.Logger
}

// NewGapReportService creates a new gap report service instance. storage and metrics may be nil;
// without storage Export is unavailable.
func NewGapReportService(
	customerRepo *repository.CustomerRepository,
	baselineRepo *repository.BaselineRepository,
	toolRepo *repository.ToolRepository,
	categoryRepo *repository.CategoryRepository,
	store storage.Storage,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *GapReportService {
	return &GapReportService{
		customerRepo: customerRepo,
		baselineRepo: baselineRepo,
		toolRepo:     toolRepo,
		categoryRepo: categoryRepo,
		storage:      store,
		metrics:      metrics,
		logger:       logger,
	}
}

// Build loads everything a report needs and computes it. A missing customer or
// baseline yields ErrCustomerNotFound or ErrBaselineNotFound.
func (s *GapReportService) Build(ctx context.Context, customerID uuid.UUID) (*coverage.Report, error) {
	ctx, span := tracer.Start(ctx, "GapReportService.Generate")
	defer span.End()
	span.SetAttributes(attribute.String("customer.id", customerID.String()))

	report, err := s.build(ctx, customerID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrGapReport()
	}
	span.SetAttributes(
		attribute.Int("report.required_total", report.Required.Total),
		attribute.Int("report.missing", len(report.MissingRequired)),
	)
	return report, nil
}

func (s *GapReportService) build(ctx context.Context, customerID uuid.UUID) (*coverage.Report, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	var (
		baseline   *domain.Baseline
		tools      []domain.Tool
		categories []domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := s.baselineRepo.GetByID(gctx, customer.BaselineID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBaselineNotFound
			}
			return fmt.Errorf("failed to get baseline: %w", err)
		}
		baseline = b
		return nil
	})
	g.Go(func() error {
		t, err := s.toolRepo.List(gctx, nil)
		if err != nil {
			return fmt.Errorf("failed to list tools: %w", err)
		}
		tools = t
		return nil
	})
	g.Go(func() error {
		c, err := s.categoryRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}
		categories = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return coverage.BuildReport(customer, baseline, tools, categories), nil
}

// Generate returns the structured report for a customer
func (s *GapReportService) Generate(ctx context.Context, customerID uuid.UUID) (*domain.GapReportDTO, error) {
	report, err := s.Build(ctx, customerID)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToGapReportDTO(report, time.Now())
	return &dto, nil
}

// RenderText returns the plain-text export and its download file name
func (s *GapReportService) RenderText(ctx context.Context, customerID uuid.UUID) (text string, filename string, err error) {
	report, err := s.Build(ctx, customerID)
	if err != nil {
		return "", "", err
	}
	return coverage.RenderText(report), coverage.ExportFilename(report.Customer.Name, time.Now()), nil
}

// Export renders the text report and stores it in file storage
func (s *GapReportService) Export(ctx context.Context, customerID uuid.UUID) (*domain.GapReportExportDTO, error) {
	if s.storage == nil {
		return nil, errors.New("file storage is not configured")
	}

	text, filename, err := s.RenderText(ctx, customerID)
	if err != nil {
		return nil, err
	}

	obj, err := s.storage.Upload(ctx, filename, exportContentType, strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("failed to store gap report: %w", err)
	}

	s.logger.Info("gap report exported",
		zap.String("customer_id", customerID.String()),
		zap.String("storage_path", obj.Path),
		zap.Int64("size", obj.Size))

	return &domain.GapReportExportDTO{
		Filename:    filename,
		StoragePath: obj.Path,
		Size:        obj.Size,
	}, nil
}
