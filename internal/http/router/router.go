package router

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coretech/stack-tracker/internal/config"
	"github.com/coretech/stack-tracker/internal/database"
	"github.com/coretech/stack-tracker/internal/http/handler"
	"github.com/coretech/stack-tracker/internal/http/middleware"
	"github.com/coretech/stack-tracker/internal/observability"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/coretech/stack-tracker/docs" // Import generated swagger docs
)

const healthCheckTimeout = 3 * time.Second

// Handlers groups the API handlers mounted under /api/v1
type Handlers struct {
	Category *handler.CategoryHandler
	Tool     *handler.ToolHandler
	Baseline *handler.BaselineHandler
	Customer *handler.CustomerHandler
	PSA      *handler.PSAHandler
	Export   *handler.ExportHandler
}

type Router struct {
	cfg         *config.Config
	logger      *zap.Logger
	db          *gorm.DB
	metrics     *observability.Metrics
	rateLimiter *middleware.RateLimiter
	handlers    Handlers
}

// NewRouter creates the HTTP router. metrics may be nil when metrics are disabled.
func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	metrics *observability.Metrics,
	rateLimiter *middleware.RateLimiter,
	handlers Handlers,
) *Router {
	return &Router{
		cfg:         cfg,
		logger:      logger,
		db:          db,
		metrics:     metrics,
		rateLimiter: rateLimiter,
		handlers:    handlers,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.Metrics(rt.metrics))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Liveness probe
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/health/db", rt.databaseHealth)
	r.Get("/health/ready", rt.readiness)

	if rt.metrics != nil {
		r.Handle("/metrics", rt.metrics.Handler())
	}

	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	r.Get("/exports/*", rt.handlers.Export.Download)

	r.Route("/api/v1", func(r chi.Router) {
		if rt.cfg.Server.RequestTimeout > 0 {
			r.Use(chimw.Timeout(time.Duration(rt.cfg.Server.RequestTimeout) * time.Second))
		}

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", rt.handlers.Category.List)
			r.Post("/", rt.handlers.Category.Create)
			r.Get("/{id}", rt.handlers.Category.GetByID)
			r.Put("/{id}", rt.handlers.Category.Update)
			r.Delete("/{id}", rt.handlers.Category.Delete)
		})

		r.Route("/tools", func(r chi.Router) {
			r.Get("/", rt.handlers.Tool.List)
			r.Post("/", rt.handlers.Tool.Create)
			r.Get("/{id}", rt.handlers.Tool.GetByID)
			r.Put("/{id}", rt.handlers.Tool.Update)
			r.Delete("/{id}", rt.handlers.Tool.Delete)
		})

		r.Route("/baselines", func(r chi.Router) {
			r.Get("/", rt.handlers.Baseline.List)
			r.Post("/", rt.handlers.Baseline.Create)
			r.Get("/{id}", rt.handlers.Baseline.GetByID)
			r.Put("/{id}", rt.handlers.Baseline.Update)
			r.Delete("/{id}", rt.handlers.Baseline.Delete)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", rt.handlers.Customer.List)
			r.Post("/", rt.handlers.Customer.Create)
			r.Post("/bulk", rt.handlers.Customer.BulkCreate)
			r.Get("/{id}", rt.handlers.Customer.GetByID)
			r.Put("/{id}", rt.handlers.Customer.Update)
			r.Delete("/{id}", rt.handlers.Customer.Delete)
			r.Get("/{id}/gap-report", rt.handlers.Customer.GapReport)
			r.Get("/{id}/gap-report.txt", rt.handlers.Customer.GapReportText)
			r.Post("/{id}/gap-report/export", rt.handlers.Customer.ExportGapReport)
		})

		r.Route("/psa", func(r chi.Router) {
			r.Get("/settings", rt.handlers.PSA.GetSettings)
			r.Put("/settings", rt.handlers.PSA.SaveSettings)
			r.Post("/test-connection", rt.handlers.PSA.TestConnection)
			r.Get("/company-types", rt.handlers.PSA.ListCompanyTypes)

			r.Get("/type-mappings", rt.handlers.PSA.ListTypeMappings)
			r.Post("/type-mappings", rt.handlers.PSA.CreateTypeMapping)
			r.Put("/type-mappings/{id}", rt.handlers.PSA.UpdateTypeMapping)
			r.Delete("/type-mappings/{id}", rt.handlers.PSA.DeleteTypeMapping)

			r.Get("/sku-mappings", rt.handlers.PSA.ListSkuMappings)
			r.Post("/sku-mappings", rt.handlers.PSA.CreateSkuMapping)
			r.Put("/sku-mappings/{id}", rt.handlers.PSA.UpdateSkuMapping)
			r.Delete("/sku-mappings/{id}", rt.handlers.PSA.DeleteSkuMapping)

			r.Post("/sync", rt.handlers.PSA.StartSync)
			r.Get("/sync/progress", rt.handlers.PSA.SyncProgress)
			r.Post("/sync/companies/{companyId}", rt.handlers.PSA.SyncCompany)
			r.Get("/sync-logs", rt.handlers.PSA.SyncLogs)
		})
	})

	return r
}

// databaseHealth is the readiness probe with detailed pool stats
func (rt *Router) databaseHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	stats := database.HealthCheckWithStats(ctx, rt.db)
	status := http.StatusOK
	if stats.Error != "" {
		rt.logger.Error("Database health check failed", zap.String("error", stats.Error))
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(stats)
}

// readiness checks every dependency the API cannot serve without
func (rt *Router) readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	checks := make(map[string]interface{})
	allHealthy := true

	if err := database.HealthCheck(ctx, rt.db); err != nil {
		rt.logger.Error("Database health check failed", zap.Error(err))
		checks["database"] = map[string]interface{}{
			"status": "unhealthy",
			"error":  err.Error(),
		}
		allHealthy = false
	} else {
		checks["database"] = map[string]interface{}{
			"status": "healthy",
		}
	}

	status, overall := http.StatusOK, "healthy"
	if !allHealthy {
		status, overall = http.StatusServiceUnavailable, "unhealthy"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status": overall,
		"checks": checks,
	})
}
