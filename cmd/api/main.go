package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coretech/stack-tracker/docs"
	"github.com/coretech/stack-tracker/internal/config"
	"github.com/coretech/stack-tracker/internal/database"
	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/coretech/stack-tracker/internal/http/handler"
	"github.com/coretech/stack-tracker/internal/http/middleware"
	"github.com/coretech/stack-tracker/internal/http/router"
	"github.com/coretech/stack-tracker/internal/jobs"
	"github.com/coretech/stack-tracker/internal/lock"
	"github.com/coretech/stack-tracker/internal/logger"
	"github.com/coretech/stack-tracker/internal/observability"
	"github.com/coretech/stack-tracker/internal/repository"
	"github.com/coretech/stack-tracker/internal/service"
	"github.com/coretech/stack-tracker/internal/storage"
	"go.uber.org/zap"
)

// @title Stack Tracker API
// @version 1.0
// @description Security tool catalog, customer coverage gap reports and ConnectWise PSA sync for MSPs

// @contact.name API Support
// @contact.email support@coretech.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	switch basicCfg.App.Environment {
	case "staging":
		docs.SwaggerInfo.Host = "stack-tracker-staging.coretech.io"
	case "production":
		docs.SwaggerInfo.Host = "stack-tracker.coretech.io"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// In development secrets come from the environment, elsewhere from Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Info("Database schema migrated")
	}

	shutdownTracer, err := observability.InitTracer(cfg.Telemetry.OTLPEndpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	var metrics *observability.Metrics
	if cfg.Telemetry.MetricsEnabled {
		metrics = observability.NewMetrics()
	}

	locker, err := lock.NewLocker(&cfg.SyncLock, log)
	if err != nil {
		return fmt.Errorf("failed to initialize sync lock: %w", err)
	}

	fileStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(db)
	toolRepo := repository.NewToolRepository(db)
	baselineRepo := repository.NewBaselineRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	typeMappingRepo := repository.NewTypeMappingRepository(db)
	skuMappingRepo := repository.NewSkuMappingRepository(db)
	syncRunRepo := repository.NewSyncRunRepository(db)

	// Initialize services
	clientFactory := service.NewPSAClientFactory(&cfg.PSA, metrics, log)

	categoryService := service.NewCategoryService(categoryRepo, log)
	toolService := service.NewToolService(toolRepo, categoryRepo, log)
	baselineService := service.NewBaselineService(baselineRepo, toolRepo, customerRepo, log)
	customerService := service.NewCustomerService(customerRepo, baselineRepo, toolRepo, log)
	gapReportService := service.NewGapReportService(customerRepo, baselineRepo, toolRepo, categoryRepo, fileStorage, metrics, log)
	settingsService := service.NewSettingsService(settingsRepo, baselineRepo, clientFactory, log)
	mappingService := service.NewPSAMappingService(typeMappingRepo, skuMappingRepo, baselineRepo, toolRepo, log)
	syncService := service.NewSyncService(
		settingsRepo,
		customerRepo,
		syncRunRepo,
		repository.NewMappingStore(typeMappingRepo, skuMappingRepo, toolRepo, baselineRepo),
		clientFactory,
		locker,
		service.NewProgressRegister(),
		metrics,
		log,
	)
	syncService.ResetProgress()

	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	rt := router.NewRouter(cfg, log, db, metrics, rateLimiter, router.Handlers{
		Category: handler.NewCategoryHandler(categoryService, log),
		Tool:     handler.NewToolHandler(toolService, log),
		Baseline: handler.NewBaselineHandler(baselineService, log),
		Customer: handler.NewCustomerHandler(customerService, gapReportService, log),
		PSA:      handler.NewPSAHandler(settingsService, mappingService, syncService, log),
		Export:   handler.NewExportHandler(fileStorage, log),
	})

	var scheduler *jobs.Scheduler
	if cfg.PSA.PeriodicSyncEnabled {
		scheduler = jobs.NewScheduler(log)

		if err := jobs.RegisterPSASyncJob(
			scheduler,
			syncService,
			log,
			cfg.PSA.PeriodicSyncCron,
			cfg.PSA.PeriodicSyncTimeoutDuration(),
			cfg.PSA.StartupSync,
			service.ErrSyncAlreadyRunning,
		); err != nil {
			log.Error("Failed to register PSA sync job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with PSA sync job",
				zap.String("cron_expr", cfg.PSA.PeriodicSyncCron),
				zap.Duration("timeout", cfg.PSA.PeriodicSyncTimeoutDuration()),
			)
		}
	} else {
		log.Info("PSA periodic sync disabled")
		if cfg.PSA.StartupSync {
			go func() {
				if _, err := syncService.Run(context.Background(), domain.SyncTriggerStartup); err != nil {
					log.Warn("Startup sync did not run", zap.Error(err))
				}
			}()
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		if err := shutdownTracer(ctx); err != nil {
			log.Warn("Error flushing traces", zap.Error(err))
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
