package main

import (
	"context"
	"fmt"
	"os"

	"github.com/coretech/stack-tracker/internal/config"
	"github.com/coretech/stack-tracker/internal/database"
	"github.com/coretech/stack-tracker/internal/logger"
	"github.com/coretech/stack-tracker/internal/seed"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

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
	}

	result, err := seed.Run(ctx, db, log)
	if err != nil {
		return err
	}
	if result.Skipped {
		fmt.Println("Catalog already present, nothing to seed")
		return nil
	}

	log.Info("Seed completed", zap.Int("tools", result.Tools))
	fmt.Printf("Seeded %d categories, %d tools, %d baselines\n", result.Categories, result.Tools, result.Baselines)
	return nil
}
