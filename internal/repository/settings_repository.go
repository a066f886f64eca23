package repository

import (
	"context"
	"errors"
	"time"

	"github.com/coretech/stack-tracker/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepository stores the single PSA settings row
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the settings row, or nil when none has been saved yet
func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	var settings domain.Settings
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Save upserts the settings row. apply receives the current row (nil on first save) and
// returns the row to store. It runs inside the transaction, after the row is locked.
func (r *SettingsRepository) Save(ctx context.Context, apply func(current *domain.Settings) (*domain.Settings, error)) (*domain.Settings, error) {
	var saved *domain.Settings
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current domain.Settings
		query := tx
		if tx.Dialector.Name() == "postgres" {
			query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var existing *domain.Settings
		err := query.Order("created_at ASC").First(&current).Error
		switch {
		case err == nil:
			existing = &current
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		next, err := apply(existing)
		if err != nil {
			return err
		}
		if existing != nil {
			next.ID = existing.ID
			next.CreatedAt = existing.CreatedAt
		}
		if err := tx.Save(next).Error; err != nil {
			return err
		}
		saved = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// RecordSyncOutcome stamps the last sync fields without touching credentials
func (r *SettingsRepository) RecordSyncOutcome(ctx context.Context, status domain.SyncStatus, message string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.Settings{}).
		Where("1 = 1").
		Updates(map[string]interface{}{
			"last_sync_at":      at,
			"last_sync_status":  string(status),
			"last_sync_message": message,
		}).Error
}
