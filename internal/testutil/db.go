package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/coretech/stack-tracker/internal/database"
	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a fresh in-memory SQLite database with every table migrated
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err, "Failed to open in-memory test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// CreateTestCategory creates a category and returns it
func CreateTestCategory(t *testing.T, db *gorm.DB, name string) *domain.Category {
	t.Helper()
	category := &domain.Category{Name: name, Description: name + " tools"}
	require.NoError(t, db.Create(category).Error)
	return category
}

// CreateTestTool creates a tool in the given category and returns it
func CreateTestTool(t *testing.T, db *gorm.DB, name string, categoryID uuid.UUID) *domain.Tool {
	t.Helper()
	tool := &domain.Tool{Name: name, CategoryID: categoryID, Tags: domain.StringList{}}
	require.NoError(t, db.Create(tool).Error)
	return tool
}

// CreateTestBaseline creates a baseline with the given required and optional tools
func CreateTestBaseline(t *testing.T, db *gorm.DB, name string, required, optional []uuid.UUID) *domain.Baseline {
	t.Helper()
	baseline := &domain.Baseline{
		Name:            name,
		RequiredToolIDs: IDStrings(required...),
		OptionalToolIDs: IDStrings(optional...),
	}
	require.NoError(t, db.Create(baseline).Error)
	return baseline
}

// CreateTestCustomer creates a customer assigned to baselineID
func CreateTestCustomer(t *testing.T, db *gorm.DB, name string, baselineID uuid.UUID, toolIDs ...uuid.UUID) *domain.Customer {
	t.Helper()
	customer := &domain.Customer{
		Name:           name,
		ServiceTiers:   domain.StringList{string(domain.ServiceTierEssentials)},
		CurrentToolIDs: IDStrings(toolIDs...),
		BaselineID:     baselineID,
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

// IDStrings converts ids to their string form
func IDStrings(ids ...uuid.UUID) domain.StringList {
	out := make(domain.StringList, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// StrPtr returns a pointer to s
func StrPtr(s string) *string {
	return &s
}

// IntPtr returns a pointer to i
func IntPtr(i int) *int {
	return &i
}
