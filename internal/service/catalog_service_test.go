package service_test

import (
	"context"
	"testing"

	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/coretech/stack-tracker/internal/repository"
	"github.com/coretech/stack-tracker/internal/service"
	"github.com/coretech/stack-tracker/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type catalogServices struct {
	db         *gorm.DB
	categories *service.CategoryService
	tools      *service.ToolService
	baselines  *service.BaselineService
}

func setupCatalogServices(t *testing.T) *catalogServices {
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	categoryRepo := repository.NewCategoryRepository(db)
	toolRepo := repository.NewToolRepository(db)
	baselineRepo := repository.NewBaselineRepository(db)
	customerRepo := repository.NewCustomerRepository(db)

	return &catalogServices{
		db:         db,
		categories: service.NewCategoryService(categoryRepo, logger),
		tools:      service.NewToolService(toolRepo, categoryRepo, logger),
		baselines:  service.NewBaselineService(baselineRepo, toolRepo, customerRepo, logger),
	}
}

func TestCategoryService(t *testing.T) {
	s := setupCatalogServices(t)
	ctx := context.Background()

	t.Run("create and list in sort order", func(t *testing.T) {
		_, err := s.categories.Create(ctx, &domain.CreateCategoryRequest{Name: "Backup & DR", SortOrder: 5})
		require.NoError(t, err)
		rmm, err := s.categories.Create(ctx, &domain.CreateCategoryRequest{Name: "RMM", Description: "Remote monitoring", SortOrder: 1})
		require.NoError(t, err)
		assert.Equal(t, "Remote monitoring", rmm.Description)
		assert.NotEmpty(t, rmm.CreatedAt)

		list, err := s.categories.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "RMM", list[0].Name)
		assert.Equal(t, "Backup & DR", list[1].Name)
	})

	t.Run("update", func(t *testing.T) {
		created, err := s.categories.Create(ctx, &domain.CreateCategoryRequest{Name: "Email Security"})
		require.NoError(t, err)

		updated, err := s.categories.Update(ctx, created.ID, &domain.UpdateCategoryRequest{Name: "Email & Collaboration", SortOrder: 3})
		require.NoError(t, err)
		assert.Equal(t, "Email & Collaboration", updated.Name)
		assert.Equal(t, 3, updated.SortOrder)
	})

	t.Run("missing category", func(t *testing.T) {
		_, err := s.categories.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, service.ErrCategoryNotFound)

		_, err = s.categories.Update(ctx, uuid.New(), &domain.UpdateCategoryRequest{Name: "x"})
		assert.ErrorIs(t, err, service.ErrCategoryNotFound)

		assert.ErrorIs(t, s.categories.Delete(ctx, uuid.New()), service.ErrCategoryNotFound)
	})

	t.Run("delete removes the category's tools", func(t *testing.T) {
		category, err := s.categories.Create(ctx, &domain.CreateCategoryRequest{Name: "Identity"})
		require.NoError(t, err)
		tool, err := s.tools.Create(ctx, &domain.CreateToolRequest{Name: "Duo", CategoryID: category.ID})
		require.NoError(t, err)

		require.NoError(t, s.categories.Delete(ctx, category.ID))

		_, err = s.tools.GetByID(ctx, tool.ID)
		assert.ErrorIs(t, err, service.ErrToolNotFound)
	})
}

func TestToolService(t *testing.T) {
	s := setupCatalogServices(t)
	ctx := context.Background()

	security := testutil.CreateTestCategory(t, s.db, "Endpoint Security")
	rmm := testutil.CreateTestCategory(t, s.db, "RMM")

	t.Run("create dedupes tags", func(t *testing.T) {
		tool, err := s.tools.Create(ctx, &domain.CreateToolRequest{
			Name:       "SentinelOne",
			Vendor:     testutil.StrPtr("SentinelOne"),
			CategoryID: security.ID,
			Tags:       []string{"edr", "edr", "av"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"edr", "av"}, tool.Tags)
		assert.Equal(t, "SentinelOne", *tool.Vendor)
	})

	t.Run("create without tags returns an empty list", func(t *testing.T) {
		tool, err := s.tools.Create(ctx, &domain.CreateToolRequest{Name: "NinjaOne", CategoryID: rmm.ID})
		require.NoError(t, err)
		assert.NotNil(t, tool.Tags)
		assert.Empty(t, tool.Tags)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		_, err := s.tools.Create(ctx, &domain.CreateToolRequest{Name: "Ghost", CategoryID: uuid.New()})
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("list filters by category", func(t *testing.T) {
		all, err := s.tools.List(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		filtered, err := s.tools.List(ctx, &rmm.ID)
		require.NoError(t, err)
		require.Len(t, filtered, 1)
		assert.Equal(t, "NinjaOne", filtered[0].Name)
	})

	t.Run("update moves a tool between categories", func(t *testing.T) {
		tool := testutil.CreateTestTool(t, s.db, "Huntress", rmm.ID)
		updated, err := s.tools.Update(ctx, tool.ID, &domain.UpdateToolRequest{
			Name:       "Huntress MDR",
			CategoryID: security.ID,
			Tags:       []string{"mdr"},
		})
		require.NoError(t, err)
		assert.Equal(t, security.ID, updated.CategoryID)
		assert.Equal(t, []string{"mdr"}, updated.Tags)

		_, err = s.tools.Update(ctx, tool.ID, &domain.UpdateToolRequest{Name: "x", CategoryID: uuid.New()})
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("delete", func(t *testing.T) {
		tool := testutil.CreateTestTool(t, s.db, "Temp", rmm.ID)
		require.NoError(t, s.tools.Delete(ctx, tool.ID))
		assert.ErrorIs(t, s.tools.Delete(ctx, tool.ID), service.ErrToolNotFound)
	})
}

func TestBaselineService(t *testing.T) {
	s := setupCatalogServices(t)
	ctx := context.Background()

	category := testutil.CreateTestCategory(t, s.db, "Endpoint Security")
	s1 := testutil.CreateTestTool(t, s.db, "SentinelOne", category.ID)
	hu := testutil.CreateTestTool(t, s.db, "Huntress", category.ID)
	bd := testutil.CreateTestTool(t, s.db, "Bitdefender", category.ID)

	t.Run("create dedupes tool lists", func(t *testing.T) {
		baseline, err := s.baselines.Create(ctx, &domain.CreateBaselineRequest{
			Name:            "SMB Standard",
			RequiredToolIDs: []string{s1.ID.String(), s1.ID.String(), hu.ID.String()},
			OptionalToolIDs: []string{bd.ID.String()},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{s1.ID.String(), hu.ID.String()}, baseline.RequiredToolIDs)
		assert.Equal(t, []string{bd.ID.String()}, baseline.OptionalToolIDs)
	})

	t.Run("empty baseline is allowed", func(t *testing.T) {
		baseline, err := s.baselines.Create(ctx, &domain.CreateBaselineRequest{Name: "Empty"})
		require.NoError(t, err)
		assert.Equal(t, []string{}, baseline.RequiredToolIDs)
		assert.Equal(t, []string{}, baseline.OptionalToolIDs)
	})

	t.Run("overlap between required and optional is rejected", func(t *testing.T) {
		_, err := s.baselines.Create(ctx, &domain.CreateBaselineRequest{
			Name:            "Overlap",
			RequiredToolIDs: []string{s1.ID.String()},
			OptionalToolIDs: []string{s1.ID.String()},
		})
		assert.ErrorIs(t, err, service.ErrInvalidInput)
		assert.ErrorIs(t, err, service.ErrBaselineToolOverlap)
	})

	t.Run("unknown tools are rejected", func(t *testing.T) {
		_, err := s.baselines.Create(ctx, &domain.CreateBaselineRequest{
			Name:            "Ghost",
			RequiredToolIDs: []string{uuid.NewString()},
		})
		assert.ErrorIs(t, err, service.ErrInvalidInput)

		_, err = s.baselines.Create(ctx, &domain.CreateBaselineRequest{
			Name:            "Garbage",
			OptionalToolIDs: []string{"not-a-uuid"},
		})
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("update replaces both lists", func(t *testing.T) {
		baseline := testutil.CreateTestBaseline(t, s.db, "Compliance Plus", []uuid.UUID{s1.ID}, nil)
		updated, err := s.baselines.Update(ctx, baseline.ID, &domain.UpdateBaselineRequest{
			Name:            "Compliance Plus",
			RequiredToolIDs: []string{hu.ID.String()},
			OptionalToolIDs: []string{s1.ID.String()},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{hu.ID.String()}, updated.RequiredToolIDs)
		assert.Equal(t, []string{s1.ID.String()}, updated.OptionalToolIDs)

		_, err = s.baselines.Update(ctx, uuid.New(), &domain.UpdateBaselineRequest{Name: "x"})
		assert.ErrorIs(t, err, service.ErrBaselineNotFound)
	})

	t.Run("delete is blocked while customers use the baseline", func(t *testing.T) {
		baseline := testutil.CreateTestBaseline(t, s.db, "Co-Managed IT", nil, nil)
		customer := testutil.CreateTestCustomer(t, s.db, "Acme", baseline.ID)

		err := s.baselines.Delete(ctx, baseline.ID)
		assert.ErrorIs(t, err, service.ErrBaselineInUse)

		require.NoError(t, s.db.Delete(customer).Error)
		require.NoError(t, s.baselines.Delete(ctx, baseline.ID))

		_, err = s.baselines.GetByID(ctx, baseline.ID)
		assert.ErrorIs(t, err, service.ErrBaselineNotFound)
	})
}
