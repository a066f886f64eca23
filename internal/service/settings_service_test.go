package service_test

import (
	"context"
	"testing"

	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/coretech/stack-tracker/internal/psa"
	"github.com/coretech/stack-tracker/internal/repository"
	"github.com/coretech/stack-tracker/internal/service"
	"github.com/coretech/stack-tracker/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupSettingsService(t *testing.T) (*service.SettingsService, *fakePSA, *gorm.DB) {
	db := testutil.SetupTestDB(t)
	fake := newFakePSA()
	svc := service.NewSettingsService(
		repository.NewSettingsRepository(db),
		repository.NewBaselineRepository(db),
		fake.factory(),
		zap.NewNop(),
	)
	return svc, fake, db
}

func validSettings(key domain.SecretUpdate) *domain.SaveSettingsRequest {
	return &domain.SaveSettingsRequest{
		CompanyID:  "acme",
		PublicKey:  "pub",
		PrivateKey: key,
		SiteURL:    "cw.example.com",
		ClientID:   "client-id",
		Enabled:    true,
	}
}

func TestSettingsService_GetBeforeSave(t *testing.T) {
	svc, _, _ := setupSettingsService(t)

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, service.ErrSettingsNotConfigured)
}

func TestSettingsService_Save(t *testing.T) {
	svc, _, db := setupSettingsService(t)
	ctx := context.Background()

	t.Run("first save requires a private key", func(t *testing.T) {
		_, err := svc.Save(ctx, validSettings(domain.KeepSecret()))
		assert.ErrorIs(t, err, service.ErrInvalidInput)
		assert.ErrorIs(t, err, service.ErrPrivateKeyRequired)
	})

	t.Run("empty replacement key is rejected", func(t *testing.T) {
		_, err := svc.Save(ctx, validSettings(domain.ReplaceSecret("  ")))
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("save never exposes the key", func(t *testing.T) {
		dto, err := svc.Save(ctx, validSettings(domain.ReplaceSecret("priv")))
		require.NoError(t, err)
		assert.True(t, dto.HasPrivateKey)
		assert.True(t, dto.Enabled)
		assert.Equal(t, "cw.example.com", dto.SiteURL)
	})

	t.Run("omitted key keeps the stored one", func(t *testing.T) {
		req := validSettings(domain.KeepSecret())
		req.PublicKey = "pub2"
		_, err := svc.Save(ctx, req)
		require.NoError(t, err)

		stored, err := repository.NewSettingsRepository(db).Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "priv", stored.PrivateKey)
		assert.Equal(t, "pub2", stored.PublicKey)

		dto, err := svc.Get(ctx)
		require.NoError(t, err)
		assert.True(t, dto.HasPrivateKey)
	})

	t.Run("default baseline must exist", func(t *testing.T) {
		req := validSettings(domain.KeepSecret())
		missing := uuid.New()
		req.DefaultBaselineID = &missing
		_, err := svc.Save(ctx, req)
		assert.ErrorIs(t, err, service.ErrInvalidInput)

		baseline := testutil.CreateTestBaseline(t, db, "SMB Standard", nil, nil)
		req.DefaultBaselineID = &baseline.ID
		dto, err := svc.Save(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, baseline.ID, *dto.DefaultBaselineID)
	})
}

func TestSettingsService_TestConnection(t *testing.T) {
	svc, fake, _ := setupSettingsService(t)
	ctx := context.Background()

	t.Run("nothing stored", func(t *testing.T) {
		res, err := svc.TestConnection(ctx, nil)
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "ConnectWise settings not configured", res.Message)
	})

	t.Run("unsaved credentials need every field", func(t *testing.T) {
		_, err := svc.TestConnection(ctx, &domain.TestConnectionRequest{CompanyID: "acme"})
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("unsaved credentials", func(t *testing.T) {
		res, err := svc.TestConnection(ctx, &domain.TestConnectionRequest{
			CompanyID:  "other",
			PublicKey:  "p",
			PrivateKey: domain.ReplaceSecret("k"),
			SiteURL:    "cw.other.test",
			ClientID:   "c",
		})
		require.NoError(t, err)
		assert.True(t, res.Success)
		last := fake.credsSeen[len(fake.credsSeen)-1]
		assert.Equal(t, psa.Credentials{CompanyID: "other", PublicKey: "p", PrivateKey: "k", SiteURL: "cw.other.test", ClientID: "c"}, last)
	})

	_, err := svc.Save(ctx, validSettings(domain.ReplaceSecret("stored-key")))
	require.NoError(t, err)

	t.Run("stored settings", func(t *testing.T) {
		res, err := svc.TestConnection(ctx, &domain.TestConnectionRequest{})
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "stored-key", fake.credsSeen[len(fake.credsSeen)-1].PrivateKey)
	})

	t.Run("missing key falls back to the stored one", func(t *testing.T) {
		_, err := svc.TestConnection(ctx, &domain.TestConnectionRequest{
			CompanyID: "acme",
			PublicKey: "new-pub",
			SiteURL:   "cw.example.com",
			ClientID:  "client-id",
		})
		require.NoError(t, err)
		last := fake.credsSeen[len(fake.credsSeen)-1]
		assert.Equal(t, "stored-key", last.PrivateKey)
		assert.Equal(t, "new-pub", last.PublicKey)
	})

	t.Run("failure is reported in the result", func(t *testing.T) {
		fake.connection = psa.ConnectionResult{Success: false, Message: "ConnectWise API error: 401 - denied"}
		res, err := svc.TestConnection(ctx, nil)
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "ConnectWise API error: 401 - denied", res.Message)
	})
}

func TestSettingsService_ListCompanyTypes(t *testing.T) {
	svc, _, _ := setupSettingsService(t)
	ctx := context.Background()

	_, err := svc.ListCompanyTypes(ctx)
	assert.ErrorIs(t, err, service.ErrSettingsNotConfigured)

	_, err = svc.Save(ctx, validSettings(domain.ReplaceSecret("priv")))
	require.NoError(t, err)

	types, err := svc.ListCompanyTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "Client", types[0].Name)
}
