package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSecrets struct {
	values map[string]string
	fail   map[string]bool
}

func (f *fakeSecrets) GetSecretOrEnv(_ context.Context, secretName, _ string) (string, error) {
	if f.fail[secretName] {
		return "", errors.New("vault unavailable")
	}
	return f.values[secretName], nil
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "local", cfg.SyncLock.Backend)
	assert.Equal(t, 0, cfg.PSA.RequestTimeout)
	assert.Equal(t, "0 0 2 * * *", cfg.PSA.PeriodicSyncCron)
	assert.Equal(t, time.Hour, cfg.PSA.PeriodicSyncTimeoutDuration())
	assert.Equal(t, 2*time.Hour, cfg.SyncLock.TTLDuration())
	assert.Contains(t, cfg.RateLimit.WhitelistPaths, "/health")
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("PSA_REQUESTTIMEOUT", "15")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, 15*time.Second, cfg.PSA.RequestTimeoutDuration())
}

func TestLoadWithSecrets_WithoutVault(t *testing.T) {
	t.Setenv("USE_AZURE_KEY_VAULT", "")
	t.Setenv("DATABASE_PASSWORD", "from-env")

	cfg, err := LoadWithSecrets(context.Background(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
}

func TestLoadWithSecrets_VaultRequiresName(t *testing.T) {
	t.Setenv("USE_AZURE_KEY_VAULT", "true")
	t.Setenv("APP_ENVIRONMENT", "staging")
	t.Setenv("AZURE_KEY_VAULT_NAME", "")
	t.Setenv("SECRETS_KEYVAULTNAME", "")

	_, err := LoadWithSecrets(context.Background(), zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AZURE_KEY_VAULT_NAME")
}

func TestApplySecrets(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Host: "localhost", User: "app"}}
	provider := &fakeSecrets{values: map[string]string{
		"postgres-host":             "db.internal",
		"postgres-password":         "s3cret",
		"storage-connection-string": "DefaultEndpointsProtocol=https",
		"redis-password":            "redis-pass",
	}}

	require.NoError(t, applySecrets(context.Background(), cfg, provider))
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "app", cfg.Database.User, "empty secrets keep the configured value")
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "DefaultEndpointsProtocol=https", cfg.Storage.CloudConnectionString)
	assert.Equal(t, "redis-pass", cfg.SyncLock.RedisPassword)
}

func TestApplySecrets_PasswordRequired(t *testing.T) {
	cfg := &Config{}
	provider := &fakeSecrets{fail: map[string]bool{"postgres-password": true}}

	err := applySecrets(context.Background(), cfg, provider)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database password")
}
