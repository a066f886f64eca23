package logger

import (
	"fmt"

	"github.com/coretech/stack-tracker/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger. JSON output (or the production environment) gets
// ISO8601 timestamps under "timestamp" and no sampling: a sync run logs one entry per
// failing company and none of them may be dropped.
func NewLogger(cfg *config.LoggingConfig, appCfg *config.AppConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" || appCfg.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
		zapCfg.Sampling = nil
		zapCfg.EncoderConfig.TimeKey = "timestamp"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	zapCfg.InitialFields = map[string]interface{}{
		"app":         appCfg.Name,
		"environment": appCfg.Environment,
	}

	log, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s logger: %w", zapCfg.Encoding, err)
	}

	return log, nil
}

// WithRequest tags entries with the HTTP request they belong to
func WithRequest(log *zap.Logger, method, path, requestID string) *zap.Logger {
	return log.With(
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	)
}

// WithSyncRun tags every entry with the sync run it belongs to
func WithSyncRun(log *zap.Logger, runID string, trigger string) *zap.Logger {
	return log.With(
		zap.String("sync_run_id", runID),
		zap.String("sync_trigger", trigger),
	)
}

// WithCompany tags entries with the PSA company being reconciled. name may be empty
// when only the id is known.
func WithCompany(log *zap.Logger, companyID int, name string) *zap.Logger {
	if name == "" {
		return log.With(zap.Int("psa_company_id", companyID))
	}
	return log.With(
		zap.Int("psa_company_id", companyID),
		zap.String("psa_company_name", name),
	)
}
