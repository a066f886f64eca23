package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/coretech/stack-tracker/internal/domain"
	"go.uber.org/zap"
)

// PSASyncJobName is the name of the scheduled PSA sync job
const PSASyncJobName = "psa_sync"

// SyncRunner is the part of the sync service the job needs
type SyncRunner interface {
	Run(ctx context.Context, trigger domain.SyncTrigger) (*domain.SyncResult, error)
}

// PSASyncJob runs a full PSA reconciliation on a schedule
type PSASyncJob struct {
	runner    SyncRunner
	logger    *zap.Logger
	timeout   time.Duration
	isRunning func(error) bool
}

// NewPSASyncJob creates a new PSA sync job. isRunning reports whether an error from the
// runner means another run already holds the sync lock; such runs are skipped quietly.
func NewPSASyncJob(runner SyncRunner, logger *zap.Logger, timeout time.Duration, isRunning func(error) bool) *PSASyncJob {
	return &PSASyncJob{
		runner:    runner,
		logger:    logger,
		timeout:   timeout,
		isRunning: isRunning,
	}
}

// Run executes a scheduled sync
func (j *PSASyncJob) Run() {
	j.run(domain.SyncTriggerScheduled)
}

// RunStartupSync executes one sync right after the API starts
func (j *PSASyncJob) RunStartupSync() {
	j.run(domain.SyncTriggerStartup)
}

func (j *PSASyncJob) run(trigger domain.SyncTrigger) {
	ctx := context.Background()
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := j.runner.Run(ctx, trigger)
	if err != nil {
		if j.isRunning != nil && j.isRunning(err) {
			j.logger.Info("PSA sync skipped, another run is in progress",
				zap.String("trigger", string(trigger)))
			return
		}
		j.logger.Error("PSA sync job failed",
			zap.String("trigger", string(trigger)),
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}

	if !result.Success {
		j.logger.Warn("PSA sync job finished with errors",
			zap.String("trigger", string(trigger)),
			zap.Strings("errors", result.Errors),
			zap.Duration("duration", time.Since(start)))
		return
	}

	j.logger.Info("PSA sync job completed",
		zap.String("trigger", string(trigger)),
		zap.Int("companies_found", result.CompaniesFound),
		zap.Int("companies_imported", result.CompaniesImported),
		zap.Int("companies_updated", result.CompaniesUpdated),
		zap.Duration("duration", time.Since(start)))
}

// RegisterPSASyncJob registers the PSA sync job with the scheduler. When runStartupSync
// is true one sync also starts immediately in a background goroutine so it does not block
// API startup.
func RegisterPSASyncJob(scheduler *Scheduler, runner SyncRunner, logger *zap.Logger, cronExpr string, timeout time.Duration, runStartupSync bool, alreadyRunning error) error {
	job := NewPSASyncJob(runner, logger, timeout, func(err error) bool {
		return alreadyRunning != nil && errors.Is(err, alreadyRunning)
	})

	if runStartupSync {
		go job.RunStartupSync()
	}

	return scheduler.AddJob(PSASyncJobName, cronExpr, job.Run)
}
