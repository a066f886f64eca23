package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/coretech/stack-tracker/internal/lock"
	"github.com/coretech/stack-tracker/internal/logger"
	"github.com/coretech/stack-tracker/internal/mapper"
	"github.com/coretech/stack-tracker/internal/observability"
	"github.com/coretech/stack-tracker/internal/psa"
	"github.com/coretech/stack-tracker/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("service")

// MappingStore is the read-only view of the mapping tables and catalog used by sync
type MappingStore interface {
	AllTypeMappings(ctx context.Context) ([]domain.TypeMapping, error)
	AllSkuMappings(ctx context.Context) ([]domain.SkuMapping, error)
	AllTools(ctx context.Context) ([]domain.Tool, error)
	AllBaselines(ctx context.Context) ([]domain.Baseline, error)
}

// SyncService reconciles PSA companies into customers. Only one run is in flight at a
// time; the locker decides whether that holds per process or across replicas.
type SyncService struct {
	settingsRepo *repository.SettingsRepository
	customerRepo *repository.CustomerRepository
	syncRunRepo  *repository.SyncRunRepository
	mappings     MappingStore
	newClient    ClientFactory
	locker       lock.Locker
	progress     *ProgressRegister
	metrics      *observability.Metrics
	logger       *zap.Logger
}

// NewSyncService creates a new sync service instance. metrics may be nil.
func NewSyncService(
	settingsRepo *repository.SettingsRepository,
	customerRepo *repository.CustomerRepository,
	syncRunRepo *repository.SyncRunRepository,
	mappings MappingStore,
	newClient ClientFactory,
	locker lock.Locker,
	progress *ProgressRegister,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *SyncService {
	return &SyncService{
		settingsRepo: settingsRepo,
		customerRepo: customerRepo,
		syncRunRepo:  syncRunRepo,
		mappings:     mappings,
		newClient:    newClient,
		locker:       locker,
		progress:     progress,
		metrics:      metrics,
		logger:       logger,
	}
}

// syncRun owns the mutable state of one run. Every change is published to the
// progress register as a copy.
type syncRun struct {
	id        uuid.UUID
	trigger   domain.SyncTrigger
	startedAt time.Time
	progress  domain.SyncProgress
	result    domain.SyncResult
	register  *ProgressRegister
}

func newSyncRun(register *ProgressRegister, trigger domain.SyncTrigger) *syncRun {
	id := uuid.New()
	now := time.Now().UTC()
	run := &syncRun{
		id:        id,
		trigger:   trigger,
		startedAt: now,
		register:  register,
		progress: domain.SyncProgress{
			RunID:       id,
			Status:      domain.SyncProgressRunning,
			Phase:       domain.SyncPhaseInit,
			CurrentStep: "Initializing",
			Errors:      []string{},
			Warnings:    []domain.SyncWarning{},
			StartedAt:   now,
		},
		result: domain.SyncResult{
			RunID:    id,
			Errors:   []string{},
			Warnings: []domain.SyncWarning{},
		},
	}
	run.publish()
	return run
}

// enter moves to the next phase. It is a no-op on a nil run so the single-company
// path can share the preparation steps without tracking progress.
func (r *syncRun) enter(phase domain.SyncPhase, step string) {
	if r == nil {
		return
	}
	r.progress.Phase = phase
	r.progress.CurrentStep = step
	r.publish()
}

func (r *syncRun) publish() {
	if r == nil {
		return
	}
	r.progress.Errors = r.result.Errors
	r.progress.Warnings = r.result.Warnings
	r.register.Set(&r.progress)
}

func (r *syncRun) elapsed() time.Duration {
	return time.Since(r.startedAt)
}

// syncPlan is everything loaded before the first company is processed
type syncPlan struct {
	settings  *domain.Settings
	client    PSAClient
	importing map[string]*domain.TypeMapping
	skuTools  map[string]string
	baselines []domain.Baseline
	companies []psa.Company
}

// matchType returns the mapping of the first company type that is flagged for import
func (p *syncPlan) matchType(company *psa.Company) *domain.TypeMapping {
	for _, name := range company.TypeNames() {
		if m, ok := p.importing[name]; ok {
			return m
		}
	}
	return nil
}

// resolveBaseline picks the mapping's baseline, then the configured default, then the
// first baseline named like a standard, then the oldest baseline.
func (p *syncPlan) resolveBaseline(m *domain.TypeMapping) (uuid.UUID, bool) {
	exists := func(id *uuid.UUID) bool {
		if id == nil {
			return false
		}
		for _, b := range p.baselines {
			if b.ID == *id {
				return true
			}
		}
		return false
	}

	if exists(m.BaselineID) {
		return *m.BaselineID, true
	}
	if p.settings != nil && exists(p.settings.DefaultBaselineID) {
		return *p.settings.DefaultBaselineID, true
	}
	for _, b := range p.baselines {
		if strings.Contains(b.Name, "Standard") {
			return b.ID, true
		}
	}
	if len(p.baselines) > 0 {
		return p.baselines[0].ID, true
	}
	return uuid.Nil, false
}

// companyOutcome is what processing one company produced
type companyOutcome struct {
	outcome             domain.CompanySyncOutcome
	customerID          *uuid.UUID
	agreementsProcessed bool
	toolsActivated      int
	warnings            []domain.SyncWarning
	err                 string
}

func (o companyOutcome) failed(company *psa.Company, err error) companyOutcome {
	o.outcome = domain.CompanyOutcomeFailed
	o.err = fmt.Sprintf("Error processing company %s: %s", company.Name, err.Error())
	return o
}

// Run executes a full sync and blocks until it finishes. Every completed or aborted run
// yields a result; the returned error is only set when the run could not start.
func (s *SyncService) Run(ctx context.Context, trigger domain.SyncTrigger) (*domain.SyncResult, error) {
	release, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	run := newSyncRun(s.progress, trigger)
	return s.execute(ctx, run), nil
}

// Start begins a sync in the background and returns its first progress snapshot.
// The run is detached from ctx cancellation; poll Progress for its state.
func (s *SyncService) Start(ctx context.Context, trigger domain.SyncTrigger) (*domain.SyncProgress, error) {
	release, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}

	run := newSyncRun(s.progress, trigger)
	snapshot := run.progress.Clone()

	go func() {
		defer release()
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("PSA sync panicked", zap.Any("panic", r), zap.String("run_id", run.id.String()))
				s.abortRun(context.WithoutCancel(ctx), run, fmt.Errorf("internal error: %v", r), s.logger)
			}
		}()
		s.execute(context.WithoutCancel(ctx), run)
	}()

	return snapshot, nil
}

// Progress returns a copy of the current or last run's progress, or nil
func (s *SyncService) Progress() *domain.SyncProgress {
	return s.progress.Get()
}

// ResetProgress clears the progress register
func (s *SyncService) ResetProgress() {
	s.progress.Reset()
}

// ListRuns returns the most recent sync log entries, newest first
func (s *SyncService) ListRuns(ctx context.Context, limit int) ([]domain.SyncRunDTO, error) {
	if limit < 1 {
		limit = 20
	}
	if limit > 200 {
		limit = 200
	}

	runs, err := s.syncRunRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync runs: %w", err)
	}

	dtos := make([]domain.SyncRunDTO, len(runs))
	for i := range runs {
		dtos[i] = mapper.ToSyncRunDTO(&runs[i])
	}
	return dtos, nil
}

// SyncCompany runs the per-company pipeline for a single PSA company under the sync
// lock. No sync log entry is written and the progress register is left alone.
func (s *SyncService) SyncCompany(ctx context.Context, externalCompanyID int) (*domain.CompanySyncResult, error) {
	release, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	plan, err := s.prepare(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSyncAborted, err.Error())
	}

	company, err := plan.client.GetCompany(ctx, externalCompanyID)
	if err != nil {
		var apiErr *psa.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: company %d does not exist in the PSA", ErrNotFound, externalCompanyID)
		}
		return nil, fmt.Errorf("failed to fetch company: %w", err)
	}

	out := s.processCompany(ctx, plan, company, s.logger)
	s.countCompany(out.outcome)

	result := &domain.CompanySyncResult{
		ExternalCompanyID: externalCompanyID,
		Outcome:           out.outcome,
		CustomerID:        out.customerID,
		ToolsActivated:    out.toolsActivated,
		Error:             out.err,
		Warnings:          out.warnings,
	}
	if result.Warnings == nil {
		result.Warnings = []domain.SyncWarning{}
	}
	return result, nil
}

func (s *SyncService) acquire(ctx context.Context) (func(), error) {
	release, ok, err := s.locker.TryLock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire sync lock: %w", err)
	}
	if !ok {
		return nil, ErrSyncAlreadyRunning
	}
	return release, nil
}

func (s *SyncService) execute(ctx context.Context, run *syncRun) *domain.SyncResult {
	ctx, span := tracer.Start(ctx, "SyncService.Run")
	defer span.End()
	span.SetAttributes(
		attribute.String("sync.run_id", run.id.String()),
		attribute.String("sync.trigger", string(run.trigger)),
	)

	log := logger.WithSyncRun(s.logger, run.id.String(), string(run.trigger))
	log.Info("PSA sync started")

	plan, err := s.prepare(ctx, run)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return s.abortRun(ctx, run, err, log)
	}

	run.result.CompaniesFound = len(plan.companies)
	run.progress.CompaniesProcessed = 0
	run.progress.CompaniesTotal = len(plan.companies)
	run.enter(domain.SyncPhaseProcessingCompanies, "Processing companies")

	for i := range plan.companies {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return s.cancelRun(ctx, run, err, log)
		}

		company := &plan.companies[i]
		out := s.processCompany(ctx, plan, company, log)

		switch out.outcome {
		case domain.CompanyOutcomeImported:
			run.result.CompaniesImported++
		case domain.CompanyOutcomeUpdated:
			run.result.CompaniesUpdated++
		case domain.CompanyOutcomeSkipped:
			run.result.CompaniesSkipped++
		}
		if out.agreementsProcessed {
			run.result.AgreementsProcessed++
		}
		run.result.ToolsActivated += out.toolsActivated
		run.result.Warnings = append(run.result.Warnings, out.warnings...)
		if out.err != "" {
			run.result.Errors = append(run.result.Errors, out.err)
			logger.WithCompany(log, company.ID, company.Name).Error("company sync failed", zap.String("error", out.err))
		}
		s.countCompany(out.outcome)

		run.progress.CompaniesProcessed = i + 1
		run.publish()
	}

	result := s.completeRun(ctx, run, log)
	span.SetAttributes(
		attribute.Int("sync.companies_found", result.CompaniesFound),
		attribute.Int("sync.errors", len(result.Errors)),
	)
	return result
}

// prepare runs every step before company processing. Any error aborts the run and its
// message becomes the run's only error.
func (s *SyncService) prepare(ctx context.Context, run *syncRun) (*syncPlan, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings == nil {
		return nil, ErrSettingsNotConfigured
	}
	if !settings.Enabled {
		return nil, ErrIntegrationDisabled
	}

	plan := &syncPlan{settings: settings}

	run.enter(domain.SyncPhaseTestingConnection, "Testing connection")
	plan.client = s.newClient(credentialsFrom(settings))
	if res := plan.client.TestConnection(ctx); !res.Success {
		return nil, errors.New("Connection failed: " + res.Message)
	}

	run.enter(domain.SyncPhaseLoadingMappings, "Fetching company type mappings")
	if err := s.loadMappings(ctx, plan); err != nil {
		return nil, err
	}

	if run == nil {
		return plan, nil
	}

	run.enter(domain.SyncPhaseFetchingCompanies, "Fetching companies from ConnectWise")
	companies, err := plan.client.GetAllCompanies(ctx, "", func(soFar, total int) {
		run.progress.CurrentStep = fmt.Sprintf("Fetching companies from ConnectWise (%d/%d)", soFar, total)
		run.progress.CompaniesProcessed = soFar
		run.progress.CompaniesTotal = total
		run.publish()
	})
	if err != nil {
		return nil, err
	}
	plan.companies = companies
	return plan, nil
}

func (s *SyncService) loadMappings(ctx context.Context, plan *syncPlan) error {
	typeMappings, err := s.mappings.AllTypeMappings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load type mappings: %w", err)
	}
	skuMappings, err := s.mappings.AllSkuMappings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load sku mappings: %w", err)
	}
	tools, err := s.mappings.AllTools(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tools: %w", err)
	}
	baselines, err := s.mappings.AllBaselines(ctx)
	if err != nil {
		return fmt.Errorf("failed to load baselines: %w", err)
	}

	plan.importing = make(map[string]*domain.TypeMapping)
	for i := range typeMappings {
		m := &typeMappings[i]
		if m.ShouldImport {
			plan.importing[m.ExternalTypeName] = m
		}
	}
	if len(plan.importing) == 0 {
		return ErrNoImportableTypes
	}
	if len(baselines) == 0 {
		return ErrNoBaselines
	}

	known := make(map[string]struct{}, len(tools))
	for _, t := range tools {
		known[t.ID.String()] = struct{}{}
	}
	plan.skuTools = make(map[string]string)
	for _, m := range skuMappings {
		if m.ToolID == nil {
			continue
		}
		if _, ok := known[m.ToolID.String()]; ok {
			plan.skuTools[m.SKU] = m.ToolID.String()
		}
	}

	plan.baselines = baselines
	return nil
}

// processCompany maps one PSA company onto a customer. Failures are returned in the
// outcome so that one company never stops the others.
func (s *SyncService) processCompany(ctx context.Context, plan *syncPlan, company *psa.Company, log *zap.Logger) companyOutcome {
	ctx, span := tracer.Start(ctx, "SyncService.processCompany")
	defer span.End()
	span.SetAttributes(attribute.Int("psa.company_id", company.ID))
	log = logger.WithCompany(log, company.ID, company.Name)

	out := companyOutcome{outcome: domain.CompanyOutcomeSkipped}

	mapping := plan.matchType(company)
	if mapping == nil {
		span.SetAttributes(attribute.String("sync.outcome", string(out.outcome)))
		return out
	}

	existing, err := s.customerRepo.GetByExternalCompanyID(ctx, company.ID)
	if err != nil {
		return out.failed(company, err)
	}

	contactName, contactEmail, contactPhone := s.fetchContact(ctx, plan.client, company, &out, log)

	skus, err := plan.client.GetCompanyProductSKUs(ctx, company.ID)
	if err != nil {
		span.RecordError(err)
		return out.failed(company, err)
	}
	out.agreementsProcessed = true
	for _, f := range skus.Failures {
		out.warnings = append(out.warnings, domain.SyncWarning{
			CompanyID:   company.ID,
			CompanyName: company.Name,
			Stage:       domain.WarningStageAdditions,
			Message:     fmt.Sprintf("agreement %d: %s", f.AgreementID, f.Err.Error()),
		})
	}

	activated := domain.StringList{}
	for _, sku := range skus.SKUs {
		if toolID, ok := plan.skuTools[sku]; ok {
			activated = append(activated, toolID)
			out.toolsActivated++
		}
	}
	activated = activated.Distinct()

	baselineID, ok := plan.resolveBaseline(mapping)
	if !ok {
		out.err = fmt.Sprintf("No baseline available for company %s", company.Name)
		return out
	}

	tiers := mapping.ServiceTiers.Distinct()
	if len(tiers) == 0 {
		tiers = append(domain.StringList{}, domain.DefaultServiceTiers...)
	}

	var customerPhone *string
	if company.PhoneNumber != "" {
		phone := company.PhoneNumber
		customerPhone = &phone
	}
	now := time.Now().UTC()

	if existing != nil {
		existing.Name = company.Name
		existing.Address = company.SingleLineAddress()
		existing.PrimaryContactName = contactName
		existing.CustomerPhone = customerPhone
		existing.ContactPhone = contactPhone
		existing.ContactEmail = contactEmail
		existing.ServiceTiers = tiers
		existing.BaselineID = baselineID
		existing.CurrentToolIDs = existing.CurrentToolIDs.Union(activated)
		existing.LastExternalSyncAt = &now

		if err := s.customerRepo.Update(ctx, existing); err != nil {
			return out.failed(company, err)
		}
		out.outcome = domain.CompanyOutcomeUpdated
		out.customerID = &existing.ID
	} else {
		externalID := company.ID
		customer := &domain.Customer{
			Name:               company.Name,
			Address:            company.SingleLineAddress(),
			PrimaryContactName: contactName,
			CustomerPhone:      customerPhone,
			ContactPhone:       contactPhone,
			ContactEmail:       contactEmail,
			ServiceTiers:       tiers,
			CurrentToolIDs:     activated,
			BaselineID:         baselineID,
			ExternalCompanyID:  &externalID,
			LastExternalSyncAt: &now,
		}
		if err := s.customerRepo.Create(ctx, customer); err != nil {
			return out.failed(company, err)
		}
		out.outcome = domain.CompanyOutcomeImported
		out.customerID = &customer.ID
	}

	span.SetAttributes(
		attribute.String("sync.outcome", string(out.outcome)),
		attribute.Int("sync.tools_activated", out.toolsActivated),
	)
	return out
}

// fetchContact loads the company's default contact. A failure becomes a warning and
// leaves every contact field nil.
func (s *SyncService) fetchContact(ctx context.Context, client PSAClient, company *psa.Company, out *companyOutcome, log *zap.Logger) (name, email, phone *string) {
	contactID, ok := company.DefaultContactID()
	if !ok {
		return nil, nil, nil
	}

	contact, err := client.GetContact(ctx, contactID)
	if err != nil {
		log.Warn("Failed to fetch contact",
			zap.Int("contact_id", contactID),
			zap.Error(err))
		out.warnings = append(out.warnings, domain.SyncWarning{
			CompanyID:   company.ID,
			CompanyName: company.Name,
			Stage:       domain.WarningStageContact,
			Message:     err.Error(),
		})
		return nil, nil, nil
	}

	if n := contact.FullName(); n != "" {
		name = &n
	}
	if v, ok := contact.PreferredCommunication("email"); ok {
		email = &v
	}
	if v, ok := contact.PreferredCommunication("phone"); ok {
		phone = &v
	}
	return name, email, phone
}

func (s *SyncService) completeRun(ctx context.Context, run *syncRun, log *zap.Logger) *domain.SyncResult {
	completedAt := time.Now().UTC()
	run.result.Success = len(run.result.Errors) == 0
	run.result.Duration = run.elapsed().Milliseconds()

	runStatus := domain.SyncRunStatusCompleted
	settingsStatus := domain.SyncStatusSuccess
	if !run.result.Success {
		runStatus = domain.SyncRunStatusCompletedWithErrors
		settingsStatus = domain.SyncStatusCompletedWithErrors
	}
	message := fmt.Sprintf("Imported %d, updated %d, skipped %d",
		run.result.CompaniesImported, run.result.CompaniesUpdated, run.result.CompaniesSkipped)

	s.persist(ctx, run, runStatus, settingsStatus, message, completedAt, log)

	run.progress.Status = domain.SyncProgressCompleted
	run.progress.Phase = domain.SyncPhaseCompleted
	run.progress.CurrentStep = "Sync completed"
	run.progress.CompaniesProcessed = run.result.CompaniesFound
	run.progress.CompaniesTotal = run.result.CompaniesFound
	run.progress.CompletedAt = &completedAt
	run.publish()

	s.recordRun(string(runStatus), run)
	log.Info("PSA sync completed",
		zap.Int("companies_found", run.result.CompaniesFound),
		zap.Int("companies_imported", run.result.CompaniesImported),
		zap.Int("companies_updated", run.result.CompaniesUpdated),
		zap.Int("companies_skipped", run.result.CompaniesSkipped),
		zap.Int("tools_activated", run.result.ToolsActivated),
		zap.Int("errors", len(run.result.Errors)),
		zap.Int("warnings", len(run.result.Warnings)),
		zap.Int64("duration_ms", run.result.Duration))

	return cloneResult(&run.result)
}

// cancelRun ends a run whose context was cancelled while companies were being processed.
// Counters gathered so far are kept and the cancellation is the run's single error.
func (s *SyncService) cancelRun(ctx context.Context, run *syncRun, cause error, log *zap.Logger) *domain.SyncResult {
	completedAt := time.Now().UTC()
	processed := run.progress.CompaniesProcessed
	message := fmt.Sprintf("Sync cancelled after %d of %d companies: %v", processed, run.result.CompaniesFound, cause)

	run.result.Success = false
	run.result.Errors = append(run.result.Errors, message)
	run.result.Duration = run.elapsed().Milliseconds()

	s.persist(ctx, run, domain.SyncRunStatusError, domain.SyncStatusError, message, completedAt, log)

	run.progress.Status = domain.SyncProgressError
	run.progress.Phase = domain.SyncPhaseError
	run.progress.CurrentStep = message
	run.progress.CompletedAt = &completedAt
	run.publish()

	s.recordRun(string(domain.SyncRunStatusError), run)
	log.Warn("PSA sync cancelled",
		zap.Int("companies_processed", processed),
		zap.Int("companies_found", run.result.CompaniesFound),
		zap.Error(cause))

	return cloneResult(&run.result)
}

// abortRun ends a run that failed before company processing. Counters are zeroed and
// cause is the only error.
func (s *SyncService) abortRun(ctx context.Context, run *syncRun, cause error, log *zap.Logger) *domain.SyncResult {
	completedAt := time.Now().UTC()
	message := cause.Error()

	run.result = domain.SyncResult{
		RunID:    run.id,
		Success:  false,
		Errors:   []string{message},
		Warnings: []domain.SyncWarning{},
		Duration: run.elapsed().Milliseconds(),
	}

	s.persist(ctx, run, domain.SyncRunStatusError, domain.SyncStatusError, message, completedAt, log)

	run.progress.Status = domain.SyncProgressError
	run.progress.Phase = domain.SyncPhaseError
	run.progress.CurrentStep = message
	run.progress.CompaniesProcessed = 0
	run.progress.CompaniesTotal = 0
	run.progress.CompletedAt = &completedAt
	run.publish()

	s.recordRun(string(domain.SyncRunStatusError), run)
	log.Error("PSA sync aborted", zap.String("reason", message))

	return cloneResult(&run.result)
}

// persist writes the sync log entry and the settings status. Both are best effort and
// survive cancellation of ctx.
func (s *SyncService) persist(ctx context.Context, run *syncRun, runStatus domain.SyncRunStatus, settingsStatus domain.SyncStatus, message string, completedAt time.Time, log *zap.Logger) {
	ctx = context.WithoutCancel(ctx)

	entry := &domain.SyncRun{
		ID:                  run.id,
		StartedAt:           run.startedAt,
		CompletedAt:         &completedAt,
		Status:              runStatus,
		Trigger:             string(run.trigger),
		CompaniesFound:      run.result.CompaniesFound,
		CompaniesImported:   run.result.CompaniesImported,
		CompaniesUpdated:    run.result.CompaniesUpdated,
		CompaniesSkipped:    run.result.CompaniesSkipped,
		AgreementsProcessed: run.result.AgreementsProcessed,
		ToolsActivated:      run.result.ToolsActivated,
		DurationMs:          run.result.Duration,
		Errors:              append(domain.StringList{}, run.result.Errors...),
		Warnings:            append(domain.SyncWarnings{}, run.result.Warnings...),
	}
	if err := s.syncRunRepo.Create(ctx, entry); err != nil {
		log.Error("Failed to write sync log entry", zap.Error(err))
	}
	if err := s.settingsRepo.RecordSyncOutcome(ctx, settingsStatus, message, completedAt); err != nil {
		log.Error("Failed to record sync outcome on settings", zap.Error(err))
	}
}

func (s *SyncService) recordRun(status string, run *syncRun) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordSyncRun(status, string(run.trigger), run.elapsed())
}

func (s *SyncService) countCompany(outcome domain.CompanySyncOutcome) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrCompanyOutcome(string(outcome))
}

func cloneResult(r *domain.SyncResult) *domain.SyncResult {
	c := *r
	c.Errors = append([]string{}, r.Errors...)
	c.Warnings = append([]domain.SyncWarning{}, r.Warnings...)
	return &c
}
