package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/coretech/stack-tracker/internal/lock"
	"github.com/coretech/stack-tracker/internal/observability"
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

// fakePSA serves canned PSA data
type fakePSA struct {
	mu           sync.Mutex
	connection   psa.ConnectionResult
	companies    []psa.Company
	companiesErr error
	contacts     map[int]*psa.Contact
	contactErrs  map[int]error
	skus         map[int]*psa.ProductSKUs
	skuErrs      map[int]error
	// gate blocks GetAllCompanies until closed
	gate     chan struct{}
	fetching chan struct{}
	// afterFetch runs once every page has been reported
	afterFetch func()
	skuCalls   int
	credsSeen  []psa.Credentials
}

func newFakePSA() *fakePSA {
	return &fakePSA{
		connection:  psa.ConnectionResult{Success: true, Message: "Connection successful"},
		contacts:    map[int]*psa.Contact{},
		contactErrs: map[int]error{},
		skus:        map[int]*psa.ProductSKUs{},
		skuErrs:     map[int]error{},
	}
}

func (f *fakePSA) TestConnection(ctx context.Context) psa.ConnectionResult {
	return f.connection
}

func (f *fakePSA) ListCompanyTypes(ctx context.Context) ([]psa.CompanyType, error) {
	return []psa.CompanyType{{ID: 1, Name: "Client"}, {ID: 2, Name: "Prospect"}}, nil
}

func (f *fakePSA) GetAllCompanies(ctx context.Context, conditions string, onProgress func(soFar, total int)) ([]psa.Company, error) {
	f.mu.Lock()
	fetching, gate := f.fetching, f.gate
	f.mu.Unlock()
	if fetching != nil {
		close(fetching)
	}
	if gate != nil {
		<-gate
	}
	if f.companiesErr != nil {
		return nil, f.companiesErr
	}
	if onProgress != nil {
		onProgress(len(f.companies), len(f.companies))
	}
	if f.afterFetch != nil {
		f.afterFetch()
	}
	return append([]psa.Company{}, f.companies...), nil
}

func (f *fakePSA) GetCompany(ctx context.Context, companyID int) (*psa.Company, error) {
	for i := range f.companies {
		if f.companies[i].ID == companyID {
			c := f.companies[i]
			return &c, nil
		}
	}
	return nil, &psa.APIError{StatusCode: 404, Body: `{"code":"NotFound"}`}
}

func (f *fakePSA) GetContact(ctx context.Context, contactID int) (*psa.Contact, error) {
	if err := f.contactErrs[contactID]; err != nil {
		return nil, err
	}
	if c, ok := f.contacts[contactID]; ok {
		return c, nil
	}
	return nil, &psa.APIError{StatusCode: 404, Body: "not found"}
}

func (f *fakePSA) GetCompanyProductSKUs(ctx context.Context, companyID int) (*psa.ProductSKUs, error) {
	f.mu.Lock()
	f.skuCalls++
	f.mu.Unlock()
	if err := f.skuErrs[companyID]; err != nil {
		return nil, err
	}
	if s, ok := f.skus[companyID]; ok {
		return s, nil
	}
	return &psa.ProductSKUs{SKUs: []string{}}, nil
}

func (f *fakePSA) factory() service.ClientFactory {
	return func(creds psa.Credentials) service.PSAClient {
		f.mu.Lock()
		f.credsSeen = append(f.credsSeen, creds)
		f.mu.Unlock()
		return f
	}
}

func company(id int, name string, types ...string) psa.Company {
	refs := []psa.Reference{}
	for i, t := range types {
		refs = append(refs, psa.Reference{ID: i + 1, Name: t})
	}
	return psa.Company{ID: id, Name: name, Types: refs}
}

type syncFixture struct {
	db       *gorm.DB
	psa      *fakePSA
	svc      *service.SyncService
	metrics  *observability.Metrics
	tool     *domain.Tool
	baseline *domain.Baseline
}

func newSyncFixture(t *testing.T) *syncFixture {
	db := testutil.SetupTestDB(t)

	category := testutil.CreateTestCategory(t, db, "Endpoint Security")
	tool := testutil.CreateTestTool(t, db, "SentinelOne", category.ID)
	baseline := testutil.CreateTestBaseline(t, db, "SMB Standard", []uuid.UUID{tool.ID}, nil)

	require.NoError(t, db.Create(&domain.Settings{
		CompanyID:  "acme",
		PublicKey:  "pub",
		PrivateKey: "priv",
		SiteURL:    "cw.example.com",
		ClientID:   "client-id",
		Enabled:    true,
	}).Error)
	require.NoError(t, db.Create(&domain.TypeMapping{
		ExternalTypeName: "Client",
		ServiceTiers:     domain.StringList{"MSP"},
		ShouldImport:     true,
	}).Error)
	require.NoError(t, db.Create(&domain.TypeMapping{
		ExternalTypeName: "Prospect",
		ServiceTiers:     domain.StringList{"Essentials"},
		ShouldImport:     false,
	}).Error)
	require.NoError(t, db.Create(&domain.SkuMapping{SKU: "SEN-CYL-PRO", ToolID: &tool.ID}).Error)

	fake := newFakePSA()
	acme := company(1, "Acme", "Client")
	acme.AddressLine1 = "1 Main St"
	acme.City = "Springfield"
	acme.PhoneNumber = "555-0000"
	acme.DefaultContact = &psa.Reference{ID: 77}
	fake.companies = []psa.Company{
		acme,
		company(2, "Beta", "Prospect"),
		company(3, "Gamma"),
	}
	fake.contacts[77] = &psa.Contact{
		ID:        77,
		FirstName: "Ada",
		LastName:  "Lovelace",
		CommunicationItems: []psa.CommunicationItem{
			{Type: &psa.Reference{Name: "Email"}, Value: "ada@acme.test", DefaultFlag: true},
			{Type: &psa.Reference{Name: "Direct Phone"}, Value: "555-0100"},
		},
	}
	fake.skus[1] = &psa.ProductSKUs{SKUs: []string{"SEN-CYL-PRO", "UNMAPPED"}, Agreements: 1}

	metrics := observability.NewMetrics()
	svc := service.NewSyncService(
		repository.NewSettingsRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewSyncRunRepository(db),
		repository.NewMappingStore(
			repository.NewTypeMappingRepository(db),
			repository.NewSkuMappingRepository(db),
			repository.NewToolRepository(db),
			repository.NewBaselineRepository(db),
		),
		fake.factory(),
		lock.NewLocalLocker(),
		service.NewProgressRegister(),
		metrics,
		zap.NewNop(),
	)

	return &syncFixture{db: db, psa: fake, svc: svc, metrics: metrics, tool: tool, baseline: baseline}
}

func (f *syncFixture) customers(t *testing.T) []domain.Customer {
	var customers []domain.Customer
	require.NoError(t, f.db.Order("name ASC").Find(&customers).Error)
	return customers
}

func (f *syncFixture) settings(t *testing.T) *domain.Settings {
	s, err := repository.NewSettingsRepository(f.db).Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, s)
	return s
}

func (f *syncFixture) runs(t *testing.T) []domain.SyncRun {
	runs, err := repository.NewSyncRunRepository(f.db).ListRecent(context.Background(), 10)
	require.NoError(t, err)
	return runs
}

func TestSyncService_Run_ImportsEligibleCompanies(t *testing.T) {
	f := newSyncFixture(t)

	result, err := f.svc.Run(context.Background(), domain.SyncTriggerManual)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.CompaniesFound)
	assert.Equal(t, 1, result.CompaniesImported)
	assert.Equal(t, 0, result.CompaniesUpdated)
	assert.Equal(t, 2, result.CompaniesSkipped)
	assert.Equal(t, 1, result.AgreementsProcessed)
	assert.Equal(t, 1, result.ToolsActivated)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)

	customers := f.customers(t)
	require.Len(t, customers, 1)
	acme := customers[0]
	assert.Equal(t, "Acme", acme.Name)
	require.NotNil(t, acme.ExternalCompanyID)
	assert.Equal(t, 1, *acme.ExternalCompanyID)
	assert.Equal(t, domain.StringList{f.tool.ID.String()}, acme.CurrentToolIDs)
	assert.Equal(t, domain.StringList{"MSP"}, acme.ServiceTiers)
	assert.Equal(t, f.baseline.ID, acme.BaselineID)
	assert.Equal(t, "1 Main St, Springfield", *acme.Address)
	assert.Equal(t, "555-0000", *acme.CustomerPhone)
	assert.Equal(t, "Ada Lovelace", *acme.PrimaryContactName)
	assert.Equal(t, "ada@acme.test", *acme.ContactEmail)
	assert.Equal(t, "555-0100", *acme.ContactPhone)
	assert.NotNil(t, acme.LastExternalSyncAt)

	settings := f.settings(t)
	require.NotNil(t, settings.LastSyncStatus)
	assert.Equal(t, domain.SyncStatusSuccess, *settings.LastSyncStatus)
	assert.Equal(t, "Imported 1, updated 0, skipped 2", *settings.LastSyncMessage)
	assert.Equal(t, "priv", settings.PrivateKey)

	runs := f.runs(t)
	require.Len(t, runs, 1)
	assert.Equal(t, domain.SyncRunStatusCompleted, runs[0].Status)
	assert.Equal(t, result.RunID, runs[0].ID)
	assert.Equal(t, "manual", runs[0].Trigger)

	progress := f.svc.Progress()
	require.NotNil(t, progress)
	assert.Equal(t, domain.SyncProgressCompleted, progress.Status)
	assert.Equal(t, domain.SyncPhaseCompleted, progress.Phase)
	assert.Equal(t, "Sync completed", progress.CurrentStep)
	assert.Equal(t, 3, progress.CompaniesProcessed)
	assert.Equal(t, 3, progress.CompaniesTotal)
	assert.NotNil(t, progress.CompletedAt)

	require.Len(t, f.psa.credsSeen, 1)
	assert.Equal(t, "priv", f.psa.credsSeen[0].PrivateKey)
}

func TestSyncService_Run_IsIdempotentAndNeverDropsTools(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	_, err := f.svc.Run(ctx, domain.SyncTriggerManual)
	require.NoError(t, err)

	// an admin adds a tool by hand between runs
	manual := testutil.CreateTestTool(t, f.db, "Huntress", f.tool.CategoryID)
	customer := f.customers(t)[0]
	customer.CurrentToolIDs = append(customer.CurrentToolIDs, manual.ID.String())
	require.NoError(t, repository.NewCustomerRepository(f.db).Update(ctx, &customer))

	second, err := f.svc.Run(ctx, domain.SyncTriggerScheduled)
	require.NoError(t, err)

	assert.Equal(t, 0, second.CompaniesImported)
	assert.Equal(t, 1, second.CompaniesUpdated)
	assert.Equal(t, 2, second.CompaniesSkipped)

	customers := f.customers(t)
	require.Len(t, customers, 1)
	assert.Equal(t, customer.ID, customers[0].ID)
	assert.ElementsMatch(t, []string{f.tool.ID.String(), manual.ID.String()}, []string(customers[0].CurrentToolIDs))

	assert.Len(t, f.runs(t), 2)
}

func TestSyncService_Run_SkipsCompaniesNotFlaggedForImport(t *testing.T) {
	f := newSyncFixture(t)
	f.psa.companies = []psa.Company{company(9, "Acme", "Prospect")}

	result, err := f.svc.Run(context.Background(), domain.SyncTriggerManual)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.CompaniesSkipped)
	assert.Equal(t, 0, result.AgreementsProcessed)
	assert.Empty(t, f.customers(t))
	assert.Equal(t, 0, f.psa.skuCalls)
}

func TestSyncService_Run_ContactFailureIsAWarning(t *testing.T) {
	f := newSyncFixture(t)
	f.psa.contactErrs[77] = &psa.APIError{StatusCode: 500, Body: "boom"}

	result, err := f.svc.Run(context.Background(), domain.SyncTriggerManual)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 1, result.CompaniesImported)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, domain.WarningStageContact, result.Warnings[0].Stage)
	assert.Equal(t, 1, result.Warnings[0].CompanyID)
	assert.Equal(t, "ConnectWise API error: 500 - boom", result.Warnings[0].Message)

	acme := f.customers(t)[0]
	assert.Nil(t, acme.PrimaryContactName)
	assert.Nil(t, acme.ContactEmail)
	assert.Nil(t, acme.ContactPhone)

	runs := f.runs(t)
	require.Len(t, runs, 1)
	assert.Equal(t, domain.SyncRunStatusCompleted, runs[0].Status)
	require.Len(t, runs[0].Warnings, 1)
}

func TestSyncService_Run_AdditionFailureIsAWarning(t *testing.T) {
	f := newSyncFixture(t)
	f.psa.skus[1] = &psa.ProductSKUs{
		SKUs:       []string{"SEN-CYL-PRO"},
		Agreements: 2,
		Failures:   []psa.AdditionFailure{{AgreementID: 42, Err: errors.New("timeout")}},
	}

	result, err := f.svc.Run(context.Background(), domain.SyncTriggerManual)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.ToolsActivated)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, domain.WarningStageAdditions, result.Warnings[0].Stage)
	assert.Equal(t, "agreement 42: timeout", result.Warnings[0].Message)
}

func TestSyncService_Run_CompanyErrorsAreIsolated(t *testing.T) {
	f := newSyncFixture(t)
	f.psa.companies = append(f.psa.companies, company(4, "Delta", "Client"))
	f.psa.skuErrs[1] = &psa.APIError{StatusCode: 500, Body: "agreements unavailable"}

	result, err := f.svc.Run(context.Background(), domain.SyncTriggerManual)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, []string{"Error processing company Acme: ConnectWise API error: 500 - agreements unavailable"}, result.Errors)
	assert.Equal(t, 1, result.CompaniesImported, "Delta is still imported")
	assert.Equal(t, 2, result.CompaniesSkipped)
	assert.Equal(t, 4, result.CompaniesFound)

	customers := f.customers(t)
	require.Len(t, customers, 1)
	assert.Equal(t, "Delta", customers[0].Name)

	settings := f.settings(t)
	assert.Equal(t, domain.SyncStatusCompletedWithErrors, *settings.LastSyncStatus)
	assert.Equal(t, "Imported 1, updated 0, skipped 2", *settings.LastSyncMessage)
	assert.Equal(t, domain.SyncRunStatusCompletedWithErrors, f.runs(t)[0].Status)
}

func TestSyncService_Run_ActivatesMappedSKU(t *testing.T) {
	f := newSyncFixture(t)
	f.psa.companies = []psa.Company{company(5, "Acme Dental", "Client")}
	f.psa.skus[5] = &psa.ProductSKUs{SKUs: []string{"SEN-CYL-PRO"}, Agreements: 1}

	result, err := f.svc.Run(context.Background(), domain.SyncTriggerManual)
	require.NoError(t, err)

	assert.Equal(t, 1, result.ToolsActivated)
	customers := f.customers(t)
	require.Len(t, customers, 1)
	assert.True(t, customers[0].CurrentToolIDs.Contains(f.tool.ID.String()))
}

func TestSyncService_Run_Aborts(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T, f *syncFixture)
		message string
	}{
		{
			name: "no settings",
			prepare: func(t *testing.T, f *syncFixture) {
				require.NoError(t, f.db.Where("1 = 1").Delete(&domain.Settings{}).Error)
			},
			message: "ConnectWise settings not configured",
		},
		{
			name: "integration disabled",
			prepare: func(t *testing.T, f *syncFixture) {
				require.NoError(t, f.db.Model(&domain.Settings{}).Where("1 = 1").Update("enabled", false).Error)
			},
			message: "ConnectWise integration is not enabled",
		},
		{
			name: "connection failure",
			prepare: func(t *testing.T, f *syncFixture) {
				f.psa.connection = psa.ConnectionResult{Success: false, Message: "ConnectWise API error: 401 - unauthorized"}
			},
			message: "Connection failed: ConnectWise API error: 401 - unauthorized",
		},
		{
			name: "no importable types",
			prepare: func(t *testing.T, f *syncFixture) {
				require.NoError(t, f.db.Model(&domain.TypeMapping{}).Where("1 = 1").Update("should_import", false).Error)
			},
			message: "No company types configured for import. Please set up type mappings first.",
		},
		{
			name: "no baselines",
			prepare: func(t *testing.T, f *syncFixture) {
				require.NoError(t, f.db.Where("1 = 1").Delete(&domain.Baseline{}).Error)
			},
			message: "No baselines configured. Please create a baseline first.",
		},
		{
			name: "company fetch failure",
			prepare: func(t *testing.T, f *syncFixture) {
				f.psa.companiesErr = &psa.APIError{StatusCode: 503, Body: "maintenance"}
			},
			message: "ConnectWise API error: 503 - maintenance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSyncFixture(t)
			tt.prepare(t, f)

			result, err := f.svc.Run(context.Background(), domain.SyncTriggerManual)
			require.NoError(t, err)

			assert.False(t, result.Success)
			assert.Equal(t, []string{tt.message}, result.Errors)
			assert.Equal(t, 0, result.CompaniesFound)
			assert.Equal(t, 0, result.CompaniesImported)
			assert.Equal(t, 0, result.CompaniesSkipped)
			assert.Empty(t, f.customers(t))

			progress := f.svc.Progress()
			require.NotNil(t, progress)
			assert.Equal(t, domain.SyncProgressError, progress.Status)
			assert.Equal(t, domain.SyncPhaseError, progress.Phase)
			assert.Equal(t, tt.message, progress.CurrentStep)
			assert.Equal(t, 0, progress.CompaniesTotal)

			runs := f.runs(t)
			require.Len(t, runs, 1)
			assert.Equal(t, domain.SyncRunStatusError, runs[0].Status)
			assert.Equal(t, domain.StringList{tt.message}, runs[0].Errors)

			var settings domain.Settings
			if err := f.db.First(&settings).Error; err == nil {
				require.NotNil(t, settings.LastSyncStatus)
				assert.Equal(t, domain.SyncStatusError, *settings.LastSyncStatus)
				assert.Equal(t, tt.message, *settings.LastSyncMessage)
			}
		})
	}
}

func TestSyncService_Run_FetchProgressCountsCompanies(t *testing.T) {
	f := newSyncFixture(t)

	var seen *domain.SyncProgress
	f.psa.afterFetch = func() { seen = f.svc.Progress() }

	_, err := f.svc.Run(context.Background(), domain.SyncTriggerManual)
	require.NoError(t, err)

	require.NotNil(t, seen)
	assert.Equal(t, domain.SyncPhaseFetchingCompanies, seen.Phase)
	assert.Equal(t, 3, seen.CompaniesProcessed)
	assert.Equal(t, 3, seen.CompaniesTotal)
	assert.Equal(t, "Fetching companies from ConnectWise (3/3)", seen.CurrentStep)
}

func TestSyncService_Run_CancelledDuringProcessing(t *testing.T) {
	f := newSyncFixture(t)
	companies := make([]psa.Company, 50)
	for i := range companies {
		companies[i] = company(i+1, fmt.Sprintf("Co %d", i+1), "Client")
	}
	f.psa.companies = companies

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.psa.afterFetch = cancel

	result, err := f.svc.Run(ctx, domain.SyncTriggerScheduled)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, 50, result.CompaniesFound)
	assert.Equal(t, 0, result.CompaniesImported)
	require.Len(t, result.Errors, 1, "cancellation is reported once, not per company")
	assert.Equal(t, "Sync cancelled after 0 of 50 companies: context canceled", result.Errors[0])
	assert.Empty(t, f.customers(t))
	assert.Equal(t, 0, f.psa.skuCalls)

	runs := f.runs(t)
	require.Len(t, runs, 1)
	assert.Equal(t, domain.SyncRunStatusError, runs[0].Status)
	assert.Equal(t, 50, runs[0].CompaniesFound)
	assert.Len(t, runs[0].Errors, 1)

	settings := f.settings(t)
	require.NotNil(t, settings.LastSyncStatus)
	assert.Equal(t, domain.SyncStatusError, *settings.LastSyncStatus)

	progress := f.svc.Progress()
	require.NotNil(t, progress)
	assert.Equal(t, domain.SyncPhaseError, progress.Phase)
	assert.Equal(t, domain.SyncProgressError, progress.Status)
}

func TestSyncService_Run_BaselineResolution(t *testing.T) {
	t.Run("prefers a baseline named Standard", func(t *testing.T) {
		f := newSyncFixture(t)
		older := testutil.CreateTestBaseline(t, f.db, "Co-Managed IT", nil, nil)
		require.NoError(t, f.db.Model(older).Update("created_at", time.Now().UTC().Add(-time.Hour)).Error)

		_, err := f.svc.Run(context.Background(), domain.SyncTriggerManual)
		require.NoError(t, err)
		assert.Equal(t, f.baseline.ID, f.customers(t)[0].BaselineID)
	})

	t.Run("settings default wins over the name heuristic", func(t *testing.T) {
		f := newSyncFixture(t)
		other := testutil.CreateTestBaseline(t, f.db, "Compliance Plus", nil, nil)
		require.NoError(t, f.db.Model(&domain.Settings{}).Where("1 = 1").Update("default_baseline_id", other.ID).Error)

		_, err := f.svc.Run(context.Background(), domain.SyncTriggerManual)
		require.NoError(t, err)
		assert.Equal(t, other.ID, f.customers(t)[0].BaselineID)
	})

	t.Run("mapping baseline wins when it exists", func(t *testing.T) {
		f := newSyncFixture(t)
		mapped := testutil.CreateTestBaseline(t, f.db, "Co-Managed IT", nil, nil)
		require.NoError(t, f.db.Model(&domain.TypeMapping{}).Where("external_type_name = ?", "Client").Update("baseline_id", mapped.ID).Error)

		_, err := f.svc.Run(context.Background(), domain.SyncTriggerManual)
		require.NoError(t, err)
		assert.Equal(t, mapped.ID, f.customers(t)[0].BaselineID)
	})

	t.Run("stale mapping baseline falls back to the oldest", func(t *testing.T) {
		f := newSyncFixture(t)
		require.NoError(t, f.db.Model(&domain.TypeMapping{}).Where("external_type_name = ?", "Client").Update("baseline_id", uuid.New()).Error)
		require.NoError(t, f.db.Model(f.baseline).Update("name", "Gold").Error)
		newer := testutil.CreateTestBaseline(t, f.db, "Silver", nil, nil)
		require.NoError(t, f.db.Model(newer).Update("created_at", time.Now().UTC().Add(time.Hour)).Error)

		_, err := f.svc.Run(context.Background(), domain.SyncTriggerManual)
		require.NoError(t, err)
		assert.Equal(t, f.baseline.ID, f.customers(t)[0].BaselineID)
	})
}

func TestSyncService_Run_DefaultsServiceTiers(t *testing.T) {
	f := newSyncFixture(t)
	require.NoError(t, f.db.Model(&domain.TypeMapping{}).Where("external_type_name = ?", "Client").
		Update("service_tiers", domain.StringList{}).Error)

	_, err := f.svc.Run(context.Background(), domain.SyncTriggerManual)
	require.NoError(t, err)
	assert.Equal(t, domain.StringList{"Essentials"}, f.customers(t)[0].ServiceTiers)
}

func TestSyncService_StartRejectsConcurrentRuns(t *testing.T) {
	f := newSyncFixture(t)
	f.psa.gate = make(chan struct{})
	f.psa.fetching = make(chan struct{})

	initial, err := f.svc.Start(context.Background(), domain.SyncTriggerManual)
	require.NoError(t, err)
	assert.Equal(t, domain.SyncProgressRunning, initial.Status)
	assert.Equal(t, domain.SyncPhaseInit, initial.Phase)

	<-f.psa.fetching
	progress := f.svc.Progress()
	require.NotNil(t, progress)
	assert.Equal(t, domain.SyncPhaseFetchingCompanies, progress.Phase)
	assert.Equal(t, initial.RunID, progress.RunID)

	_, err = f.svc.Run(context.Background(), domain.SyncTriggerManual)
	assert.ErrorIs(t, err, service.ErrSyncAlreadyRunning)
	_, err = f.svc.Start(context.Background(), domain.SyncTriggerManual)
	assert.ErrorIs(t, err, service.ErrSyncAlreadyRunning)
	_, err = f.svc.SyncCompany(context.Background(), 1)
	assert.ErrorIs(t, err, service.ErrSyncAlreadyRunning)

	close(f.psa.gate)

	assert.Eventually(t, func() bool {
		p := f.svc.Progress()
		return p != nil && p.Status == domain.SyncProgressCompleted
	}, 5*time.Second, 10*time.Millisecond)

	// the lock is released once the background run finishes
	f.psa.mu.Lock()
	f.psa.gate = nil
	f.psa.fetching = nil
	f.psa.mu.Unlock()
	assert.Eventually(t, func() bool {
		_, err := f.svc.Run(context.Background(), domain.SyncTriggerManual)
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)
}

func TestSyncService_ResetProgress(t *testing.T) {
	f := newSyncFixture(t)
	assert.Nil(t, f.svc.Progress())

	_, err := f.svc.Run(context.Background(), domain.SyncTriggerManual)
	require.NoError(t, err)
	require.NotNil(t, f.svc.Progress())

	f.svc.ResetProgress()
	assert.Nil(t, f.svc.Progress())
}

func TestSyncService_SyncCompany(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	result, err := f.svc.SyncCompany(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.CompanyOutcomeImported, result.Outcome)
	require.NotNil(t, result.CustomerID)
	assert.Equal(t, 1, result.ToolsActivated)

	again, err := f.svc.SyncCompany(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.CompanyOutcomeUpdated, again.Outcome)
	assert.Equal(t, *result.CustomerID, *again.CustomerID)

	skipped, err := f.svc.SyncCompany(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.CompanyOutcomeSkipped, skipped.Outcome)

	_, err = f.svc.SyncCompany(ctx, 999)
	assert.ErrorIs(t, err, service.ErrNotFound)

	assert.Empty(t, f.runs(t), "single-company syncs are not logged as runs")
	assert.Nil(t, f.svc.Progress())
}

func TestSyncService_SyncCompany_Disabled(t *testing.T) {
	f := newSyncFixture(t)
	require.NoError(t, f.db.Model(&domain.Settings{}).Where("1 = 1").Update("enabled", false).Error)

	_, err := f.svc.SyncCompany(context.Background(), 1)
	assert.ErrorIs(t, err, service.ErrSyncAborted)
	assert.Contains(t, err.Error(), "ConnectWise integration is not enabled")
}

func TestSyncService_ListRuns(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.svc.Run(ctx, domain.SyncTriggerManual)
		require.NoError(t, err)
	}

	runs, err := f.svc.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
	assert.Equal(t, domain.SyncRunStatusCompleted, runs[0].Status)
	assert.NotNil(t, runs[0].Warnings)

	all, err := f.svc.ListRuns(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
