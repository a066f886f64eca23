package domain

import (
	"time"

	"github.com/google/uuid"
)

// SyncPhase is a state of the reconciliation state machine
type SyncPhase string

const (
	SyncPhaseInit                SyncPhase = "INIT"
	SyncPhaseTestingConnection   SyncPhase = "TESTING_CONNECTION"
	SyncPhaseLoadingMappings     SyncPhase = "LOADING_MAPPINGS"
	SyncPhaseFetchingCompanies   SyncPhase = "FETCHING_COMPANIES"
	SyncPhaseProcessingCompanies SyncPhase = "PROCESSING_COMPANIES"
	SyncPhaseCompleted           SyncPhase = "COMPLETED"
	SyncPhaseError               SyncPhase = "ERROR"
)

// IsTerminal reports whether no further transitions follow this phase
func (p SyncPhase) IsTerminal() bool {
	return p == SyncPhaseCompleted || p == SyncPhaseError
}

// Progress status values as exposed to pollers
const (
	SyncProgressRunning   = "running"
	SyncProgressCompleted = "completed"
	SyncProgressError     = "error"
)

// SyncTrigger names what started a run
type SyncTrigger string

const (
	SyncTriggerManual    SyncTrigger = "manual"
	SyncTriggerScheduled SyncTrigger = "scheduled"
	SyncTriggerStartup   SyncTrigger = "startup"
)

// SyncProgress is a point-in-time snapshot of the current or last run
type SyncProgress struct {
	RunID              uuid.UUID     `json:"runId"`
	Status             string        `json:"status"`
	Phase              SyncPhase     `json:"phase"`
	CurrentStep        string        `json:"currentStep"`
	CompaniesProcessed int           `json:"companiesProcessed"`
	CompaniesTotal     int           `json:"companiesTotal"`
	Errors             []string      `json:"errors"`
	Warnings           []SyncWarning `json:"warnings"`
	StartedAt          time.Time     `json:"startedAt"`
	CompletedAt        *time.Time    `json:"completedAt,omitempty"`
}

// Clone returns a deep copy safe to hand to another goroutine
func (p *SyncProgress) Clone() *SyncProgress {
	if p == nil {
		return nil
	}
	c := *p
	c.Errors = append([]string{}, p.Errors...)
	c.Warnings = append([]SyncWarning{}, p.Warnings...)
	if p.CompletedAt != nil {
		t := *p.CompletedAt
		c.CompletedAt = &t
	}
	return &c
}

// SyncResult summarizes one reconciliation run
type SyncResult struct {
	RunID               uuid.UUID     `json:"runId"`
	Success             bool          `json:"success"`
	CompaniesFound      int           `json:"companiesFound"`
	CompaniesImported   int           `json:"companiesImported"`
	CompaniesUpdated    int           `json:"companiesUpdated"`
	CompaniesSkipped    int           `json:"companiesSkipped"`
	AgreementsProcessed int           `json:"agreementsProcessed"`
	ToolsActivated      int           `json:"toolsActivated"`
	Errors              []string      `json:"errors"`
	Warnings            []SyncWarning `json:"warnings"`
	// Duration is the run time in milliseconds
	Duration int64 `json:"duration"`
}

// CompanySyncOutcome describes what happened to a single company
type CompanySyncOutcome string

const (
	CompanyOutcomeImported CompanySyncOutcome = "imported"
	CompanyOutcomeUpdated  CompanySyncOutcome = "updated"
	CompanyOutcomeSkipped  CompanySyncOutcome = "skipped"
	CompanyOutcomeFailed   CompanySyncOutcome = "failed"
)

// CompanySyncResult is returned by a single-company resync
type CompanySyncResult struct {
	ExternalCompanyID int                `json:"externalCompanyId"`
	Outcome           CompanySyncOutcome `json:"outcome"`
	CustomerID        *uuid.UUID         `json:"customerId,omitempty"`
	ToolsActivated    int                `json:"toolsActivated"`
	Error             string             `json:"error,omitempty"`
	Warnings          []SyncWarning      `json:"warnings"`
}
