package service

import (
	"sync"

	"github.com/coretech/stack-tracker/internal/domain"
)

// ProgressRegister holds the snapshot of the current or most recent sync run.
// Writers store copies and readers get copies, so a snapshot is never shared.
type ProgressRegister struct {
	mu      sync.RWMutex
	current *domain.SyncProgress
}

func NewProgressRegister() *ProgressRegister {
	return &ProgressRegister{}
}

// Set replaces the stored snapshot
func (r *ProgressRegister) Set(p *domain.SyncProgress) {
	c := p.Clone()
	r.mu.Lock()
	r.current = c
	r.mu.Unlock()
}

// Get returns a copy of the stored snapshot, or nil when no run happened since the last reset
func (r *ProgressRegister) Get() *domain.SyncProgress {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current.Clone()
}

// Reset forgets the stored snapshot
func (r *ProgressRegister) Reset() {
	r.mu.Lock()
	r.current = nil
	r.mu.Unlock()
}
