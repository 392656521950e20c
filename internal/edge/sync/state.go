package sync

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/nmatveev/edgesync/internal/models"
)

// state holds the shared mutable identity of the manager. initialized and
// syncInProgress are read from the loop worker and the RPC callback
// goroutines. tenantID and settings are written only during handshake;
// customerID is also recomputed by the downlink handler, and queueStartTs is
// refreshed from the cursor by the loop worker on every pass.
type state struct {
	initialized    atomic.Bool
	syncInProgress atomic.Bool

	mu           sync.RWMutex
	tenantID     uuid.UUID
	customerID   uuid.UUID
	settings     *models.EdgeSettings
	queueStartTs int64
}

func (s *state) TenantID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tenantID
}

func (s *state) setTenantID(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenantID = id
}

func (s *state) CustomerID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customerID
}

func (s *state) setCustomerID(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customerID = id
}

func (s *state) Settings() *models.EdgeSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *state) setSettings(settings *models.EdgeSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

func (s *state) QueueStartTs() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queueStartTs
}

func (s *state) setQueueStartTs(ts int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queueStartTs = ts
}
