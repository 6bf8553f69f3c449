// Package registry implements the in-memory identity registry: the
// authoritative mapping from a Telegram chat id to either an approved
// Technician or a PendingRegistration, plus the shared id counter both
// record kinds draw from.
//
// The store owns its own synchronization. Every compound transition
// (create-pending, promote, remove, link) executes under the write lock,
// so concurrent operations on the same chat id are linearizable and an
// approval is observed as a single atomic step: there is no window in
// which a pending record and its technician both exist, or neither does.
//
// Lookups return copies, never pointers into the store, so callers can
// hold results without racing later mutations.
package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/arestitans/smart-dispatcher/internal/domain"
)

// idSeed is the value the shared technician-id counter starts from.
// The first id ever issued is TX-9101. Ids are never reused, even after
// a pending registration is rejected and its record discarded.
const idSeed = 9100

// Conflict describes why a pending registration could not be created.
type Conflict int

const (
	// ConflictNone means the registration was created.
	ConflictNone Conflict = iota
	// ConflictPending means the chat id already has a pending registration.
	ConflictPending
	// ConflictTechnician means the chat id already belongs to an approved
	// technician.
	ConflictTechnician
)

// Store is the in-memory identity registry. The zero value is not usable;
// construct with NewStore.
type Store struct {
	mu      sync.RWMutex
	seq     int
	techs   map[string]*domain.Technician
	pending map[string]*domain.PendingRegistration

	techByChat    map[int64]string
	pendingByChat map[int64]string
}

// NewStore returns an empty registry with the id counter at its seed.
func NewStore() *Store {
	return &Store{
		seq:           idSeed,
		techs:         make(map[string]*domain.Technician),
		pending:       make(map[string]*domain.PendingRegistration),
		techByChat:    make(map[int64]string),
		pendingByChat: make(map[int64]string),
	}
}

// nextID allocates the next technician-shaped id. Callers must hold mu.
func (s *Store) nextID() string {
	s.seq++
	return fmt.Sprintf("TX-%d", s.seq)
}

// NewID allocates an id from the shared counter. Used for technicians
// created administratively, outside the pending-registration flow.
func (s *Store) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextID()
}

// CreatePending registers chatID as a pending technician unless the chat
// already resolves to a technician or a pending record.
//
// On ConflictPending the existing record is returned, so a retry observes
// the same id (the at-most-one-pending invariant). On ConflictTechnician
// the returned record is zero.
func (s *Store) CreatePending(chatID int64, username, displayName string, now time.Time) (domain.PendingRegistration, Conflict) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.techByChat[chatID]; ok {
		return domain.PendingRegistration{}, ConflictTechnician
	}
	if id, ok := s.pendingByChat[chatID]; ok {
		return *s.pending[id], ConflictPending
	}

	p := &domain.PendingRegistration{
		ID:           s.nextID(),
		ChatID:       chatID,
		Username:     username,
		DisplayName:  displayName,
		RegisteredAt: now,
		Status:       "PENDING",
	}
	s.pending[p.ID] = p
	s.pendingByChat[chatID] = p.ID
	return *p, ConflictNone
}

// Promote atomically replaces the pending registration with the technician
// produced by build. The pending record is removed and the technician
// inserted under one critical section; only the first Promote (or
// RemovePending) for a given id can succeed.
func (s *Store) Promote(pendingID string, build func(domain.PendingRegistration) domain.Technician) (domain.Technician, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[pendingID]
	if !ok {
		return domain.Technician{}, false
	}
	t := build(*p)

	delete(s.pending, pendingID)
	delete(s.pendingByChat, p.ChatID)
	s.techs[t.ID] = &t
	if t.ChatID != 0 {
		s.techByChat[t.ChatID] = t.ID
	}
	return t, true
}

// RemovePending deletes the pending registration and returns its final
// snapshot. The second removal of the same id reports false.
func (s *Store) RemovePending(pendingID string) (domain.PendingRegistration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[pendingID]
	if !ok {
		return domain.PendingRegistration{}, false
	}
	delete(s.pending, pendingID)
	delete(s.pendingByChat, p.ChatID)
	return *p, true
}

// AddTechnician inserts an administratively created technician. The caller
// is expected to have allocated the id via NewID.
func (s *Store) AddTechnician(t domain.Technician) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := t
	s.techs[cp.ID] = &cp
	if cp.ChatID != 0 {
		s.techByChat[cp.ChatID] = cp.ID
	}
}

// LinkChat points the technician at chatID, overwriting any chat id it held
// before. No cross-check is made against other technicians holding the same
// chat id; the last link wins.
func (s *Store) LinkChat(techID string, chatID int64) (domain.Technician, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.techs[techID]
	if !ok {
		return domain.Technician{}, false
	}
	if t.ChatID != 0 {
		delete(s.techByChat, t.ChatID)
	}
	t.ChatID = chatID
	s.techByChat[chatID] = t.ID
	return *t, true
}

// UpdateTechnician applies fn to the technician under the write lock and
// returns the updated copy. Reports false when the id is unknown.
func (s *Store) UpdateTechnician(techID string, fn func(*domain.Technician)) (domain.Technician, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.techs[techID]
	if !ok {
		return domain.Technician{}, false
	}
	fn(t)
	return *t, true
}

// TechnicianByChat resolves a chat id to its approved technician.
func (s *Store) TechnicianByChat(chatID int64) (domain.Technician, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.techByChat[chatID]
	if !ok {
		return domain.Technician{}, false
	}
	return *s.techs[id], true
}

// PendingByChat resolves a chat id to its pending registration.
func (s *Store) PendingByChat(chatID int64) (domain.PendingRegistration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.pendingByChat[chatID]
	if !ok {
		return domain.PendingRegistration{}, false
	}
	return *s.pending[id], true
}

// TechnicianByID fetches a technician by id.
func (s *Store) TechnicianByID(id string) (domain.Technician, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.techs[id]
	if !ok {
		return domain.Technician{}, false
	}
	return *t, true
}

// PendingByID fetches a pending registration by id.
func (s *Store) PendingByID(id string) (domain.PendingRegistration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.pending[id]
	if !ok {
		return domain.PendingRegistration{}, false
	}
	return *p, true
}

// Technicians returns a snapshot of every approved technician.
func (s *Store) Technicians() []domain.Technician {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Technician, 0, len(s.techs))
	for _, t := range s.techs {
		out = append(out, *t)
	}
	return out
}

// Pending returns a snapshot of every pending registration.
func (s *Store) Pending() []domain.PendingRegistration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PendingRegistration, 0, len(s.pending))
	for _, p := range s.pending {
		out = append(out, *p)
	}
	return out
}
