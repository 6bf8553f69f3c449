package orders

import (
	"fmt"
	"sync"
	"time"

	"github.com/arestitans/smart-dispatcher/internal/domain"
)

// Claim lifecycle statuses.
const (
	ClaimInvestigation = "INVESTIGATION"
	ClaimPending       = "PENDING"
	ClaimRectification = "RECTIFICATION"
	ClaimResolved      = "RESOLVED"
)

const claimIDBase = 1000

// ClaimFilter narrows a claim listing; empty fields match everything.
type ClaimFilter struct {
	Status  string
	Product string
}

// ClaimInput carries the caller-supplied fields for a new claim.
type ClaimInput struct {
	OrderID        string          `json:"orderId"`
	Customer       string          `json:"customer"`
	Technician     domain.Assignee `json:"technician"`
	Product        string          `json:"product"`
	OriginalPSDate string          `json:"originalPsDate"`
	Description    string          `json:"description"`
}

// ClaimStats summarizes the claim backlog for the dashboard.
type ClaimStats struct {
	Total        int `json:"total"`
	Within30Days int `json:"within30Days"`
	Within60Days int `json:"within60Days"`
	NeedsReview  int `json:"needsReview"`
}

// ClaimStore is the in-memory guarantee-claim collection.
type ClaimStore struct {
	mu     sync.RWMutex
	claims map[string]*domain.Claim
	ids    []string

	now func() time.Time
}

// NewClaimStore returns an empty ClaimStore.
func NewClaimStore() *ClaimStore {
	return &ClaimStore{
		claims: make(map[string]*domain.Claim),
		now:    time.Now,
	}
}

// SeedClaims loads pre-built claims from the mock generator.
func (s *ClaimStore) SeedClaims(claims []domain.Claim) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range claims {
		c := c
		s.claims[c.ID] = &c
		s.ids = append(s.ids, c.ID)
	}
}

// CreateClaim registers a new claim dated today with status PENDING.
func (s *ClaimStore) CreateClaim(in ClaimInput) domain.Claim {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &domain.Claim{
		ID:             fmt.Sprintf("CLM-%d", claimIDBase+len(s.ids)),
		OrderID:        in.OrderID,
		Customer:       in.Customer,
		Technician:     in.Technician,
		Product:        in.Product,
		OriginalPSDate: in.OriginalPSDate,
		ClaimDate:      s.now().UTC().Format("2006-01-02"),
		Status:         ClaimPending,
		Description:    in.Description,
	}
	s.claims[c.ID] = c
	s.ids = append(s.ids, c.ID)
	return *c
}

// GetClaim returns a copy of the claim, if present.
func (s *ClaimStore) GetClaim(id string) (domain.Claim, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.claims[id]
	if !ok {
		return domain.Claim{}, false
	}
	return *c, true
}

// ListClaims returns copies of every claim matching the filter, in
// insertion order.
func (s *ClaimStore) ListClaims(f ClaimFilter) []domain.Claim {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Claim, 0, len(s.ids))
	for _, id := range s.ids {
		c := s.claims[id]
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if f.Product != "" && c.Product != f.Product {
			continue
		}
		out = append(out, *c)
	}
	return out
}

// UpdateClaimStatus sets the claim's status. Returns false when the claim
// does not exist.
func (s *ClaimStore) UpdateClaimStatus(id, status string) (domain.Claim, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.claims[id]
	if !ok {
		return domain.Claim{}, false
	}
	c.Status = status
	return *c, true
}

// ClaimSummary aggregates the full backlog, unaffected by filters.
func (s *ClaimStore) ClaimSummary() ClaimStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats ClaimStats
	for _, c := range s.claims {
		stats.Total++
		switch {
		case c.RemainingDays <= 30:
			stats.Within30Days++
		case c.RemainingDays <= 60:
			stats.Within60Days++
		}
		if c.Status == ClaimPending {
			stats.NeedsReview++
		}
	}
	return stats
}
