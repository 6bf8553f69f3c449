// Package orders holds the in-memory work-order store. Orders live for the
// process lifetime only; the store is seeded at startup from the mock
// generator and mutated through the REST surface. All methods are safe for
// concurrent use.
package orders

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/arestitans/smart-dispatcher/internal/domain"
)

// idSeed is the value before the first issued order id, so the first order
// created in a fresh store is ORD-4501.
const idSeed = 4500

// Filter narrows a List call. Zero-valued fields match everything; Search
// is a case-insensitive substring match over id, customer, and address.
type Filter struct {
	Status   string
	Product  string
	Priority string
	Search   string
}

// CreateInput carries the caller-supplied fields for a new order.
type CreateInput struct {
	Customer     string             `json:"customer"`
	CustomerType string             `json:"customerType"`
	Phone        string             `json:"phone"`
	Address      string             `json:"address"`
	Area         string             `json:"area"`
	Coordinates  domain.Coordinates `json:"coordinates"`
	Product      string             `json:"product"`
	OrderType    string             `json:"orderType"`
	Schedule     string             `json:"schedule"`
	ScheduleTime string             `json:"scheduleTime"`
	Priority     string             `json:"priority"`
	Notes        string             `json:"notes"`
}

// ProductCount is one row of the per-product order breakdown.
type ProductCount struct {
	Product string `json:"product"`
	Count   int    `json:"count"`
}

// PriorityCount breaks the orders down by priority.
type PriorityCount struct {
	High   int `json:"high"`
	Normal int `json:"normal"`
	Low    int `json:"low"`
}

// Summary aggregates the order roster for the dashboard. InProgress covers
// the field stages between OPEN and PS_DONE.
type Summary struct {
	Total      int            `json:"total"`
	Open       int            `json:"open"`
	InProgress int            `json:"inProgress"`
	Completed  int            `json:"completed"`
	Issues     int            `json:"issues"`
	ByProduct  []ProductCount `json:"byProduct"`
	ByPriority PriorityCount  `json:"byPriority"`
}

// Store is the in-memory order collection.
type Store struct {
	mu     sync.RWMutex
	seq    int
	orders map[string]*domain.Order
	ids    []string // insertion order, for stable listings

	now func() time.Time
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		seq:    idSeed,
		orders: make(map[string]*domain.Order),
		now:    time.Now,
	}
}

// Seed loads pre-built orders, typically from the mock generator. Ids
// already carrying a numeric suffix advance the counter past them so later
// Create calls never collide.
func (s *Store) Seed(orders []domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range orders {
		o := o
		s.orders[o.ID] = &o
		s.ids = append(s.ids, o.ID)
		if n, ok := numericSuffix(o.ID); ok && n > s.seq {
			s.seq = n
		}
	}
}

func numericSuffix(id string) (int, bool) {
	i := strings.LastIndexByte(id, '-')
	if i < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Create registers a new order. Status starts OPEN and priority defaults to
// NORMAL when unset.
func (s *Store) Create(in CreateInput) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	now := s.now().UTC()
	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}
	o := &domain.Order{
		ID:           fmt.Sprintf("ORD-%d", s.seq),
		Customer:     in.Customer,
		CustomerType: in.CustomerType,
		Phone:        in.Phone,
		Address:      in.Address,
		Area:         in.Area,
		Coordinates:  in.Coordinates,
		Product:      in.Product,
		OrderType:    in.OrderType,
		Schedule:     in.Schedule,
		ScheduleTime: in.ScheduleTime,
		Status:       domain.OrderOpen,
		Priority:     priority,
		CreatedAt:    now,
		LastUpdated:  now,
		Notes:        in.Notes,
	}
	s.orders[o.ID] = o
	s.ids = append(s.ids, o.ID)
	return *o
}

// Get returns a copy of the order, if present.
func (s *Store) Get(id string) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return domain.Order{}, false
	}
	return *o, true
}

// List returns copies of every order matching the filter, in insertion
// order.
func (s *Store) List(f Filter) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]domain.Order, 0, len(s.ids))
	for _, id := range s.ids {
		o := s.orders[id]
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.Product != "" && o.Product != f.Product {
			continue
		}
		if f.Priority != "" && o.Priority != f.Priority {
			continue
		}
		if search != "" && !matchesSearch(o, search) {
			continue
		}
		out = append(out, *o)
	}
	return out
}

func matchesSearch(o *domain.Order, search string) bool {
	return strings.Contains(strings.ToLower(o.ID), search) ||
		strings.Contains(strings.ToLower(o.Customer), search) ||
		strings.Contains(strings.ToLower(o.Address), search)
}

// Assign attaches a technician to the order and moves it to SURVEY, the
// first field stage. Returns false when the order does not exist.
func (s *Store) Assign(orderID string, tech domain.Assignee) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return domain.Order{}, false
	}
	o.Assignee = &domain.Assignee{ID: tech.ID, Name: tech.Name}
	o.Status = domain.OrderSurvey
	o.LastUpdated = s.now().UTC()
	return *o, true
}

// UpdateStatus sets the order's lifecycle status. Returns false when the
// order does not exist or the status is not a known lifecycle value.
func (s *Store) UpdateStatus(orderID, status string) (domain.Order, bool) {
	if !validStatus(status) {
		return domain.Order{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return domain.Order{}, false
	}
	o.Status = status
	o.LastUpdated = s.now().UTC()
	return *o, true
}

func validStatus(status string) bool {
	for _, s := range domain.OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of every order. The stale monitor polls this.
func (s *Store) Snapshot() []domain.Order {
	return s.List(Filter{})
}

// Stats summarizes the current roster for the dashboard.
func (s *Store) Stats() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum Summary
	byProduct := make(map[string]int)
	for _, o := range s.orders {
		sum.Total++
		byProduct[o.Product]++
		switch o.Status {
		case domain.OrderOpen:
			sum.Open++
		case domain.OrderSurvey, domain.OrderIKR, domain.OrderActivation:
			sum.InProgress++
		case domain.OrderPSDone:
			sum.Completed++
		case domain.OrderTechnicalIssue:
			sum.Issues++
		}
		switch o.Priority {
		case domain.PriorityHigh:
			sum.ByPriority.High++
		case domain.PriorityNormal:
			sum.ByPriority.Normal++
		case domain.PriorityLow:
			sum.ByPriority.Low++
		}
	}
	sum.ByProduct = make([]ProductCount, 0, len(domain.ProductTypes))
	for _, p := range domain.ProductTypes {
		sum.ByProduct = append(sum.ByProduct, ProductCount{Product: p, Count: byProduct[p]})
	}
	return sum
}
