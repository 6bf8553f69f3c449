// Package services – TechnicianService
//
// Read-side queries over the technician roster: filtered listings, the
// performance ranking, and the aggregate review used by the dashboard.
package services

import (
	"sort"

	"github.com/arestitans/smart-dispatcher/internal/domain"
	"github.com/arestitans/smart-dispatcher/internal/registry"
)

// rankWeight orders ranks best-first for listing sorts.
var rankWeight = map[string]int{
	domain.RankTop:     1,
	domain.RankGood:    2,
	domain.RankAverage: 3,
	domain.RankPoor:    4,
}

// TechnicianFilter narrows a listing; empty fields match everything.
type TechnicianFilter struct {
	Area   string
	Status string
	Rank   string
}

// RosterStats summarizes the roster by operational status.
type RosterStats struct {
	Active    int `json:"active"`
	Busy      int `json:"busy"`
	Available int `json:"available"`
}

// RankingEntry is one row of the performance ranking.
type RankingEntry struct {
	ID    string                 `json:"id"`
	Name  string                 `json:"name"`
	Photo string                 `json:"photo,omitempty"`
	Area  string                 `json:"area"`
	Rank  string                 `json:"rank"`
	Stats domain.TechnicianStats `json:"stats"`
}

// ClaimHolder identifies a technician carrying guarantee claims.
type ClaimHolder struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Claims int    `json:"claims"`
}

// GeneralReview aggregates roster-wide performance for the review screen.
type GeneralReview struct {
	TotalTechnicians  int            `json:"totalTechnicians"`
	AvgCompletionRate float64        `json:"avgCompletionRate"`
	AvgSLACompliance  float64        `json:"avgSlaCompliance"`
	AvgHandlingTime   float64        `json:"avgHandlingTime"`
	TotalRevenue      int            `json:"totalRevenue"`
	ByRank            map[string]int `json:"byRank"`
	TechsWithClaims   []ClaimHolder  `json:"techsWithClaims"`
}

// TechnicianService serves read-only roster queries.
type TechnicianService struct {
	Store *registry.Store
}

// NewTechnicianService constructs a TechnicianService backed by store.
func NewTechnicianService(store *registry.Store) *TechnicianService {
	return &TechnicianService{Store: store}
}

// List returns technicians matching the filter, sorted by rank (TOP first)
// with id as the tiebreak, plus roster-wide status counts.
func (s *TechnicianService) List(f TechnicianFilter) ([]domain.Technician, RosterStats) {
	all := s.Store.Technicians()

	var stats RosterStats
	for _, t := range all {
		switch t.Status {
		case domain.StatusActive:
			stats.Active++
		case domain.StatusBusy:
			stats.Busy++
		case domain.StatusAvailable:
			stats.Available++
		}
	}

	out := all[:0]
	for _, t := range all {
		if f.Area != "" && t.Area != f.Area {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Rank != "" && t.Rank != f.Rank {
			continue
		}
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		wi, wj := rankWeight[out[i].Rank], rankWeight[out[j].Rank]
		if wi != wj {
			return wi < wj
		}
		return out[i].ID < out[j].ID
	})
	return out, stats
}

// Get fetches one technician by id.
func (s *TechnicianService) Get(id string) (domain.Technician, error) {
	t, ok := s.Store.TechnicianByID(id)
	if !ok {
		return domain.Technician{}, ErrTechnicianNotFound
	}
	return t, nil
}

// Ranking orders the roster by guarantee claims ascending, then completed
// orders descending, then SLA compliance descending.
func (s *TechnicianService) Ranking() []RankingEntry {
	all := s.Store.Technicians()

	entries := make([]RankingEntry, 0, len(all))
	for _, t := range all {
		entries = append(entries, RankingEntry{
			ID: t.ID, Name: t.Name, Photo: t.Photo, Area: t.Area,
			Rank: t.Rank, Stats: t.Stats,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Stats, entries[j].Stats
		if a.GuaranteeClaims != b.GuaranteeClaims {
			return a.GuaranteeClaims < b.GuaranteeClaims
		}
		if a.CompletedOrders != b.CompletedOrders {
			return a.CompletedOrders > b.CompletedOrders
		}
		return a.SLACompliance > b.SLACompliance
	})
	return entries
}

// Review computes the roster-wide aggregate. Averages are zero on an empty
// roster rather than NaN.
func (s *TechnicianService) Review() GeneralReview {
	all := s.Store.Technicians()

	rv := GeneralReview{
		TotalTechnicians: len(all),
		ByRank:           map[string]int{"top": 0, "good": 0, "average": 0, "poor": 0},
		TechsWithClaims:  []ClaimHolder{},
	}
	if len(all) == 0 {
		return rv
	}

	var completed, handling int
	var sla float64
	for _, t := range all {
		completed += t.Stats.CompletedOrders
		handling += t.Stats.AvgHandlingTime
		sla += t.Stats.SLACompliance
		rv.TotalRevenue += t.Stats.RevenuePoints
		switch t.Rank {
		case domain.RankTop:
			rv.ByRank["top"]++
		case domain.RankGood:
			rv.ByRank["good"]++
		case domain.RankAverage:
			rv.ByRank["average"]++
		case domain.RankPoor:
			rv.ByRank["poor"]++
		}
		if t.Stats.GuaranteeClaims > 0 {
			rv.TechsWithClaims = append(rv.TechsWithClaims, ClaimHolder{
				ID: t.ID, Name: t.Name, Claims: t.Stats.GuaranteeClaims,
			})
		}
	}
	n := float64(len(all))
	rv.AvgCompletionRate = float64(completed) / n
	rv.AvgSLACompliance = sla / n
	rv.AvgHandlingTime = float64(handling) / n

	sort.Slice(rv.TechsWithClaims, func(i, j int) bool {
		return rv.TechsWithClaims[i].ID < rv.TechsWithClaims[j].ID
	})
	return rv
}
