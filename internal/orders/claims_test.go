package orders

import (
	"testing"
	"time"

	"github.com/arestitans/smart-dispatcher/internal/domain"
)

func TestCreateClaimDefaults(t *testing.T) {
	s := NewClaimStore()
	s.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }

	c := s.CreateClaim(ClaimInput{
		OrderID:  "ORD-8700",
		Customer: "Dewi Lestari",
		Product:  "INDIHOME",
	})

	if c.ID != "CLM-1000" {
		t.Errorf("id = %q, want CLM-1000", c.ID)
	}
	if c.Status != ClaimPending {
		t.Errorf("status = %q, want PENDING", c.Status)
	}
	if c.ClaimDate != "2025-06-01" {
		t.Errorf("claimDate = %q, want 2025-06-01", c.ClaimDate)
	}

	second := s.CreateClaim(ClaimInput{OrderID: "ORD-8701"})
	if second.ID != "CLM-1001" {
		t.Errorf("second id = %q, want CLM-1001", second.ID)
	}
}

func TestListClaimsFilters(t *testing.T) {
	s := NewClaimStore()
	s.SeedClaims([]domain.Claim{
		{ID: "CLM-1", Status: ClaimPending, Product: "INDIHOME", RemainingDays: 10},
		{ID: "CLM-2", Status: ClaimResolved, Product: "ORBIT", RemainingDays: 45},
		{ID: "CLM-3", Status: ClaimPending, Product: "ORBIT", RemainingDays: 70},
	})

	if got := s.ListClaims(ClaimFilter{Status: ClaimPending}); len(got) != 2 {
		t.Errorf("pending claims = %d, want 2", len(got))
	}
	if got := s.ListClaims(ClaimFilter{Product: "ORBIT"}); len(got) != 2 {
		t.Errorf("ORBIT claims = %d, want 2", len(got))
	}
	if got := s.ListClaims(ClaimFilter{Status: ClaimPending, Product: "ORBIT"}); len(got) != 1 || got[0].ID != "CLM-3" {
		t.Errorf("combined filter = %+v, want only CLM-3", got)
	}
}

func TestClaimSummaryBuckets(t *testing.T) {
	s := NewClaimStore()
	s.SeedClaims([]domain.Claim{
		{ID: "CLM-1", Status: ClaimPending, RemainingDays: 10},
		{ID: "CLM-2", Status: ClaimResolved, RemainingDays: 45},
		{ID: "CLM-3", Status: ClaimInvestigation, RemainingDays: 70},
	})

	stats := s.ClaimSummary()
	if stats.Total != 3 {
		t.Errorf("total = %d, want 3", stats.Total)
	}
	if stats.Within30Days != 1 || stats.Within60Days != 1 {
		t.Errorf("buckets = %d/%d, want 1/1", stats.Within30Days, stats.Within60Days)
	}
	if stats.NeedsReview != 1 {
		t.Errorf("needsReview = %d, want 1", stats.NeedsReview)
	}
}

func TestUpdateClaimStatus(t *testing.T) {
	s := NewClaimStore()
	s.SeedClaims([]domain.Claim{{ID: "CLM-1", Status: ClaimPending}})

	got, ok := s.UpdateClaimStatus("CLM-1", ClaimResolved)
	if !ok || got.Status != ClaimResolved {
		t.Fatalf("UpdateClaimStatus = (%+v, %v)", got, ok)
	}
	if _, ok := s.UpdateClaimStatus("CLM-9", ClaimResolved); ok {
		t.Error("unknown claim accepted")
	}
}
