package orders

import (
	"sync"
	"testing"
	"time"

	"github.com/arestitans/smart-dispatcher/internal/domain"
)

func fixedStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	s.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }
	return s
}

func TestCreateAllocatesSequentialIDs(t *testing.T) {
	s := fixedStore(t)

	first := s.Create(CreateInput{Customer: "Budi"})
	second := s.Create(CreateInput{Customer: "Siti"})

	if first.ID != "ORD-4501" {
		t.Errorf("first id = %q, want ORD-4501", first.ID)
	}
	if second.ID != "ORD-4502" {
		t.Errorf("second id = %q, want ORD-4502", second.ID)
	}
	if first.Status != domain.OrderOpen {
		t.Errorf("status = %q, want OPEN", first.Status)
	}
	if first.Priority != domain.PriorityNormal {
		t.Errorf("priority = %q, want NORMAL default", first.Priority)
	}
}

func TestSeedAdvancesCounter(t *testing.T) {
	s := fixedStore(t)
	s.Seed([]domain.Order{
		{ID: "ORD-4501", Customer: "Seeded A", Status: domain.OrderOpen},
		{ID: "ORD-4577", Customer: "Seeded B", Status: domain.OrderSurvey},
	})

	created := s.Create(CreateInput{Customer: "Fresh"})
	if created.ID != "ORD-4578" {
		t.Errorf("created id = %q, want ORD-4578 (past the seeded max)", created.ID)
	}
	if _, ok := s.Get("ORD-4501"); !ok {
		t.Error("seeded order not retrievable")
	}
}

func TestListFilters(t *testing.T) {
	s := fixedStore(t)
	s.Seed([]domain.Order{
		{ID: "ORD-1", Customer: "Budi Santoso", Address: "Jl. Kemang", Status: domain.OrderOpen, Product: "INDIHOME", Priority: domain.PriorityHigh},
		{ID: "ORD-2", Customer: "Siti Aminah", Address: "Jl. Sudirman", Status: domain.OrderSurvey, Product: "ORBIT", Priority: domain.PriorityNormal},
		{ID: "ORD-3", Customer: "Agus", Address: "Jl. Kemang Raya", Status: domain.OrderOpen, Product: "INDIHOME", Priority: domain.PriorityNormal},
	})

	cases := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all", Filter{}, []string{"ORD-1", "ORD-2", "ORD-3"}},
		{"status", Filter{Status: domain.OrderOpen}, []string{"ORD-1", "ORD-3"}},
		{"product", Filter{Product: "ORBIT"}, []string{"ORD-2"}},
		{"priority", Filter{Priority: domain.PriorityHigh}, []string{"ORD-1"}},
		{"search customer", Filter{Search: "siti"}, []string{"ORD-2"}},
		{"search address", Filter{Search: "kemang"}, []string{"ORD-1", "ORD-3"}},
		{"search id", Filter{Search: "ord-2"}, []string{"ORD-2"}},
		{"combined", Filter{Status: domain.OrderOpen, Search: "kemang raya"}, []string{"ORD-3"}},
		{"none", Filter{Status: domain.OrderPSDone}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.List(tc.filter)
			if len(got) != len(tc.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tc.want))
			}
			for i, o := range got {
				if o.ID != tc.want[i] {
					t.Errorf("order[%d] = %q, want %q", i, o.ID, tc.want[i])
				}
			}
		})
	}
}

func TestAssignMovesToSurvey(t *testing.T) {
	s := fixedStore(t)
	o := s.Create(CreateInput{Customer: "Budi"})

	got, ok := s.Assign(o.ID, domain.Assignee{ID: "TX-9101", Name: "Ahmad"})
	if !ok {
		t.Fatal("Assign returned false")
	}
	if got.Status != domain.OrderSurvey {
		t.Errorf("status = %q, want SURVEY", got.Status)
	}
	if got.Assignee == nil || got.Assignee.ID != "TX-9101" {
		t.Errorf("assignee = %+v, want TX-9101", got.Assignee)
	}

	if _, ok := s.Assign("ORD-9999", domain.Assignee{ID: "TX-9101"}); ok {
		t.Error("Assign on unknown order succeeded")
	}
}

func TestUpdateStatus(t *testing.T) {
	s := fixedStore(t)
	o := s.Create(CreateInput{Customer: "Budi"})

	got, ok := s.UpdateStatus(o.ID, domain.OrderPSDone)
	if !ok || got.Status != domain.OrderPSDone {
		t.Fatalf("UpdateStatus = (%+v, %v), want PS_DONE", got, ok)
	}
	if _, ok := s.UpdateStatus(o.ID, "BOGUS"); ok {
		t.Error("unknown status accepted")
	}
	if _, ok := s.UpdateStatus("ORD-9999", domain.OrderPSDone); ok {
		t.Error("unknown order accepted")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := fixedStore(t)
	o := s.Create(CreateInput{Customer: "Budi"})

	copy1, _ := s.Get(o.ID)
	copy1.Customer = "Mutated"

	copy2, _ := s.Get(o.ID)
	if copy2.Customer != "Budi" {
		t.Errorf("store mutated through returned copy: %q", copy2.Customer)
	}
}

func TestStats(t *testing.T) {
	s := fixedStore(t)
	s.Seed([]domain.Order{
		{ID: "ORD-1", Status: domain.OrderOpen, Product: "INDIHOME", Priority: domain.PriorityHigh},
		{ID: "ORD-2", Status: domain.OrderSurvey, Product: "INDIHOME", Priority: domain.PriorityNormal},
		{ID: "ORD-3", Status: domain.OrderIKR, Product: "ORBIT", Priority: domain.PriorityNormal},
		{ID: "ORD-4", Status: domain.OrderPSDone, Product: "HSI", Priority: domain.PriorityLow},
		{ID: "ORD-5", Status: domain.OrderTechnicalIssue, Product: "ORBIT", Priority: domain.PriorityHigh},
	})

	sum := s.Stats()
	if sum.Total != 5 {
		t.Errorf("total = %d, want 5", sum.Total)
	}
	if sum.Open != 1 || sum.InProgress != 2 || sum.Completed != 1 || sum.Issues != 1 {
		t.Errorf("open/inProgress/completed/issues = %d/%d/%d/%d, want 1/2/1/1",
			sum.Open, sum.InProgress, sum.Completed, sum.Issues)
	}
	if sum.ByPriority.High != 2 || sum.ByPriority.Normal != 2 || sum.ByPriority.Low != 1 {
		t.Errorf("byPriority = %+v", sum.ByPriority)
	}
	if len(sum.ByProduct) != len(domain.ProductTypes) {
		t.Fatalf("byProduct rows = %d, want %d", len(sum.ByProduct), len(domain.ProductTypes))
	}
	counts := make(map[string]int)
	for _, pc := range sum.ByProduct {
		counts[pc.Product] = pc.Count
	}
	if counts["INDIHOME"] != 2 || counts["ORBIT"] != 2 || counts["HSI"] != 1 {
		t.Errorf("byProduct counts = %v", counts)
	}
}

func TestConcurrentCreates(t *testing.T) {
	s := NewStore()
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Create(CreateInput{Customer: "c"})
		}()
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, o := range s.Snapshot() {
		if seen[o.ID] {
			t.Fatalf("duplicate id %s", o.ID)
		}
		seen[o.ID] = true
	}
	if len(seen) != n {
		t.Errorf("orders = %d, want %d", len(seen), n)
	}
}
