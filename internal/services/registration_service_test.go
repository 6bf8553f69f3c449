package services

import (
	"errors"
	"testing"
	"time"

	"github.com/arestitans/smart-dispatcher/internal/domain"
	"github.com/arestitans/smart-dispatcher/internal/registry"
)

func fixedClock() func() time.Time {
	ts := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return ts }
}

func newRegSvc() *RegistrationService {
	s := NewRegistrationService(registry.NewStore())
	s.Now = fixedClock()
	return s
}

func TestRegister_NewChat(t *testing.T) {
	svc := newRegSvc()

	p, err := svc.Register(555, "alice", "Alice A")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if p.ID != "TX-9101" {
		t.Fatalf("id = %q; want TX-9101", p.ID)
	}
	if p.ChatID != 555 || p.Username != "alice" || p.DisplayName != "Alice A" {
		t.Fatalf("pending = %+v", p)
	}
	if p.RegisteredAt != svc.Now() {
		t.Fatalf("registeredAt = %v", p.RegisteredAt)
	}
}

func TestRegister_DuplicateIsIdempotent(t *testing.T) {
	svc := newRegSvc()

	first, _ := svc.Register(555, "alice", "Alice A")
	second, err := svc.Register(555, "alice", "Alice A")
	if !errors.Is(err, ErrAlreadyPending) {
		t.Fatalf("err = %v; want ErrAlreadyPending", err)
	}
	if second.ID != first.ID {
		t.Fatalf("duplicate register produced new id %q; want %q", second.ID, first.ID)
	}
	if got := svc.Pending(); len(got) != 1 {
		t.Fatalf("pending count = %d; want 1", len(got))
	}
}

func TestRegister_AlreadyApprovedChat(t *testing.T) {
	svc := newRegSvc()

	p, _ := svc.Register(555, "alice", "Alice A")
	if _, err := svc.Approve(p.ID, ApproveInput{Name: "Alice A"}); err != nil {
		t.Fatalf("approve: %v", err)
	}

	// Re-registering the approved chat must not create a pending record.
	if _, err := svc.Register(555, "alice", "Alice A"); !errors.Is(err, ErrAlreadyApproved) {
		t.Fatalf("err = %v; want ErrAlreadyApproved", err)
	}
	if got := svc.Pending(); len(got) != 0 {
		t.Fatalf("pending count = %d; want 0", len(got))
	}
}

func TestApprove_CarriesOverIdentityAndDefaults(t *testing.T) {
	svc := newRegSvc()
	p, _ := svc.Register(555, "alice", "Alice A")

	tech, err := svc.Approve(p.ID, ApproveInput{
		Name: "Alice A", Area: "Jakarta Selatan", Phone: "0812-1111-2222",
		NIK: "123", Unit: "U1",
	})
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if tech.ID != p.ID {
		t.Fatalf("technician id = %q; want pending id %q", tech.ID, p.ID)
	}
	if tech.ChatID != 555 || tech.Username != "alice" {
		t.Fatalf("chat identity not carried over: %+v", tech)
	}
	if tech.Status != domain.StatusAvailable || tech.Workload != 0 || tech.MaxLoad != 3 {
		t.Fatalf("defaults wrong: %+v", tech)
	}
	if tech.Rank != domain.RankAverage {
		t.Fatalf("rank = %q; want AVERAGE", tech.Rank)
	}
	if tech.Stats.SLACompliance != 100 || tech.Stats.CompletedOrders != 0 {
		t.Fatalf("stats = %+v", tech.Stats)
	}

	// Promotion is observable as a single step.
	if _, ok := svc.Store.PendingByID(p.ID); ok {
		t.Fatalf("pending record still present after approval")
	}
	if got, ok := svc.Store.TechnicianByID(p.ID); !ok || got.ID != p.ID {
		t.Fatalf("technician not found under carried-over id")
	}
}

func TestApprove_BlankFieldsFallBack(t *testing.T) {
	svc := newRegSvc()
	p, _ := svc.Register(7, "", "Budi Santoso")

	tech, err := svc.Approve(p.ID, ApproveInput{})
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if tech.Name != "Budi Santoso" {
		t.Fatalf("name = %q; want display-name fallback", tech.Name)
	}
	if tech.Area != DefaultArea {
		t.Fatalf("area = %q; want %q", tech.Area, DefaultArea)
	}
}

func TestApprove_DoubleApproveFailsSecondTime(t *testing.T) {
	svc := newRegSvc()
	p, _ := svc.Register(555, "alice", "Alice A")

	if _, err := svc.Approve(p.ID, ApproveInput{}); err != nil {
		t.Fatalf("first approve: %v", err)
	}
	if _, err := svc.Approve(p.ID, ApproveInput{}); !errors.Is(err, ErrPendingNotFound) {
		t.Fatalf("second approve err = %v; want ErrPendingNotFound", err)
	}
}

func TestReject_ReturnsSnapshotWithReason(t *testing.T) {
	svc := newRegSvc()
	p, _ := svc.Register(556, "bob", "Bob B")

	rej, err := svc.Reject(p.ID, "area not covered")
	if err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}
	if rej.ID != p.ID || rej.RejectedReason != "area not covered" {
		t.Fatalf("rejected = %+v", rej)
	}
	if _, ok := svc.Store.PendingByID(p.ID); ok {
		t.Fatalf("pending record survived rejection")
	}

	if _, err := svc.Reject(p.ID, "again"); !errors.Is(err, ErrPendingNotFound) {
		t.Fatalf("second reject err = %v; want ErrPendingNotFound", err)
	}
}

func TestReject_ThenReRegisterGetsFreshID(t *testing.T) {
	svc := newRegSvc()
	p1, _ := svc.Register(556, "bob", "Bob B")
	svc.Reject(p1.ID, "")

	// No memory of the prior rejection: a brand-new id is issued.
	p2, err := svc.Register(556, "bob", "Bob B")
	if err != nil {
		t.Fatalf("re-register: %v", err)
	}
	if p2.ID == p1.ID {
		t.Fatalf("id %q reused after rejection", p2.ID)
	}
}

func TestLinkChat(t *testing.T) {
	svc := newRegSvc()
	id := svc.Store.NewID()
	svc.Store.AddTechnician(domain.Technician{ID: id, Name: "Citra", Area: "Bekasi"})

	tech, err := svc.LinkChat(id, 4242)
	if err != nil {
		t.Fatalf("LinkChat returned error: %v", err)
	}
	if tech.ChatID != 4242 {
		t.Fatalf("chat id = %d", tech.ChatID)
	}

	if _, err := svc.LinkChat("TX-9050", 4242); !errors.Is(err, ErrTechnicianNotFound) {
		t.Fatalf("err = %v; want ErrTechnicianNotFound", err)
	}
}
