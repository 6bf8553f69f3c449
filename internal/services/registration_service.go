// Package services – RegistrationService
//
// This file implements the technician registration state machine. A chat
// identity moves from unregistered to pending on its first /start, and from
// pending to approved (a Technician record) or rejected (record discarded)
// by administrative action. The service owns the defaults a freshly approved
// technician starts with; atomicity of the transitions themselves is
// delegated to the registry store.
package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/arestitans/smart-dispatcher/internal/domain"
	"github.com/arestitans/smart-dispatcher/internal/registry"
)

// Defaults applied when a pending registration is approved.
const (
	DefaultArea        = "Jakarta Selatan"
	DefaultMaxWorkload = 3
)

// ApproveInput carries the administrative details supplied on approval.
// Every field is optional; blanks fall back to defaults or to data carried
// over from the pending registration.
type ApproveInput struct {
	NIK   string `json:"nik"`
	Name  string `json:"name"`
	Area  string `json:"area"`
	Unit  string `json:"unit"`
	Phone string `json:"phone"`
}

// RejectedRegistration is the snapshot returned by Reject, used to notify
// the registrant. The pending record itself is gone by the time the caller
// sees this; no audit trail is kept.
type RejectedRegistration struct {
	domain.PendingRegistration
	RejectedReason string `json:"rejectedReason"`
}

// RegistrationService governs the pending-technician lifecycle.
//
// Now is the clock used for registration timestamps; it defaults to
// time.Now and exists so tests can pin time.
type RegistrationService struct {
	Store *registry.Store
	Now   func() time.Time
}

// NewRegistrationService constructs a RegistrationService backed by store.
func NewRegistrationService(store *registry.Store) *RegistrationService {
	return &RegistrationService{Store: store, Now: time.Now}
}

// Register submits a self-service registration for chatID.
//
// If the chat already belongs to an approved technician it returns
// ErrAlreadyApproved. If a pending registration exists it returns that
// record together with ErrAlreadyPending, so a duplicate /start never
// produces a second pending id. Otherwise a new record is created with a
// freshly allocated id.
func (s *RegistrationService) Register(chatID int64, username, displayName string) (domain.PendingRegistration, error) {
	p, conflict := s.Store.CreatePending(chatID, username, displayName, s.Now().UTC())
	switch conflict {
	case registry.ConflictTechnician:
		return domain.PendingRegistration{}, ErrAlreadyApproved
	case registry.ConflictPending:
		return p, ErrAlreadyPending
	default:
		return p, nil
	}
}

// Approve promotes the pending registration into a Technician. The id and
// chat identity carry over; the technician starts AVAILABLE with an empty
// workload, rank AVERAGE, and 100% SLA compliance. Returns
// ErrPendingNotFound when the id no longer (or never) identifies a pending
// record, which makes a double approve harmless.
func (s *RegistrationService) Approve(pendingID string, in ApproveInput) (domain.Technician, error) {
	now := s.Now().UTC()
	tech, ok := s.Store.Promote(pendingID, func(p domain.PendingRegistration) domain.Technician {
		name := in.Name
		if name == "" {
			name = p.DisplayName
		}
		area := in.Area
		if area == "" {
			area = DefaultArea
		}
		return domain.Technician{
			ID:       p.ID,
			NIK:      in.NIK,
			Name:     name,
			Photo:    randomPortrait(),
			Area:     area,
			Unit:     in.Unit,
			Phone:    in.Phone,
			Status:   domain.StatusAvailable,
			ChatID:   p.ChatID,
			Username: p.Username,
			Workload: 0,
			MaxLoad:  DefaultMaxWorkload,
			Stats:    domain.TechnicianStats{SLACompliance: 100},
			Rank:     domain.RankAverage,

			ApprovedAt: now,
		}
	})
	if !ok {
		return domain.Technician{}, ErrPendingNotFound
	}
	return tech, nil
}

// Reject discards the pending registration and returns its final snapshot
// with the supplied reason attached. A missing reason is carried through
// empty; the notification layer renders the placeholder text.
func (s *RegistrationService) Reject(pendingID, reason string) (RejectedRegistration, error) {
	p, ok := s.Store.RemovePending(pendingID)
	if !ok {
		return RejectedRegistration{}, ErrPendingNotFound
	}
	return RejectedRegistration{PendingRegistration: p, RejectedReason: reason}, nil
}

// LinkChat connects a Telegram chat to a pre-existing technician who
// presented their id through the channel. Any chat id the technician held
// before is overwritten; no check is made against other technicians
// claiming the same chat.
func (s *RegistrationService) LinkChat(techID string, chatID int64) (domain.Technician, error) {
	t, ok := s.Store.LinkChat(techID, chatID)
	if !ok {
		return domain.Technician{}, ErrTechnicianNotFound
	}
	return t, nil
}

// Pending lists every registration awaiting administrative action.
func (s *RegistrationService) Pending() []domain.PendingRegistration {
	return s.Store.Pending()
}

// randomPortrait picks a placeholder avatar for a newly approved
// technician, matching the mock-data flavor of the dashboard.
func randomPortrait() string {
	gender := "men"
	if rand.Intn(2) == 0 {
		gender = "women"
	}
	return fmt.Sprintf("https://randomuser.me/api/portraits/%s/%d.jpg", gender, rand.Intn(50))
}
