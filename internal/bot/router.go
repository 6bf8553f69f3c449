// Package bot – command router
//
// Routes decoded inbound events to the registration state machine and the
// notification dispatcher. The router keeps no state of its own: every
// invocation resolves the chat identity against the registry fresh.
//
// Unrecognized input is ignored without a reply; that mirrors the absence
// of a fallback handler in the product and is deliberate.
package bot

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/arestitans/smart-dispatcher/internal/notify"
	"github.com/arestitans/smart-dispatcher/internal/registry"
	"github.com/arestitans/smart-dispatcher/internal/services"
)

// Inbound is a plain text message event from the channel transport.
// Sender fields are optional; blanks fall back to fixed placeholders.
type Inbound struct {
	ChatID    int64
	Text      string
	Username  string
	FirstName string
	LastName  string
}

// Router dispatches inbound channel events.
type Router struct {
	Reg   *services.RegistrationService
	Store *registry.Store
	Disp  *notify.Dispatcher
	Log   zerolog.Logger

	// Now is the clock for timestamps in replies; tests pin it.
	Now func() time.Time
}

// NewRouter constructs a Router over the given collaborators.
func NewRouter(reg *services.RegistrationService, store *registry.Store, disp *notify.Dispatcher, log zerolog.Logger) *Router {
	return &Router{Reg: reg, Store: store, Disp: disp, Log: log, Now: time.Now}
}

// displayName assembles the registrant's name from the optional sender
// fields, substituting the fixed placeholder when both are missing.
func displayName(first, last string) string {
	name := first
	if last != "" {
		if name != "" {
			name += " "
		}
		name += last
	}
	if name == "" {
		return "Unknown"
	}
	return name
}

// HandleMessage processes one inbound text message.
func (r *Router) HandleMessage(in Inbound) {
	switch ev := DecodeText(in.Text).(type) {
	case StartCommand:
		r.handleStart(in)
	case LegacyLink:
		r.handleLegacyLink(in.ChatID, ev.TechID)
	case HelpCommand:
		r.Disp.Reply(in.ChatID, helpText)
	case MyOrdersCommand:
		r.Disp.Reply(in.ChatID, myOrdersText)
	case OTWCommand:
		r.Disp.Reply(in.ChatID, otwText(r.Now()))
	case ArrivedCommand:
		r.Disp.Reply(in.ChatID, arrivedText(r.Now()))
	case DoneCommand:
		r.Disp.Reply(in.ChatID, doneText(r.Now()))
	case ReportCommand:
		r.Disp.Reply(in.ChatID, reportText(r.Now()))
	case Unrecognized:
		// Silently ignored.
	}
}

// HandleCallback processes one inline-button callback payload.
func (r *Router) HandleCallback(chatID int64, data string) {
	switch ev := DecodeCallback(data).(type) {
	case AcceptCallback:
		// Order-status mutation belongs to the order subsystem; the bot
		// only confirms and lists the next steps.
		r.Disp.Reply(chatID, acceptedText(ev.OrderID))
	case RejectCallback:
		r.Disp.ReplyButtons(chatID, rejectPrompt(ev.OrderID), reasonButtons(ev.OrderID))
	case ReasonCallback:
		r.Disp.Reply(chatID, rejectionAck)
	case Unrecognized:
		// Silently ignored.
	}
}

// handleStart drives the /start registration flow. An already-known chat
// gets its status back without any mutation; a new chat is registered,
// confirmed to the registrant first, and then announced to the admin
// distribution list. Fan-out failures never reach the registrant.
func (r *Router) handleStart(in Inbound) {
	if tech, ok := r.Store.TechnicianByChat(in.ChatID); ok {
		r.Disp.Reply(in.ChatID, technicianStatus(tech))
		return
	}
	if p, ok := r.Store.PendingByChat(in.ChatID); ok {
		r.Disp.Reply(in.ChatID, pendingStatus(p))
		return
	}

	p, err := r.Reg.Register(in.ChatID, in.Username, displayName(in.FirstName, in.LastName))
	switch {
	case errors.Is(err, services.ErrAlreadyApproved):
		// Lost a race with an approval; answer with current status.
		if tech, ok := r.Store.TechnicianByChat(in.ChatID); ok {
			r.Disp.Reply(in.ChatID, technicianStatus(tech))
		}
		return
	case errors.Is(err, services.ErrAlreadyPending):
		r.Disp.Reply(in.ChatID, pendingStatus(p))
		return
	case err != nil:
		r.Log.Error().Err(err).Int64("chat_id", in.ChatID).Msg("registration failed")
		return
	}

	r.Disp.Reply(in.ChatID, registrationReceived(p, r.Now()))
	r.Disp.NotifyNewRegistration(p)
}

// handleLegacyLink connects a chat to an existing technician by id.
func (r *Router) handleLegacyLink(chatID int64, techID string) {
	tech, err := r.Reg.LinkChat(techID, chatID)
	if err != nil {
		r.Disp.Reply(chatID, linkNotFound)
		return
	}
	r.Disp.Reply(chatID, chatLinked(tech))
}
