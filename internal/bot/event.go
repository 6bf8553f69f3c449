// Package bot interprets inbound Telegram traffic for the dispatch system.
//
// This file decodes raw message texts and callback payloads into a tagged
// event type exactly once at the boundary. The command router then matches
// on the variants exhaustively, which removes any ambiguity about
// overlapping text patterns.
package bot

import (
	"regexp"
	"strings"

	"github.com/arestitans/smart-dispatcher/internal/notify"
)

// Event is an inbound channel event after decoding. Exactly one concrete
// variant below implements it.
type Event interface{ event() }

type (
	// StartCommand is the /start registration trigger.
	StartCommand struct{}
	// HelpCommand requests the command list.
	HelpCommand struct{}
	// MyOrdersCommand requests the technician's active orders.
	MyOrdersCommand struct{}
	// OTWCommand marks the technician en route.
	OTWCommand struct{}
	// ArrivedCommand marks the technician on site.
	ArrivedCommand struct{}
	// DoneCommand completes the current order.
	DoneCommand struct{}
	// ReportCommand requests the daily statistics digest.
	ReportCommand struct{}
	// LegacyLink is a bare technician id sent as a message: an existing
	// technician claiming this chat.
	LegacyLink struct{ TechID string }
	// AcceptCallback is a press on an offer's accept button.
	AcceptCallback struct{ OrderID string }
	// RejectCallback is a press on an offer's reject button.
	RejectCallback struct{ OrderID string }
	// ReasonCallback is a pick from the rejection-reason menu.
	ReasonCallback struct{ Category, OrderID string }
	// Unrecognized is anything else; the router ignores it silently.
	Unrecognized struct{}
)

func (StartCommand) event()    {}
func (HelpCommand) event()     {}
func (MyOrdersCommand) event() {}
func (OTWCommand) event()      {}
func (ArrivedCommand) event()  {}
func (DoneCommand) event()     {}
func (ReportCommand) event()   {}
func (LegacyLink) event()      {}
func (AcceptCallback) event()  {}
func (RejectCallback) event()  {}
func (ReasonCallback) event()  {}
func (Unrecognized) event()    {}

// legacyIDPattern matches a technician id sent verbatim as the whole
// message, case-insensitively.
var legacyIDPattern = regexp.MustCompile(`(?i)^TX-\d+$`)

// DecodeText classifies a plain message text.
func DecodeText(text string) Event {
	text = strings.TrimSpace(text)

	if legacyIDPattern.MatchString(text) {
		return LegacyLink{TechID: strings.ToUpper(text)}
	}

	cmd := text
	if i := strings.IndexAny(cmd, " @"); strings.HasPrefix(cmd, "/") && i > 0 {
		cmd = cmd[:i]
	}
	switch cmd {
	case "/start":
		return StartCommand{}
	case "/help":
		return HelpCommand{}
	case "/myorders":
		return MyOrdersCommand{}
	case "/otw":
		return OTWCommand{}
	case "/arrived":
		return ArrivedCommand{}
	case "/done":
		return DoneCommand{}
	case "/report":
		return ReportCommand{}
	}
	return Unrecognized{}
}

// DecodeCallback classifies an inline-button callback payload.
func DecodeCallback(data string) Event {
	switch {
	case strings.HasPrefix(data, notify.CallbackAcceptPrefix):
		return AcceptCallback{OrderID: strings.TrimPrefix(data, notify.CallbackAcceptPrefix)}
	case strings.HasPrefix(data, notify.CallbackRejectPrefix):
		return RejectCallback{OrderID: strings.TrimPrefix(data, notify.CallbackRejectPrefix)}
	case strings.HasPrefix(data, notify.CallbackReasonPrefix):
		rest := strings.TrimPrefix(data, notify.CallbackReasonPrefix)
		parts := strings.SplitN(rest, "_", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return Unrecognized{}
		}
		return ReasonCallback{Category: parts[0], OrderID: parts[1]}
	}
	return Unrecognized{}
}
