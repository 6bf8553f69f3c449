// Package notify implements the notification dispatcher: it renders domain
// events into Telegram messages and delivers them, tolerating partial
// failure across recipients. One bad recipient never aborts a bulk
// operation and never surfaces as an error to the caller; failures are
// logged with recipient context and folded into the returned counts.
package notify

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/arestitans/smart-dispatcher/internal/domain"
)

// Button is one inline-keyboard button: a label and the callback data the
// press reports back.
type Button struct {
	Text string
	Data string
}

// Sender is the channel transport the dispatcher delivers through. The
// Telegram bot implements it; tests substitute fakes.
//
// Implementations must be safe for concurrent use: bulk operations send to
// independent recipients concurrently.
type Sender interface {
	// Send delivers a plain text message to one chat.
	Send(chatID int64, text string) error
	// SendButtons delivers a text message with inline keyboard rows.
	SendButtons(chatID int64, text string, rows [][]Button) error
}

// BulkResult aggregates a bulk send: Success+Failed equals the number of
// recipients attempted.
type BulkResult struct {
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

// OfferAssignment pairs a technician with the orders to offer them.
type OfferAssignment struct {
	Technician domain.Technician
	Orders     []domain.Order
}

// OfferReport is the outcome of a bulk order-offer distribution.
//
// Accounting invariant: Success+Failed equals the total number of orders
// across technicians that have a chat id, plus one per technician without
// one (a chat-less technician counts once regardless of order count).
type OfferReport struct {
	Success int                          `json:"success"`
	Failed  int                          `json:"failed"`
	Details []domain.NotificationOutcome `json:"details"`
}

var (
	deliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Telegram deliveries by message kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(deliveries)
}

// Dispatcher renders and delivers notifications. Admin and supervisor chat
// lists come from configuration; wherever "notify all admins" semantics are
// required the two lists are concatenated.
type Dispatcher struct {
	sender      Sender
	admins      []int64
	supervisors []int64
	log         zerolog.Logger

	// now is the clock used for date lines in summaries; tests pin it.
	now func() time.Time
}

// NewDispatcher constructs a Dispatcher delivering through sender.
func NewDispatcher(sender Sender, admins, supervisors []int64, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		sender:      sender,
		admins:      admins,
		supervisors: supervisors,
		log:         log,
		now:         time.Now,
	}
}

// adminChats returns the combined admin+supervisor distribution list.
func (d *Dispatcher) adminChats() []int64 {
	out := make([]int64, 0, len(d.admins)+len(d.supervisors))
	out = append(out, d.admins...)
	return append(out, d.supervisors...)
}

// send delivers one plain message, folding any transport error into a
// boolean and a log line.
func (d *Dispatcher) send(kind string, chatID int64, text string) bool {
	if err := d.sender.Send(chatID, text); err != nil {
		deliveries.WithLabelValues(kind, "error").Inc()
		d.log.Error().Err(err).Int64("chat_id", chatID).Str("kind", kind).Msg("delivery failed")
		return false
	}
	deliveries.WithLabelValues(kind, "sent").Inc()
	return true
}

// Reply sends a plain conversational reply to one chat. Used by the
// command router for its direct responses.
func (d *Dispatcher) Reply(chatID int64, text string) bool {
	return d.send("reply", chatID, text)
}

// ReplyButtons sends a reply carrying inline keyboard rows.
func (d *Dispatcher) ReplyButtons(chatID int64, text string, rows [][]Button) bool {
	if err := d.sender.SendButtons(chatID, text, rows); err != nil {
		deliveries.WithLabelValues("reply", "error").Inc()
		d.log.Error().Err(err).Int64("chat_id", chatID).Msg("reply delivery failed")
		return false
	}
	deliveries.WithLabelValues("reply", "sent").Inc()
	return true
}

// SendOrderOffer sends a single order offer with accept/reject buttons to
// one chat. Delivery failure is logged and reported as false, never as an
// error.
func (d *Dispatcher) SendOrderOffer(chatID int64, o domain.Order) bool {
	err := d.sender.SendButtons(chatID, orderOffer(o), offerButtons(o.ID))
	if err != nil {
		deliveries.WithLabelValues("order_offer", "error").Inc()
		d.log.Error().Err(err).Int64("chat_id", chatID).Str("order_id", o.ID).Msg("order offer delivery failed")
		return false
	}
	deliveries.WithLabelValues("order_offer", "sent").Inc()
	return true
}

// SendBulk delivers the same freeform message to every chat id,
// concurrently and independently: a slow or broken recipient neither
// blocks nor fails the others.
func (d *Dispatcher) SendBulk(chatIDs []int64, message string) BulkResult {
	var wg sync.WaitGroup
	oks := make([]bool, len(chatIDs))
	for i, id := range chatIDs {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			oks[i] = d.send("bulk", id, message)
		}(i, id)
	}
	wg.Wait()

	var res BulkResult
	for _, ok := range oks {
		if ok {
			res.Success++
		} else {
			res.Failed++
		}
	}
	return res
}

// SendBulkOrderOffers distributes order offers across many technicians.
// A technician without a chat id yields a single NO_CHANNEL outcome (one
// per technician, not per order); technicians with a chat id get one offer
// per order, each recorded individually. Technicians are processed
// concurrently; a technician's own orders are sent in sequence so their
// chat receives them in order.
func (d *Dispatcher) SendBulkOrderOffers(assignments []OfferAssignment) OfferReport {
	perAssignment := make([][]domain.NotificationOutcome, len(assignments))

	var wg sync.WaitGroup
	for i, a := range assignments {
		wg.Add(1)
		go func(i int, a OfferAssignment) {
			defer wg.Done()

			if !a.Technician.HasChat() {
				deliveries.WithLabelValues("order_offer", "no_channel").Inc()
				perAssignment[i] = []domain.NotificationOutcome{{
					TechID: a.Technician.ID,
					Status: domain.DeliveryNoChannel,
				}}
				return
			}

			outcomes := make([]domain.NotificationOutcome, 0, len(a.Orders))
			for _, o := range a.Orders {
				err := d.sender.SendButtons(a.Technician.ChatID, assignedOrderOffer(o), offerButtons(o.ID))
				if err != nil {
					deliveries.WithLabelValues("order_offer", "error").Inc()
					d.log.Error().Err(err).
						Str("tech_id", a.Technician.ID).
						Str("order_id", o.ID).
						Msg("bulk order offer delivery failed")
					outcomes = append(outcomes, domain.NotificationOutcome{
						TechID: a.Technician.ID, OrderID: o.ID,
						Status: domain.DeliveryError, Error: err.Error(),
					})
					continue
				}
				deliveries.WithLabelValues("order_offer", "sent").Inc()
				outcomes = append(outcomes, domain.NotificationOutcome{
					TechID: a.Technician.ID, OrderID: o.ID,
					Status: domain.DeliverySent,
				})
			}
			perAssignment[i] = outcomes
		}(i, a)
	}
	wg.Wait()

	var rep OfferReport
	rep.Details = make([]domain.NotificationOutcome, 0, len(assignments))
	for _, outcomes := range perAssignment {
		for _, out := range outcomes {
			if out.Status == domain.DeliverySent {
				rep.Success++
			} else {
				rep.Failed++
			}
			rep.Details = append(rep.Details, out)
		}
	}
	return rep
}

// SendPriorityAlert warns the admin distribution list about a high
// priority order. Always reports true: the alert is fire-and-forget and
// individual failures are only logged.
func (d *Dispatcher) SendPriorityAlert(o domain.Order) bool {
	text := priorityAlert(o)
	for _, id := range d.adminChats() {
		d.send("priority_alert", id, text)
	}
	return true
}

// SendStaleAlert sends one aggregate message listing every stale order to
// the admin distribution list. No-op (false) when the list is empty.
func (d *Dispatcher) SendStaleAlert(orders []domain.Order) bool {
	if len(orders) == 0 {
		return false
	}
	text := staleAlert(orders)
	for _, id := range d.adminChats() {
		d.send("stale_alert", id, text)
	}
	return true
}

// SendOrderSummary sends the daily digest to the admin distribution list.
func (d *Dispatcher) SendOrderSummary(s OrderSummary) bool {
	text := orderSummary(s, d.now())
	for _, id := range d.adminChats() {
		d.send("summary", id, text)
	}
	return true
}

// NotifyApproved tells a technician their registration was approved.
// Returns false when the technician has no linked chat.
func (d *Dispatcher) NotifyApproved(t domain.Technician) bool {
	if !t.HasChat() {
		return false
	}
	return d.send("approval", t.ChatID, approvalNotice(t))
}

// NotifyRejected tells a registrant their registration was declined.
func (d *Dispatcher) NotifyRejected(chatID int64, reason string) bool {
	if chatID == 0 {
		return false
	}
	return d.send("rejection", chatID, rejectionNotice(reason))
}

// NotifyNewRegistration fans the new-signup notice out to the admin
// distribution list. Failures are logged per recipient and never surface;
// the registrant's own confirmation has already been sent by the caller.
func (d *Dispatcher) NotifyNewRegistration(p domain.PendingRegistration) {
	text := registrationNotice(p)
	for _, id := range d.adminChats() {
		d.send("registration_notice", id, text)
	}
}

// SendToAdmins sends a freeform message to the admin list only.
func (d *Dispatcher) SendToAdmins(message string) bool {
	for _, id := range d.admins {
		d.send("admin_message", id, message)
	}
	return true
}

// SendToSupervisors sends a freeform message to the supervisor list only.
func (d *Dispatcher) SendToSupervisors(message string) bool {
	for _, id := range d.supervisors {
		d.send("supervisor_message", id, message)
	}
	return true
}
