// Package notify – message templates
//
// Renders domain events into the Telegram message texts the field
// technicians and the admin/supervisor group see. The texts (Indonesian,
// with the box separators) are part of the product surface; changing them
// changes what users see, so keep them stable.
package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/arestitans/smart-dispatcher/internal/domain"
)

// Callback-data prefixes carried by inline keyboard buttons. The bot's
// command router decodes these to route a button press back to its order.
const (
	CallbackAcceptPrefix = "accept_"
	CallbackRejectPrefix = "reject_"
	CallbackReasonPrefix = "reason_"
)

const (
	separator = "━━━━━━━━━━━━━━━━━━━━━━━━"
	// reasonMissing is rendered when a rejection carries no reason.
	reasonMissing = "Tidak ada alasan yang diberikan"

	timestampLayout = "02/01/2006 15.04"
	dateLayout      = "02/01/2006"
)

// priorityBadge decorates a priority with its traffic-light emoji.
func priorityBadge(priority string) string {
	switch priority {
	case domain.PriorityHigh:
		return "🔴 HIGH"
	case domain.PriorityNormal:
		return "🟡 NORMAL"
	default:
		return "🟢 LOW"
	}
}

// orderBody renders the shared middle section of an order offer.
func orderBody(o domain.Order) string {
	scheduleTime := o.ScheduleTime
	if scheduleTime == "" {
		scheduleTime = "ASAP"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", separator)
	fmt.Fprintf(&b, "📦 Produk: %s\n", o.Product)
	fmt.Fprintf(&b, "🏷️ Tipe: %s\n", o.OrderType)
	fmt.Fprintf(&b, "%s\n\n", separator)
	fmt.Fprintf(&b, "👤 Customer: %s\n", o.Customer)
	fmt.Fprintf(&b, "📞 Telepon: %s\n", o.Phone)
	fmt.Fprintf(&b, "🏠 Alamat:\n   %s\n   %s\n\n", o.Address, o.Area)
	fmt.Fprintf(&b, "📍 Koordinat: %g, %g\n", o.Coordinates.Lat, o.Coordinates.Lng)
	fmt.Fprintf(&b, "🗺️ Google Maps: https://maps.google.com/?q=%g,%g\n\n", o.Coordinates.Lat, o.Coordinates.Lng)
	fmt.Fprintf(&b, "%s\n", separator)
	fmt.Fprintf(&b, "📅 Jadwal: %s\n", o.Schedule)
	fmt.Fprintf(&b, "⏰ Waktu: %s WIB\n", scheduleTime)
	fmt.Fprintf(&b, "⚡ Prioritas: %s\n", priorityBadge(o.Priority))
	fmt.Fprintf(&b, "%s\n\n", separator)
	return b.String()
}

// orderOffer is the single-order offer sent on direct assignment.
func orderOffer(o domain.Order) string {
	return fmt.Sprintf("🆕 ORDER BARU #%s\n\n%s⏳ Respon dalam 15 menit", o.ID, orderBody(o))
}

// assignedOrderOffer is the variant used by bulk distribution.
func assignedOrderOffer(o domain.Order) string {
	return fmt.Sprintf("🆕 ORDER ASSIGNED #%s\n\n%s⏳ Mohon segera proses order ini", o.ID, orderBody(o))
}

// offerButtons builds the accept/reject row tagged with the order id.
func offerButtons(orderID string) [][]Button {
	return [][]Button{{
		{Text: "✅ TERIMA", Data: CallbackAcceptPrefix + orderID},
		{Text: "❌ TOLAK", Data: CallbackRejectPrefix + orderID},
	}}
}

// priorityAlert warns the admin group about a HIGH priority order.
func priorityAlert(o domain.Order) string {
	area := o.Area
	if area == "" {
		area = "N/A"
	}
	scheduleTime := o.ScheduleTime
	if scheduleTime == "" {
		scheduleTime = "ASAP"
	}
	var b strings.Builder
	b.WriteString("⚠️ PRIORITY ORDER ALERT ⚠️\n\n")
	fmt.Fprintf(&b, "%s\n🔴 HIGH PRIORITY ORDER\n%s\n\n", separator, separator)
	fmt.Fprintf(&b, "📦 Order: #%s\n", o.ID)
	fmt.Fprintf(&b, "👤 Customer: %s\n", o.Customer)
	fmt.Fprintf(&b, "📍 Area: %s\n", area)
	fmt.Fprintf(&b, "📞 Phone: %s\n", o.Phone)
	fmt.Fprintf(&b, "🏠 Address: %s\n\n", o.Address)
	fmt.Fprintf(&b, "📅 Schedule: %s\n", o.Schedule)
	fmt.Fprintf(&b, "⏰ Time: %s\n\n", scheduleTime)
	b.WriteString("⚡ Requires immediate attention!\nAssign technician within 15 minutes.")
	return b.String()
}

// staleAlert lists every stale order in one aggregate message.
func staleAlert(orders []domain.Order) string {
	lines := make([]string, 0, len(orders))
	for _, o := range orders {
		last := "Unknown"
		if !o.LastUpdated.IsZero() {
			last = o.LastUpdated.Format(timestampLayout)
		}
		lines = append(lines, fmt.Sprintf("  • #%s - %s (%s)", o.ID, o.Customer, last))
	}
	var b strings.Builder
	b.WriteString("🕐 STALE ORDER ALERT 🕐\n\n")
	fmt.Fprintf(&b, "%s\n⚠️ Orders not updated > 1 hour\n%s\n\n", separator, separator)
	b.WriteString(strings.Join(lines, "\n"))
	fmt.Fprintf(&b, "\n\n📊 Total: %d orders\n\n", len(orders))
	b.WriteString("Please follow up with assigned technicians.")
	return b.String()
}

// OrderSummary is the daily digest sent to the admin group.
type OrderSummary struct {
	Date         string  `json:"date"`
	Total        int     `json:"total"`
	Completed    int     `json:"completed"`
	InProgress   int     `json:"inProgress"`
	InQueue      int     `json:"inQueue"`
	Issues       int     `json:"issues"`
	TechsActive  int     `json:"techsActive"`
	AvgTime      int     `json:"avgTime"`
	SLARate      float64 `json:"slaRate"`
	HighPriority int     `json:"highPriority"`
	StaleCount   int     `json:"staleCount"`
}

func orderSummary(s OrderSummary, now time.Time) string {
	date := s.Date
	if date == "" {
		date = now.Format(dateLayout)
	}
	var b strings.Builder
	b.WriteString("📊 ORDER SUMMARY\n\n")
	fmt.Fprintf(&b, "%s\n📅 %s\n%s\n\n", separator, date, separator)
	fmt.Fprintf(&b, "📦 Total Orders: %d\n", s.Total)
	fmt.Fprintf(&b, "✅ Completed: %d\n", s.Completed)
	fmt.Fprintf(&b, "🔄 In Progress: %d\n", s.InProgress)
	fmt.Fprintf(&b, "📋 In Queue: %d\n", s.InQueue)
	fmt.Fprintf(&b, "❌ Issues: %d\n\n", s.Issues)
	fmt.Fprintf(&b, "%s\n", separator)
	fmt.Fprintf(&b, "👷 Technicians Active: %d\n", s.TechsActive)
	fmt.Fprintf(&b, "⏱️ Avg Completion: %d min\n", s.AvgTime)
	fmt.Fprintf(&b, "📈 SLA Rate: %g%%\n", s.SLARate)
	fmt.Fprintf(&b, "%s\n\n", separator)
	fmt.Fprintf(&b, "🔴 High Priority: %d\n", s.HighPriority)
	fmt.Fprintf(&b, "🟠 Not Updated (>1h): %d", s.StaleCount)
	return b.String()
}

// approvalNotice congratulates a newly approved technician.
func approvalNotice(t domain.Technician) string {
	var b strings.Builder
	b.WriteString("✅ REGISTRASI DISETUJUI!\n\n")
	fmt.Fprintf(&b, "%s\nSelamat! Anda telah disetujui sebagai teknisi.\n%s\n\n", separator, separator)
	fmt.Fprintf(&b, "👤 Nama: %s\n", t.Name)
	fmt.Fprintf(&b, "🆔 ID: %s\n", t.ID)
	fmt.Fprintf(&b, "📍 Area: %s\n\n", t.Area)
	b.WriteString("Anda sekarang dapat menerima order.\nKetik /help untuk melihat daftar perintah.")
	return b.String()
}

// rejectionNotice informs a registrant their signup was declined.
func rejectionNotice(reason string) string {
	if reason == "" {
		reason = reasonMissing
	}
	var b strings.Builder
	b.WriteString("❌ REGISTRASI DITOLAK\n\n")
	fmt.Fprintf(&b, "%s\nMaaf, registrasi Anda ditolak oleh admin.\n%s\n\n", separator, separator)
	fmt.Fprintf(&b, "📝 Alasan: %s\n\n", reason)
	b.WriteString("Silakan hubungi admin untuk informasi lebih lanjut.")
	return b.String()
}

// registrationNotice tells the admin group about a new pending signup.
func registrationNotice(p domain.PendingRegistration) string {
	username := p.Username
	if username == "" {
		username = "N/A"
	}
	var b strings.Builder
	b.WriteString("🆕 REGISTRASI TEKNISI BARU\n\n")
	fmt.Fprintf(&b, "%s\n", separator)
	fmt.Fprintf(&b, "🆔 ID: %s\n", p.ID)
	fmt.Fprintf(&b, "👤 Nama: %s\n", p.DisplayName)
	fmt.Fprintf(&b, "📱 Username: @%s\n", username)
	fmt.Fprintf(&b, "📅 Waktu: %s\n", p.RegisteredAt.Format(timestampLayout))
	fmt.Fprintf(&b, "%s\n\n", separator)
	b.WriteString("⏳ Menunggu approval di Dashboard\nBuka menu Technicians > Pending Approvals")
	return b.String()
}
