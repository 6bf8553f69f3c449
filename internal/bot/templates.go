// Package bot – reply templates
//
// The conversational texts the bot answers with. Like the dispatcher
// templates, these are user-facing product copy.
package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/arestitans/smart-dispatcher/internal/domain"
	"github.com/arestitans/smart-dispatcher/internal/notify"
)

const separator = "━━━━━━━━━━━━━━━━━━━━━━━━"

const timestampLayout = "02/01/2006 15.04"

// completionChecklist is appended to every /done confirmation.
const completionChecklist = `
✅ Pastikan Sudah Melakukan:
• Update di @asobanten_bot
• COC
• Request Rating 10
• To check
• BA ID
• Update G-Form
`

func technicianStatus(t domain.Technician) string {
	var b strings.Builder
	b.WriteString("✅ Anda sudah terdaftar sebagai teknisi!\n\n")
	fmt.Fprintf(&b, "%s\n", separator)
	fmt.Fprintf(&b, "👤 Nama: %s\n", t.Name)
	fmt.Fprintf(&b, "🆔 ID: %s\n", t.ID)
	fmt.Fprintf(&b, "📍 Area: %s\n", t.Area)
	fmt.Fprintf(&b, "%s\n\n", separator)
	b.WriteString("Ketik /help untuk melihat daftar perintah.")
	return b.String()
}

func pendingStatus(p domain.PendingRegistration) string {
	var b strings.Builder
	b.WriteString("⏳ Registrasi Anda sedang menunggu approval.\n\n")
	fmt.Fprintf(&b, "%s\n", separator)
	fmt.Fprintf(&b, "🆔 ID: %s\n", p.ID)
	fmt.Fprintf(&b, "📅 Terdaftar: %s\n", p.RegisteredAt.Format(timestampLayout))
	fmt.Fprintf(&b, "%s\n\n", separator)
	b.WriteString("Mohon tunggu admin untuk menyetujui registrasi Anda.")
	return b.String()
}

func registrationReceived(p domain.PendingRegistration, now time.Time) string {
	var b strings.Builder
	b.WriteString("📝 Registrasi Diterima!\n\n")
	fmt.Fprintf(&b, "%s\n", separator)
	fmt.Fprintf(&b, "🆔 ID Anda: %s\n", p.ID)
	fmt.Fprintf(&b, "👤 Nama: %s\n", p.DisplayName)
	fmt.Fprintf(&b, "📅 Waktu: %s\n", now.Format(timestampLayout))
	fmt.Fprintf(&b, "%s\n\n", separator)
	b.WriteString("⏳ Status: Menunggu Approval Admin\n\n")
	b.WriteString("Anda akan menerima notifikasi setelah admin menyetujui registrasi.")
	return b.String()
}

func chatLinked(t domain.Technician) string {
	var b strings.Builder
	b.WriteString("✅ Telegram Terhubung!\n\n")
	fmt.Fprintf(&b, "%s\n", separator)
	fmt.Fprintf(&b, "👤 Nama: %s\n", t.Name)
	fmt.Fprintf(&b, "🆔 ID: %s\n", t.ID)
	fmt.Fprintf(&b, "📍 Area: %s\n", t.Area)
	fmt.Fprintf(&b, "%s\n\n", separator)
	b.WriteString("Anda akan menerima notifikasi order di sini.\nKetik /help untuk melihat daftar perintah.")
	return b.String()
}

const linkNotFound = "❌ ID Teknisi tidak ditemukan.\n\n" +
	"Jika Anda teknisi baru, cukup ketik /start untuk mendaftar otomatis."

const helpText = "📋 Daftar Perintah:\n\n" +
	"/start - Registrasi ke sistem\n" +
	"/myorders - Lihat order aktif\n" +
	"/otw - Update status OTW\n" +
	"/arrived - Update status tiba\n" +
	"/done - Selesaikan order\n" +
	"/report - Statistik harian\n" +
	"/help - Daftar perintah"

const myOrdersText = "📦 Order Aktif Anda:\n\n" +
	"1. #ORD-4501 - INDIHOME\n" +
	"   📍 Jl. Kemang Raya No. 45\n" +
	"   Status: 🟡 ON PROGRESS\n\n" +
	"2. #ORD-4502 - ORBIT\n" +
	"   📍 Jl. Sudirman No. 12\n" +
	"   Status: ⏳ PENDING"

func otwText(now time.Time) string {
	return fmt.Sprintf("🚗 Status Updated: OTW\n\nOrder: #ORD-4501\nWaktu: %s WIB\n\n"+
		"Silakan kirim lokasi Anda saat tiba.", now.Format("15.04.05"))
}

func arrivedText(now time.Time) string {
	return fmt.Sprintf("📍 Status Updated: ARRIVED\n\nOrder: #ORD-4501\nWaktu Tiba: %s WIB\n"+
		"Lokasi: ✅ Terverifikasi\n\nSilakan lakukan pekerjaan.\nKetik /done setelah selesai.",
		now.Format("15.04.05"))
}

func doneText(now time.Time) string {
	var b strings.Builder
	b.WriteString("✅ ORDER SELESAI\n\n")
	fmt.Fprintf(&b, "%s\n", separator)
	b.WriteString("Order: #ORD-4501\nStatus: ✅ PS DONE\n")
	fmt.Fprintf(&b, "Waktu Selesai: %s WIB\n", now.Format("15.04.05"))
	b.WriteString("Durasi: 1 jam 15 menit\n")
	fmt.Fprintf(&b, "%s\n\n", separator)
	b.WriteString("📊 Statistik Hari Ini:\n• Completed: 3 orders\n• Revenue Points: 450 pts\n• Avg Time: 52 menit\n")
	b.WriteString(completionChecklist)
	b.WriteString("\nLanjutkan kerja bagus! 🌟")
	return b.String()
}

func reportText(now time.Time) string {
	var b strings.Builder
	b.WriteString("📊 Laporan Harian\n\n")
	fmt.Fprintf(&b, "%s\n", separator)
	fmt.Fprintf(&b, "📅 Tanggal: %s\n", now.Format("02/01/2006"))
	fmt.Fprintf(&b, "%s\n\n", separator)
	b.WriteString("✅ Completed: 5 orders\n🔄 In Progress: 1 order\n⏳ Pending: 2 orders\n\n")
	b.WriteString("💰 Revenue Points: 750 pts\n⏱️ Avg Handling: 48 menit\n📈 SLA Compliance: 98%")
	return b.String()
}

func acceptedText(orderID string) string {
	return fmt.Sprintf("✅ Order #%s DITERIMA\n\nStatus: 🟡 ON PROGRESS\n\n"+
		"Langkah selanjutnya:\n"+
		"1. Ketik /otw saat berangkat ke lokasi\n"+
		"2. Ketik /arrived saat tiba di lokasi\n"+
		"3. Ketik /done setelah selesai\n\n"+
		"Semangat! 💪", orderID)
}

func rejectPrompt(orderID string) string {
	return fmt.Sprintf("Mohon berikan alasan penolakan untuk Order #%s:", orderID)
}

// reasonButtons is the fixed rejection-reason menu; each choice maps back
// to a reason_<category>_<orderID> callback.
func reasonButtons(orderID string) [][]notify.Button {
	reason := func(label, category string) []notify.Button {
		return []notify.Button{{
			Text: label,
			Data: fmt.Sprintf("%s%s_%s", notify.CallbackReasonPrefix, category, orderID),
		}}
	}
	return [][]notify.Button{
		reason("🚗 Jarak Terlalu Jauh", "distance"),
		reason("📅 Jadwal Bentrok", "schedule"),
		reason("🤒 Sakit/Izin", "sick"),
		reason("🔧 Handle Order Lain", "busy"),
	}
}

const rejectionAck = "❌ Order ditolak.\n" +
	"Order akan di-assign ke petugas lain.\n\n" +
	"Terima kasih atas konfirmasinya."
