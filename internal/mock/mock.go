// Package mock generates sample orders, claims, and dashboard statistics.
// The generated data seeds the in-memory stores at startup so the dashboard
// has something to show before real traffic arrives.
package mock

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/arestitans/smart-dispatcher/internal/domain"
)

// orderIDBase is the numeric base for generated order ids: the first
// generated order is ORD-4400.
const orderIDBase = 4400

var areas = []string{
	"Jakarta Selatan", "Jakarta Pusat", "Jakarta Barat",
	"Jakarta Timur", "Jakarta Utara", "Tangerang", "Bekasi",
}

var streets = []string{"Sudirman", "Thamrin", "Gatot Subroto", "Kemang", "Kuningan"}

var orderTypes = []string{"Pasang Baru", "Upgrade", "Perbaikan", "Dismantle"}

var scheduleTimes = []string{"09:00", "10:00", "13:00", "14:00", "15:00"}

var phonePrefixes = []string{"0812", "0813", "0821", "0822", "0857", "0858"}

type customer struct {
	name string
	typ  string
}

var customers = []customer{
	{"PT. Digital Solution", "corporate"},
	{"Hendra Setiawan", "personal"},
	{"Apt. Kemang Village", "corporate"},
	{"Sinar Mas Land", "corporate"},
	{"Robby Hermawan", "personal"},
	{"CV. Maju Jaya", "corporate"},
	{"Dewi Lestari", "personal"},
	{"PT. Telekomunikasi", "corporate"},
	{"Ahmad Fadli", "personal"},
	{"Ruko Mangga Dua", "corporate"},
}

// coordinates scatters points around central Jakarta.
func coordinates(r *rand.Rand) domain.Coordinates {
	return domain.Coordinates{
		Lat: -6.2 + (r.Float64()*0.2 - 0.1),
		Lng: 106.8 + (r.Float64()*0.2 - 0.1),
	}
}

func phone(r *rand.Rand) string {
	prefix := phonePrefixes[r.Intn(len(phonePrefixes))]
	return fmt.Sprintf("%s-%d-%d", prefix, 1000+r.Intn(9000), 1000+r.Intn(9000))
}

// Orders generates count random orders. Orders past the OPEN stage are
// assigned to one of the supplied technicians when any exist.
func Orders(count int, techs []domain.Technician) []domain.Order {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	orders := make([]domain.Order, 0, count)
	for i := 0; i < count; i++ {
		c := customers[r.Intn(len(customers))]
		status := domain.OrderStatuses[r.Intn(len(domain.OrderStatuses))]

		var assignee *domain.Assignee
		if status != domain.OrderOpen && len(techs) > 0 {
			t := techs[r.Intn(len(techs))]
			assignee = &domain.Assignee{ID: t.ID, Name: t.Name}
		}

		created := now.AddDate(0, 0, -r.Intn(7))
		orders = append(orders, domain.Order{
			ID:           fmt.Sprintf("ORD-%d", orderIDBase+i),
			Customer:     c.name,
			CustomerType: c.typ,
			Phone:        phone(r),
			Address:      fmt.Sprintf("Jl. %s No. %d", streets[r.Intn(len(streets))], 1+r.Intn(100)),
			Area:         areas[r.Intn(len(areas))],
			Coordinates:  coordinates(r),
			Product:      domain.ProductTypes[r.Intn(len(domain.ProductTypes))],
			OrderType:    orderTypes[r.Intn(len(orderTypes))],
			Schedule:     now.AddDate(0, 0, r.Intn(7)).Format("2006-01-02"),
			ScheduleTime: scheduleTimes[r.Intn(len(scheduleTimes))],
			Status:       status,
			Priority:     []string{domain.PriorityHigh, domain.PriorityNormal, domain.PriorityLow}[r.Intn(3)],
			Assignee:     assignee,
			CreatedAt:    created,
			LastUpdated:  created,
		})
	}
	return orders
}

// Claims generates count guarantee claims against the supplied technicians.
// Returns nil when there are no technicians to blame.
func Claims(count int, techs []domain.Technician) []domain.Claim {
	if len(techs) == 0 {
		return nil
	}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()
	statuses := []string{"INVESTIGATION", "PENDING", "RECTIFICATION", "RESOLVED"}

	claims := make([]domain.Claim, 0, count)
	for i := 0; i < count; i++ {
		c := customers[r.Intn(len(customers))]
		tech := techs[r.Intn(len(techs))]
		original := now.AddDate(0, 0, -(30 + r.Intn(60)))
		claimed := original.AddDate(0, 0, r.Intn(30))

		claims = append(claims, domain.Claim{
			ID:             fmt.Sprintf("CLM-%d", 1000+i),
			OrderID:        fmt.Sprintf("ORD-%d", 8700+i),
			Customer:       c.name,
			Technician:     domain.Assignee{ID: tech.ID, Name: tech.Name},
			Product:        domain.ProductTypes[r.Intn(5)],
			OriginalPSDate: original.Format("2006-01-02"),
			ClaimDate:      claimed.Format("2006-01-02"),
			RemainingDays:  int(now.Sub(claimed).Hours() / 24),
			Status:         statuses[r.Intn(len(statuses))],
			Description:    "Connection issue reported by customer",
		})
	}
	return claims
}

// DashboardStats rolls the current orders and technicians up into the
// landing-page numbers.
type DashboardStats struct {
	PendingActions    int     `json:"pendingActions"`
	OnFieldFleet      int     `json:"onFieldFleet"`
	AvgResponse       int     `json:"avgResponse"`
	DailyCompletion   int     `json:"dailyCompletion"`
	GuaranteeClaims   int     `json:"guaranteeClaims"`
	TechnicalIssues   int     `json:"technicalIssues"`
	SystemIssues      int     `json:"systemIssues"`
	TotalOrders       int     `json:"totalOrders"`
	ActiveTechnicians int     `json:"activeTechnicians"`
	CompletionRate    float64 `json:"completionRate"`
}

// Dashboard computes the stats over live data. Claims and system-issue
// counts stay at the fixed sample values of the original dashboard.
func Dashboard(orders []domain.Order, techs []domain.Technician) DashboardStats {
	s := DashboardStats{
		AvgResponse:     18,
		GuaranteeClaims: 12,
		SystemIssues:    3,
		TotalOrders:     len(orders),
	}
	for _, o := range orders {
		switch o.Status {
		case domain.OrderOpen:
			s.PendingActions++
		case domain.OrderPSDone:
			s.DailyCompletion++
		case domain.OrderTechnicalIssue:
			s.TechnicalIssues++
		}
	}
	for _, t := range techs {
		if t.Status == domain.StatusActive || t.Status == domain.StatusBusy {
			s.OnFieldFleet++
		}
		if t.Status != domain.StatusOffline {
			s.ActiveTechnicians++
		}
	}
	if len(orders) > 0 {
		s.CompletionRate = float64(s.DailyCompletion) / float64(len(orders)) * 100
	}
	return s
}
