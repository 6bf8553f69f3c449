// Package domain defines the core entities of the dispatch system:
// technicians, pending registrations, orders, guarantee claims, and the
// per-recipient outcomes of notification dispatches. All state is held
// in memory for the process lifetime; there is no persistence layer.
package domain

import "time"

// Technician operational statuses.
const (
	StatusAvailable = "AVAILABLE"
	StatusBusy      = "BUSY"
	StatusActive    = "ACTIVE"
	StatusOffline   = "OFFLINE"
)

// Technician performance ranks, best to worst.
const (
	RankTop     = "TOP"
	RankGood    = "GOOD"
	RankAverage = "AVERAGE"
	RankPoor    = "POOR"
)

// Order priorities.
const (
	PriorityHigh   = "HIGH"
	PriorityNormal = "NORMAL"
	PriorityLow    = "LOW"
)

// Order lifecycle statuses.
const (
	OrderOpen           = "OPEN"
	OrderSurvey         = "SURVEY"
	OrderIKR            = "IKR"
	OrderActivation     = "ACTIVATION"
	OrderPSDone         = "PS_DONE"
	OrderTechnicalIssue = "TECHNICAL_ISSUE"
	OrderReschedule     = "RESCHEDULE"
)

// OrderStatuses lists every order status in lifecycle order.
var OrderStatuses = []string{
	OrderOpen, OrderSurvey, OrderIKR, OrderActivation,
	OrderPSDone, OrderTechnicalIssue, OrderReschedule,
}

// ProductTypes lists the product categories an order may carry.
var ProductTypes = []string{
	"INDIHOME", "HSI", "PDA", "MO", "ORBIT", "DATIN", "VULA", "DISMANTLE", "Others",
}

// TechnicianStats accumulates performance metrics for a technician.
// The counters are mutated by order-completion events outside the
// registration core; a freshly approved technician starts with zeroed
// values except SLACompliance, which starts at 100.
type TechnicianStats struct {
	RevenuePoints   int     `json:"revenuePoints"`
	AvgHandlingTime int     `json:"avgHandlingTime"`
	CompletedOrders int     `json:"completedOrders"`
	SLACompliance   float64 `json:"slaCompliance"`
	GuaranteeClaims int     `json:"guaranteeClaims"`
}

// Technician is an approved field worker eligible to receive order offers.
//
// ChatID is zero until the technician links a Telegram conversation, either
// by approval of a pending registration (the chat id carries over) or by the
// legacy id-as-message linking flow.
type Technician struct {
	ID       string          `json:"id"`
	NIK      string          `json:"nik"`
	Name     string          `json:"name"`
	Photo    string          `json:"photo,omitempty"`
	Area     string          `json:"area"`
	Unit     string          `json:"unit"`
	Phone    string          `json:"phone"`
	Status   string          `json:"status"`
	ChatID   int64           `json:"telegramChatId,omitempty"`
	Username string          `json:"telegramUsername,omitempty"`
	Workload int             `json:"workload"`
	MaxLoad  int             `json:"maxWorkload"`
	Stats    TechnicianStats `json:"stats"`
	Rank     string          `json:"rank"`

	ApprovedAt time.Time `json:"approvedAt,omitempty"`
}

// HasChat reports whether the technician has a linked Telegram conversation.
func (t *Technician) HasChat() bool { return t.ChatID != 0 }

// PendingRegistration is a self-service signup awaiting administrative
// action. The record exists only while the registration is pending: approval
// replaces it with a Technician carrying the same id, rejection discards it.
type PendingRegistration struct {
	ID           string    `json:"id"`
	ChatID       int64     `json:"telegramChatId"`
	Username     string    `json:"telegramUsername,omitempty"`
	DisplayName  string    `json:"telegramName"`
	RegisteredAt time.Time `json:"registeredAt"`
	Status       string    `json:"status"` // always "PENDING" while the record exists
}

// Coordinates is a WGS84 point used for order locations.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Assignee references the technician an order is assigned to.
type Assignee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Order is a field-service work order. The notification core only reads
// these fields to format offers and alerts; ownership of the order
// lifecycle lies with the order store.
type Order struct {
	ID           string      `json:"id"`
	Customer     string      `json:"customer"`
	CustomerType string      `json:"customerType,omitempty"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	Area         string      `json:"area"`
	Coordinates  Coordinates `json:"coordinates"`
	Product      string      `json:"product"`
	OrderType    string      `json:"orderType"`
	Schedule     string      `json:"schedule"`
	ScheduleTime string      `json:"scheduleTime"`
	Status       string      `json:"status"`
	Priority     string      `json:"priority"`
	Assignee     *Assignee   `json:"assignee"`
	CreatedAt    time.Time   `json:"createdAt"`
	LastUpdated  time.Time   `json:"lastUpdated,omitempty"`
	Notes        string      `json:"notes"`
}

// Claim is a guarantee claim raised against a completed order.
type Claim struct {
	ID             string   `json:"id"`
	OrderID        string   `json:"orderId"`
	Customer       string   `json:"customer"`
	Technician     Assignee `json:"technician"`
	Product        string   `json:"product"`
	OriginalPSDate string   `json:"originalPsDate"`
	ClaimDate      string   `json:"claimDate"`
	RemainingDays  int      `json:"remainingDays"`
	Status         string   `json:"status"`
	Description    string   `json:"description"`
}

// Notification delivery statuses for a single recipient.
const (
	DeliverySent      = "SENT"
	DeliveryError     = "ERROR"
	DeliveryNoChannel = "NO_CHANNEL"
)

// NotificationOutcome is the per-recipient result of a dispatch attempt.
// Outcomes are ephemeral: they are returned to the caller of a bulk send
// and never stored.
type NotificationOutcome struct {
	TechID  string `json:"techId"`
	OrderID string `json:"orderId,omitempty"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}
