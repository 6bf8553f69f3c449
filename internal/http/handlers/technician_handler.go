// Technician HTTP handlers.
//
// This file exposes REST endpoints for the technician roster and the
// registration approval workflow:
//   - GET    /technicians                    (list, filtered + rank sort)
//   - GET    /technicians/ranking            (performance ranking)
//   - GET    /technicians/:id               (detail)
//   - GET    /technicians/:id/performance   (stats payload)
//   - GET    /technicians/review/general    (roster-wide aggregate)
//   - POST   /technicians/message/bulk      (bulk freeform Telegram message)
//   - POST   /technicians/orders/bulk-send  (bulk order offers)
//   - GET    /technicians/pending           (registrations awaiting approval)
//   - POST   /technicians/:id/approve
//   - POST   /technicians/:id/reject
//
// Handlers are transport-thin: they validate input, call the services, and
// translate results into HTTP responses. Telegram delivery outcomes ride
// along in the response body but never fail the request.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arestitans/smart-dispatcher/internal/domain"
	"github.com/arestitans/smart-dispatcher/internal/notify"
	"github.com/arestitans/smart-dispatcher/internal/orders"
	"github.com/arestitans/smart-dispatcher/internal/registry"
	"github.com/arestitans/smart-dispatcher/internal/services"
)

// Handlers groups the HTTP endpoints for technicians, orders, claims,
// notifications, and the dashboard.
type Handlers struct {
	reg    *services.RegistrationService
	techs  *services.TechnicianService
	store  *registry.Store
	disp   *notify.Dispatcher
	orders *orders.Store
	claims *orders.ClaimStore
}

// New constructs a Handlers instance bound to the given collaborators.
func New(reg *services.RegistrationService, techs *services.TechnicianService, store *registry.Store, disp *notify.Dispatcher, orderStore *orders.Store, claimStore *orders.ClaimStore) *Handlers {
	return &Handlers{
		reg:    reg,
		techs:  techs,
		store:  store,
		disp:   disp,
		orders: orderStore,
		claims: claimStore,
	}
}

//
// DTOs
//

// ListTechniciansResponse wraps the filtered roster with roster-wide stats.
type ListTechniciansResponse struct {
	Technicians []domain.Technician  `json:"technicians"`
	Total       int                  `json:"total"`
	Stats       services.RosterStats `json:"stats"`
}

// RankingResponse wraps the performance ranking.
type RankingResponse struct {
	Ranking []services.RankingEntry `json:"ranking"`
}

// PerformancePayload flattens a technician's stats with their rank.
type PerformancePayload struct {
	domain.TechnicianStats
	Rank      string `json:"rank"`
	RankColor string `json:"rankColor"`
}

// PerformanceResponse is the /performance endpoint body.
type PerformanceResponse struct {
	Technician  domain.Assignee    `json:"technician"`
	Performance PerformancePayload `json:"performance"`
}

// BulkFilter selects recipients by attribute instead of explicit ids.
// Exactly one of the fields is expected to be set.
type BulkFilter struct {
	Area   string `json:"area"`
	Status string `json:"status"`
	All    bool   `json:"all"`
}

// BulkMessageRequest is the payload for a bulk freeform message.
type BulkMessageRequest struct {
	TechnicianIDs []string    `json:"technicianIds"`
	Message       string      `json:"message" binding:"required"`
	Filter        *BulkFilter `json:"filter"`
}

// BulkMessageResponse reports the bulk delivery outcome.
type BulkMessageResponse struct {
	Message  string `json:"message"`
	Targeted int    `json:"targeted"`
	Success  int    `json:"success"`
	Failed   int    `json:"failed"`
}

// BulkOrderSendRequest selects the technicians whose assigned orders get
// re-offered over Telegram.
type BulkOrderSendRequest struct {
	TechnicianIDs []string `json:"technicianIds" binding:"required,min=1"`
}

// BulkOrderSendResponse reports the bulk offer distribution.
type BulkOrderSendResponse struct {
	Message     string                       `json:"message"`
	Technicians int                          `json:"technicians"`
	TotalOrders int                          `json:"totalOrders"`
	Success     int                          `json:"success"`
	Failed      int                          `json:"failed"`
	Details     []domain.NotificationOutcome `json:"details"`
}

// PendingResponse lists the registrations awaiting approval.
type PendingResponse struct {
	Pending []domain.PendingRegistration `json:"pending"`
	Total   int                          `json:"total"`
}

// RejectRequest carries the optional rejection reason.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// rankColor maps a rank to the dashboard badge color.
func rankColor(rank string) string {
	switch rank {
	case domain.RankTop:
		return "green"
	case domain.RankGood:
		return "blue"
	case domain.RankAverage:
		return "yellow"
	default:
		return "red"
	}
}

//
// Handlers
//

// ListTechnicians godoc
// @ID          listTechnicians
// @Summary     List technicians
// @Description Returns the roster filtered by area, status, and rank, sorted best rank first, with roster-wide status counts.
// @Tags        Technicians
// @Produce     json
// @Param       area    query  string  false  "Filter by area"
// @Param       status  query  string  false  "Filter by operational status"
// @Param       rank    query  string  false  "Filter by rank"
// @Success     200  {object}  handlers.ListTechniciansResponse
// @Router      /technicians [get]
func (h *Handlers) ListTechnicians(c *gin.Context) {
	techs, stats := h.techs.List(services.TechnicianFilter{
		Area:   c.Query("area"),
		Status: c.Query("status"),
		Rank:   c.Query("rank"),
	})
	ok(c, http.StatusOK, ListTechniciansResponse{
		Technicians: techs,
		Total:       len(techs),
		Stats:       stats,
	})
}

// TechnicianRanking godoc
// @ID          technicianRanking
// @Summary     Performance ranking
// @Description Orders technicians by guarantee claims (asc), completed orders (desc), then SLA compliance (desc).
// @Tags        Technicians
// @Produce     json
// @Success     200  {object}  handlers.RankingResponse
// @Router      /technicians/ranking [get]
func (h *Handlers) TechnicianRanking(c *gin.Context) {
	ok(c, http.StatusOK, RankingResponse{Ranking: h.techs.Ranking()})
}

// GetTechnician godoc
// @ID          getTechnician
// @Summary     Get a technician
// @Tags        Technicians
// @Produce     json
// @Param       id  path  string  true  "Technician ID"  example(TX-9101)
// @Success     200  {object}  domain.Technician
// @Failure     404  {object}  handlers.ErrorResponse  "Technician not found"
// @Router      /technicians/{id} [get]
func (h *Handlers) GetTechnician(c *gin.Context) {
	t, err := h.techs.Get(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "technician not found")
		return
	}
	ok(c, http.StatusOK, t)
}

// TechnicianPerformance godoc
// @ID          technicianPerformance
// @Summary     Technician performance
// @Tags        Technicians
// @Produce     json
// @Param       id  path  string  true  "Technician ID"  example(TX-9101)
// @Success     200  {object}  handlers.PerformanceResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Technician not found"
// @Router      /technicians/{id}/performance [get]
func (h *Handlers) TechnicianPerformance(c *gin.Context) {
	t, err := h.techs.Get(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "technician not found")
		return
	}
	ok(c, http.StatusOK, PerformanceResponse{
		Technician: domain.Assignee{ID: t.ID, Name: t.Name},
		Performance: PerformancePayload{
			TechnicianStats: t.Stats,
			Rank:            t.Rank,
			RankColor:       rankColor(t.Rank),
		},
	})
}

// GeneralReview godoc
// @ID          generalReview
// @Summary     Roster-wide performance review
// @Tags        Technicians
// @Produce     json
// @Success     200  {object}  services.GeneralReview
// @Router      /technicians/review/general [get]
func (h *Handlers) GeneralReview(c *gin.Context) {
	ok(c, http.StatusOK, h.techs.Review())
}

// BulkMessage godoc
// @ID          bulkMessage
// @Summary     Send a freeform message to many technicians
// @Description Targets technicians by explicit ids or by an area/status/all filter. Only technicians with a linked Telegram chat are targeted.
// @Tags        Technicians
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.BulkMessageRequest  true  "Bulk message payload"
// @Success     200  {object}  handlers.BulkMessageResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Router      /technicians/message/bulk [post]
func (h *Handlers) BulkMessage(c *gin.Context) {
	var req BulkMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message required")
		return
	}

	targets := h.bulkTargets(req)
	chatIDs := make([]int64, 0, len(targets))
	for _, t := range targets {
		chatIDs = append(chatIDs, t.ChatID)
	}
	res := h.disp.SendBulk(chatIDs, req.Message)

	ok(c, http.StatusOK, BulkMessageResponse{
		Message:  "Bulk message sent",
		Targeted: len(targets),
		Success:  res.Success,
		Failed:   res.Failed,
	})
}

// bulkTargets resolves the recipients of a bulk message. Technicians
// without a linked chat are skipped.
func (h *Handlers) bulkTargets(req BulkMessageRequest) []domain.Technician {
	all := h.store.Technicians()

	var out []domain.Technician
	if f := req.Filter; f != nil {
		for _, t := range all {
			if !t.HasChat() {
				continue
			}
			switch {
			case f.Area != "":
				if t.Area == f.Area {
					out = append(out, t)
				}
			case f.Status != "":
				if t.Status == f.Status {
					out = append(out, t)
				}
			case f.All:
				out = append(out, t)
			}
		}
		return out
	}

	wanted := make(map[string]bool, len(req.TechnicianIDs))
	for _, id := range req.TechnicianIDs {
		wanted[id] = true
	}
	for _, t := range all {
		if wanted[t.ID] && t.HasChat() {
			out = append(out, t)
		}
	}
	return out
}

// BulkOrderSend godoc
// @ID          bulkOrderSend
// @Summary     Re-offer assigned orders to selected technicians
// @Description For each selected technician, sends an offer for every order assigned to them that is not yet completed.
// @Tags        Technicians
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.BulkOrderSendRequest  true  "Technician selection"
// @Success     200  {object}  handlers.BulkOrderSendResponse
// @Failure     400  {object}  handlers.ErrorResponse  "No technicians selected or no pending orders"
// @Router      /technicians/orders/bulk-send [post]
func (h *Handlers) BulkOrderSend(c *gin.Context) {
	var req BulkOrderSendRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.TechnicianIDs) == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "no technicians selected")
		return
	}

	all := h.orders.Snapshot()
	assignments := make([]notify.OfferAssignment, 0, len(req.TechnicianIDs))
	totalOrders := 0
	for _, id := range req.TechnicianIDs {
		tech, ok := h.store.TechnicianByID(id)
		if !ok {
			continue
		}
		var pending []domain.Order
		for _, o := range all {
			if o.Assignee != nil && o.Assignee.ID == id && o.Status != domain.OrderPSDone {
				pending = append(pending, o)
			}
		}
		if len(pending) == 0 {
			continue
		}
		assignments = append(assignments, notify.OfferAssignment{Technician: tech, Orders: pending})
		totalOrders += len(pending)
	}

	if len(assignments) == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "no pending orders found for selected technicians")
		return
	}

	rep := h.disp.SendBulkOrderOffers(assignments)
	ok(c, http.StatusOK, BulkOrderSendResponse{
		Message:     "Bulk orders sent",
		Technicians: len(assignments),
		TotalOrders: totalOrders,
		Success:     rep.Success,
		Failed:      rep.Failed,
		Details:     rep.Details,
	})
}

// PendingRegistrations godoc
// @ID          pendingRegistrations
// @Summary     List registrations awaiting approval
// @Tags        Technicians
// @Produce     json
// @Success     200  {object}  handlers.PendingResponse
// @Router      /technicians/pending [get]
func (h *Handlers) PendingRegistrations(c *gin.Context) {
	pending := h.reg.Pending()
	ok(c, http.StatusOK, PendingResponse{Pending: pending, Total: len(pending)})
}

// ApproveTechnician godoc
// @ID          approveTechnician
// @Summary     Approve a pending registration
// @Description Promotes the pending registration into an active technician and notifies them over Telegram when a chat is linked.
// @Tags        Technicians
// @Accept      json
// @Produce     json
// @Param       id    path  string                  true   "Pending registration ID"  example(TX-9101)
// @Param       body  body  services.ApproveInput   false  "Administrative details"
// @Success     200  {object}  map[string]any
// @Failure     404  {object}  handlers.ErrorResponse  "Pending registration not found"
// @Router      /technicians/{id}/approve [post]
func (h *Handlers) ApproveTechnician(c *gin.Context) {
	// Every field is optional; a missing or malformed body means defaults.
	var in services.ApproveInput
	_ = c.ShouldBindJSON(&in)

	tech, err := h.reg.Approve(c.Param("id"), in)
	if err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "pending registration not found")
		return
	}

	notified := h.disp.NotifyApproved(tech)
	ok(c, http.StatusOK, gin.H{
		"message":    "Technician approved successfully",
		"technician": tech,
		"notified":   notified,
	})
}

// RejectTechnician godoc
// @ID          rejectTechnician
// @Summary     Reject a pending registration
// @Description Discards the pending registration and notifies the registrant over Telegram when a chat is linked. The rejection leaves no trace in the registry.
// @Tags        Technicians
// @Accept      json
// @Produce     json
// @Param       id    path  string                  true   "Pending registration ID"  example(TX-9101)
// @Param       body  body  handlers.RejectRequest  false  "Rejection reason"
// @Success     200  {object}  map[string]any
// @Failure     404  {object}  handlers.ErrorResponse  "Pending registration not found"
// @Router      /technicians/{id}/reject [post]
func (h *Handlers) RejectTechnician(c *gin.Context) {
	var req RejectRequest
	_ = c.ShouldBindJSON(&req)

	rejected, err := h.reg.Reject(c.Param("id"), req.Reason)
	if err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "pending registration not found")
		return
	}

	notified := h.disp.NotifyRejected(rejected.ChatID, rejected.RejectedReason)
	ok(c, http.StatusOK, gin.H{
		"message":  "Registration rejected",
		"data":     rejected,
		"notified": notified,
	})
}
