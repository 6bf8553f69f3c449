// Notification HTTP handlers.
//
// A thin REST surface over the dispatcher, used by the dashboard to push
// Telegram messages on demand:
//   - POST /notifications/order             (single order offer)
//   - POST /notifications/bulk              (freeform message to many chats)
//   - POST /notifications/priority-warning  (HIGH priority alert to admins)
//   - POST /notifications/stale-alert       (aggregate stale-order alert)
//   - POST /notifications/summary           (daily digest)
//   - POST /notifications/admin             (freeform to admin list)
//   - POST /notifications/supervisor        (freeform to supervisor list)
//
// Delivery failure to an individual recipient is reflected in the response
// body, never as an HTTP error.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arestitans/smart-dispatcher/internal/domain"
	"github.com/arestitans/smart-dispatcher/internal/notify"
)

// OrderNotificationRequest targets a single order offer at one chat.
type OrderNotificationRequest struct {
	TechChatID int64         `json:"techChatId" binding:"required"`
	Order      *domain.Order `json:"order" binding:"required"`
}

// BulkNotificationRequest sends one message to many chats.
type BulkNotificationRequest struct {
	ChatIDs []int64 `json:"chatIds" binding:"required,min=1"`
	Message string  `json:"message" binding:"required"`
}

// OrderPayloadRequest wraps a single order payload.
type OrderPayloadRequest struct {
	Order *domain.Order `json:"order" binding:"required"`
}

// StaleAlertRequest carries the stale orders to report.
type StaleAlertRequest struct {
	Orders []domain.Order `json:"orders" binding:"required,min=1"`
}

// SummaryRequest wraps the daily digest payload.
type SummaryRequest struct {
	Summary *notify.OrderSummary `json:"summary" binding:"required"`
}

// MessageRequest carries a freeform message.
type MessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// SendOrderNotification godoc
// @ID          sendOrderNotification
// @Summary     Send a single order offer
// @Tags        Notifications
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.OrderNotificationRequest  true  "Offer payload"
// @Success     200  {object}  map[string]any
// @Failure     400  {object}  handlers.ErrorResponse  "Missing techChatId or order data"
// @Router      /notifications/order [post]
func (h *Handlers) SendOrderNotification(c *gin.Context) {
	var req OrderNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "missing techChatId or order data")
		return
	}
	sent := h.disp.SendOrderOffer(req.TechChatID, *req.Order)
	msg := "Notification sent"
	if !sent {
		msg = "Failed to send"
	}
	ok(c, http.StatusOK, gin.H{"success": sent, "message": msg})
}

// SendBulkNotification godoc
// @ID          sendBulkNotification
// @Summary     Send a freeform message to many chats
// @Tags        Notifications
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.BulkNotificationRequest  true  "Bulk payload"
// @Success     200  {object}  map[string]any
// @Failure     400  {object}  handlers.ErrorResponse  "Missing chatIds or message"
// @Router      /notifications/bulk [post]
func (h *Handlers) SendBulkNotification(c *gin.Context) {
	var req BulkNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "missing chatIds or message")
		return
	}
	res := h.disp.SendBulk(req.ChatIDs, req.Message)
	ok(c, http.StatusOK, gin.H{"success": true, "sent": res.Success, "failed": res.Failed})
}

// SendPriorityWarning godoc
// @ID          sendPriorityWarning
// @Summary     Alert admins about a HIGH priority order
// @Tags        Notifications
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.OrderPayloadRequest  true  "Order payload"
// @Success     200  {object}  map[string]any
// @Failure     400  {object}  handlers.ErrorResponse  "Missing order data"
// @Router      /notifications/priority-warning [post]
func (h *Handlers) SendPriorityWarning(c *gin.Context) {
	var req OrderPayloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "missing order data")
		return
	}
	sent := h.disp.SendPriorityAlert(*req.Order)
	ok(c, http.StatusOK, gin.H{"success": sent, "message": "Priority warning sent to admins"})
}

// SendStaleAlert godoc
// @ID          sendStaleAlert
// @Summary     Alert admins about stale orders
// @Tags        Notifications
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.StaleAlertRequest  true  "Stale orders"
// @Success     200  {object}  map[string]any
// @Failure     400  {object}  handlers.ErrorResponse  "No stale orders provided"
// @Router      /notifications/stale-alert [post]
func (h *Handlers) SendStaleAlert(c *gin.Context) {
	var req StaleAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Orders) == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "no stale orders provided")
		return
	}
	sent := h.disp.SendStaleAlert(req.Orders)
	ok(c, http.StatusOK, gin.H{"success": sent, "message": "Stale alert sent"})
}

// SendSummary godoc
// @ID          sendSummary
// @Summary     Send the daily digest to admins
// @Tags        Notifications
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.SummaryRequest  true  "Digest payload"
// @Success     200  {object}  map[string]any
// @Failure     400  {object}  handlers.ErrorResponse  "Missing summary data"
// @Router      /notifications/summary [post]
func (h *Handlers) SendSummary(c *gin.Context) {
	var req SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "missing summary data")
		return
	}
	sent := h.disp.SendOrderSummary(*req.Summary)
	ok(c, http.StatusOK, gin.H{"success": sent, "message": "Summary sent to admins"})
}

// SendAdminMessage godoc
// @ID          sendAdminMessage
// @Summary     Send a freeform message to the admin list
// @Tags        Notifications
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.MessageRequest  true  "Message payload"
// @Success     200  {object}  map[string]any
// @Failure     400  {object}  handlers.ErrorResponse  "Missing message"
// @Router      /notifications/admin [post]
func (h *Handlers) SendAdminMessage(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "missing message")
		return
	}
	sent := h.disp.SendToAdmins(req.Message)
	ok(c, http.StatusOK, gin.H{"success": sent, "message": "Message sent to admin"})
}

// SendSupervisorMessage godoc
// @ID          sendSupervisorMessage
// @Summary     Send a freeform message to the supervisor list
// @Tags        Notifications
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.MessageRequest  true  "Message payload"
// @Success     200  {object}  map[string]any
// @Failure     400  {object}  handlers.ErrorResponse  "Missing message"
// @Router      /notifications/supervisor [post]
func (h *Handlers) SendSupervisorMessage(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "missing message")
		return
	}
	sent := h.disp.SendToSupervisors(req.Message)
	ok(c, http.StatusOK, gin.H{"success": sent, "message": "Message sent to supervisor"})
}
