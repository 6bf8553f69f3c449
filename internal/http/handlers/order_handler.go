// Order HTTP handlers.
//
//   - GET    /orders                (list, filtered)
//   - GET    /orders/:id            (detail)
//   - POST   /orders                (create)
//   - POST   /orders/:id/assign     (assign technician, sends offer)
//   - PATCH  /orders/:id/status     (lifecycle transition)
//   - GET    /orders/stats/summary  (dashboard rollup)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arestitans/smart-dispatcher/internal/domain"
	"github.com/arestitans/smart-dispatcher/internal/orders"
	"github.com/arestitans/smart-dispatcher/internal/utils"
)

// ListOrdersResponse wraps the filtered orders with the enum values the
// dashboard filter widgets need.
type ListOrdersResponse struct {
	Orders       []domain.Order `json:"orders"`
	Total        int            `json:"total"`
	ProductTypes []string       `json:"productTypes"`
	Statuses     []string       `json:"statuses"`
}

// AssignOrderRequest names the technician an order goes to.
type AssignOrderRequest struct {
	TechnicianID   string `json:"technicianId" binding:"required"`
	TechnicianName string `json:"technicianName"`
}

// UpdateOrderStatusRequest carries the new lifecycle status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListOrders godoc
// @ID          listOrders
// @Summary     List orders
// @Description Returns orders filtered by status, product, priority, and a free-text search over id, customer, and address.
// @Tags        Orders
// @Produce     json
// @Param       status    query  string  false  "Filter by lifecycle status"
// @Param       product   query  string  false  "Filter by product"
// @Param       priority  query  string  false  "Filter by priority"
// @Param       search    query  string  false  "Substring search"
// @Param       limit     query  int     false  "Cap the number of returned orders (0 = no cap)"
// @Success     200  {object}  handlers.ListOrdersResponse
// @Router      /orders [get]
func (h *Handlers) ListOrders(c *gin.Context) {
	list := h.orders.List(orders.Filter{
		Status:   c.Query("status"),
		Product:  c.Query("product"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
	})
	total := len(list)
	if limit := utils.AtoiDefault(c.Query("limit"), 0); limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	ok(c, http.StatusOK, ListOrdersResponse{
		Orders:       list,
		Total:        total,
		ProductTypes: domain.ProductTypes,
		Statuses:     domain.OrderStatuses,
	})
}

// GetOrder godoc
// @ID          getOrder
// @Summary     Get an order
// @Tags        Orders
// @Produce     json
// @Param       id  path  string  true  "Order ID"  example(ORD-4501)
// @Success     200  {object}  domain.Order
// @Failure     404  {object}  handlers.ErrorResponse  "Order not found"
// @Router      /orders/{id} [get]
func (h *Handlers) GetOrder(c *gin.Context) {
	o, found := h.orders.Get(c.Param("id"))
	if !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "order not found")
		return
	}
	ok(c, http.StatusOK, o)
}

// CreateOrder godoc
// @ID          createOrder
// @Summary     Create an order
// @Description Creates an order in status OPEN. Priority defaults to NORMAL when unset.
// @Tags        Orders
// @Accept      json
// @Produce     json
// @Param       body  body  orders.CreateInput  true  "Order payload"
// @Success     201  {object}  domain.Order
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Router      /orders [post]
func (h *Handlers) CreateOrder(c *gin.Context) {
	var in orders.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	ok(c, http.StatusCreated, h.orders.Create(in))
}

// AssignOrder godoc
// @ID          assignOrder
// @Summary     Assign a technician to an order
// @Description Attaches the technician, moves the order to SURVEY, and offers it over Telegram when the technician has a linked chat.
// @Tags        Orders
// @Accept      json
// @Produce     json
// @Param       id    path  string                       true  "Order ID"  example(ORD-4501)
// @Param       body  body  handlers.AssignOrderRequest  true  "Assignment payload"
// @Success     200  {object}  map[string]any
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Order not found"
// @Router      /orders/{id}/assign [post]
func (h *Handlers) AssignOrder(c *gin.Context) {
	var req AssignOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "technicianId required")
		return
	}

	assignee := domain.Assignee{ID: req.TechnicianID, Name: req.TechnicianName}
	tech, known := h.store.TechnicianByID(req.TechnicianID)
	if known && assignee.Name == "" {
		assignee.Name = tech.Name
	}

	o, found := h.orders.Assign(c.Param("id"), assignee)
	if !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "order not found")
		return
	}

	notified := false
	if known && tech.HasChat() {
		notified = h.disp.SendOrderOffer(tech.ChatID, o)
	}
	ok(c, http.StatusOK, gin.H{"order": o, "notified": notified})
}

// UpdateOrderStatus godoc
// @ID          updateOrderStatus
// @Summary     Update an order's lifecycle status
// @Tags        Orders
// @Accept      json
// @Produce     json
// @Param       id    path  string                             true  "Order ID"  example(ORD-4501)
// @Param       body  body  handlers.UpdateOrderStatusRequest  true  "New status"
// @Success     200  {object}  domain.Order
// @Failure     400  {object}  handlers.ErrorResponse  "Unknown status"
// @Failure     404  {object}  handlers.ErrorResponse  "Order not found"
// @Router      /orders/{id}/status [patch]
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "status required")
		return
	}
	if _, found := h.orders.Get(c.Param("id")); !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "order not found")
		return
	}
	o, valid := h.orders.UpdateStatus(c.Param("id"), req.Status)
	if !valid {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unknown order status")
		return
	}
	ok(c, http.StatusOK, o)
}

// OrderStats godoc
// @ID          orderStats
// @Summary     Order statistics rollup
// @Tags        Orders
// @Produce     json
// @Success     200  {object}  orders.Summary
// @Router      /orders/stats/summary [get]
func (h *Handlers) OrderStats(c *gin.Context) {
	ok(c, http.StatusOK, h.orders.Stats())
}
