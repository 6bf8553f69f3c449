// Guarantee-claim and dashboard HTTP handlers.
//
//   - GET    /claims              (list, filtered, with backlog stats)
//   - GET    /claims/:id          (detail)
//   - POST   /claims              (create)
//   - PATCH  /claims/:id/status   (status transition)
//   - GET    /dashboard/stats     (landing-page numbers)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arestitans/smart-dispatcher/internal/domain"
	"github.com/arestitans/smart-dispatcher/internal/mock"
	"github.com/arestitans/smart-dispatcher/internal/orders"
)

// ListClaimsResponse wraps the filtered claims with backlog stats.
type ListClaimsResponse struct {
	Claims       []domain.Claim    `json:"claims"`
	Stats        orders.ClaimStats `json:"stats"`
	ProductTypes []string          `json:"productTypes"`
}

// UpdateClaimStatusRequest carries the new claim status.
type UpdateClaimStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListClaims godoc
// @ID          listClaims
// @Summary     List guarantee claims
// @Description Returns claims filtered by status and product, with backlog stats over the full set.
// @Tags        Claims
// @Produce     json
// @Param       status   query  string  false  "Filter by claim status"
// @Param       product  query  string  false  "Filter by product"
// @Success     200  {object}  handlers.ListClaimsResponse
// @Router      /claims [get]
func (h *Handlers) ListClaims(c *gin.Context) {
	list := h.claims.ListClaims(orders.ClaimFilter{
		Status:  c.Query("status"),
		Product: c.Query("product"),
	})
	ok(c, http.StatusOK, ListClaimsResponse{
		Claims:       list,
		Stats:        h.claims.ClaimSummary(),
		ProductTypes: domain.ProductTypes,
	})
}

// GetClaim godoc
// @ID          getClaim
// @Summary     Get a claim
// @Tags        Claims
// @Produce     json
// @Param       id  path  string  true  "Claim ID"  example(CLM-1000)
// @Success     200  {object}  domain.Claim
// @Failure     404  {object}  handlers.ErrorResponse  "Claim not found"
// @Router      /claims/{id} [get]
func (h *Handlers) GetClaim(c *gin.Context) {
	cl, found := h.claims.GetClaim(c.Param("id"))
	if !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "claim not found")
		return
	}
	ok(c, http.StatusOK, cl)
}

// CreateClaim godoc
// @ID          createClaim
// @Summary     Create a claim
// @Description Creates a claim dated today with status PENDING.
// @Tags        Claims
// @Accept      json
// @Produce     json
// @Param       body  body  orders.ClaimInput  true  "Claim payload"
// @Success     201  {object}  domain.Claim
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Router      /claims [post]
func (h *Handlers) CreateClaim(c *gin.Context) {
	var in orders.ClaimInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	ok(c, http.StatusCreated, h.claims.CreateClaim(in))
}

// UpdateClaimStatus godoc
// @ID          updateClaimStatus
// @Summary     Update a claim's status
// @Tags        Claims
// @Accept      json
// @Produce     json
// @Param       id    path  string                             true  "Claim ID"  example(CLM-1000)
// @Param       body  body  handlers.UpdateClaimStatusRequest  true  "New status"
// @Success     200  {object}  domain.Claim
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Claim not found"
// @Router      /claims/{id}/status [patch]
func (h *Handlers) UpdateClaimStatus(c *gin.Context) {
	var req UpdateClaimStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "status required")
		return
	}
	cl, found := h.claims.UpdateClaimStatus(c.Param("id"), req.Status)
	if !found {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "claim not found")
		return
	}
	ok(c, http.StatusOK, cl)
}

// DashboardStats godoc
// @ID          dashboardStats
// @Summary     Landing-page dashboard numbers
// @Tags        Dashboard
// @Produce     json
// @Success     200  {object}  mock.DashboardStats
// @Router      /dashboard/stats [get]
func (h *Handlers) DashboardStats(c *gin.Context) {
	ok(c, http.StatusOK, mock.Dashboard(h.orders.Snapshot(), h.store.Technicians()))
}
