package claims

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/lostfound/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Submit godoc
// @Summary Claim an item
// @Description Appends a pending claim; owners cannot claim their own items and a user holds at most one active claim per item
// @Tags claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body SubmitClaimRequest true "Claim message"
// @Success 201 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /items/{id}/claims [post]
func (h *Handler) Submit(c *gin.Context) {
	uid := c.GetString("userID")
	displayName := c.GetString("displayName")
	itemID := c.Param("id")

	var req SubmitClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	claim, err := h.service.Submit(c.Request.Context(), itemID, uid, displayName, &req)
	if err != nil {
		response.DomainError(c, err, err.Error())
		return
	}

	response.Created(c, claim)
}

// ListForItem godoc
// @Summary List claims on an item
// @Description Returns an item's claims newest first; used by both the owner and claimer views
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /items/{id}/claims [get]
func (h *Handler) ListForItem(c *gin.Context) {
	itemID := c.Param("id")

	claims, err := h.service.ListForItem(c.Request.Context(), itemID)
	if err != nil {
		response.DomainError(c, err, "Item not found")
		return
	}

	response.Success(c, claims)
}

// Decide godoc
// @Summary Approve or reject a claim
// @Description Owner-only. Approval atomically rejects competing pending claims and marks the item claimed; replays of a completed approval are no-ops
// @Tags claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param claimId path string true "Claim ID"
// @Param request body DecisionRequest true "Decision"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /items/{id}/claims/{claimId}/decision [post]
func (h *Handler) Decide(c *gin.Context) {
	uid := c.GetString("userID")
	itemID := c.Param("id")
	claimID := c.Param("claimId")

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	claim, err := h.service.Resolve(c.Request.Context(), itemID, claimID, req.Decision, uid)
	if err != nil {
		response.DomainError(c, err, err.Error())
		return
	}

	response.Success(c, claim)
}

// ListMine godoc
// @Summary List the caller's claims across all items
// @Description Each claim is joined with its parent item snapshot; claims on deleted items are skipped
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(pending, approved, rejected)
// @Success 200 {object} response.SuccessResponse
// @Router /claims/mine [get]
func (h *Handler) ListMine(c *gin.Context) {
	uid := c.GetString("userID")
	status := c.Query("status")

	if status != "" && status != StatusPending && status != StatusApproved && status != StatusRejected {
		response.BadRequest(c, "status must be pending, approved or rejected")
		return
	}

	rows, err := h.service.ListMine(c.Request.Context(), uid, status)
	if err != nil {
		response.DatabaseError(c, "Failed to get claims")
		return
	}

	response.Success(c, rows)
}
