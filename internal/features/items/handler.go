package items

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/lostfound/internal/features/notifications"
	"github.com/xyz-asif/lostfound/internal/pkg/response"
)

// EventPublisher hands the item-created trigger to the fan-out worker.
type EventPublisher interface {
	Publish(ev notifications.Event)
}

type Handler struct {
	repo   *Repository
	events EventPublisher
}

func NewHandler(repo *Repository, events EventPublisher) *Handler {
	return &Handler{repo: repo, events: events}
}

// Create godoc
// @Summary Post a lost or found item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateItemRequest true "Item data"
// @Success 201 {object} response.SuccessResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /items [post]
func (h *Handler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	displayName := c.GetString("displayName")

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreateItem(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	item := &Item{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Status:        req.Status,
		Location:      req.Location,
		Lat:           req.Lat,
		Lng:           req.Lng,
		ImageURL:      req.ImageURL,
		CreatedByUid:  uid,
		CreatedByName: displayName,
		CreatedAtMs:   req.CreatedAtMs,
	}

	if err := h.repo.Create(c.Request.Context(), item); err != nil {
		response.DatabaseError(c, "Failed to create item")
		return
	}

	// Posting succeeded; the location broadcast is fire-and-forget from here
	h.events.Publish(notifications.Event{
		Type:         notifications.EventItemCreated,
		ItemID:       item.ID.Hex(),
		ItemTitle:    item.Title,
		ItemLocation: item.Location,
		OwnerUid:     item.CreatedByUid,
	})

	response.Created(c, item)
}

// List godoc
// @Summary Browse the feed
// @Description Newest first; filter selects a status tab ("all" hides claimed), q matches category/location substrings
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param filter query string false "all, lost, found or claimed"
// @Param q query string false "Category/location text filter"
// @Param limit query int false "Maximum items (default 50, max 100)"
// @Success 200 {object} response.SuccessResponse
// @Router /items [get]
func (h *Handler) List(c *gin.Context) {
	filter := c.DefaultQuery("filter", "all")
	queryText := c.Query("q")

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	items, err := h.repo.List(c.Request.Context(), filter, queryText, limit)
	if err != nil {
		response.DatabaseError(c, "Failed to get items")
		return
	}

	response.Success(c, items)
}

// Get godoc
// @Summary Get one item
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /items/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	item, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.DomainError(c, err, "Item not found")
		return
	}

	response.Success(c, item)
}

// Mine godoc
// @Summary List the caller's postings
// @Tags items
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /items/mine [get]
func (h *Handler) Mine(c *gin.Context) {
	uid := c.GetString("userID")

	items, err := h.repo.ListByOwner(c.Request.Context(), uid)
	if err != nil {
		response.DatabaseError(c, "Failed to get items")
		return
	}

	response.Success(c, items)
}

// UpdateStatus godoc
// @Summary Flip an item between lost and found
// @Description Owner-only; claimed items are immutable here, claiming happens through claim approval
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /items/{id}/status [put]
func (h *Handler) UpdateStatus(c *gin.Context) {
	uid := c.GetString("userID")
	itemID := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateStatusChange(req.Status); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	if err := h.repo.UpdateStatus(c.Request.Context(), itemID, uid, req.Status); err != nil {
		response.DomainError(c, err, "Failed to update item status")
		return
	}

	item, err := h.repo.GetByID(c.Request.Context(), itemID)
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve updated item")
		return
	}

	response.Success(c, item)
}
