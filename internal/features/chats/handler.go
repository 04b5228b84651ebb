package chats

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/lostfound/internal/features/items"
	"github.com/xyz-asif/lostfound/internal/pkg/response"
	apperrors "github.com/xyz-asif/lostfound/pkg/errors"
)

type Handler struct {
	repo      *Repository
	itemsRepo *items.Repository
}

func NewHandler(repo *Repository, itemsRepo *items.Repository) *Handler {
	return &Handler{repo: repo, itemsRepo: itemsRepo}
}

// Open godoc
// @Summary Open a chat about an item
// @Description Idempotent: opening the same item/pair again returns the existing thread
// @Tags chats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body OpenThreadRequest true "Item and counterpart"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /chats/open [post]
func (h *Handler) Open(c *gin.Context) {
	uid := c.GetString("userID")

	var req OpenThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	item, err := h.itemsRepo.GetByID(c.Request.Context(), req.ItemID)
	if err != nil {
		response.DomainError(c, err, "Item not found")
		return
	}

	// One side of every thread is the item owner
	if uid != item.CreatedByUid && req.OtherUid != item.CreatedByUid {
		response.DomainError(c, apperrors.ErrValidation, "one participant must be the item owner")
		return
	}

	thread, err := h.repo.OpenOrCreate(c.Request.Context(), item.ID, uid, req.OtherUid)
	if err != nil {
		response.DomainError(c, err, "Failed to open chat")
		return
	}

	response.Success(c, thread)
}

// List godoc
// @Summary List the caller's chats
// @Tags chats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /chats [get]
func (h *Handler) List(c *gin.Context) {
	uid := c.GetString("userID")

	threads, err := h.repo.ListMine(c.Request.Context(), uid)
	if err != nil {
		response.DatabaseError(c, "Failed to get chats")
		return
	}

	response.Success(c, threads)
}

// Messages godoc
// @Summary List a thread's messages
// @Description Oldest first; only participants can read a thread
// @Tags chats
// @Produce json
// @Security BearerAuth
// @Param id path string true "Thread ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /chats/{id}/messages [get]
func (h *Handler) Messages(c *gin.Context) {
	uid := c.GetString("userID")

	thread, err := h.repo.GetByID(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		response.DomainError(c, err, "Chat not found")
		return
	}

	messages, err := h.repo.ListMessages(c.Request.Context(), thread.ID)
	if err != nil {
		response.DatabaseError(c, "Failed to get messages")
		return
	}

	response.Success(c, messages)
}

// Send godoc
// @Summary Send a message
// @Tags chats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Thread ID"
// @Param request body SendMessageRequest true "Message text"
// @Success 201 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /chats/{id}/messages [post]
func (h *Handler) Send(c *gin.Context) {
	uid := c.GetString("userID")

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	thread, err := h.repo.GetByID(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		response.DomainError(c, err, "Chat not found")
		return
	}

	msg, err := h.repo.AppendMessage(c.Request.Context(), thread, uid, req.Text)
	if err != nil {
		response.DatabaseError(c, "Failed to send message")
		return
	}

	response.Created(c, msg)
}
