package notifications

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/lostfound/internal/pkg/pagination"
	"github.com/xyz-asif/lostfound/internal/pkg/response"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List godoc
// @Summary List the caller's notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param unreadOnly query bool false "Only unread"
// @Success 200 {object} response.PaginatedResponse
// @Router /notifications [get]
func (h *Handler) List(c *gin.Context) {
	uid := c.GetString("userID")

	page, limit := pagination.FromQuery(c.Query("page"), c.Query("limit"))
	unreadOnly := c.Query("unreadOnly") == "true"

	notifications, total, err := h.repo.GetUserNotifications(c.Request.Context(), uid, unreadOnly, page, limit)
	if err != nil {
		response.DatabaseError(c, "Failed to get notifications")
		return
	}

	response.Paginated(c, notifications, total, limit, page)
}

// UnreadCount godoc
// @Summary Count unread notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /notifications/unread-count [get]
func (h *Handler) UnreadCount(c *gin.Context) {
	uid := c.GetString("userID")

	count, err := h.repo.CountUnread(c.Request.Context(), uid)
	if err != nil {
		response.DatabaseError(c, "Failed to count notifications")
		return
	}

	response.Success(c, UnreadCountResponse{UnreadCount: count})
}

// MarkRead godoc
// @Summary Mark one notification as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /notifications/{id}/read [put]
func (h *Handler) MarkRead(c *gin.Context) {
	uid := c.GetString("userID")
	id := c.Param("id")

	if err := h.repo.MarkAsRead(c.Request.Context(), id, uid); err != nil {
		response.DomainError(c, err, "Notification not found")
		return
	}

	response.Success(c, map[string]interface{}{"id": id, "isRead": true})
}

// MarkAllRead godoc
// @Summary Mark all notifications as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /notifications/read-all [put]
func (h *Handler) MarkAllRead(c *gin.Context) {
	uid := c.GetString("userID")

	count, err := h.repo.MarkAllAsRead(c.Request.Context(), uid)
	if err != nil {
		response.DatabaseError(c, "Failed to mark notifications read")
		return
	}

	response.Success(c, MarkAllReadResponse{MarkedCount: count})
}
