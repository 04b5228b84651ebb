package users

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/lostfound/internal/features/auth"
	"github.com/xyz-asif/lostfound/internal/pkg/response"
	apperrors "github.com/xyz-asif/lostfound/pkg/errors"
)

type Handler struct {
	authRepo *auth.Repository
}

func NewHandler(authRepo *auth.Repository) *Handler {
	return &Handler{authRepo: authRepo}
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/me [get]
func (h *Handler) Me(c *gin.Context) {
	uid := c.GetString("userID")

	user, err := h.authRepo.GetByUID(c.Request.Context(), uid)
	if err != nil {
		response.DomainError(c, err, "User not found")
		return
	}

	response.Success(c, user)
}

// RegisterPushToken godoc
// @Summary Register a device push token
// @Description Stores the Expo push token for the caller; tokens are deduped across devices
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RegisterPushTokenRequest true "Push token"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /users/me/push-token [put]
func (h *Handler) RegisterPushToken(c *gin.Context) {
	uid := c.GetString("userID")

	var req RegisterPushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if strings.TrimSpace(req.PushToken) == "" {
		response.ValidationError(c, "pushToken must not be empty", "VALIDATION_FAILED")
		return
	}

	if err := h.authRepo.RegisterPushToken(c.Request.Context(), uid, req.PushToken); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.DatabaseError(c, "Failed to register push token")
		return
	}

	response.Success(c, map[string]string{"message": "Push token registered"})
}

// UpdateLocations godoc
// @Summary Update preferred locations
// @Description Replaces the free-text location watch list used for new-item notifications
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateLocationsRequest true "Preferred locations"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /users/me/locations [put]
func (h *Handler) UpdateLocations(c *gin.Context) {
	uid := c.GetString("userID")

	var req UpdateLocationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	// Drop blank entries; the matcher treats every entry as a substring
	locations := make([]string, 0, len(req.PreferredLocations))
	for _, loc := range req.PreferredLocations {
		if trimmed := strings.TrimSpace(loc); trimmed != "" {
			locations = append(locations, trimmed)
		}
	}

	if err := h.authRepo.SetPreferredLocations(c.Request.Context(), uid, locations); err != nil {
		response.DomainError(c, err, "Failed to update preferred locations")
		return
	}

	response.Success(c, map[string]interface{}{"preferredLocations": locations})
}
