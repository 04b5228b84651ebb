package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/lostfound/internal/config"
	"github.com/xyz-asif/lostfound/internal/pkg/logger"
	"github.com/xyz-asif/lostfound/internal/pkg/response"
	"github.com/xyz-asif/lostfound/internal/pkg/token"
)

type Handler struct {
	repo     *Repository
	verifier TokenVerifier
	cfg      *config.Config
}

func NewHandler(repo *Repository, verifier TokenVerifier, cfg *config.Config) *Handler {
	return &Handler{
		repo:     repo,
		verifier: verifier,
		cfg:      cfg,
	}
}

// CreateSession godoc
// @Summary Exchange a Firebase ID token for an API session
// @Description Verifies the Firebase ID token, upserts the user record and returns a session JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SessionRequest true "Firebase ID token"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/session [post]
func (h *Handler) CreateSession(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	decoded, err := h.verifier.VerifyIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		response.Unauthorized(c, "Invalid Firebase ID token", "AUTH_INVALID_TOKEN")
		return
	}

	uid, email, name := identityFromToken(decoded)

	user, err := h.repo.UpsertOnSignIn(c.Request.Context(), uid, email, name)
	if err != nil {
		logger.Error("auth: failed to upsert user %s: %v", uid, err)
		response.InternalServerError(c, "Failed to create session")
		return
	}

	accessToken, err := token.GenerateToken(h.cfg, user.UID, user.Email, user.DisplayName)
	if err != nil {
		response.InternalServerError(c, "Failed to issue session token")
		return
	}

	response.Success(c, SessionResponse{
		User:        user,
		AccessToken: accessToken,
	})
}
