package users

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/lostfound/internal/config"
	"github.com/xyz-asif/lostfound/internal/features/auth"
	"github.com/xyz-asif/lostfound/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config, authRepo *auth.Repository) {
	handler := NewHandler(authRepo)

	usersGroup := router.Group("/users")
	usersGroup.Use(middleware.Auth(cfg))
	{
		usersGroup.GET("/me", handler.Me)
		usersGroup.PUT("/me/push-token", handler.RegisterPushToken)
		usersGroup.PUT("/me/locations", handler.UpdateLocations)
	}
}
