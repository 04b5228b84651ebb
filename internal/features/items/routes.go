package items

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/lostfound/internal/config"
	"github.com/xyz-asif/lostfound/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config, repo *Repository, events EventPublisher) {
	handler := NewHandler(repo, events)

	itemsGroup := router.Group("/items")
	itemsGroup.Use(middleware.Auth(cfg))
	{
		itemsGroup.POST("", handler.Create)
		itemsGroup.GET("", handler.List)
		itemsGroup.GET("/mine", handler.Mine)
		itemsGroup.GET("/:id", handler.Get)
		itemsGroup.PUT("/:id/status", handler.UpdateStatus)
	}
}
