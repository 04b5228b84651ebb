package chats

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/lostfound/internal/config"
	"github.com/xyz-asif/lostfound/internal/features/items"
	"github.com/xyz-asif/lostfound/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, itemsRepo *items.Repository) {
	repo := NewRepository(db)
	handler := NewHandler(repo, itemsRepo)

	chatsGroup := router.Group("/chats")
	chatsGroup.Use(middleware.Auth(cfg))
	{
		chatsGroup.POST("/open", handler.Open)
		chatsGroup.GET("", handler.List)
		chatsGroup.GET("/:id/messages", handler.Messages)
		chatsGroup.POST("/:id/messages", handler.Send)
	}
}
