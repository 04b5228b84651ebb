package claims

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/lostfound/internal/config"
	"github.com/xyz-asif/lostfound/internal/features/items"
	"github.com/xyz-asif/lostfound/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, itemsRepo *items.Repository, stats StatsBumper, events EventPublisher) {
	repo := NewRepository(db)
	service := NewService(repo, itemsRepo, stats, events)
	handler := NewHandler(service)

	itemClaims := router.Group("/items/:id/claims")
	itemClaims.Use(middleware.Auth(cfg))
	{
		itemClaims.POST("", handler.Submit)
		itemClaims.GET("", handler.ListForItem)
		itemClaims.POST("/:claimId/decision", handler.Decide)
	}

	mine := router.Group("/claims")
	mine.Use(middleware.Auth(cfg))
	{
		mine.GET("/mine", handler.ListMine)
	}
}
