package auth

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/lostfound/internal/config"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, verifier TokenVerifier) *Repository {
	repo := NewRepository(db)
	handler := NewHandler(repo, verifier, cfg)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/session", handler.CreateSession)
	}

	// The users repository is shared with the users, claims and notifications
	// features; hand it back to the route assembler.
	return repo
}
