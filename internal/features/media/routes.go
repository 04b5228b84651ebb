package media

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/lostfound/internal/config"
	"github.com/xyz-asif/lostfound/internal/middleware"
	"github.com/xyz-asif/lostfound/internal/pkg/cloudinary"
	"github.com/xyz-asif/lostfound/internal/pkg/logger"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	cld, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, "lostfound")
	if err != nil {
		logger.Warn("Failed to initialize cloudinary service: %v", err)
	}

	handler := NewHandler(cld)

	mediaGroup := router.Group("/media")
	mediaGroup.Use(middleware.Auth(cfg))
	{
		mediaGroup.POST("/items", handler.UploadItemImage)
	}
}
