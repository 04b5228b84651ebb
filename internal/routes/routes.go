package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/lostfound/internal/config"
	"github.com/xyz-asif/lostfound/internal/features/auth"
	"github.com/xyz-asif/lostfound/internal/features/chats"
	"github.com/xyz-asif/lostfound/internal/features/claims"
	"github.com/xyz-asif/lostfound/internal/features/items"
	"github.com/xyz-asif/lostfound/internal/features/media"
	"github.com/xyz-asif/lostfound/internal/features/notifications"
	"github.com/xyz-asif/lostfound/internal/features/users"
	"github.com/xyz-asif/lostfound/internal/pkg/push"
)

// SetupRoutes wires every feature under /api/v1 and returns the
// notification fan-out service for the caller to run.
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config, verifier auth.TokenVerifier) *notifications.Service {
	api := router.Group("/api/v1")

	// The users repository backs auth, profile reads, the claims-made
	// counter and the fan-out recipient queries.
	authRepo := auth.RegisterRoutes(api, db, cfg, verifier)

	notifRepo := notifications.NewRepository(db)
	pushClient := push.NewClient(cfg.PushGatewayURL)
	notifService := notifications.NewService(notifRepo, authRepo, pushClient)

	itemsRepo := items.NewRepository(db)

	users.RegisterRoutes(api, cfg, authRepo)
	items.RegisterRoutes(api, cfg, itemsRepo, notifService)
	claims.RegisterRoutes(api, db, cfg, itemsRepo, authRepo, notifService)
	chats.RegisterRoutes(api, db, cfg, itemsRepo)
	notifications.RegisterRoutes(api, cfg, notifRepo)
	media.RegisterRoutes(api, cfg)

	return notifService
}
