package http

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/logger"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	ticketHandler     *handlers.TicketHandler
	softwareHandler   *handlers.SoftwareHandler
	attachmentHandler *handlers.AttachmentHandler
	healthHandler     *handlers.HealthHandler
	authMiddleware    *middleware.AuthMiddleware
}

func newEngine(cfg *config.Config, log logger.Interface) *gin.Engine {
	switch cfg.Server.Mode {
	case "release", "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	return engine
}

func registerRoutes(engine *gin.Engine, deps *routeDeps) {
	api := engine.Group("/api")

	api.GET("/health", deps.healthHandler.Health)

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    deps.authHandler,
		AuthMiddleware: deps.authMiddleware,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:     deps.ticketHandler,
		AttachmentHandler: deps.attachmentHandler,
		AuthMiddleware:    deps.authMiddleware,
	})
	routes.SetupSoftwareRoutes(api, &routes.SoftwareRouteConfig{
		SoftwareHandler: deps.softwareHandler,
		AuthMiddleware:  deps.authMiddleware,
	})
	routes.SetupObjectRoutes(engine, api, &routes.ObjectRouteConfig{
		AttachmentHandler: deps.attachmentHandler,
		AuthMiddleware:    deps.authMiddleware,
	})
}
