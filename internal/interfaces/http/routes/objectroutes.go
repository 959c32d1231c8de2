package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

// ObjectRouteConfig holds dependencies for object storage routes.
type ObjectRouteConfig struct {
	AttachmentHandler *handlers.AttachmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupObjectRoutes configures the presigned upload endpoint and the
// authorized download proxy.
func SetupObjectRoutes(engine *gin.Engine, api *gin.RouterGroup, cfg *ObjectRouteConfig) {
	api.POST("/objects/upload", cfg.AuthMiddleware.RequireAuth(), cfg.AttachmentHandler.RequestUpload)

	engine.GET("/objects/*path", cfg.AuthMiddleware.RequireAuth(), cfg.AttachmentHandler.DownloadObject)
}
