package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
)

// SoftwareRouteConfig holds dependencies for software catalog routes.
type SoftwareRouteConfig struct {
	SoftwareHandler *handlers.SoftwareHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupSoftwareRoutes configures the catalog listing and the admin-only
// import endpoints.
func SetupSoftwareRoutes(api *gin.RouterGroup, cfg *SoftwareRouteConfig) {
	api.GET("/software", cfg.AuthMiddleware.RequireAuth(), cfg.SoftwareHandler.ListSoftware)

	admin := api.Group("/admin/software", cfg.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		admin.POST("/upload-csv", cfg.SoftwareHandler.UploadCSV)
		admin.GET("/sample-csv", cfg.SoftwareHandler.SampleCSV)
	}
}
