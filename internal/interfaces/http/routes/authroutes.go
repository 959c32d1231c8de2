package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication and user routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures authentication routes. Both login endpoints are
// unauthenticated by nature; the user lookup requires a verified identity.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/validate", cfg.AuthHandler.ValidateEmployee)
		auth.POST("/admin", cfg.AuthHandler.AdminLogin)
	}

	api.GET("/users/:id", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.GetUser)
}
