package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler     *handlers.TicketHandler
	AttachmentHandler *handlers.AttachmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupTicketRoutes configures ticket and attachment routes. Ownership is
// enforced inside the use cases; the middleware only guarantees a verified
// identity.
func SetupTicketRoutes(api *gin.RouterGroup, cfg *TicketRouteConfig) {
	tickets := api.Group("/tickets", cfg.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", cfg.TicketHandler.CreateTicket)
		tickets.GET("", cfg.TicketHandler.ListTickets)
		tickets.GET("/:id", cfg.TicketHandler.GetTicket)
		tickets.PATCH("/:id/status", cfg.TicketHandler.UpdateStatus)
		tickets.GET("/:id/history", cfg.TicketHandler.GetTicketHistory)

		tickets.POST("/:id/attachments", cfg.AttachmentHandler.RegisterAttachment)
		tickets.GET("/:id/attachments", cfg.AttachmentHandler.ListAttachments)
		tickets.DELETE("/:id/attachments/:attachmentId", cfg.AttachmentHandler.DeleteAttachment)
	}

	api.GET("/stats", cfg.AuthMiddleware.RequireAuth(), cfg.TicketHandler.GetStats)
}
