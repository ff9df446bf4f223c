package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/ticket"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes registers the ticket and dashboard routes. Role checks
// happen in the use cases so that denials carry the policy's message.
func SetupTicketRoutes(api *gin.RouterGroup, cfg *TicketRouteConfig) {
	api.GET("/dashboard", cfg.AuthMiddleware.RequireAuth(), cfg.TicketHandler.Dashboard)

	tickets := api.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", cfg.TicketHandler.CreateTicket)
		tickets.GET("", cfg.TicketHandler.ListTickets)

		tickets.POST("/:id/status", cfg.TicketHandler.ChangeStatus)
		tickets.POST("/:id/assign", cfg.TicketHandler.AssignTicket)
		tickets.POST("/:id/comments", cfg.TicketHandler.AddComment)

		tickets.GET("/:id", cfg.TicketHandler.GetTicket)
		tickets.PATCH("/:id", cfg.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", cfg.TicketHandler.DeleteTicket)
	}
}
