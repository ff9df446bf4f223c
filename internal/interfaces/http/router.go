package http

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/infrastructure/ratelimit"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/routes"
)

// SetupRoutes installs the global middleware chain and every route group.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())
	c.engine.Use(middleware.Metrics(c.metrics))

	c.engine.GET("/healthz", c.hdlrs.healthHandler.Healthz)
	c.engine.GET("/metrics", gin.WrapH(c.metrics.Handler()))

	api := c.engine.Group("/api")
	if c.cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(c.svcs.rateLimiter, "api", ratelimit.PerMinute(c.cfg.RateLimit.RequestsPerMinute), c.log))
	}

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.authHandler,
		AuthMiddleware: c.authMiddleware,
		RateLimit:      c.authRateLimit(),
	})
	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		ProfileHandler:  c.hdlrs.profileHandler,
		EmployeeHandler: c.hdlrs.employeeHandler,
		AuthMiddleware:  c.authMiddleware,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:  c.hdlrs.ticketHandler,
		AuthMiddleware: c.authMiddleware,
	})
}

// authRateLimit guards credential and mail endpoints with a tighter limit.
func (c *Container) authRateLimit() gin.HandlerFunc {
	if !c.cfg.RateLimit.Enabled {
		return func(ctx *gin.Context) { ctx.Next() }
	}
	return middleware.RateLimit(c.svcs.rateLimiter, "auth", ratelimit.PerMinute(c.cfg.RateLimit.AuthRequestsPerMinute), c.log)
}
