package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/interfaces/http/handlers"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      gin.HandlerFunc
}

// SetupAuthRoutes configures registration, login and email verification.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", cfg.RateLimit, cfg.AuthHandler.Register)
		auth.POST("/login", cfg.RateLimit, cfg.AuthHandler.Login)
		auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)

		auth.GET("/verify-email/:token", cfg.AuthHandler.VerifyEmail)
		auth.POST("/resend-verification", cfg.RateLimit, cfg.AuthHandler.ResendVerification)
	}
}
