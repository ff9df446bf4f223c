package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/interfaces/http/handlers"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for profile and employee routes.
type UserRouteConfig struct {
	ProfileHandler  *handlers.ProfileHandler
	EmployeeHandler *handlers.EmployeeHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupUserRoutes(api *gin.RouterGroup, cfg *UserRouteConfig) {
	profile := api.Group("/profile")
	profile.Use(cfg.AuthMiddleware.RequireAuth())
	{
		profile.GET("", cfg.ProfileHandler.GetProfile)
		profile.PATCH("", cfg.ProfileHandler.UpdateProfile)
		// self or employee manager, decided by the use case
		profile.GET("/:id", cfg.ProfileHandler.GetProfile)
	}

	employees := api.Group("/employees")
	employees.Use(cfg.AuthMiddleware.RequireAuth(), middleware.RequireEmployeeManager())
	{
		employees.GET("", cfg.EmployeeHandler.ListEmployees)
		employees.GET("/:id", cfg.EmployeeHandler.GetEmployee)
		employees.PATCH("/:id", cfg.EmployeeHandler.UpdateEmployee)
		employees.DELETE("/:id", cfg.EmployeeHandler.DeleteEmployee)
	}
}
