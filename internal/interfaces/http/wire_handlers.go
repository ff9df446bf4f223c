package http

import (
	"github.com/orris-inc/helpdesk/internal/interfaces/http/handlers"
	ticketHandlers "github.com/orris-inc/helpdesk/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler     *handlers.AuthHandler
	profileHandler  *handlers.ProfileHandler
	employeeHandler *handlers.EmployeeHandler
	healthHandler   *handlers.HealthHandler
	ticketHandler   *ticketHandlers.Handler
}

func (c *Container) initHandlers() error {
	u := c.ucs

	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}

	c.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(
			u.registerUC, u.loginUC, u.logoutUC, c.svcs.verification,
			c.cfg.Auth.Cookie, c.log,
		),
		profileHandler:  handlers.NewProfileHandler(u.getProfileUC, u.updateProfileUC, c.log),
		employeeHandler: handlers.NewEmployeeHandler(u.listEmployeesUC, u.getProfileUC, u.updateEmployeeUC, u.deleteUserUC, c.log),
		healthHandler:   handlers.NewHealthHandler(sqlDB),
		ticketHandler: ticketHandlers.NewHandler(ticketHandlers.UseCases{
			Create:       u.createTicketUC,
			Get:          u.getTicketUC,
			List:         u.listTicketsUC,
			Update:       u.updateTicketUC,
			ChangeStatus: u.changeStatusUC,
			Assign:       u.assignTicketUC,
			AddComment:   u.addCommentUC,
			Delete:       u.deleteTicketUC,
			Dashboard:    u.getDashboardUC,
		}, c.log),
	}
	return nil
}
