package http

import (
	ticketUsecases "github.com/orris-inc/helpdesk/internal/application/ticket/usecases"
	"github.com/orris-inc/helpdesk/internal/application/user/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User / Auth
	registerUC       *usecases.RegisterUseCase
	loginUC          *usecases.LoginUseCase
	logoutUC         *usecases.LogoutUseCase
	authenticateUC   *usecases.AuthenticateUseCase
	getProfileUC     *usecases.GetProfileUseCase
	updateProfileUC  *usecases.UpdateProfileUseCase
	listEmployeesUC  *usecases.ListEmployeesUseCase
	updateEmployeeUC *usecases.UpdateEmployeeUseCase
	deleteUserUC     *usecases.DeleteUserUseCase

	// Ticket
	createTicketUC  *ticketUsecases.CreateTicketUseCase
	getTicketUC     *ticketUsecases.GetTicketUseCase
	listTicketsUC   *ticketUsecases.ListTicketsUseCase
	updateTicketUC  *ticketUsecases.UpdateTicketUseCase
	changeStatusUC  *ticketUsecases.ChangeStatusUseCase
	assignTicketUC  *ticketUsecases.AssignTicketUseCase
	addCommentUC    *ticketUsecases.AddCommentUseCase
	deleteTicketUC  *ticketUsecases.DeleteTicketUseCase
	getDashboardUC  *ticketUsecases.GetDashboardUseCase
}

func (c *Container) initUserUseCases() {
	r, s := c.repos, c.svcs

	c.ucs.registerUC = usecases.NewRegisterUseCase(r.userRepo, s.hasher, s.verification, s.txMgr, c.log)
	c.ucs.loginUC = usecases.NewLoginUseCase(r.userRepo, r.sessionRepo, s.hasher, s.jwt, c.log)
	c.ucs.logoutUC = usecases.NewLogoutUseCase(r.sessionRepo, c.log)
	c.ucs.authenticateUC = usecases.NewAuthenticateUseCase(r.userRepo, r.sessionRepo, s.jwt, c.log)
	c.ucs.getProfileUC = usecases.NewGetProfileUseCase(r.userRepo, c.log)
	c.ucs.updateProfileUC = usecases.NewUpdateProfileUseCase(r.userRepo, s.txMgr, c.log)
	c.ucs.listEmployeesUC = usecases.NewListEmployeesUseCase(r.userRepo, c.log)
	c.ucs.updateEmployeeUC = usecases.NewUpdateEmployeeUseCase(r.userRepo, s.txMgr, c.log)
	c.ucs.deleteUserUC = usecases.NewDeleteUserUseCase(r.userRepo, s.txMgr, c.log)
}

func (c *Container) initTicketUseCases() {
	r, s := c.repos, c.svcs

	c.ucs.createTicketUC = ticketUsecases.NewCreateTicketUseCase(r.ticketRepo, r.userRepo, s.assembler, s.metrics, s.txMgr, c.log)
	c.ucs.getTicketUC = ticketUsecases.NewGetTicketUseCase(r.ticketRepo, r.commentRepo, r.userRepo, s.assembler, c.log)
	c.ucs.listTicketsUC = ticketUsecases.NewListTicketsUseCase(r.ticketRepo, r.userRepo, s.assembler, c.log)
	c.ucs.updateTicketUC = ticketUsecases.NewUpdateTicketUseCase(r.ticketRepo, r.commentRepo, r.userRepo, s.assembler, s.metrics, s.txMgr, c.log)
	c.ucs.changeStatusUC = ticketUsecases.NewChangeStatusUseCase(r.ticketRepo, r.commentRepo, r.userRepo, s.assembler, s.metrics, s.txMgr, c.log)
	c.ucs.assignTicketUC = ticketUsecases.NewAssignTicketUseCase(r.ticketRepo, r.commentRepo, r.userRepo, s.assembler, s.txMgr, c.log)
	c.ucs.addCommentUC = ticketUsecases.NewAddCommentUseCase(r.ticketRepo, r.commentRepo, r.userRepo, s.assembler, s.txMgr, c.log)
	c.ucs.deleteTicketUC = ticketUsecases.NewDeleteTicketUseCase(r.ticketRepo, s.txMgr, c.log)
	c.ucs.getDashboardUC = ticketUsecases.NewGetDashboardUseCase(r.ticketRepo, r.userRepo, s.assembler, c.log)
}
