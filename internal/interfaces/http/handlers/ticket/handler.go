package ticket

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/application/ticket/usecases"
	"github.com/orris-inc/helpdesk/internal/domain/access"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateTicketCommand) (*dto.TicketDTO, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd usecases.ChangeStatusCommand) (*dto.TicketDTO, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.AssignTicketCommand) (*dto.TicketDTO, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd usecases.AddCommentCommand) (*dto.CommentDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteTicketCommand) error
}

type DashboardExecutor interface {
	Execute(ctx context.Context, actor access.Actor) (*dto.DashboardDTO, error)
}

// UseCases groups the ticket operations the handler dispatches to.
type UseCases struct {
	Create       CreateTicketExecutor
	Get          GetTicketExecutor
	List         ListTicketsExecutor
	Update       UpdateTicketExecutor
	ChangeStatus ChangeStatusExecutor
	Assign       AssignTicketExecutor
	AddComment   AddCommentExecutor
	Delete       DeleteTicketExecutor
	Dashboard    DashboardExecutor
}

type Handler struct {
	uc     UseCases
	logger logger.Interface
}

func NewHandler(uc UseCases, logger logger.Interface) *Handler {
	return &Handler{uc: uc, logger: logger}
}

// actor aborts with 401 when the auth middleware did not run.
func actor(c *gin.Context) (access.Actor, bool) {
	a, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
	}
	return a, ok
}

// CreateTicket handles POST /api/tickets
func (h *Handler) CreateTicket(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var req CreateTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.Create.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Actor:       a,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /api/tickets/:id
func (h *Handler) GetTicket(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.Get.Execute(c.Request.Context(), usecases.GetTicketQuery{Actor: a, TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /api/tickets
func (h *Handler) ListTickets(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var req ListTicketsRequest
	if err := utils.BindQuery(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	p := utils.ParsePagination(c)

	result, err := h.uc.List.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Actor:    a,
		Status:   req.Status,
		Priority: req.Priority,
		Search:   req.Search,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// UpdateTicket handles PATCH /api/tickets/:id
func (h *Handler) UpdateTicket(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.Update.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		Actor:       a,
		TicketID:    ticketID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		AssigneeID:  req.AssignedToID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// ChangeStatus handles POST /api/tickets/:id/status
func (h *Handler) ChangeStatus(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.ChangeStatus.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		Actor:    a,
		TicketID: ticketID,
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", result)
}

// AssignTicket handles POST /api/tickets/:id/assign
func (h *Handler) AssignTicket(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.Assign.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		Actor:      a,
		TicketID:   ticketID,
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned successfully", result)
}

// AddComment handles POST /api/tickets/:id/comments
func (h *Handler) AddComment(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.AddComment.Execute(c.Request.Context(), usecases.AddCommentCommand{
		Actor:    a,
		TicketID: ticketID,
		Content:  req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// DeleteTicket handles DELETE /api/tickets/:id
func (h *Handler) DeleteTicket(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.uc.Delete.Execute(c.Request.Context(), usecases.DeleteTicketCommand{Actor: a, TicketID: ticketID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", nil)
}

// Dashboard handles GET /api/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	result, err := h.uc.Dashboard.Execute(c.Request.Context(), a)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
