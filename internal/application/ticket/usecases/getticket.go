package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/access"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	Actor    access.Actor
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	users       UserLookup
	assembler   *dto.Assembler
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	users UserLookup,
	assembler *dto.Assembler,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		users:       users,
		assembler:   assembler,
		logger:      logger,
	}
}

// Execute returns the ticket with its comments in chronological order.
func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, ticketNotFound(query.TicketID)
		}
		return nil, internalOrAppError(uc.logger, "failed to get ticket", err, "ticket_id", query.TicketID)
	}

	if !access.CanViewTicket(query.Actor, t) {
		return nil, errors.NewForbiddenError("you do not have permission to view this ticket")
	}

	comments, err := uc.commentRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to list comments", err, "ticket_id", t.ID())
	}

	users, err := loadUsers(ctx, uc.users, []*ticket.Ticket{t}, comments)
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to load ticket users", err, "ticket_id", t.ID())
	}
	return uc.assembler.TicketWithComments(t, comments, users), nil
}
