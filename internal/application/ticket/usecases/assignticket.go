package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/common"
	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/access"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type AssignTicketCommand struct {
	Actor      access.Actor
	TicketID   uint
	AssigneeID uint
}

type AssignTicketUseCase struct {
	lifecycle
	assembler *dto.Assembler
	txMgr     common.TransactionManager
}

func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	users UserLookup,
	assembler *dto.Assembler,
	txMgr common.TransactionManager,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		lifecycle: lifecycle{ticketRepo: ticketRepo, commentRepo: commentRepo, users: users, logger: logger},
		assembler: assembler,
		txMgr:     txMgr,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing assign ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID, "assignee_id", cmd.AssigneeID)

	if !access.CanAssignTickets(cmd.Actor) {
		return nil, errors.NewForbiddenError("only IT staff and administrators can assign tickets")
	}
	if cmd.AssigneeID == 0 {
		return nil, errors.NewValidationError("assignee is required")
	}

	var t *ticket.Ticket
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		if t, err = loadForUpdate(txCtx, uc.ticketRepo, cmd.TicketID); err != nil {
			return err
		}
		return uc.assign(txCtx, t, cmd.AssigneeID, cmd.Actor)
	})
	if err != nil {
		return nil, uc.translate(err, "failed to assign ticket", "ticket_id", cmd.TicketID)
	}

	uc.logger.Infow("ticket assigned", "ticket_id", t.ID(), "assignee_id", cmd.AssigneeID)

	users, err := loadUsers(ctx, uc.users, []*ticket.Ticket{t}, nil)
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to load ticket users", err, "ticket_id", t.ID())
	}
	return uc.assembler.Ticket(t, users), nil
}
