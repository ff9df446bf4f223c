package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/common"
	"github.com/orris-inc/helpdesk/internal/domain/access"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	Actor    access.Actor
	TicketID uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	txMgr      common.TransactionManager
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.TicketRepository, txMgr common.TransactionManager, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{ticketRepo: ticketRepo, txMgr: txMgr, logger: logger}
}

// Execute removes the ticket together with its comments.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)

	if !access.CanDeleteTicket(cmd.Actor) {
		return errors.NewForbiddenError("only administrators can delete tickets")
	}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := loadForUpdate(txCtx, uc.ticketRepo, cmd.TicketID); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	})
	if err != nil {
		return internalOrAppError(uc.logger, "failed to delete ticket", err, "ticket_id", cmd.TicketID)
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)
	return nil
}
