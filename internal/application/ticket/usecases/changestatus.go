package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/common"
	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/access"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	Actor    access.Actor
	TicketID uint
	Status   string
}

type ChangeStatusUseCase struct {
	lifecycle
	assembler *dto.Assembler
	recorder  Recorder
	txMgr     common.TransactionManager
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	users UserLookup,
	assembler *dto.Assembler,
	recorder Recorder,
	txMgr common.TransactionManager,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		lifecycle: lifecycle{ticketRepo: ticketRepo, commentRepo: commentRepo, users: users, logger: logger},
		assembler: assembler,
		recorder:  recorder,
		txMgr:     txMgr,
	}
}

// Execute moves the ticket to the requested status. Requesting the current
// status writes nothing and records no comment.
func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID, "status", cmd.Status)

	if !access.CanChangeStatus(cmd.Actor) {
		return nil, errors.NewForbiddenError("only IT staff and administrators can change ticket status")
	}
	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError("invalid status", err.Error())
	}

	var (
		t      *ticket.Ticket
		change *ticket.StatusChange
	)
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		if t, err = loadForUpdate(txCtx, uc.ticketRepo, cmd.TicketID); err != nil {
			return err
		}
		change, err = uc.changeStatus(txCtx, t, status, cmd.Actor)
		return err
	})
	if err != nil {
		return nil, uc.translate(err, "failed to change ticket status", "ticket_id", cmd.TicketID)
	}

	if change != nil {
		uc.recorder.TicketStatusChanged(change.From.String(), change.To.String())
		uc.logger.Infow("ticket status changed", "ticket_id", t.ID(), "from", change.From, "to", change.To)
	}

	users, err := loadUsers(ctx, uc.users, []*ticket.Ticket{t}, nil)
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to load ticket users", err, "ticket_id", t.ID())
	}
	return uc.assembler.Ticket(t, users), nil
}
