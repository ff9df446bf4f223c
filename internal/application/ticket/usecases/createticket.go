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

type CreateTicketCommand struct {
	Actor       access.Actor
	Title       string
	Description string
	// Priority is optional; empty means medium.
	Priority string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	users      UserLookup
	assembler  *dto.Assembler
	recorder   Recorder
	txMgr      common.TransactionManager
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	users UserLookup,
	assembler *dto.Assembler,
	recorder Recorder,
	txMgr common.TransactionManager,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		users:      users,
		assembler:  assembler,
		recorder:   recorder,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "creator_id", cmd.Actor.ID)

	priority := vo.DefaultPriority
	if cmd.Priority != "" {
		p, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority", err.Error())
		}
		priority = p
	}

	t, err := ticket.NewTicket(cmd.Title, cmd.Description, priority, cmd.Actor.ID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Create(txCtx, t)
	})
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to create ticket", err, "creator_id", cmd.Actor.ID)
	}

	uc.recorder.TicketCreated(priority.String())
	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "creator_id", cmd.Actor.ID, "priority", priority)

	users, err := loadUsers(ctx, uc.users, []*ticket.Ticket{t}, nil)
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to load ticket users", err, "ticket_id", t.ID())
	}
	return uc.assembler.Ticket(t, users), nil
}
