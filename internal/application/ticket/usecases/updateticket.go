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

// UpdateTicketCommand carries optional edits. Status and AssigneeID are
// staff-only and go through the same rules as the dedicated operations.
type UpdateTicketCommand struct {
	Actor       access.Actor
	TicketID    uint
	Title       *string
	Description *string
	Priority    *string
	Status      *string
	AssigneeID  *uint
}

type UpdateTicketUseCase struct {
	lifecycle
	assembler *dto.Assembler
	recorder  Recorder
	txMgr     common.TransactionManager
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	users UserLookup,
	assembler *dto.Assembler,
	recorder Recorder,
	txMgr common.TransactionManager,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		lifecycle: lifecycle{ticketRepo: ticketRepo, commentRepo: commentRepo, users: users, logger: logger},
		assembler: assembler,
		recorder:  recorder,
		txMgr:     txMgr,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)

	changes := ticket.DetailChanges{Title: cmd.Title, Description: cmd.Description}
	if cmd.Priority != nil {
		p, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority", err.Error())
		}
		changes.Priority = &p
	}

	var status *vo.TicketStatus
	if cmd.Status != nil {
		if !access.CanChangeStatus(cmd.Actor) {
			return nil, errors.NewForbiddenError("only IT staff and administrators can change ticket status")
		}
		s, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status", err.Error())
		}
		status = &s
	}
	if cmd.AssigneeID != nil && !access.CanAssignTickets(cmd.Actor) {
		return nil, errors.NewForbiddenError("only IT staff and administrators can assign tickets")
	}

	var (
		t      *ticket.Ticket
		change *ticket.StatusChange
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		if t, err = loadForUpdate(txCtx, uc.ticketRepo, cmd.TicketID); err != nil {
			return err
		}
		if !access.CanEditTicket(cmd.Actor, t) {
			return errors.NewForbiddenError("you do not have permission to edit this ticket")
		}

		edited, err := t.UpdateDetails(changes)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if edited {
			if err := uc.ticketRepo.Update(txCtx, t); err != nil {
				return err
			}
		}

		if status != nil {
			if change, err = uc.changeStatus(txCtx, t, *status, cmd.Actor); err != nil {
				return err
			}
		}
		if cmd.AssigneeID != nil && !t.IsAssignedTo(*cmd.AssigneeID) {
			if err := uc.assign(txCtx, t, *cmd.AssigneeID, cmd.Actor); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, uc.translate(err, "failed to update ticket", "ticket_id", cmd.TicketID)
	}

	if change != nil {
		uc.recorder.TicketStatusChanged(change.From.String(), change.To.String())
	}
	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "actor_id", cmd.Actor.ID)

	users, err := loadUsers(ctx, uc.users, []*ticket.Ticket{t}, nil)
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to load ticket users", err, "ticket_id", t.ID())
	}
	return uc.assembler.Ticket(t, users), nil
}
