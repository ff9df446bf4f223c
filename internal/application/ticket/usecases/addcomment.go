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

type AddCommentCommand struct {
	Actor    access.Actor
	TicketID uint
	Content  string
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	users       UserLookup
	assembler   *dto.Assembler
	txMgr       common.TransactionManager
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	users UserLookup,
	assembler *dto.Assembler,
	txMgr common.TransactionManager,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		users:       users,
		assembler:   assembler,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "author_id", cmd.Actor.ID)

	var c *ticket.Comment
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return ticketNotFound(cmd.TicketID)
			}
			return err
		}
		if !access.CanComment(cmd.Actor, t) {
			return errors.NewForbiddenError("you do not have permission to comment on this ticket")
		}

		c, err = ticket.NewComment(t.ID(), cmd.Actor.ID, cmd.Content)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		return uc.commentRepo.Create(txCtx, c)
	})
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to add comment", err, "ticket_id", cmd.TicketID)
	}

	uc.logger.Infow("comment added", "ticket_id", cmd.TicketID, "comment_id", c.ID())

	users, err := loadUsers(ctx, uc.users, nil, []*ticket.Comment{c})
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to load comment author", err, "comment_id", c.ID())
	}
	return uc.assembler.Comment(c, users), nil
}
