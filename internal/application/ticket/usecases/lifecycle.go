package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/orris-inc/helpdesk/internal/domain/access"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// lifecycle holds the mutate-then-audit steps shared by the status, assign
// and update use cases. Callers run them inside one transaction and hold
// the ticket row lock.
type lifecycle struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	users       UserLookup
	logger      logger.Interface
}

// auditError marks a failure to write the system comment after the ticket
// row was already updated in the same transaction.
type auditError struct {
	err error
}

func (e *auditError) Error() string { return "audit comment: " + e.err.Error() }
func (e *auditError) Unwrap() error { return e.err }

func (l *lifecycle) audit(ctx context.Context, t *ticket.Ticket, actorID uint, message string) error {
	c, err := ticket.NewSystemComment(t.ID(), actorID, message)
	if err != nil {
		return &auditError{err: err}
	}
	if err := l.commentRepo.Create(ctx, c); err != nil {
		return &auditError{err: err}
	}
	return nil
}

// changeStatus returns nil, nil when the ticket already has the status.
func (l *lifecycle) changeStatus(ctx context.Context, t *ticket.Ticket, status vo.TicketStatus, actor access.Actor) (*ticket.StatusChange, error) {
	if !access.CanChangeStatus(actor) {
		return nil, errors.NewForbiddenError("only IT staff and administrators can change ticket status")
	}

	change, err := t.ChangeStatus(status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if change == nil {
		return nil, nil
	}

	if err := l.ticketRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	if err := l.audit(ctx, t, actor.ID, change.AuditMessage()); err != nil {
		return nil, err
	}
	return change, nil
}

func (l *lifecycle) assign(ctx context.Context, t *ticket.Ticket, assigneeID uint, actor access.Actor) error {
	if !access.CanAssignTickets(actor) {
		return errors.NewForbiddenError("only IT staff and administrators can assign tickets")
	}

	assignee, err := l.users.GetByID(ctx, assigneeID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError(fmt.Sprintf("user %d not found", assigneeID))
		}
		return err
	}

	decision, invalidAssignee := access.AssignDecision(actor, assignee.Role())
	if !decision.Allowed {
		if invalidAssignee {
			return errors.NewInvalidAssigneeError(decision.Reason)
		}
		return errors.NewForbiddenError(decision.Reason)
	}

	if err := t.AssignTo(assignee.ID()); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := l.ticketRepo.Update(ctx, t); err != nil {
		return err
	}
	return l.audit(ctx, t, actor.ID, ticket.AssignmentAuditMessage(assignee.Username()))
}

// translate maps a transaction error to what the caller returns.
func (l *lifecycle) translate(err error, msg string, keysAndValues ...interface{}) error {
	if err == nil {
		return nil
	}
	if errors.GetAppError(err) != nil {
		return err
	}
	var ae *auditError
	if stderrors.As(err, &ae) {
		l.logger.Errorw("failed to record audit comment", append(keysAndValues, "error", ae.err)...)
		return errors.NewInternalError("failed to record audit comment", "the change was rolled back")
	}
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
	return errors.NewInternalError(msg)
}

func ticketNotFound(id uint) error {
	return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", id))
}

// loadForUpdate locks the ticket and rewrites the repository's not-found
// error with the ticket id.
func loadForUpdate(ctx context.Context, repo ticket.TicketRepository, id uint) (*ticket.Ticket, error) {
	t, err := repo.GetByIDForUpdate(ctx, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, ticketNotFound(id)
		}
		return nil, err
	}
	return t, nil
}
