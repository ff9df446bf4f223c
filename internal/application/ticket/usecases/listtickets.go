package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/access"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

type ListTicketsQuery struct {
	Actor    access.Actor
	Status   string
	Priority string
	Search   string
	Page     int
	PageSize int
}

type ListTicketsResult struct {
	Tickets  []*dto.TicketDTO `json:"tickets"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	users      UserLookup
	assembler  *dto.Assembler
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, users UserLookup, assembler *dto.Assembler, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, users: users, assembler: assembler, logger: logger}
}

// Execute lists the tickets visible to the actor, newest first.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	p := utils.NormalizePagination(query.Page, query.PageSize)
	filter := ticket.TicketFilter{
		Visibility: access.VisibleTickets(query.Actor),
		Search:     query.Search,
		Page:       p.Page,
		PageSize:   p.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status filter", err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority filter", err.Error())
		}
		filter.Priority = &priority
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to list tickets", err, "actor_id", query.Actor.ID)
	}

	users, err := loadUsers(ctx, uc.users, tickets, nil)
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to load ticket users", err)
	}

	return &ListTicketsResult{
		Tickets:  uc.assembler.Tickets(tickets, users),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
