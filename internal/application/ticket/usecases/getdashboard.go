package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/access"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/constants"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type GetDashboardUseCase struct {
	ticketRepo ticket.TicketRepository
	users      UserLookup
	assembler  *dto.Assembler
	logger     logger.Interface
}

func NewGetDashboardUseCase(ticketRepo ticket.TicketRepository, users UserLookup, assembler *dto.Assembler, logger logger.Interface) *GetDashboardUseCase {
	return &GetDashboardUseCase{ticketRepo: ticketRepo, users: users, assembler: assembler, logger: logger}
}

// Execute counts the tickets the actor can see. Every status and priority
// appears in the maps, zero counts included.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, actor access.Actor) (*dto.DashboardDTO, error) {
	visibility := access.VisibleTickets(actor)

	stats, err := uc.ticketRepo.Stats(ctx, visibility)
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to load ticket stats", err, "actor_id", actor.ID)
	}

	recent, _, err := uc.ticketRepo.List(ctx, ticket.TicketFilter{
		Visibility: visibility,
		Page:       1,
		PageSize:   constants.RecentTicketsLimit,
	})
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to list recent tickets", err, "actor_id", actor.ID)
	}

	users, err := loadUsers(ctx, uc.users, recent, nil)
	if err != nil {
		return nil, internalOrAppError(uc.logger, "failed to load ticket users", err)
	}

	out := &dto.DashboardDTO{
		Total:         stats.Total,
		ByStatus:      make(map[string]int64, len(vo.AllStatuses())),
		ByPriority:    make(map[string]int64, len(vo.AllPriorities())),
		RecentTickets: uc.assembler.Tickets(recent, users),
	}
	for _, s := range vo.AllStatuses() {
		out.ByStatus[s.String()] = stats.ByStatus[s]
	}
	for _, p := range vo.AllPriorities() {
		out.ByPriority[p.String()] = stats.ByPriority[p]
	}
	return out, nil
}
