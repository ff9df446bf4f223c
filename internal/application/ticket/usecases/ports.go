package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/domain/user"
)

// Recorder receives ticket workflow counters.
type Recorder interface {
	TicketCreated(priority string)
	TicketStatusChanged(from, to string)
}

// UserLookup is the slice of the identity store tickets need.
type UserLookup interface {
	GetByID(ctx context.Context, id uint) (*user.User, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error)
}

func loadUsers(ctx context.Context, users UserLookup, tickets []*ticket.Ticket, comments []*ticket.Comment) (map[uint]*user.User, error) {
	ids := dto.UserIDs(tickets, comments)
	out := make(map[uint]*user.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	found, err := users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, u := range found {
		out[u.ID()] = u
	}
	return out, nil
}
