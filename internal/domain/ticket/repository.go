package ticket

import (
	"context"

	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	// GetByIDForUpdate locks the row for the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*Ticket, error)
	// Update writes the mutable state: details, status, assignee and timestamps.
	Update(ctx context.Context, ticket *Ticket) error
	// Delete removes the ticket and its comments.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	// Stats counts the tickets inside the visibility filter.
	Stats(ctx context.Context, visibility Visibility) (*Stats, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}

// TicketFilter narrows a listing. Visibility is always applied.
type TicketFilter struct {
	Visibility Visibility
	Status     *vo.TicketStatus
	Priority   *vo.Priority
	CreatorID  *uint
	Search     string
	Page       int
	PageSize   int
}

// Stats are the dashboard counters.
type Stats struct {
	Total      int64
	ByStatus   map[vo.TicketStatus]int64
	ByPriority map[vo.Priority]int64
}
