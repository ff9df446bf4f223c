package mappers

import (
	"fmt"
	"time"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) *ticket.Comment
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		CreatorID:   t.CreatorID(),
		AssigneeID:  t.AssigneeID(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		ResolvedAt:  t.ResolvedAt(),
		ClosedAt:    t.ClosedAt(),
	}
}

// ToDomain converts only the ticket row. Comments are loaded separately.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	t, err := ticket.ReconstructTicket(ticket.TicketSnapshot{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Status:      model.Status,
		Priority:    model.Priority,
		CreatorID:   model.CreatorID,
		AssigneeID:  model.AssigneeID,
		CreatedAt:   model.CreatedAt.UTC(),
		UpdatedAt:   model.UpdatedAt.UTC(),
		ResolvedAt:  utcPtr(model.ResolvedAt),
		ClosedAt:    utcPtr(model.ClosedAt),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket (id=%d): %w", model.ID, err)
	}
	return t, nil
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:              c.ID(),
		TicketID:        c.TicketID(),
		AuthorID:        c.AuthorID(),
		Content:         c.Content(),
		IsSystemMessage: c.IsSystemMessage(),
		CreatedAt:       c.CreatedAt(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) *ticket.Comment {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Content,
		model.IsSystemMessage,
		model.CreatedAt.UTC(),
	)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
