package dto

import (
	"time"

	userdto "github.com/orris-inc/helpdesk/internal/application/user/dto"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/mapper"
	"github.com/orris-inc/helpdesk/internal/shared/services/markdown"
)

type TicketDTO struct {
	ID              uint                    `json:"id"`
	Title           string                  `json:"title"`
	Description     string                  `json:"description"`
	DescriptionHTML string                  `json:"description_html"`
	Status          string                  `json:"status"`
	StatusLabel     string                  `json:"status_label"`
	Priority        string                  `json:"priority"`
	PriorityLabel   string                  `json:"priority_label"`
	CreatedBy       *userdto.UserSummaryDTO `json:"created_by"`
	AssignedTo      *userdto.UserSummaryDTO `json:"assigned_to"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
	ResolvedAt      *time.Time              `json:"resolved_at"`
	ClosedAt        *time.Time              `json:"closed_at"`
	Comments        []*CommentDTO           `json:"comments,omitempty"`
}

type CommentDTO struct {
	ID              uint                    `json:"id"`
	Author          *userdto.UserSummaryDTO `json:"author"`
	Content         string                  `json:"content"`
	ContentHTML     string                  `json:"content_html"`
	IsSystemMessage bool                    `json:"is_system_message"`
	CreatedAt       time.Time               `json:"created_at"`
}

type DashboardDTO struct {
	Total         int64            `json:"total"`
	ByStatus      map[string]int64 `json:"by_status"`
	ByPriority    map[string]int64 `json:"by_priority"`
	RecentTickets []*TicketDTO     `json:"recent_tickets"`
}

// Assembler turns aggregates into response DTOs. Users are looked up in
// the map passed in; a missing entry renders as null.
type Assembler struct {
	renderer markdown.Renderer
}

func NewAssembler(renderer markdown.Renderer) *Assembler {
	return &Assembler{renderer: renderer}
}

func (a *Assembler) Ticket(t *ticket.Ticket, users map[uint]*user.User) *TicketDTO {
	if t == nil {
		return nil
	}
	out := &TicketDTO{
		ID:              t.ID(),
		Title:           t.Title(),
		Description:     t.Description(),
		DescriptionHTML: a.renderer.Render(t.Description()),
		Status:          t.Status().String(),
		StatusLabel:     t.Status().Label(),
		Priority:        t.Priority().String(),
		PriorityLabel:   t.Priority().Label(),
		CreatedBy:       userdto.ToUserSummaryDTO(users[t.CreatorID()]),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
		ResolvedAt:      t.ResolvedAt(),
		ClosedAt:        t.ClosedAt(),
	}
	if id := t.AssigneeID(); id != nil {
		out.AssignedTo = userdto.ToUserSummaryDTO(users[*id])
	}
	return out
}

func (a *Assembler) Tickets(tickets []*ticket.Ticket, users map[uint]*user.User) []*TicketDTO {
	return mapper.MapSlice(tickets, func(t *ticket.Ticket) *TicketDTO {
		return a.Ticket(t, users)
	})
}

// Comment renders system messages as plain text; they are generated, not
// written by users.
func (a *Assembler) Comment(c *ticket.Comment, users map[uint]*user.User) *CommentDTO {
	if c == nil {
		return nil
	}
	out := &CommentDTO{
		ID:              c.ID(),
		Author:          userdto.ToUserSummaryDTO(users[c.AuthorID()]),
		Content:         c.Content(),
		IsSystemMessage: c.IsSystemMessage(),
		CreatedAt:       c.CreatedAt(),
	}
	if !c.IsSystemMessage() {
		out.ContentHTML = a.renderer.Render(c.Content())
	}
	return out
}

func (a *Assembler) TicketWithComments(t *ticket.Ticket, comments []*ticket.Comment, users map[uint]*user.User) *TicketDTO {
	out := a.Ticket(t, users)
	if out == nil {
		return nil
	}
	out.Comments = mapper.MapSlice(comments, func(c *ticket.Comment) *CommentDTO {
		return a.Comment(c, users)
	})
	return out
}

// UserIDs collects every user referenced by the tickets and comments.
func UserIDs(tickets []*ticket.Ticket, comments []*ticket.Comment) []uint {
	seen := make(map[uint]struct{})
	var ids []uint
	add := func(id uint) {
		if _, ok := seen[id]; ok || id == 0 {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, t := range tickets {
		add(t.CreatorID())
		if id := t.AssigneeID(); id != nil {
			add(*id)
		}
	}
	for _, c := range comments {
		add(c.AuthorID())
	}
	return ids
}
