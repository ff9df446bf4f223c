package usecases

import (
	"context"
	"sort"
	"strings"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	apperrors "github.com/orris-inc/helpdesk/internal/shared/errors"
)

type mockTicketRepository struct {
	tickets map[uint]*ticket.Ticket
	nextID  uint

	UpdateFunc func(ctx context.Context, t *ticket.Ticket) error

	updates int
	deleted []uint
}

func newMockTicketRepository(tickets ...*ticket.Ticket) *mockTicketRepository {
	m := &mockTicketRepository{tickets: make(map[uint]*ticket.Ticket), nextID: 500}
	for _, t := range tickets {
		m.tickets[t.ID()] = t
	}
	return m
}

func (m *mockTicketRepository) Create(_ context.Context, t *ticket.Ticket) error {
	m.nextID++
	if err := t.SetID(m.nextID); err != nil {
		return err
	}
	m.tickets[t.ID()] = t
	return nil
}

func (m *mockTicketRepository) GetByID(_ context.Context, id uint) (*ticket.Ticket, error) {
	if t, ok := m.tickets[id]; ok {
		return t, nil
	}
	return nil, apperrors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepository) GetByIDForUpdate(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return m.GetByID(ctx, id)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	m.updates++
	return nil
}

func (m *mockTicketRepository) Delete(_ context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	delete(m.tickets, id)
	return nil
}

func (m *mockTicketRepository) visible(filter ticket.TicketFilter) []*ticket.Ticket {
	var out []*ticket.Ticket
	for _, t := range m.tickets {
		if !filter.Visibility.Includes(t) {
			continue
		}
		if filter.Status != nil && t.Status() != *filter.Status {
			continue
		}
		if filter.Priority != nil && t.Priority() != *filter.Priority {
			continue
		}
		if s := strings.ToLower(filter.Search); s != "" &&
			!strings.Contains(strings.ToLower(t.Title()), s) &&
			!strings.Contains(strings.ToLower(t.Description()), s) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() > out[j].ID() })
	return out
}

func (m *mockTicketRepository) List(_ context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	all := m.visible(filter)
	total := int64(len(all))
	start := (filter.Page - 1) * filter.PageSize
	if start > len(all) {
		start = len(all)
	}
	end := start + filter.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (m *mockTicketRepository) Stats(_ context.Context, visibility ticket.Visibility) (*ticket.Stats, error) {
	stats := &ticket.Stats{
		ByStatus:   make(map[vo.TicketStatus]int64),
		ByPriority: make(map[vo.Priority]int64),
	}
	for _, t := range m.visible(ticket.TicketFilter{Visibility: visibility}) {
		stats.Total++
		stats.ByStatus[t.Status()]++
		stats.ByPriority[t.Priority()]++
	}
	return stats, nil
}

type mockCommentRepository struct {
	comments []*ticket.Comment

	CreateFunc func(ctx context.Context, c *ticket.Comment) error
}

func (m *mockCommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	if err := c.SetID(uint(len(m.comments) + 1)); err != nil {
		return err
	}
	m.comments = append(m.comments, c)
	return nil
}

func (m *mockCommentRepository) ListByTicketID(_ context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var out []*ticket.Comment
	for _, c := range m.comments {
		if c.TicketID() == ticketID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCommentRepository) systemMessages() []string {
	var out []string
	for _, c := range m.comments {
		if c.IsSystemMessage() {
			out = append(out, c.Content())
		}
	}
	return out
}

type mockUserLookup struct {
	users map[uint]*user.User
}

func newMockUserLookup(users ...*user.User) *mockUserLookup {
	m := &mockUserLookup{users: make(map[uint]*user.User)}
	for _, u := range users {
		m.users[u.ID()] = u
	}
	return m
}

func (m *mockUserLookup) GetByID(_ context.Context, id uint) (*user.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (m *mockUserLookup) GetByIDs(_ context.Context, ids []uint) ([]*user.User, error) {
	var out []*user.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

type statusTransition struct{ from, to string }

type mockRecorder struct {
	created     []string
	transitions []statusTransition
}

func (m *mockRecorder) TicketCreated(priority string) { m.created = append(m.created, priority) }

func (m *mockRecorder) TicketStatusChanged(from, to string) {
	m.transitions = append(m.transitions, statusTransition{from: from, to: to})
}

type mockTxManager struct{}

func (mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
