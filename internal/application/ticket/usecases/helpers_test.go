package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	"github.com/orris-inc/helpdesk/internal/domain/access"
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	ticketvo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	uservo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/services/markdown"
)

func newUser(t *testing.T, id uint, username string, role uservo.Role) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.ReconstructUser(user.UserSnapshot{
		ID:           id,
		Username:     username,
		Email:        username + "@corp.example",
		PasswordHash: "x",
		Role:         role.String(),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
	return u
}

func newTicket(t *testing.T, id, creatorID uint, assigneeID *uint) *ticket.Ticket {
	t.Helper()
	now := time.Now().UTC()
	tk, err := ticket.ReconstructTicket(ticket.TicketSnapshot{
		ID:          id,
		Title:       "Printer jam",
		Description: "The **third floor** printer is jammed",
		Status:      ticketvo.StatusOpen.String(),
		Priority:    ticketvo.PriorityMedium.String(),
		CreatorID:   creatorID,
		AssigneeID:  assigneeID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)
	return tk
}

func actorOf(u *user.User) access.Actor {
	return access.Actor{ID: u.ID(), Role: u.Role()}
}

func uintPtr(v uint) *uint { return &v }

func strPtr(s string) *string { return &s }

// world is the cast shared by most tests: an employee who files tickets,
// two IT staff members, HR and an administrator.
type world struct {
	employee, staff, otherStaff, hr, admin *user.User

	tickets  *mockTicketRepository
	comments *mockCommentRepository
	users    *mockUserLookup
	recorder *mockRecorder
	asm      *dto.Assembler
	log      logger.Interface
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		employee:   newUser(t, 1, "emma", uservo.RoleEmployee),
		staff:      newUser(t, 2, "sam", uservo.RoleITStaff),
		otherStaff: newUser(t, 3, "otto", uservo.RoleITStaff),
		hr:         newUser(t, 4, "hana", uservo.RoleHR),
		admin:      newUser(t, 5, "ada", uservo.RoleAdmin),
		tickets:    newMockTicketRepository(),
		comments:   &mockCommentRepository{},
		recorder:   &mockRecorder{},
		asm:        dto.NewAssembler(markdown.NewRenderer()),
		log:        logger.NewNopLogger(),
	}
	w.users = newMockUserLookup(w.employee, w.staff, w.otherStaff, w.hr, w.admin)
	return w
}

func (w *world) addTicket(t *testing.T, id uint, creator *user.User, assignee *user.User) *ticket.Ticket {
	t.Helper()
	var assigneeID *uint
	if assignee != nil {
		assigneeID = uintPtr(assignee.ID())
	}
	tk := newTicket(t, id, creator.ID(), assigneeID)
	w.tickets.tickets[id] = tk
	return tk
}

func (w *world) changeStatus() *ChangeStatusUseCase {
	return NewChangeStatusUseCase(w.tickets, w.comments, w.users, w.asm, w.recorder, mockTxManager{}, w.log)
}

func (w *world) assign() *AssignTicketUseCase {
	return NewAssignTicketUseCase(w.tickets, w.comments, w.users, w.asm, mockTxManager{}, w.log)
}

func (w *world) update() *UpdateTicketUseCase {
	return NewUpdateTicketUseCase(w.tickets, w.comments, w.users, w.asm, w.recorder, mockTxManager{}, w.log)
}
