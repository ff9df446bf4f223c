package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	ticketvo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

func TestChangeStatus_RecordsAuditComment(t *testing.T) {
	w := newWorld(t)
	w.addTicket(t, 10, w.employee, nil)

	got, err := w.changeStatus().Execute(context.Background(), ChangeStatusCommand{
		Actor:    actorOf(w.staff),
		TicketID: 10,
		Status:   "in_progress",
	})
	require.NoError(t, err)

	assert.Equal(t, "in_progress", got.Status)
	assert.Equal(t, "In Progress", got.StatusLabel)
	assert.Equal(t, 1, w.tickets.updates)
	assert.Equal(t, []string{"Status changed from Open to In Progress"}, w.comments.systemMessages())
	assert.Equal(t, []statusTransition{{from: "open", to: "in_progress"}}, w.recorder.transitions)
}

func TestChangeStatus_SameStatusIsNoop(t *testing.T) {
	w := newWorld(t)
	w.addTicket(t, 10, w.employee, nil)

	got, err := w.changeStatus().Execute(context.Background(), ChangeStatusCommand{
		Actor:    actorOf(w.admin),
		TicketID: 10,
		Status:   "open",
	})
	require.NoError(t, err)

	assert.Equal(t, "open", got.Status)
	assert.Zero(t, w.tickets.updates)
	assert.Empty(t, w.comments.comments)
	assert.Empty(t, w.recorder.transitions)
}

func TestChangeStatus_StampsResolvedAndClosedOnce(t *testing.T) {
	w := newWorld(t)
	tk := w.addTicket(t, 10, w.employee, nil)
	uc := w.changeStatus()
	ctx := context.Background()
	actor := actorOf(w.staff)

	_, err := uc.Execute(ctx, ChangeStatusCommand{Actor: actor, TicketID: 10, Status: "resolved"})
	require.NoError(t, err)
	require.NotNil(t, tk.ResolvedAt())
	firstResolved := *tk.ResolvedAt()

	_, err = uc.Execute(ctx, ChangeStatusCommand{Actor: actor, TicketID: 10, Status: "open"})
	require.NoError(t, err)
	_, err = uc.Execute(ctx, ChangeStatusCommand{Actor: actor, TicketID: 10, Status: "resolved"})
	require.NoError(t, err)
	assert.Equal(t, firstResolved, *tk.ResolvedAt(), "resolved_at is stamped only the first time")

	_, err = uc.Execute(ctx, ChangeStatusCommand{Actor: actor, TicketID: 10, Status: "closed"})
	require.NoError(t, err)
	assert.NotNil(t, tk.ClosedAt())
	assert.Len(t, w.comments.systemMessages(), 4)
}

func TestChangeStatus_Denied(t *testing.T) {
	w := newWorld(t)
	tk := w.addTicket(t, 10, w.employee, nil)

	for name, u := range map[string]*user.User{"employee": w.employee, "hr": w.hr} {
		t.Run(name, func(t *testing.T) {
			_, err := w.changeStatus().Execute(context.Background(), ChangeStatusCommand{
				Actor:    actorOf(u),
				TicketID: 10,
				Status:   "closed",
			})
			assert.True(t, errors.IsForbiddenError(err))
		})
	}

	assert.Equal(t, ticketvo.StatusOpen, tk.Status())
	assert.Empty(t, w.comments.comments)
}

func TestChangeStatus_InvalidStatusAndMissingTicket(t *testing.T) {
	w := newWorld(t)
	w.addTicket(t, 10, w.employee, nil)
	uc := w.changeStatus()

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{Actor: actorOf(w.staff), TicketID: 10, Status: "archived"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), ChangeStatusCommand{Actor: actorOf(w.staff), TicketID: 99, Status: "closed"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestChangeStatus_AuditFailureIsReported(t *testing.T) {
	w := newWorld(t)
	w.addTicket(t, 10, w.employee, nil)
	w.comments.CreateFunc = func(context.Context, *ticket.Comment) error {
		return stderrors.New("disk full")
	}

	_, err := w.changeStatus().Execute(context.Background(), ChangeStatusCommand{
		Actor:    actorOf(w.staff),
		TicketID: 10,
		Status:   "closed",
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
	assert.Equal(t, "failed to record audit comment", appErr.Message)
	assert.Empty(t, w.recorder.transitions)
}

func TestAssign_Succeeds(t *testing.T) {
	w := newWorld(t)
	tk := w.addTicket(t, 10, w.employee, nil)

	got, err := w.assign().Execute(context.Background(), AssignTicketCommand{
		Actor:      actorOf(w.staff),
		TicketID:   10,
		AssigneeID: w.otherStaff.ID(),
	})
	require.NoError(t, err)

	assert.True(t, tk.IsAssignedTo(w.otherStaff.ID()))
	require.NotNil(t, got.AssignedTo)
	assert.Equal(t, "otto", got.AssignedTo.Username)
	assert.Equal(t, []string{"Ticket assigned to otto"}, w.comments.systemMessages())
}

func TestAssign_Failures(t *testing.T) {
	tests := []struct {
		name     string
		actor    func(w *world) uint
		assignee func(w *world) uint
		check    func(error) bool
	}{
		{
			name:     "employee cannot assign",
			actor:    func(w *world) uint { return w.employee.ID() },
			assignee: func(w *world) uint { return w.staff.ID() },
			check:    errors.IsForbiddenError,
		},
		{
			name:     "hr cannot assign",
			actor:    func(w *world) uint { return w.hr.ID() },
			assignee: func(w *world) uint { return w.staff.ID() },
			check:    errors.IsForbiddenError,
		},
		{
			name:     "employee is not a valid assignee",
			actor:    func(w *world) uint { return w.staff.ID() },
			assignee: func(w *world) uint { return w.employee.ID() },
			check:    errors.IsInvalidAssigneeError,
		},
		{
			name:     "hr is not a valid assignee",
			actor:    func(w *world) uint { return w.admin.ID() },
			assignee: func(w *world) uint { return w.hr.ID() },
			check:    errors.IsInvalidAssigneeError,
		},
		{
			name:     "unknown assignee",
			actor:    func(w *world) uint { return w.staff.ID() },
			assignee: func(w *world) uint { return 404 },
			check:    errors.IsNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t)
			tk := w.addTicket(t, 10, w.employee, nil)
			actor, _ := w.users.GetByID(context.Background(), tt.actor(w))

			_, err := w.assign().Execute(context.Background(), AssignTicketCommand{
				Actor:      actorOf(actor),
				TicketID:   10,
				AssigneeID: tt.assignee(w),
			})
			assert.True(t, tt.check(err), "unexpected error: %v", err)
			assert.True(t, tk.IsUnassigned())
			assert.Empty(t, w.comments.comments)
		})
	}
}
