package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	ticketvo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	uservo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
)

var (
	employee = Actor{ID: 1, Role: uservo.RoleEmployee}
	staff    = Actor{ID: 2, Role: uservo.RoleITStaff}
	hr       = Actor{ID: 3, Role: uservo.RoleHR}
	admin    = Actor{ID: 4, Role: uservo.RoleAdmin}
)

func newTicket(t *testing.T, creatorID uint, assigneeID uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket("Laptop", "Battery swollen", ticketvo.PriorityHigh, creatorID)
	require.NoError(t, err)
	if assigneeID != 0 {
		require.NoError(t, tk.AssignTo(assigneeID))
	}
	return tk
}

func TestVisibleTickets_Listing(t *testing.T) {
	others := newTicket(t, 9, 0)
	assignedAway := newTicket(t, 9, 8)
	assignedToStaff := newTicket(t, 9, staff.ID)
	ownedByEmployee := newTicket(t, employee.ID, 0)

	tests := []struct {
		name   string
		actor  Actor
		ticket *ticket.Ticket
		want   bool
	}{
		{"admin sees everything", admin, assignedAway, true},
		{"staff sees unassigned", staff, others, true},
		{"staff sees own assignment", staff, assignedToStaff, true},
		{"staff does not list others' assignment", staff, assignedAway, false},
		{"employee sees own", employee, ownedByEmployee, true},
		{"employee never sees foreign unassigned", employee, others, false},
		{"hr sees only own", hr, others, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VisibleTickets(tt.actor).Includes(tt.ticket))
		})
	}
}

func TestCanViewTicket(t *testing.T) {
	assignedAway := newTicket(t, 9, 8)
	own := newTicket(t, employee.ID, 0)

	assert.True(t, CanViewTicket(staff, assignedAway), "staff may open any ticket by ID")
	assert.True(t, CanViewTicket(admin, assignedAway))
	assert.True(t, CanViewTicket(employee, own))
	assert.False(t, CanViewTicket(employee, assignedAway))
	assert.False(t, CanViewTicket(hr, assignedAway))
}

func TestCanChangeStatus(t *testing.T) {
	assert.False(t, CanChangeStatus(employee))
	assert.False(t, CanChangeStatus(hr))
	assert.True(t, CanChangeStatus(staff))
	assert.True(t, CanChangeStatus(admin))
}

func TestCanAssignTickets(t *testing.T) {
	assert.False(t, CanAssignTickets(employee))
	assert.False(t, CanAssignTickets(hr))
	assert.True(t, CanAssignTickets(staff))
	assert.True(t, CanAssignTickets(admin))

	// an actor who cannot assign is refused for every assignee role
	for _, target := range []uservo.Role{uservo.RoleEmployee, uservo.RoleITStaff, uservo.RoleHR, uservo.RoleAdmin} {
		assert.False(t, CanAssign(hr, target))
	}
}

func TestAssign_NonSupportTargetsAreInvalid(t *testing.T) {
	for _, target := range []uservo.Role{uservo.RoleEmployee, uservo.RoleHR} {
		d, invalid := AssignDecision(staff, target)
		assert.False(t, d.Allowed)
		assert.True(t, invalid)
		assert.False(t, CanAssign(admin, target))
	}

	d, invalid := AssignDecision(employee, uservo.RoleITStaff)
	assert.False(t, d.Allowed)
	assert.False(t, invalid)

	d, _ = AssignDecision(admin, uservo.RoleITStaff)
	assert.True(t, d.Allowed)
	assert.True(t, CanAssign(staff, uservo.RoleAdmin))
}

func TestCanComment(t *testing.T) {
	tk := newTicket(t, employee.ID, 0)

	assert.True(t, CanComment(employee, tk))
	assert.True(t, CanComment(staff, tk))
	assert.True(t, CanComment(admin, tk))
	assert.False(t, CanComment(hr, tk))
	assert.False(t, CanComment(Actor{ID: 77, Role: uservo.RoleEmployee}, tk))
}

func TestCanEditTicket(t *testing.T) {
	tk := newTicket(t, employee.ID, 0)
	assert.True(t, CanEditTicket(employee, tk))
	assert.True(t, CanEditTicket(staff, tk))
	assert.False(t, CanEditTicket(hr, tk))

	away := newTicket(t, 9, 8)
	assert.True(t, CanEditTicket(staff, away))
	assert.True(t, CanEditTicket(admin, away))
	assert.False(t, CanEditTicket(employee, away))
}

func TestCanDeleteTicket(t *testing.T) {
	assert.True(t, CanDeleteTicket(admin))
	assert.False(t, CanDeleteTicket(staff))
	assert.False(t, CanDeleteTicket(hr))
}

func TestCanEditTarget(t *testing.T) {
	adminTarget := Target{ID: 50, Role: uservo.RoleAdmin}
	employeeTarget := Target{ID: 51, Role: uservo.RoleEmployee}

	d := CanEditTarget(hr, adminTarget)
	assert.False(t, d.Allowed)
	assert.NotEmpty(t, d.Reason)

	assert.True(t, CanEditTarget(hr, employeeTarget).Allowed)
	assert.True(t, CanEditTarget(admin, adminTarget).Allowed)
	assert.False(t, CanEditTarget(staff, employeeTarget).Allowed)

	assert.True(t, CanEditPrivileged(admin))
	assert.False(t, CanEditPrivileged(hr))
}

func TestCanDeleteUser(t *testing.T) {
	assert.False(t, CanDeleteUser(admin, Target{ID: admin.ID, Role: uservo.RoleAdmin}).Allowed)
	assert.False(t, CanDeleteUser(hr, Target{ID: 9, Role: uservo.RoleAdmin}).Allowed)
	assert.True(t, CanDeleteUser(hr, Target{ID: 9, Role: uservo.RoleITStaff}).Allowed)
	assert.True(t, CanDeleteUser(admin, Target{ID: 9, Role: uservo.RoleAdmin}).Allowed)
	assert.False(t, CanDeleteUser(staff, Target{ID: 9, Role: uservo.RoleEmployee}).Allowed)
}
