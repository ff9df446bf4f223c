// Package access holds the authorization rules for tickets and accounts.
// Every function is total: a denial is a return value, never a panic or error.
package access

import (
	"github.com/orris-inc/helpdesk/internal/domain/ticket"
	uservo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
)

// Actor is the authenticated caller.
type Actor struct {
	ID   uint
	Role uservo.Role
}

// Target is the account an actor wants to edit or delete.
type Target struct {
	ID   uint
	Role uservo.Role
}

// Decision is a denial-aware answer. Reason is empty when Allowed.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision { return Decision{Allowed: true} }

func deny(reason string) Decision { return Decision{Reason: reason} }

// VisibleTickets returns the row filter for ticket listings.
func VisibleTickets(actor Actor) ticket.Visibility {
	switch actor.Role {
	case uservo.RoleAdmin:
		return ticket.Visibility{Kind: ticket.VisibleAll, ActorID: actor.ID}
	case uservo.RoleITStaff:
		return ticket.Visibility{Kind: ticket.VisibleToStaff, ActorID: actor.ID}
	default:
		return ticket.Visibility{Kind: ticket.VisibleOwn, ActorID: actor.ID}
	}
}

// CanViewTicket gates the detail view. It is wider than the listing filter:
// any IT staff member may open any ticket by ID.
func CanViewTicket(actor Actor, t *ticket.Ticket) bool {
	return actor.Role.IsSupportStaff() || t.IsCreatedBy(actor.ID)
}

func CanChangeStatus(actor Actor) bool {
	return actor.Role.IsSupportStaff()
}

// CanAssignTickets reports whether actor may assign tickets at all, before
// the assignee is known.
func CanAssignTickets(actor Actor) bool {
	return actor.Role.IsSupportStaff()
}

// CanAssign reports whether actor may hand a ticket to someone with
// assigneeRole. Use AssignDecision to tell the two failure causes apart.
func CanAssign(actor Actor, assigneeRole uservo.Role) bool {
	return CanAssignTickets(actor) && assigneeRole.IsSupportStaff()
}

// AssignDecision separates an unauthorized actor from an ineligible assignee.
// InvalidAssignee is true only when the actor is allowed to assign at all.
func AssignDecision(actor Actor, assigneeRole uservo.Role) (d Decision, invalidAssignee bool) {
	if !CanAssignTickets(actor) {
		return deny("only IT staff and administrators can assign tickets"), false
	}
	if !assigneeRole.IsSupportStaff() {
		return deny("tickets can only be assigned to IT staff or administrators"), true
	}
	return allow(), false
}

func CanComment(actor Actor, t *ticket.Ticket) bool {
	return actor.Role.IsSupportStaff() || t.IsCreatedBy(actor.ID)
}

// CanEditTicket covers title, description and priority. Staff may edit any
// ticket, everyone else only tickets they created.
func CanEditTicket(actor Actor, t *ticket.Ticket) bool {
	return actor.Role.IsSupportStaff() || t.IsCreatedBy(actor.ID)
}

func CanDeleteTicket(actor Actor) bool {
	return actor.Role.IsAdmin()
}

func CanManageEmployees(actor Actor) bool {
	return actor.Role.IsHR() || actor.Role.IsAdmin()
}

// CanEditTarget decides profile edits made through employee management.
// HR may edit anyone except administrators; administrators may edit anyone.
func CanEditTarget(actor Actor, target Target) Decision {
	switch {
	case actor.Role.IsAdmin():
		return allow()
	case actor.Role.IsHR():
		if target.Role.IsAdmin() {
			return deny("HR cannot edit administrator accounts")
		}
		return allow()
	default:
		return deny("only HR and administrators can manage employees")
	}
}

// CanEditPrivileged gates changes to role and active flag.
func CanEditPrivileged(actor Actor) bool {
	return actor.Role.IsAdmin()
}

// CanDeleteUser excludes self-deletion and HR deleting administrators.
func CanDeleteUser(actor Actor, target Target) Decision {
	if !CanManageEmployees(actor) {
		return deny("only HR and administrators can delete users")
	}
	if actor.ID == target.ID {
		return deny("you cannot delete your own account")
	}
	if actor.Role.IsHR() && target.Role.IsAdmin() {
		return deny("HR cannot delete administrator accounts")
	}
	return allow()
}
