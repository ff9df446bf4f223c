package ticket

// VisibilityKind selects which tickets a listing may return.
type VisibilityKind int

const (
	// VisibleAll returns every ticket.
	VisibleAll VisibilityKind = iota
	// VisibleToStaff returns tickets assigned to the actor, unassigned
	// tickets, and tickets the actor created.
	VisibleToStaff
	// VisibleOwn returns tickets the actor created.
	VisibleOwn
)

// Visibility is a row filter for ticket queries, computed by the access policy.
type Visibility struct {
	Kind    VisibilityKind
	ActorID uint
}

// Includes evaluates the filter against a single ticket. Repositories
// translate the same predicate to SQL.
func (v Visibility) Includes(t *Ticket) bool {
	switch v.Kind {
	case VisibleAll:
		return true
	case VisibleToStaff:
		return t.IsUnassigned() || t.IsAssignedTo(v.ActorID) || t.IsCreatedBy(v.ActorID)
	default:
		return t.IsCreatedBy(v.ActorID)
	}
}
