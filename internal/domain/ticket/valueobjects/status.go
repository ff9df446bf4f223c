package valueobjects

import "fmt"

// TicketStatus is a workflow state. Every state may move to every other one;
// who may move it is decided by the access policy, not here.
type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

var statusLabels = map[TicketStatus]string{
	StatusOpen:       "Open",
	StatusInProgress: "In Progress",
	StatusResolved:   "Resolved",
	StatusClosed:     "Closed",
}

// AllStatuses lists statuses in workflow order.
func AllStatuses() []TicketStatus {
	return []TicketStatus{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	_, ok := statusLabels[ts]
	return ok
}

// Label is the human readable form used in audit comments.
func (ts TicketStatus) Label() string {
	if l, ok := statusLabels[ts]; ok {
		return l
	}
	return string(ts)
}
