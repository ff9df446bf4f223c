package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/orris-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

// Ticket is a support request. Its creator never changes; resolvedAt and
// closedAt are stamped the first time the ticket enters that state and are
// kept when it later moves elsewhere.
type Ticket struct {
	id          uint
	title       string
	description string
	status      vo.TicketStatus
	priority    vo.Priority
	creatorID   uint
	assigneeID  *uint
	createdAt   time.Time
	updatedAt   time.Time
	resolvedAt  *time.Time
	closedAt    *time.Time
}

// NewTicket opens a ticket owned by creatorID. It starts unassigned.
func NewTicket(title, description string, priority vo.Priority, creatorID uint) (*Ticket, error) {
	title, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}
	description, err = normalizeDescription(description)
	if err != nil {
		return nil, err
	}
	if priority == "" {
		priority = vo.DefaultPriority
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		title:       title,
		description: description,
		status:      vo.StatusOpen,
		priority:    priority,
		creatorID:   creatorID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// TicketSnapshot carries persisted state into ReconstructTicket.
type TicketSnapshot struct {
	ID          uint
	Title       string
	Description string
	Status      string
	Priority    string
	CreatorID   uint
	AssigneeID  *uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ResolvedAt  *time.Time
	ClosedAt    *time.Time
}

func ReconstructTicket(s TicketSnapshot) (*Ticket, error) {
	if s.ID == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	status, err := vo.NewTicketStatus(s.Status)
	if err != nil {
		return nil, err
	}
	priority, err := vo.NewPriority(s.Priority)
	if err != nil {
		return nil, err
	}
	if s.CreatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Ticket{
		id:          s.ID,
		title:       s.Title,
		description: s.Description,
		status:      status,
		priority:    priority,
		creatorID:   s.CreatorID,
		assigneeID:  s.AssigneeID,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
		resolvedAt:  s.ResolvedAt,
		closedAt:    s.ClosedAt,
	}, nil
}

func (t *Ticket) ID() uint                  { return t.id }
func (t *Ticket) Title() string             { return t.title }
func (t *Ticket) Description() string       { return t.description }
func (t *Ticket) Status() vo.TicketStatus   { return t.status }
func (t *Ticket) Priority() vo.Priority     { return t.priority }
func (t *Ticket) CreatorID() uint           { return t.creatorID }
func (t *Ticket) AssigneeID() *uint         { return t.assigneeID }
func (t *Ticket) CreatedAt() time.Time      { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time      { return t.updatedAt }
func (t *Ticket) ResolvedAt() *time.Time    { return t.resolvedAt }
func (t *Ticket) ClosedAt() *time.Time      { return t.closedAt }
func (t *Ticket) IsUnassigned() bool        { return t.assigneeID == nil }
func (t *Ticket) IsCreatedBy(uid uint) bool { return t.creatorID == uid }

func (t *Ticket) IsAssignedTo(userID uint) bool {
	return t.assigneeID != nil && *t.assigneeID == userID
}

// SetID sets the ticket ID (only for persistence layer use)
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// StatusChange describes an applied transition.
type StatusChange struct {
	From vo.TicketStatus
	To   vo.TicketStatus
}

// AuditMessage is the system comment recorded for the transition.
func (c StatusChange) AuditMessage() string {
	return fmt.Sprintf("Status changed from %s to %s", c.From.Label(), c.To.Label())
}

// ChangeStatus moves the ticket to newStatus. Moving to the current status
// is a no-op and returns nil.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) (*StatusChange, error) {
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("invalid ticket status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil, nil
	}

	now := biztime.NowUTC()
	change := &StatusChange{From: t.status, To: newStatus}
	t.status = newStatus

	switch newStatus {
	case vo.StatusResolved:
		if t.resolvedAt == nil {
			t.resolvedAt = &now
		}
	case vo.StatusClosed:
		if t.closedAt == nil {
			t.closedAt = &now
		}
	}

	t.updatedAt = now
	return change, nil
}

// AssignTo records the assignee. Eligibility of the assignee is checked by
// the caller against the access policy.
func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID is required")
	}
	id := assigneeID
	t.assigneeID = &id
	t.updatedAt = biztime.NowUTC()
	return nil
}

// AssignmentAuditMessage is the system comment recorded for an assignment.
func AssignmentAuditMessage(assigneeUsername string) string {
	return "Ticket assigned to " + assigneeUsername
}

// DetailChanges lists optional edits of the descriptive fields.
type DetailChanges struct {
	Title       *string
	Description *string
	Priority    *vo.Priority
}

// UpdateDetails applies the non-nil fields. It reports whether anything changed.
func (t *Ticket) UpdateDetails(c DetailChanges) (bool, error) {
	title, description, priority := t.title, t.description, t.priority

	var err error
	if c.Title != nil {
		if title, err = normalizeTitle(*c.Title); err != nil {
			return false, err
		}
	}
	if c.Description != nil {
		if description, err = normalizeDescription(*c.Description); err != nil {
			return false, err
		}
	}
	if c.Priority != nil {
		if !c.Priority.IsValid() {
			return false, fmt.Errorf("invalid priority: %s", *c.Priority)
		}
		priority = *c.Priority
	}

	if title == t.title && description == t.description && priority == t.priority {
		return false, nil
	}

	t.title, t.description, t.priority = title, description, priority
	t.updatedAt = biztime.NowUTC()
	return true, nil
}

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	return title, nil
}

func normalizeDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", fmt.Errorf("description is required")
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return "", fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	return description, nil
}
