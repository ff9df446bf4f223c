package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/orris-inc/helpdesk/internal/shared/biztime"
)

const maxCommentLength = 5000

// Comment is an entry in a ticket's discussion. System comments are audit
// records written by lifecycle operations; no operation edits a comment.
type Comment struct {
	id              uint
	ticketID        uint
	authorID        uint
	content         string
	isSystemMessage bool
	createdAt       time.Time
}

// NewComment creates a comment typed by a user.
func NewComment(ticketID, authorID uint, content string) (*Comment, error) {
	return newComment(ticketID, authorID, content, false)
}

// NewSystemComment creates an audit entry attributed to the acting user.
func NewSystemComment(ticketID, actorID uint, content string) (*Comment, error) {
	return newComment(ticketID, actorID, content, true)
}

func newComment(ticketID, authorID uint, content string, system bool) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("comment content is required")
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return nil, fmt.Errorf("comment exceeds maximum length of %d characters", maxCommentLength)
	}

	return &Comment{
		ticketID:        ticketID,
		authorID:        authorID,
		content:         content,
		isSystemMessage: system,
		createdAt:       biztime.NowUTC(),
	}, nil
}

func ReconstructComment(id, ticketID, authorID uint, content string, isSystemMessage bool, createdAt time.Time) *Comment {
	return &Comment{
		id:              id,
		ticketID:        ticketID,
		authorID:        authorID,
		content:         content,
		isSystemMessage: isSystemMessage,
		createdAt:       createdAt,
	}
}

func (c *Comment) ID() uint              { return c.id }
func (c *Comment) TicketID() uint        { return c.ticketID }
func (c *Comment) AuthorID() uint        { return c.authorID }
func (c *Comment) Content() string       { return c.content }
func (c *Comment) IsSystemMessage() bool { return c.isSystemMessage }
func (c *Comment) CreatedAt() time.Time  { return c.createdAt }

// SetID sets the comment ID (only for persistence layer use)
func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	c.id = id
	return nil
}
