package user

import (
	"context"
	"fmt"
	"time"

	"github.com/orris-inc/helpdesk/internal/shared/biztime"
	"github.com/orris-inc/helpdesk/internal/shared/id"
)

// Session is a server-side login. Access tokens name their session; deleting
// the row revokes every token issued for it.
type Session struct {
	ID        string
	UserID    uint
	IPAddress string
	UserAgent string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func NewSession(userID uint, ipAddress, userAgent string, ttl time.Duration) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}

	now := biztime.NowUTC()
	return &Session{
		ID:        id.NewAt(now),
		UserID:    userID,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}, nil
}

func (s *Session) IsExpired() bool {
	return biztime.NowUTC().After(s.ExpiresAt)
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
	DeleteByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
