// Package verification models the single pending email verification a user
// may hold.
package verification

import (
	"fmt"
	"time"
)

// DefaultTTL is how long a token stays valid after issue.
const DefaultTTL = 24 * time.Hour

// EmailVerification binds one token to one user. A user has at most one row;
// issuing again replaces it.
type EmailVerification struct {
	id        uint
	userID    uint
	tokenHash string
	createdAt time.Time
}

func NewEmailVerification(userID uint, token *Token, createdAt time.Time) (*EmailVerification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if token == nil {
		return nil, fmt.Errorf("token is required")
	}
	return &EmailVerification{
		userID:    userID,
		tokenHash: token.Hash(),
		createdAt: createdAt.UTC(),
	}, nil
}

func ReconstructEmailVerification(id, userID uint, tokenHash string, createdAt time.Time) *EmailVerification {
	return &EmailVerification{
		id:        id,
		userID:    userID,
		tokenHash: tokenHash,
		createdAt: createdAt,
	}
}

func (v *EmailVerification) ID() uint             { return v.id }
func (v *EmailVerification) UserID() uint         { return v.userID }
func (v *EmailVerification) TokenHash() string    { return v.tokenHash }
func (v *EmailVerification) CreatedAt() time.Time { return v.createdAt }

// ExpiresAt is created_at + ttl.
func (v *EmailVerification) ExpiresAt(ttl time.Duration) time.Time {
	return v.createdAt.Add(ttl)
}

// IsExpired reports now > expires_at. The instant of expiry itself is valid.
func (v *EmailVerification) IsExpired(now time.Time, ttl time.Duration) bool {
	return now.After(v.ExpiresAt(ttl))
}

// SetID sets the ID (only for persistence layer use)
func (v *EmailVerification) SetID(id uint) error {
	if v.id != 0 {
		return fmt.Errorf("verification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("verification ID cannot be zero")
	}
	v.id = id
	return nil
}
