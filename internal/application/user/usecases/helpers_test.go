package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/access"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	vo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
)

func existingUser(t *testing.T, id uint, username string, role vo.Role, active bool) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.ReconstructUser(user.UserSnapshot{
		ID:           id,
		Username:     username,
		Email:        username + "@corp.example",
		PasswordHash: "h:password-123",
		Role:         role.String(),
		Active:       active,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
	return u
}

func actorOf(u *user.User) access.Actor {
	return access.Actor{ID: u.ID(), Role: u.Role()}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
