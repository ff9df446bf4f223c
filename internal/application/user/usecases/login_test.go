package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
	apperrors "github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

func TestLoginUseCase(t *testing.T) {
	active := existingUser(t, 1, "alice", vo.RoleITStaff, true)
	pending := existingUser(t, 2, "bob", vo.RoleEmployee, false)

	tests := []struct {
		name     string
		username string
		password string
		check    func(t *testing.T, err error)
	}{
		{"unknown user", "nobody", "password-123", func(t *testing.T, err error) {
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
		}},
		{"wrong password", "alice", "wrong-pass-9", func(t *testing.T, err error) {
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
		}},
		{"inactive wrong password hides state", "bob", "wrong-pass-9", func(t *testing.T, err error) {
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
		}},
		{"inactive is forbidden", "bob", "password-123", func(t *testing.T, err error) {
			require.True(t, apperrors.IsForbiddenError(err))
			assert.Equal(t, "email not verified", apperrors.GetAppError(err).Message)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := newMockSessionRepository()
			uc := NewLoginUseCase(newMockUserRepository(active, pending), sessions, plainHasher{}, fakeTokens{ttl: time.Hour}, logger.NewNopLogger())

			_, err := uc.Execute(context.Background(), LoginCommand{Username: tt.username, Password: tt.password})
			tt.check(t, err)
			assert.Empty(t, sessions.sessions)
		})
	}
}

func TestLoginUseCase_CreatesSession(t *testing.T) {
	active := existingUser(t, 1, "alice", vo.RoleITStaff, true)
	sessions := newMockSessionRepository()
	uc := NewLoginUseCase(newMockUserRepository(active), sessions, plainHasher{}, fakeTokens{ttl: time.Hour}, logger.NewNopLogger())

	res, err := uc.Execute(context.Background(), LoginCommand{
		Username:  "alice",
		Password:  "password-123",
		IPAddress: "10.1.2.3",
		UserAgent: "test",
	})
	require.NoError(t, err)

	require.Contains(t, sessions.sessions, res.SessionID)
	s := sessions.sessions[res.SessionID]
	assert.Equal(t, uint(1), s.UserID)
	assert.Equal(t, "10.1.2.3", s.IPAddress)
	assert.Equal(t, "1:"+res.SessionID, res.AccessToken)
	assert.Equal(t, "it_staff", res.User.Role)
}

func TestAuthenticateUseCase(t *testing.T) {
	active := existingUser(t, 1, "alice", vo.RoleAdmin, true)
	users := newMockUserRepository(active)
	sessions := newMockSessionRepository()
	tokens := fakeTokens{ttl: time.Hour}

	login := NewLoginUseCase(users, sessions, plainHasher{}, tokens, logger.NewNopLogger())
	res, err := login.Execute(context.Background(), LoginCommand{Username: "alice", Password: "password-123"})
	require.NoError(t, err)

	authn := NewAuthenticateUseCase(users, sessions, tokens, logger.NewNopLogger())

	p, err := authn.Execute(context.Background(), res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(1), p.Actor.ID)
	assert.Equal(t, vo.RoleAdmin, p.Actor.Role)

	_, err = authn.Execute(context.Background(), "")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
	_, err = authn.Execute(context.Background(), "garbage")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))

	active.SetActive(false)
	_, err = authn.Execute(context.Background(), res.AccessToken)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized), "deactivated accounts are locked out")
	active.SetActive(true)

	logout := NewLogoutUseCase(sessions, logger.NewNopLogger())
	require.NoError(t, logout.Execute(context.Background(), LogoutCommand{SessionID: res.SessionID}))

	_, err = authn.Execute(context.Background(), res.AccessToken)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized), "logout revokes the token")
}

func TestLogoutUseCase_RequiresSession(t *testing.T) {
	uc := NewLogoutUseCase(newMockSessionRepository(), logger.NewNopLogger())
	err := uc.Execute(context.Background(), LogoutCommand{})
	assert.True(t, apperrors.IsValidationError(err))
}
