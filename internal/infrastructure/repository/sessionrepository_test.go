package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

func TestSessionRepository(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewSessionRepository(gdb)
	ctx := context.Background()

	live, err := user.NewSession(1, "10.0.0.1", "test-agent", time.Hour)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, live))

	found, err := repo.GetByID(ctx, live.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), found.UserID)
	assert.Equal(t, "test-agent", found.UserAgent)

	n, err := repo.DeleteExpired(ctx, live.ExpiresAt.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.GetByID(ctx, live.ID)
	assert.True(t, errors.IsNotFoundError(err))

	again, err := user.NewSession(1, "", "", time.Hour)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, again))
	require.NoError(t, repo.DeleteByUserID(ctx, 1))
	_, err = repo.GetByID(ctx, again.ID)
	assert.True(t, errors.IsNotFoundError(err))
}
