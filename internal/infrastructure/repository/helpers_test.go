package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/domain/user"
	vo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
	"github.com/orris-inc/helpdesk/internal/infrastructure/database/dbtest"
)

func setupTestDB(t *testing.T) *gorm.DB {
	return dbtest.Open(t)
}

func newUser(t *testing.T, username string, role vo.Role) *user.User {
	t.Helper()
	name, err := vo.NewUsername(username)
	require.NoError(t, err)
	email, err := vo.NewEmail(username + "@corp.example")
	require.NoError(t, err)
	u, err := user.NewUser(name, email, "", role)
	require.NoError(t, err)
	return u
}
