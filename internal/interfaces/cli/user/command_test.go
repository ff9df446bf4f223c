package user

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/helpdesk/internal/application/user/usecases"
	"github.com/orris-inc/helpdesk/internal/infrastructure/config"
	"github.com/orris-inc/helpdesk/internal/infrastructure/database/dbtest"
	sharedConfig "github.com/orris-inc/helpdesk/internal/shared/config"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

const seed = `users:
  - username: sam
    email: sam@corp.example
    password: initial-pass-1
    role: it_staff
    full_name: Sam Lee
  - username: ada
    email: ada@corp.example
    password: initial-pass-2
    role: admin
  - username: bad
    email: not-an-email
    password: initial-pass-3
`

func TestImportThroughCreateUser(t *testing.T) {
	cfg := &config.Config{Auth: sharedConfig.AuthConfig{Password: sharedConfig.PasswordConfig{BcryptCost: 4}}}
	log := logger.NewNopLogger()
	uc := newCreateUserUseCase(dbtest.Open(t), cfg, log)
	importer := usecases.NewImportUsersUseCase(uc, log)

	result, err := importer.Execute(context.Background(), strings.NewReader(seed))
	require.NoError(t, err)
	assert.Equal(t, []string{"sam", "ada"}, result.Created)
	assert.Contains(t, result.Failed, "bad")

	again, err := importer.Execute(context.Background(), strings.NewReader(seed))
	require.NoError(t, err)
	assert.Empty(t, again.Created)
	assert.Equal(t, []string{"sam", "ada"}, again.Skipped)

	var out bytes.Buffer
	printImportResult(&out, again)
	assert.Contains(t, out.String(), "created: 0, skipped: 2, failed: 1")
	assert.Contains(t, out.String(), "failed bad:")
}

func TestNewCommand_Subcommands(t *testing.T) {
	cmd := NewCommand()
	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"create", "import"}, names)
}
