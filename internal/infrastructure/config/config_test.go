package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/orris-inc/helpdesk/internal/shared/config"
)

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, sharedConfig.DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Verification.TTL())
	assert.Equal(t, "smtp.gmail.com", cfg.Email.SMTPHost)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HELPDESK_DATABASE_DRIVER", "sqlite")
	t.Setenv("HELPDESK_VERIFICATION_TTL_HOURS", "2")

	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, sharedConfig.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 2*time.Hour, cfg.Verification.TTL())
	assert.Equal(t, "test", cfg.Server.Mode)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HELPDESK_DATABASE_DRIVER", "oracle")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_ReleaseRequiresJWTSecret(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("release")
	assert.Error(t, err)

	t.Setenv("HELPDESK_AUTH_JWT_SECRET", "a-real-secret")
	cfg, err := Load("release")
	require.NoError(t, err)
	assert.Equal(t, "a-real-secret", cfg.Auth.JWT.Secret)
}
