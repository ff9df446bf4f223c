package migration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/orris-inc/helpdesk/internal/shared/config"
	applog "github.com/orris-inc/helpdesk/internal/shared/logger"
)

func openSQLite(t *testing.T) (*gorm.DB, *config.DatabaseConfig) {
	t.Helper()
	cfg := &config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "migrate.db"),
	}
	db, err := gorm.Open(sqlite.Open(cfg.GetDSN()), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db, cfg
}

func TestGooseStrategy_UpAndDown(t *testing.T) {
	db, cfg := openSQLite(t)
	s := NewGooseStrategy(cfg.Driver, applog.NewNopLogger())

	files, err := s.Scripts()
	require.NoError(t, err)
	require.Len(t, files, 3)

	require.NoError(t, s.Migrate(db))
	for _, table := range []string{"users", "user_sessions", "email_verifications", "tickets", "ticket_comments"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	version, err := s.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(20260301000003), version)

	require.NoError(t, s.MigrateDown(db, 1))
	assert.False(t, db.Migrator().HasTable("tickets"))
	assert.True(t, db.Migrator().HasTable("users"))

	require.NoError(t, s.Migrate(db), "re-applying is idempotent")
	assert.True(t, db.Migrator().HasTable("tickets"))
}

func TestNewStrategy(t *testing.T) {
	s, err := NewStrategy(&config.DatabaseConfig{Driver: config.DriverMySQL, MigrationStrategy: StrategyGoose}, applog.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, StrategyGoose, s.GetName())

	s, err = NewStrategy(&config.DatabaseConfig{MigrationStrategy: StrategyAutoMigrate}, applog.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, StrategyAutoMigrate, s.GetName())

	_, err = NewStrategy(&config.DatabaseConfig{MigrationStrategy: "flyway"}, applog.NewNopLogger())
	assert.Error(t, err)
}

func TestGormAutoMigrateStrategy(t *testing.T) {
	db, _ := openSQLite(t)
	s := NewGormAutoMigrateStrategy(applog.NewNopLogger())

	require.NoError(t, s.Migrate(db))
	assert.True(t, db.Migrator().HasTable("email_verifications"))
}
