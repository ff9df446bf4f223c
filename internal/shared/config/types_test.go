package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfig_GetDSN(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		d := DatabaseConfig{Driver: DriverSQLite, SQLitePath: "/tmp/helpdesk.db"}
		dsn := d.GetDSN()
		assert.Contains(t, dsn, "file:/tmp/helpdesk.db?")
		assert.Contains(t, dsn, "_foreign_keys=on")
		assert.Contains(t, dsn, "_busy_timeout=5000")
		assert.Contains(t, dsn, "_txlock=immediate")
	})

	t.Run("mysql", func(t *testing.T) {
		d := DatabaseConfig{
			Driver:   DriverMySQL,
			Host:     "db",
			Port:     3306,
			Username: "helpdesk",
			Password: "secret",
			Database: "helpdesk",
		}
		assert.Equal(t, "helpdesk:secret@tcp(db:3306)/helpdesk?charset=utf8mb4&parseTime=True&loc=UTC", d.GetDSN())
	})
}
