package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SQLitePath      string `mapstructure:"sqlite_path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`

	// MigrationStrategy is "goose" (versioned SQL) or "auto_migrate" (gorm).
	MigrationStrategy string `mapstructure:"migration_strategy"`
	MigrateOnStart    bool   `mapstructure:"migrate_on_start"`
}

// GetDSN returns the connection string for the configured driver.
func (d *DatabaseConfig) GetDSN() string {
	if d.Driver == DriverSQLite {
		// foreign keys are off by default in sqlite; cascades depend on them.
		// Immediate transactions take the write lock at BEGIN, so concurrent
		// writers wait on the busy timeout instead of failing on upgrade.
		return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate", d.SQLitePath)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type CookieConfig struct {
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Cookie   CookieConfig   `mapstructure:"cookie"`
}

type VerificationConfig struct {
	TTLHours             int  `mapstructure:"ttl_hours"`
	SweepEnabled         bool `mapstructure:"sweep_enabled"`
	SweepIntervalMinutes int  `mapstructure:"sweep_interval_minutes"`
}

// TTL returns the verification token lifetime, falling back to 24h.
func (v *VerificationConfig) TTL() time.Duration {
	if v.TTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(v.TTLHours) * time.Hour
}

func (v *VerificationConfig) SweepInterval() time.Duration {
	if v.SweepIntervalMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(v.SweepIntervalMinutes) * time.Minute
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type RateLimitConfig struct {
	Enabled               bool `mapstructure:"enabled"`
	RequestsPerMinute     int  `mapstructure:"requests_per_minute"`
	AuthRequestsPerMinute int  `mapstructure:"auth_requests_per_minute"`
}
