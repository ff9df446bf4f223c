// Package bootstrap loads configuration and opens the shared resources
// that every subcommand needs.
package bootstrap

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/infrastructure/config"
	"github.com/orris-inc/helpdesk/internal/infrastructure/database"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// Options are the flags shared by all subcommands.
type Options struct {
	Env     string
	Verbose bool
}

// AddFlags registers the shared flags as persistent flags of cmd.
func AddFlags(cmd *cobra.Command, opts *Options) {
	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", "", "Environment (development, test, production); overrides server.mode")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log source locations at every level")
}

// Load reads the configuration and initializes the process logger.
// HELPDESK_ENV takes precedence over the --env flag.
func Load(opts *Options) (*config.Config, logger.Interface, error) {
	env := opts.Env
	if envVar := os.Getenv("HELPDESK_ENV"); envVar != "" {
		env = envVar
	}

	mode := ""
	if env != "" {
		mode = GinMode(env)
	}

	cfg, err := config.Load(mode)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = GinMode(cfg.Server.Mode)

	if err := logger.Init(&cfg.Logger, opts.Verbose); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// OpenDatabase initializes the process-wide database handle. Callers
// release it with database.Close.
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return database.Get(), nil
}

// GinMode maps an environment name onto one of gin's three modes.
func GinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
