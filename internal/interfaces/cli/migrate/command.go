package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/infrastructure/config"
	"github.com/orris-inc/helpdesk/internal/infrastructure/database"
	"github.com/orris-inc/helpdesk/internal/infrastructure/migration"
	"github.com/orris-inc/helpdesk/internal/interfaces/cli/bootstrap"
	sharedConfig "github.com/orris-inc/helpdesk/internal/shared/config"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

var (
	opts   bootstrap.Options
	name   string
	outDir string
	steps  int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back and inspect the versioned SQL migrations, or scaffold a new one.`,
	}

	bootstrap.AddFlags(cmd, &opts)

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply pending migrations using the strategy named in database.migration_strategy.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new SQL migration",
		Long:  `Create a timestamped SQL migration for the configured driver. Rebuild the binary to embed it.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVar(&outDir, "dir", "", "Output directory (default: internal/infrastructure/migration/scripts/<driver>)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv() (*config.Config, *gorm.DB, logger.Interface, error) {
	cfg, log, err := bootstrap.Load(&opts)
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := bootstrap.OpenDatabase(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, db, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, db, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := migration.NewStrategy(&cfg.Database, log)
	if err != nil {
		return err
	}

	log.Infow("running up migrations", "strategy", strategy.GetName())
	if err := strategy.Migrate(db); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, db, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "steps", steps)

	strategy := migration.NewGooseStrategy(cfg.Database.Driver, log)
	if err := strategy.MigrateDown(db, steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, db, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy := migration.NewGooseStrategy(cfg.Database.Driver, log)
	version, err := strategy.GetVersion(db)
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Driver:          %s\n", cfg.Database.Driver)
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := strategy.Status(db); err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Load(&opts)
	if err != nil {
		return err
	}

	dir := outDir
	if dir == "" {
		dir = scriptsDir(cfg.Database.Driver)
	}

	strategy := migration.NewGooseStrategy(cfg.Database.Driver, log)
	if err := strategy.Create(dir, name); err != nil {
		log.Errorw("failed to create migration", "error", err)
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created in %s\n", name, dir)
	return nil
}

func scriptsDir(driver string) string {
	sub := "mysql"
	if driver == sharedConfig.DriverSQLite {
		sub = "sqlite"
	}
	return filepath.Join("internal", "infrastructure", "migration", "scripts", sub)
}
