package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/orris-inc/helpdesk/internal/infrastructure/database"
	"github.com/orris-inc/helpdesk/internal/infrastructure/migration"
	"github.com/orris-inc/helpdesk/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/orris-inc/helpdesk/internal/interfaces/http"
	"github.com/orris-inc/helpdesk/internal/shared/goroutine"
	"github.com/orris-inc/helpdesk/internal/shared/version"
)

const shutdownTimeout = 30 * time.Second

var (
	opts        bootstrap.Options
	skipMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the helpdesk HTTP API together with its scheduled maintenance jobs.`,
		RunE:  run,
	}

	bootstrap.AddFlags(cmd, &opts)
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not apply migrations on startup even when database.migrate_on_start is set")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Load(&opts)
	if err != nil {
		return err
	}

	log.Infow("starting server",
		"mode", cfg.Server.Mode,
		"version", version.String(),
		"driver", cfg.Database.Driver)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	db, err := bootstrap.OpenDatabase(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	if cfg.Database.MigrateOnStart && !skipMigrate {
		strategy, err := migration.NewStrategy(&cfg.Database, log)
		if err != nil {
			return err
		}
		if err := strategy.Migrate(db); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = database.OpenRedis(cmd.Context(), cfg.Redis)
		if err != nil {
			return err
		}
		log.Infow("redis connection established", "address", cfg.Redis.GetAddr())
	}

	container, err := httpRouter.NewContainer(db, redisClient, cfg, log)
	if err != nil {
		return err
	}
	defer container.Shutdown()

	container.SetupRoutes()
	container.StartBackground()

	srv := &http.Server{
		Addr:              cfg.Server.GetAddr(),
		Handler:           container.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	goroutine.SafeGo(log, "http-server", func() {
		log.Infow("server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Infow("shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}
