package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/infrastructure/config"
	"github.com/orris-inc/helpdesk/internal/infrastructure/metrics"
	"github.com/orris-inc/helpdesk/internal/infrastructure/scheduler"
	"github.com/orris-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases,
// handlers and background jobs of one server process, and owns their shutdown.
type Container struct {
	// Core infrastructure
	engine  *gin.Engine
	db      *gorm.DB
	cfg     *config.Config
	log     logger.Interface
	redis   *redis.Client
	metrics *metrics.Metrics

	repos *repositories
	svcs  *services
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware   *middleware.AuthMiddleware
	schedulerManager *scheduler.SchedulerManager
}

// NewContainer wires the application. redisClient may be nil, in which
// case rate limiting falls back to in-process buckets.
func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine:  gin.New(),
		db:      db,
		cfg:     cfg,
		log:     log,
		redis:   redisClient,
		metrics: metrics.New(),
		ucs:     &allUseCases{},
	}

	c.repos = newRepositories(db)
	c.initServices()
	c.initUserUseCases()
	c.initTicketUseCases()
	if err := c.initHandlers(); err != nil {
		return nil, fmt.Errorf("failed to init handlers: %w", err)
	}
	c.authMiddleware = middleware.NewAuthMiddleware(c.ucs.authenticateUC, log)

	if err := c.initScheduler(); err != nil {
		return nil, fmt.Errorf("failed to init scheduler: %w", err)
	}

	return c, nil
}

// Engine returns the gin engine with all routes registered.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

func (c *Container) initScheduler() error {
	if !c.cfg.Verification.SweepEnabled {
		c.log.Infow("verification sweep disabled")
		return nil
	}

	manager, err := scheduler.NewSchedulerManager(c.log)
	if err != nil {
		return err
	}

	interval := c.cfg.Verification.SweepInterval()
	if err := manager.RegisterVerificationSweep(c.svcs.verification, interval); err != nil {
		return err
	}

	sessions := c.repos.sessionRepo
	sessionSweep := scheduler.BatchJobFunc(func(ctx context.Context) (int, error) {
		n, err := sessions.DeleteExpired(ctx, biztime.NowUTC())
		return int(n), err
	})
	if err := manager.RegisterSessionSweep(sessionSweep, interval); err != nil {
		return err
	}

	c.schedulerManager = manager
	return nil
}

// StartBackground starts the scheduled maintenance jobs.
func (c *Container) StartBackground() {
	if c.schedulerManager != nil {
		c.schedulerManager.Start()
	}
}

// Shutdown stops background jobs and closes the Redis client. The database
// handle belongs to the caller.
func (c *Container) Shutdown() {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
	c.log.Infow("container shut down")
}
