package http

import (
	ticketdto "github.com/orris-inc/helpdesk/internal/application/ticket/dto"
	verificationApp "github.com/orris-inc/helpdesk/internal/application/verification"
	"github.com/orris-inc/helpdesk/internal/infrastructure/auth"
	"github.com/orris-inc/helpdesk/internal/infrastructure/email"
	"github.com/orris-inc/helpdesk/internal/infrastructure/metrics"
	"github.com/orris-inc/helpdesk/internal/infrastructure/ratelimit"
	shareddb "github.com/orris-inc/helpdesk/internal/shared/db"
	"github.com/orris-inc/helpdesk/internal/shared/services/markdown"
)

// services holds the infrastructure services shared by use cases and middleware.
type services struct {
	txMgr        *shareddb.TransactionManager
	hasher       *auth.BcryptPasswordHasher
	jwt          *auth.JWTService
	mailer       email.Mailer
	metrics      *metrics.Metrics
	verification *verificationApp.Service
	assembler    *ticketdto.Assembler
	rateLimiter  ratelimit.RateLimiter
}

func (c *Container) initServices() {
	s := &services{
		txMgr:     shareddb.NewTransactionManager(c.db),
		hasher:    auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost),
		jwt:       auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes),
		mailer:    email.NewMailer(c.cfg.Email, c.log),
		metrics:   c.metrics,
		assembler: ticketdto.NewAssembler(markdown.NewRenderer()),
	}

	s.verification = verificationApp.NewService(
		c.repos.userRepo,
		c.repos.verificationRepo,
		s.txMgr,
		s.mailer,
		s.metrics,
		c.cfg.Server.BaseURL,
		c.cfg.Verification.TTL(),
		c.log,
	)

	if c.redis != nil {
		s.rateLimiter = ratelimit.NewRedisRateLimiter(c.redis)
		c.log.Infow("rate limiter using redis", "address", c.cfg.Redis.GetAddr())
	} else {
		s.rateLimiter = ratelimit.NewMemoryRateLimiter()
		c.log.Infow("rate limiter using in-process buckets")
	}

	c.svcs = s
}
