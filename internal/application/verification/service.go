// Package verification runs the email verification lifecycle: issuing a
// token for an account, mailing the link, and consuming it exactly once.
package verification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/orris-inc/helpdesk/internal/application/common"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	vo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
	"github.com/orris-inc/helpdesk/internal/domain/verification"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// LinkPath is the route that consumes a token.
const LinkPath = "/api/auth/verify-email/"

type Mailer interface {
	SendVerification(ctx context.Context, to, displayName, link string) error
}

// Recorder receives lifecycle counters.
type Recorder interface {
	VerificationIssued()
	VerificationConsumed()
	VerificationExpired()
	VerificationsSwept(n int64)
	MailDispatchFailed()
}

type Service struct {
	userRepo         user.Repository
	verificationRepo verification.Repository
	txMgr            common.TransactionManager
	mailer           Mailer
	recorder         Recorder
	baseURL          string
	ttl              time.Duration
	logger           logger.Interface
}

func NewService(
	userRepo user.Repository,
	verificationRepo verification.Repository,
	txMgr common.TransactionManager,
	mailer Mailer,
	recorder Recorder,
	baseURL string,
	ttl time.Duration,
	logger logger.Interface,
) *Service {
	if ttl <= 0 {
		ttl = verification.DefaultTTL
	}
	return &Service{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		txMgr:            txMgr,
		mailer:           mailer,
		recorder:         recorder,
		baseURL:          strings.TrimRight(baseURL, "/"),
		ttl:              ttl,
		logger:           logger,
	}
}

func (s *Service) TTL() time.Duration { return s.ttl }

// Issue replaces any pending verification of the user with a fresh token.
// When ctx already carries a transaction the work joins it, so a caller can
// create the account and its token atomically.
func (s *Service) Issue(ctx context.Context, userID uint) (*verification.Token, error) {
	var token *verification.Token

	err := s.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		// the user row lock serializes concurrent issues for one account
		if _, err := s.userRepo.GetByIDForUpdate(txCtx, userID); err != nil {
			return err
		}

		if err := s.verificationRepo.DeleteByUserID(txCtx, userID); err != nil {
			return err
		}

		tok, err := verification.GenerateToken()
		if err != nil {
			return err
		}
		v, err := verification.NewEmailVerification(userID, tok, biztime.NowUTC())
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := s.verificationRepo.Create(txCtx, v); err != nil {
			return err
		}

		token = tok
		return nil
	})
	if err != nil {
		if errors.GetAppError(err) != nil {
			return nil, err
		}
		s.logger.Errorw("failed to issue verification token", "user_id", userID, "error", err)
		return nil, errors.NewInternalError("failed to issue verification token")
	}

	s.recorder.VerificationIssued()
	s.logger.Infow("verification token issued", "user_id", userID)
	return token, nil
}

// Consume activates the account bound to raw and deletes the verification.
// A token succeeds at most once; an expired token is left in place and the
// account stays inactive.
func (s *Service) Consume(ctx context.Context, raw string) (*user.User, error) {
	token, err := verification.ParseToken(raw)
	if err != nil {
		return nil, errors.NewNotFoundError("invalid verification link")
	}

	var (
		activated *user.User
		expired   bool
	)
	err = s.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		v, err := s.verificationRepo.GetByTokenHashForUpdate(txCtx, token.Hash())
		if err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewNotFoundError("invalid verification link")
			}
			return err
		}

		if v.IsExpired(biztime.NowUTC(), s.ttl) {
			expired = true
			return errors.NewExpiredError("verification link has expired", "request a new verification email")
		}

		u, err := s.userRepo.GetByIDForUpdate(txCtx, v.UserID())
		if err != nil {
			return err
		}
		u.Activate()
		if err := s.userRepo.Update(txCtx, u); err != nil {
			return err
		}

		n, err := s.verificationRepo.Delete(txCtx, v.ID())
		if err != nil {
			return err
		}
		if n == 0 {
			// consumed concurrently; roll back this activation
			return errors.NewNotFoundError("invalid verification link")
		}

		activated = u
		return nil
	})
	if err != nil {
		if expired {
			s.recorder.VerificationExpired()
		}
		if errors.GetAppError(err) != nil {
			return nil, err
		}
		s.logger.Errorw("failed to consume verification token", "error", err)
		return nil, errors.NewInternalError("failed to verify email")
	}

	s.recorder.VerificationConsumed()
	s.logger.Infow("email verified", "user_id", activated.ID())
	return activated, nil
}

// Link builds the absolute URL mailed to the user.
func (s *Service) Link(token *verification.Token) string {
	return s.baseURL + LinkPath + token.Value()
}

// SendVerification mails the link. It must run after the issuing
// transaction has committed; a failure leaves the stored token usable.
func (s *Service) SendVerification(ctx context.Context, u *user.User, token *verification.Token) error {
	if err := s.mailer.SendVerification(ctx, u.Email(), u.DisplayName(), s.Link(token)); err != nil {
		s.recorder.MailDispatchFailed()
		s.logger.Warnw("failed to send verification email",
			"user_id", u.ID(),
			"email", u.Email(),
			"error", err,
		)
		return errors.NewMailDispatchError("failed to send verification email", "request a new verification email")
	}

	s.logger.Infow("verification email sent", "user_id", u.ID())
	return nil
}

// Resend issues a new token for an inactive account and mails it. On a mail
// failure the user is still returned together with the error.
func (s *Service) Resend(ctx context.Context, email string) (*user.User, error) {
	addr, err := vo.NewEmail(email)
	if err != nil {
		return nil, errors.NewValidationError("invalid email", err.Error())
	}

	u, err := s.userRepo.GetByEmail(ctx, addr.String())
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("no account with this email")
		}
		s.logger.Errorw("failed to look up user for resend", "error", err)
		return nil, errors.NewInternalError("failed to resend verification")
	}
	if u.IsActive() {
		return nil, errors.NewValidationError("email already verified")
	}

	token, err := s.Issue(ctx, u.ID())
	if err != nil {
		return nil, err
	}
	if err := s.SendVerification(ctx, u, token); err != nil {
		return u, err
	}
	return u, nil
}

// SweepExpired removes verifications issued before now - TTL.
func (s *Service) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.verificationRepo.DeleteCreatedBefore(ctx, now.Add(-s.ttl))
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired verifications: %w", err)
	}
	if n > 0 {
		s.recorder.VerificationsSwept(n)
		s.logger.Infow("expired verifications removed", "count", n)
	}
	return n, nil
}

// Execute lets the sweep run as a scheduled batch job.
func (s *Service) Execute(ctx context.Context) (int, error) {
	n, err := s.SweepExpired(ctx, biztime.NowUTC())
	return int(n), err
}
