package usecases

import (
	"context"
	"time"

	"github.com/orris-inc/helpdesk/internal/domain/user"
	vo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
	"github.com/orris-inc/helpdesk/internal/domain/verification"
)

// VerificationIssuer is the part of the verification service that account
// use cases drive.
type VerificationIssuer interface {
	Issue(ctx context.Context, userID uint) (*verification.Token, error)
	SendVerification(ctx context.Context, u *user.User, token *verification.Token) error
}

// TokenService signs and parses access tokens.
type TokenService interface {
	Generate(userID uint, sessionID string, role vo.Role) (string, time.Time, error)
	ParseAccessToken(token string) (userID uint, sessionID string, err error)
	AccessTTL() time.Duration
}
