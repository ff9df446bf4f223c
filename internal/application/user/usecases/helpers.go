package usecases

import (
	"fmt"

	"github.com/orris-inc/helpdesk/internal/domain/user"
	vo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// internalOrAppError passes AppErrors through and hides everything else
// behind a generic internal error after logging it.
func internalOrAppError(log logger.Interface, msg string, err error, keysAndValues ...interface{}) error {
	if errors.GetAppError(err) != nil {
		return err
	}
	log.Errorw(msg, append(keysAndValues, "error", err)...)
	return errors.NewInternalError(msg)
}

// newAccount validates the identity fields shared by every way of creating
// an account and builds the inactive aggregate.
func newAccount(username, email, password, fullName string, role vo.Role, hasher user.PasswordHasher) (*user.User, error) {
	name, err := vo.NewUsername(username)
	if err != nil {
		return nil, errors.NewValidationError("invalid username", err.Error())
	}
	addr, err := vo.NewEmail(email)
	if err != nil {
		return nil, errors.NewValidationError("invalid email", err.Error())
	}
	pw, err := vo.NewPassword(password)
	if err != nil {
		return nil, errors.NewValidationError("invalid password", err.Error())
	}

	u, err := user.NewUser(name, addr, fullName, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := u.SetPassword(pw, hasher); err != nil {
		return nil, fmt.Errorf("failed to set password: %w", err)
	}
	return u, nil
}

func applyProfile(u *user.User, c user.ProfileChanges) error {
	if err := u.UpdateProfile(c); err != nil {
		return errors.NewValidationError("invalid profile", err.Error())
	}
	return nil
}
