package usecases

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

func ensureUsernameFree(ctx context.Context, repo user.Repository, username string) error {
	exists, err := repo.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return errors.NewConflictError("username is already taken")
	}
	return nil
}

func ensureEmailFree(ctx context.Context, repo user.Repository, email string) error {
	exists, err := repo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return errors.NewConflictError("an account with this email already exists")
	}
	return nil
}

// ensureEmailFreeFor allows the address when it already belongs to userID.
func ensureEmailFreeFor(ctx context.Context, repo user.Repository, email string, userID uint) error {
	owner, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil
		}
		return err
	}
	if owner.ID() != userID {
		return errors.NewConflictError("an account with this email already exists")
	}
	return nil
}
