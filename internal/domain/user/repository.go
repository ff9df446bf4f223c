package user

import (
	"context"

	vo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
)

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// Repository is the identity store.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	// GetByIDForUpdate locks the row for the rest of the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*User, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	// Delete removes the user; tickets, comments, verification and sessions cascade.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountByRole(ctx context.Context, role vo.Role) (int64, error)
}

// ListFilter represents filtering and pagination options for user list
type ListFilter struct {
	Page     int
	PageSize int
	Search   string
	Roles    []vo.Role
	Active   *bool
}
