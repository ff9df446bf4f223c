package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/orris-inc/helpdesk/internal/domain/user"
)

// ErrPasswordMismatch covers both a wrong password and an unreadable hash.
var ErrPasswordMismatch = errors.New("password verification failed")

var _ user.PasswordHasher = (*BcryptPasswordHasher)(nil)

// BcryptPasswordHasher stores account passwords. Costs outside bcrypt's
// range fall back to the library default.
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash account password: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrPasswordMismatch
	}
	return nil
}

