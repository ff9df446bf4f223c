package verification

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, v *EmailVerification) error
	GetByUserID(ctx context.Context, userID uint) (*EmailVerification, error)
	// GetByTokenHashForUpdate locks the row for the surrounding transaction.
	GetByTokenHashForUpdate(ctx context.Context, tokenHash string) (*EmailVerification, error)
	// Delete removes one row and reports how many rows were removed (0 or 1).
	Delete(ctx context.Context, id uint) (int64, error)
	DeleteByUserID(ctx context.Context, userID uint) error
	// DeleteCreatedBefore removes rows issued before cutoff.
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
