package repository

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/domain/verification"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
	db "github.com/orris-inc/helpdesk/internal/shared/db"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

// VerificationRepository stores pending email verifications. The unique
// index on user_id backs the one-pending-token-per-user rule.
type VerificationRepository struct {
	db     *gorm.DB
	mapper mappers.VerificationMapper
}

func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{
		db:     db,
		mapper: mappers.NewVerificationMapper(),
	}
}

func (r *VerificationRepository) Create(ctx context.Context, v *verification.EmailVerification) error {
	model := r.mapper.ToModel(v)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("a verification is already pending for this user")
		}
		return fmt.Errorf("failed to create email verification: %w", err)
	}
	return v.SetID(model.ID)
}

func (r *VerificationRepository) GetByUserID(ctx context.Context, userID uint) (*verification.EmailVerification, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID))
}

func (r *VerificationRepository) GetByTokenHashForUpdate(ctx context.Context, tokenHash string) (*verification.EmailVerification, error) {
	tx := db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate(ctx))
	return r.first(tx.Where("token_hash = ?", tokenHash))
}

func (r *VerificationRepository) first(tx *gorm.DB) (*verification.EmailVerification, error) {
	var model models.EmailVerificationModel
	if err := tx.First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("verification not found")
		}
		return nil, fmt.Errorf("failed to get email verification: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *VerificationRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.EmailVerificationModel{}, id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete email verification: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *VerificationRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Delete(&models.EmailVerificationModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete email verification: %w", err)
	}
	return nil
}

func (r *VerificationRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("created_at < ?", cutoff).
		Delete(&models.EmailVerificationModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired email verifications: %w", result.Error)
	}
	return result.RowsAffected, nil
}
