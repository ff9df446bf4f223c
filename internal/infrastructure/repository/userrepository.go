package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/domain/user"
	vo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
	db "github.com/orris-inc/helpdesk/internal/shared/db"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/query"
)

// UserRepository implements user.Repository on gorm.
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("username or email already exists")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("id = ?", id))
}

func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id uint) (*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate(ctx))
	return r.first(tx.Where("id = ?", id))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("username = ?", username))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Where("email = ?", email))
}

func (r *UserRepository) first(tx *gorm.DB) (*user.User, error) {
	var model models.UserModel
	if err := tx.First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if len(ids) == 0 {
		return []*user.User{}, nil
	}

	var list []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to get users by IDs: %w", err)
	}
	return r.mapper.ToDomainList(list)
}

// Update writes every column, zero values included, so that clearing a
// profile field or deactivating an account is persisted.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError("username or email already exists")
		}
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("user not found")
	}
	return nil
}

// Delete removes the user together with everything that references it:
// sessions, the pending verification, comments they wrote, the tickets they
// created (with those tickets' comments). Tickets assigned to them become
// unassigned.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		createdTickets := tx.Model(&models.TicketModel{}).Select("id").Where("creator_id = ?", id)

		steps := []struct {
			name string
			run  func() *gorm.DB
		}{
			{"sessions", func() *gorm.DB { return tx.Where("user_id = ?", id).Delete(&models.SessionModel{}) }},
			{"verification", func() *gorm.DB { return tx.Where("user_id = ?", id).Delete(&models.EmailVerificationModel{}) }},
			{"ticket comments", func() *gorm.DB {
				return tx.Where("author_id = ? OR ticket_id IN (?)", id, createdTickets).Delete(&models.CommentModel{})
			}},
			{"tickets", func() *gorm.DB { return tx.Where("creator_id = ?", id).Delete(&models.TicketModel{}) }},
			{"assignments", func() *gorm.DB {
				return tx.Model(&models.TicketModel{}).Where("assignee_id = ?", id).Update("assignee_id", nil)
			}},
		}
		for _, step := range steps {
			if err := step.run().Error; err != nil {
				return fmt.Errorf("failed to delete user %s: %w", step.name, err)
			}
		}

		result := tx.Delete(&models.UserModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("user not found")
		}
		return nil
	})
}

func (r *UserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	q := tx.Model(&models.UserModel{}).
		Scopes(query.Search(filter.Search, "username", "email", "full_name", "first_name", "last_name", "department"))

	if len(filter.Roles) > 0 {
		roles := make([]string, len(filter.Roles))
		for i, role := range filter.Roles {
			roles[i] = role.String()
		}
		q = q.Where("role IN ?", roles)
	}
	if filter.Active != nil {
		q = q.Where("is_active = ?", *filter.Active)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var list []models.UserModel
	if err := q.Order("username ASC").
		Scopes(query.Paginate(filter.Page, filter.PageSize)).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users, err := r.mapper.ToDomainList(list)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *UserRepository) exists(ctx context.Context, cond string, arg any) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.UserModel{}).Where(cond, arg).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) CountByRole(ctx context.Context, role vo.Role) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.UserModel{}).Where("role = ?", role.String()).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users by role: %w", err)
	}
	return count, nil
}
