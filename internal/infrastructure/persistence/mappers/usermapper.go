package mappers

import (
	"fmt"

	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
)

// UserMapper converts between user domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
	ToDomainList(models []models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		FullName:     u.FullName(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Phone:        u.Phone(),
		Department:   u.Department(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	u, err := user.ReconstructUser(user.UserSnapshot{
		ID:           model.ID,
		Username:     model.Username,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Role:         model.Role,
		Active:       model.IsActive,
		FullName:     model.FullName,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		Phone:        model.Phone,
		Department:   model.Department,
		CreatedAt:    model.CreatedAt.UTC(),
		UpdatedAt:    model.UpdatedAt.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user (id=%d): %w", model.ID, err)
	}
	return u, nil
}

func (m *UserMapperImpl) ToDomainList(list []models.UserModel) ([]*user.User, error) {
	users := make([]*user.User, 0, len(list))
	for i := range list {
		u, err := m.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
