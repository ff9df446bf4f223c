package dto

import (
	"time"

	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/mapper"
)

// UserDTO is the account as returned by the API. The password hash never
// leaves the domain.
type UserDTO struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	RoleLabel   string    `json:"role_label"`
	IsActive    bool      `json:"is_active"`
	DisplayName string    `json:"display_name"`
	FullName    string    `json:"full_name"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       string    `json:"phone"`
	Department  string    `json:"department"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserSummaryDTO is the compact form embedded in tickets and comments.
type UserSummaryDTO struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:          u.ID(),
		Username:    u.Username(),
		Email:       u.Email(),
		Role:        u.Role().String(),
		RoleLabel:   u.Role().Label(),
		IsActive:    u.IsActive(),
		DisplayName: u.DisplayName(),
		FullName:    u.FullName(),
		FirstName:   u.FirstName(),
		LastName:    u.LastName(),
		Phone:       u.Phone(),
		Department:  u.Department(),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
}

func ToUserDTOList(users []*user.User) []*UserDTO {
	return mapper.MapSlice(users, ToUserDTO)
}

func ToUserSummaryDTO(u *user.User) *UserSummaryDTO {
	if u == nil {
		return nil
	}
	return &UserSummaryDTO{
		ID:          u.ID(),
		Username:    u.Username(),
		DisplayName: u.DisplayName(),
		Role:        u.Role().String(),
	}
}
