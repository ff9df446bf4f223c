package user

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/orris-inc/helpdesk/internal/domain/user/valueobjects"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
)

// User is the account aggregate. Self-registered accounts start inactive
// and are activated by consuming an email verification token.
type User struct {
	id           uint
	username     *vo.Username
	email        *vo.Email
	passwordHash string
	role         vo.Role
	active       bool
	fullName     string
	firstName    string
	lastName     string
	phone        string
	department   string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates an inactive account with the given role.
func NewUser(username *vo.Username, email *vo.Email, fullName string, role vo.Role) (*User, error) {
	if username == nil {
		return nil, fmt.Errorf("username is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	name, err := vo.NormalizePersonName("full_name", fullName)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &User{
		username:  username,
		email:     email,
		role:      role,
		fullName:  name,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// UserSnapshot carries persisted state into ReconstructUser.
type UserSnapshot struct {
	ID           uint
	Username     string
	Email        string
	PasswordHash string
	Role         string
	Active       bool
	FullName     string
	FirstName    string
	LastName     string
	Phone        string
	Department   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReconstructUser rebuilds a user from persistence without re-running
// input normalization.
func ReconstructUser(s UserSnapshot) (*User, error) {
	if s.ID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	username, err := vo.NewUsername(s.Username)
	if err != nil {
		return nil, err
	}
	email, err := vo.NewEmail(s.Email)
	if err != nil {
		return nil, err
	}
	role, err := vo.NewRole(s.Role)
	if err != nil {
		return nil, err
	}

	return &User{
		id:           s.ID,
		username:     username,
		email:        email,
		passwordHash: s.PasswordHash,
		role:         role,
		active:       s.Active,
		fullName:     s.FullName,
		firstName:    s.FirstName,
		lastName:     s.LastName,
		phone:        s.Phone,
		department:   s.Department,
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
	}, nil
}

func (u *User) ID() uint                { return u.id }
func (u *User) Username() string        { return u.username.String() }
func (u *User) Email() string           { return u.email.String() }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) Role() vo.Role           { return u.role }
func (u *User) IsActive() bool          { return u.active }
func (u *User) FullName() string        { return u.fullName }
func (u *User) FirstName() string       { return u.firstName }
func (u *User) LastName() string        { return u.lastName }
func (u *User) Phone() string           { return u.phone }
func (u *User) Department() string      { return u.department }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }
func (u *User) HasPassword() bool       { return u.passwordHash != "" }
func (u *User) IsSupportStaff() bool    { return u.role.IsSupportStaff() }

// DisplayName prefers the full name, then "first last", then the username.
func (u *User) DisplayName() string {
	if u.fullName != "" {
		return u.fullName
	}
	if u.firstName != "" || u.lastName != "" {
		return strings.TrimSpace(u.firstName + " " + u.lastName)
	}
	return u.username.String()
}

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// SetPassword hashes and stores a validated password.
func (u *User) SetPassword(password *vo.Password, hasher PasswordHasher) error {
	if password == nil {
		return fmt.Errorf("password is required")
	}
	hash, err := hasher.Hash(password.String())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.passwordHash = hash
	u.touch()
	return nil
}

// VerifyPassword reports whether plain matches the stored hash.
func (u *User) VerifyPassword(plain string, hasher PasswordHasher) bool {
	if u.passwordHash == "" {
		return false
	}
	return hasher.Verify(plain, u.passwordHash) == nil
}

// Activate marks the account as verified. Activating an active account is a no-op.
func (u *User) Activate() {
	if u.active {
		return
	}
	u.active = true
	u.touch()
}

// SetActive is the privileged toggle used by administrators.
func (u *User) SetActive(active bool) {
	if u.active == active {
		return
	}
	u.active = active
	u.touch()
}

func (u *User) ChangeRole(role vo.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	if u.role == role {
		return nil
	}
	u.role = role
	u.touch()
	return nil
}

func (u *User) ChangeEmail(email *vo.Email) {
	if email == nil || u.email.Equals(email) {
		return
	}
	u.email = email
	u.touch()
}

// ProfileChanges lists optional profile edits; nil fields are left untouched.
type ProfileChanges struct {
	FullName   *string
	FirstName  *string
	LastName   *string
	Phone      *string
	Department *string
}

// UpdateProfile applies the non-nil fields after normalizing them.
func (u *User) UpdateProfile(c ProfileChanges) error {
	next := *u

	var err error
	if c.FullName != nil {
		if next.fullName, err = vo.NormalizePersonName("full_name", *c.FullName); err != nil {
			return err
		}
	}
	if c.FirstName != nil {
		if next.firstName, err = vo.NormalizePersonName("first_name", *c.FirstName); err != nil {
			return err
		}
	}
	if c.LastName != nil {
		if next.lastName, err = vo.NormalizePersonName("last_name", *c.LastName); err != nil {
			return err
		}
	}
	if c.Phone != nil {
		if next.phone, err = vo.NormalizePhone(*c.Phone); err != nil {
			return err
		}
	}
	if c.Department != nil {
		if next.department, err = vo.NormalizeDepartment(*c.Department); err != nil {
			return err
		}
	}

	next.touch()
	*u = next
	return nil
}

func (u *User) touch() {
	u.updatedAt = biztime.NowUTC()
}
