package valueobjects

import "fmt"

// Role is the closed set of account roles. It decides ticket visibility and
// which mutations a user may perform.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleITStaff  Role = "it_staff"
	RoleHR       Role = "hr"
	RoleAdmin    Role = "admin"
)

var roleLabels = map[Role]string{
	RoleEmployee: "Employee",
	RoleITStaff:  "IT Staff",
	RoleHR:       "HR",
	RoleAdmin:    "Administrator",
}

// AllRoles lists roles in display order.
func AllRoles() []Role {
	return []Role{RoleEmployee, RoleITStaff, RoleHR, RoleAdmin}
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLabels[r]
	return ok
}

// Label returns the human readable role name.
func (r Role) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return string(r)
}

// IsSupportStaff reports whether the role works tickets: it_staff or admin.
func (r Role) IsSupportStaff() bool {
	return r == RoleITStaff || r == RoleAdmin
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsHR() bool {
	return r == RoleHR
}
