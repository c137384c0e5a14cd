package employee

import "time"

// Employee is the profile the identity provider's uid maps to. Shift is
// the "HH:mm" label the shift resolver derives working time from.
type Employee struct {
	UID       string
	Name      string
	Email     string
	Role      Role
	Shift     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// IsAdmin reports whether the profile grants admin-only operations.
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}
