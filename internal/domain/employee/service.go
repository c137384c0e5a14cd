package employee

import "context"

// EmployeeService exposes the read-only profile directory.
type EmployeeService interface {
	// GetMyProfile returns the authenticated caller's profile.
	GetMyProfile(ctx context.Context) (EmployeeResponse, error)

	// ListEmployees returns the full directory (admin)
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
}
