package employee

import "context"

// EmployeeRepository is the profile store contract: uid in, profile out.
type EmployeeRepository interface {
	// GetByUID retrieves a profile. Returns ErrEmployeeNotFound when absent.
	GetByUID(ctx context.Context, uid string) (Employee, error)

	// List retrieves all profiles ordered by name.
	List(ctx context.Context) ([]Employee, error)
}
