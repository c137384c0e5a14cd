package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee profile not found")
	ErrAdminAccessRequired = errors.New("admin access required")
)
