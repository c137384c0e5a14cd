package middleware

import (
	"net/http"

	"github.com/punchdesk/attendance-backend-go/internal/domain/auth"
	"github.com/punchdesk/attendance-backend-go/internal/domain/employee"
	"github.com/punchdesk/attendance-backend-go/internal/handler/http/response"
	"github.com/punchdesk/attendance-backend-go/internal/pkg/jwt"
)

// AdminOnly checks the caller's role against the employee profile
// store. The token only identifies the caller; the profile is the
// authority on admin access, so a role change takes effect without
// reissuing tokens.
func AdminOnly(employeeRepo employee.EmployeeRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid, err := jwt.UIDFromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			emp, err := employeeRepo.GetByUID(r.Context(), uid)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if !emp.IsAdmin() {
				response.HandleError(w, employee.ErrAdminAccessRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
