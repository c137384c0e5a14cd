package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/punchdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/punchdesk/attendance-backend-go/internal/domain/auth"
	"github.com/punchdesk/attendance-backend-go/internal/domain/employee"
	"github.com/punchdesk/attendance-backend-go/internal/domain/holiday"
	"github.com/punchdesk/attendance-backend-go/internal/pkg/geo"
	"github.com/punchdesk/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Geofence errors carry the measured distance
	var outOfRange *geo.OutOfRangeError
	if errors.As(err, &outOfRange) {
		BadRequest(w, fmt.Sprintf("You are %d meters away from the office. Maximum allowed distance is %d meters", outOfRange.DistanceMeters, outOfRange.MaxMeters), nil)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		Conflict(w, "Already punched in today")
	case errors.Is(err, attendance.ErrNoPunchInRecord):
		NotFound(w, "No punch-in record found for today")
	case errors.Is(err, attendance.ErrAlreadyPunchedOut):
		Conflict(w, "Already punched out today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoPendingOvertime):
		Conflict(w, "No pending overtime request on this record")
	case errors.Is(err, attendance.ErrMalformedTime):
		BadRequest(w, "Malformed time value, expected HH:mm", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Geofence configuration
	case errors.Is(err, geo.ErrOfficeNotConfigured):
		InternalServerError(w, "Office location is not configured")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
