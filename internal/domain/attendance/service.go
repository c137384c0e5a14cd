package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// PunchIn validates the geofence, resolves the shift, computes
	// lateness and the required punch-out, and creates the day record.
	PunchIn(ctx context.Context, req PunchInRequest) (AttendanceResponse, error)

	// PunchOut closes the open day record and classifies it.
	PunchOut(ctx context.Context, req PunchOutRequest) (AttendanceResponse, error)

	// GetMyAttendance retrieves recent records for the authenticated employee
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) ([]AttendanceResponse, error)

	// ListAttendance retrieves records for a given date (admin)
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)

	// GetAttendance retrieves a single record by {uid, date}
	GetAttendance(ctx context.Context, uid, date string) (AttendanceResponse, error)

	// UpdateAttendance retroactively rewrites punch times and recomputes
	// every derived field (admin)
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// DecideOvertime resolves a pending overtime accrual (admin)
	DecideOvertime(ctx context.Context, req OvertimeDecisionRequest) (AttendanceResponse, error)

	// DeleteAttendance hard-removes a record (admin)
	DeleteAttendance(ctx context.Context, uid, date string) error
}
