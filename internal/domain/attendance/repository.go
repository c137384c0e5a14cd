package attendance

import (
	"context"
)

// AttendanceRepository defines data access for attendance records. The
// storage key is the composite {uid, date}.
type AttendanceRepository interface {
	// Create inserts a new record if and only if none exists for
	// {uid, date}. Returns ErrAlreadyPunchedIn when the key is taken;
	// this is the create-if-absent guard against concurrent punch-ins.
	Create(ctx context.Context, att Attendance) error

	// GetByKey retrieves the record for {uid, date}. Returns
	// ErrAttendanceNotFound when absent.
	GetByKey(ctx context.Context, uid, date string) (Attendance, error)

	// GetByKeys batch-fetches records for one uid across many dates in a
	// single round trip, keyed by date. Missing dates are simply absent
	// from the map.
	GetByKeys(ctx context.Context, uid string, dates []string) (map[string]Attendance, error)

	// Update rewrites the mutable fields of an existing record.
	Update(ctx context.Context, att Attendance) error

	// Delete removes the record for {uid, date}. Returns
	// ErrAttendanceNotFound when absent.
	Delete(ctx context.Context, uid, date string) error

	// ListByDate retrieves all records for one local calendar date.
	ListByDate(ctx context.Context, date string) ([]Attendance, error)

	// ListRecentByUID retrieves an employee's latest records, newest first.
	ListRecentByUID(ctx context.Context, uid string, limit int) ([]Attendance, error)
}
