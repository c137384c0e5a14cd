package attendance

import "errors"

// Attendance domain errors
var (
	// Punch errors
	ErrAlreadyPunchedIn  = errors.New("already punched in for today")
	ErrNoPunchInRecord   = errors.New("no punch-in record found for today")
	ErrAlreadyPunchedOut = errors.New("already punched out today")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNoPendingOvertime  = errors.New("record has no pending overtime to decide")
	ErrMalformedTime      = errors.New("time must be in HH:mm format")
)
