package attendance

import (
	"time"
)

// Status is the day-level attendance state. A record starts as Working
// and becomes terminal once the punch-out completes.
type Status string

const (
	StatusWorking Status = "Working"
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusHalfDay Status = "Half Day"
)

// OvertimeStatus tracks the approval sub-state, independent of Status.
type OvertimeStatus string

const (
	OvertimeNone     OvertimeStatus = "none"
	OvertimePending  OvertimeStatus = "pending"
	OvertimeApproved OvertimeStatus = "approved"
	OvertimeRejected OvertimeStatus = "rejected"
)

// Attendance is one record per (employee, local calendar date). The
// composite key is {UID, Date}; Date is the office-timezone day the
// punch-in happened on, never the server day.
type Attendance struct {
	UID   string
	Date  string // "2006-01-02" in the office time zone
	Name  string
	Email string

	// ShiftStart is snapshotted at punch-in so retroactive edits use the
	// shift in effect that day even if the profile changes later. Empty
	// on legacy records; callers fall back to the profile shift.
	ShiftStart string

	PunchInTime time.Time
	PunchInLat  float64
	PunchInLng  float64

	PunchOutTime *time.Time
	PunchOutLat  *float64
	PunchOutLng  *float64

	// RequiredPunchOut is the checkout deadline computed at punch-in:
	// shift start + shift duration + late minutes.
	RequiredPunchOut time.Time

	LateMinutes     int
	Status          Status
	OvertimeMinutes int
	OvertimeStatus  OvertimeStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPunchedOut reports whether the record already carries a punch-out.
func (a *Attendance) HasPunchedOut() bool {
	return a.PunchOutTime != nil
}
