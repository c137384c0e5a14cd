package attendance

import (
	"time"

	"github.com/punchdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/punchdesk/attendance-backend-go/internal/pkg/shift"
)

// lateAndRequiredOut computes the lateness and checkout deadline for a
// punch-in instant against the day's shift start. Arriving before the
// shift start is never late; the grace period only forgives delay after
// it. Late minutes are added to the deadline so the employee makes the
// time up.
func lateAndRequiredOut(punchIn time.Time, cfg shift.Config, officeStart time.Time) (int, time.Time) {
	graceEnd := officeStart.Add(cfg.GracePeriod)

	lateMinutes := 0
	if punchIn.After(graceEnd) {
		lateMinutes = int(punchIn.Sub(officeStart) / time.Minute)
	}

	requiredOut := officeStart.Add(cfg.Duration + time.Duration(lateMinutes)*time.Minute)
	return lateMinutes, requiredOut
}

// punchOutOutcome classifies a live punch-out against the stored
// checkout deadline. Leaving early without the half-day acknowledgment
// marks the day Absent; the UI is expected to prompt before sending an
// unforced early punch-out.
func punchOutOutcome(now, requiredOut time.Time, forceHalfDay bool) (attendance.Status, int, attendance.OvertimeStatus) {
	status := attendance.StatusPresent
	if now.Before(requiredOut) {
		if forceHalfDay {
			status = attendance.StatusHalfDay
		} else {
			status = attendance.StatusAbsent
		}
	}

	overtimeMinutes := 0
	if now.After(requiredOut) {
		overtimeMinutes = int(now.Sub(requiredOut) / time.Minute)
	}

	overtimeStatus := attendance.OvertimeNone
	if overtimeMinutes > 0 {
		overtimeStatus = attendance.OvertimePending
	}

	return status, overtimeMinutes, overtimeStatus
}

// editedOutcome classifies an admin-edited record that has both punch
// instants. Unlike the live punch-out path, half day is judged against
// the raw shift duration rather than the deadline (which includes late
// minutes); the two rules deliberately disagree when lateMinutes > 0.
// Overtime set by an admin edit is implicitly approved.
func editedOutcome(punchIn, punchOut, requiredOut time.Time, duration time.Duration) (attendance.Status, int, attendance.OvertimeStatus) {
	status := attendance.StatusPresent
	if punchOut.Sub(punchIn) < duration {
		status = attendance.StatusHalfDay
	}

	overtimeMinutes := 0
	if punchOut.After(requiredOut) {
		overtimeMinutes = int(punchOut.Sub(requiredOut) / time.Minute)
	}

	overtimeStatus := attendance.OvertimeNone
	if overtimeMinutes > 0 {
		overtimeStatus = attendance.OvertimeApproved
	}

	return status, overtimeMinutes, overtimeStatus
}
