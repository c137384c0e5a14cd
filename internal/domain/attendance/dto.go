package attendance

import (
	"github.com/punchdesk/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type PunchInRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r *PunchInRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchOutRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// ForceHalfDay acknowledges an early exit. Leaving before the
	// required punch-out without it classifies the day as Absent, so the
	// client must prompt before sending false on an early exit.
	ForceHalfDay bool `json:"force_half_day"`
}

func (r *PunchOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateAttendanceRequest is the admin edit: either time may be omitted
// to keep the stored instant. Times are office-timezone "HH:mm" on the
// record's stored date.
type UpdateAttendanceRequest struct {
	UID  string `json:"-"`
	Date string `json:"-"`

	PunchInTime  *string `json:"punch_in_time"`
	PunchOutTime *string `json:"punch_out_time"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UID) {
		errs = append(errs, validator.ValidationError{
			Field:   "uid",
			Message: "uid is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.PunchInTime != nil && !validator.IsValidClockLabel(*r.PunchInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "punch_in_time",
			Message: "punch_in_time must be in HH:mm format",
		})
	}

	if r.PunchOutTime != nil && !validator.IsValidClockLabel(*r.PunchOutTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "punch_out_time",
			Message: "punch_out_time must be in HH:mm format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// OvertimeDecisionRequest resolves a pending overtime accrual.
type OvertimeDecisionRequest struct {
	UID  string `json:"-"`
	Date string `json:"-"`

	Decision string `json:"decision"` // "approved" or "rejected"
}

func (r *OvertimeDecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UID) {
		errs = append(errs, validator.ValidationError{
			Field:   "uid",
			Message: "uid is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Decision, []string{string(OvertimeApproved), string(OvertimeRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be either approved or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MyAttendanceFilter limits the authenticated employee's own history.
type MyAttendanceFilter struct {
	Limit int
}

// AttendanceFilter is the admin listing filter; Date defaults to today
// in the office time zone.
type AttendanceFilter struct {
	Date *string
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	UID              string   `json:"uid"`
	Date             string   `json:"date"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	ShiftStart       string   `json:"shift_start"`
	PunchInTime      string   `json:"punch_in_time"`
	PunchInLat       float64  `json:"punch_in_lat"`
	PunchInLng       float64  `json:"punch_in_lng"`
	PunchOutTime     *string  `json:"punch_out_time"`
	PunchOutLat      *float64 `json:"punch_out_lat"`
	PunchOutLng      *float64 `json:"punch_out_lng"`
	RequiredPunchOut string   `json:"required_punch_out"`
	LateMinutes      int      `json:"late_minutes"`
	Status           string   `json:"status"`
	OvertimeMinutes  int      `json:"overtime_minutes"`
	OvertimeStatus   string   `json:"overtime_status"`
}
