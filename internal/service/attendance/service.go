package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/punchdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/punchdesk/attendance-backend-go/internal/domain/employee"
	"github.com/punchdesk/attendance-backend-go/internal/pkg/clock"
	"github.com/punchdesk/attendance-backend-go/internal/pkg/geo"
	"github.com/punchdesk/attendance-backend-go/internal/pkg/jwt"
	"github.com/punchdesk/attendance-backend-go/internal/pkg/shift"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	geofence *geo.Geofence
	clock    clock.Clock
	loc      *time.Location
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	geofence *geo.Geofence,
	clk clock.Clock,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		geofence:             geofence,
		clock:                clk,
		loc:                  loc,
	}
}

// PunchIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchIn(ctx context.Context, req attendance.PunchInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	uid, err := jwt.UIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	emp, err := s.EmployeeRepository.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee profile: %w", err)
	}

	// Location check is mandatory before any state mutation.
	if err := s.geofence.Validate(req.Latitude, req.Longitude); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := s.clock.Now().UTC()
	nowLocal := nowUTC.In(s.loc)
	dateLocal := nowLocal.Format("2006-01-02")

	// Snapshot the shift label on the record so later edits use the
	// shift in effect today.
	shiftLabel := emp.Shift
	if shiftLabel == "" {
		shiftLabel = shift.DefaultLabel
	}
	cfg := shift.Resolve(shiftLabel)

	officeStart := cfg.StartOn(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), s.loc)
	lateMinutes, requiredOut := lateAndRequiredOut(nowUTC, cfg, officeStart)

	att := attendance.Attendance{
		UID:              uid,
		Date:             dateLocal,
		Name:             emp.Name,
		Email:            emp.Email,
		ShiftStart:       shiftLabel,
		PunchInTime:      nowUTC,
		PunchInLat:       req.Latitude,
		PunchInLng:       req.Longitude,
		RequiredPunchOut: requiredOut.UTC(),
		LateMinutes:      lateMinutes,
		Status:           attendance.StatusWorking,
		OvertimeMinutes:  0,
		OvertimeStatus:   attendance.OvertimeNone,
	}

	// Create-if-absent on {uid, date}: of two concurrent punch-ins only
	// one insert can win.
	if err := s.AttendanceRepository.Create(ctx, att); err != nil {
		if errors.Is(err, attendance.ErrAlreadyPunchedIn) {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyPunchedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return s.mapAttendanceToResponse(att), nil
}

// PunchOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchOut(ctx context.Context, req attendance.PunchOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	uid, err := jwt.UIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	if err := s.geofence.Validate(req.Latitude, req.Longitude); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowUTC := s.clock.Now().UTC()
	dateLocal := nowUTC.In(s.loc).Format("2006-01-02")

	att, err := s.AttendanceRepository.GetByKey(ctx, uid, dateLocal)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNoPunchInRecord
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if att.HasPunchedOut() {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyPunchedOut
	}

	// The deadline was fixed at punch-in; it is never recomputed here.
	status, overtimeMinutes, overtimeStatus := punchOutOutcome(nowUTC, att.RequiredPunchOut, req.ForceHalfDay)

	att.PunchOutTime = &nowUTC
	att.PunchOutLat = &req.Latitude
	att.PunchOutLng = &req.Longitude
	att.Status = status
	att.OvertimeMinutes = overtimeMinutes
	att.OvertimeStatus = overtimeStatus

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return s.mapAttendanceToResponse(att), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) ([]attendance.AttendanceResponse, error) {
	uid, err := jwt.UIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 30
	}

	records, err := s.AttendanceRepository.ListRecentByUID(ctx, uid, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, s.mapAttendanceToResponse(att))
	}
	return responses, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	date := s.clock.Now().UTC().In(s.loc).Format("2006-01-02")
	if filter.Date != nil {
		date = *filter.Date
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, s.mapAttendanceToResponse(att))
	}
	return responses, nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, uid, date string) (attendance.AttendanceResponse, error) {
	att, err := s.AttendanceRepository.GetByKey(ctx, uid, date)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return s.mapAttendanceToResponse(att), nil
}

// UpdateAttendance implements attendance.AttendanceService. Retroactive
// edits re-run the punch-in lateness rules against the record's stored
// date, then reclassify the day if a punch-out instant exists.
func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.AttendanceRepository.GetByKey(ctx, req.UID, req.Date)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	recordDate, err := time.ParseInLocation("2006-01-02", att.Date, s.loc)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("stored record has invalid date %q: %w", att.Date, err)
	}

	// The record snapshots the shift at punch-in; legacy records without
	// it fall back to the employee's current profile shift.
	shiftLabel := att.ShiftStart
	if shiftLabel == "" {
		emp, err := s.EmployeeRepository.GetByUID(ctx, att.UID)
		switch {
		case err == nil && emp.Shift != "":
			shiftLabel = emp.Shift
		case err != nil && !errors.Is(err, employee.ErrEmployeeNotFound):
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee profile: %w", err)
		default:
			shiftLabel = shift.DefaultLabel
		}
	}
	cfg := shift.Resolve(shiftLabel)

	punchIn := att.PunchInTime
	if req.PunchInTime != nil {
		punchIn, err = s.instantOn(recordDate, *req.PunchInTime)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
	}

	officeStart := cfg.StartOn(recordDate.Year(), recordDate.Month(), recordDate.Day(), s.loc)
	lateMinutes, requiredOut := lateAndRequiredOut(punchIn, cfg, officeStart)

	att.PunchInTime = punchIn
	att.LateMinutes = lateMinutes
	att.RequiredPunchOut = requiredOut.UTC()

	punchOut := att.PunchOutTime
	if req.PunchOutTime != nil {
		t, err := s.instantOn(recordDate, *req.PunchOutTime)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		punchOut = &t
	}
	att.PunchOutTime = punchOut

	if punchOut != nil {
		status, overtimeMinutes, overtimeStatus := editedOutcome(punchIn, *punchOut, att.RequiredPunchOut, cfg.Duration)
		att.Status = status
		att.OvertimeMinutes = overtimeMinutes
		att.OvertimeStatus = overtimeStatus
	} else {
		att.Status = attendance.StatusWorking
	}

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return s.mapAttendanceToResponse(att), nil
}

// DecideOvertime implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DecideOvertime(ctx context.Context, req attendance.OvertimeDecisionRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.AttendanceRepository.GetByKey(ctx, req.UID, req.Date)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if att.OvertimeStatus != attendance.OvertimePending {
		return attendance.AttendanceResponse{}, attendance.ErrNoPendingOvertime
	}

	att.OvertimeStatus = attendance.OvertimeStatus(req.Decision)

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return s.mapAttendanceToResponse(att), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, uid, date string) error {
	if err := s.AttendanceRepository.Delete(ctx, uid, date); err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	return nil
}

// instantOn parses an office-timezone "HH:mm" wall-clock string as an
// absolute UTC instant on the given calendar day.
func (s *AttendanceServiceImpl) instantOn(day time.Time, hhmm string) (time.Time, error) {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, attendance.ErrMalformedTime
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, s.loc).UTC(), nil
}

func (s *AttendanceServiceImpl) mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		UID:              att.UID,
		Date:             att.Date,
		Name:             att.Name,
		Email:            att.Email,
		ShiftStart:       att.ShiftStart,
		PunchInTime:      att.PunchInTime.In(s.loc).Format("2006-01-02 15:04:05"),
		PunchInLat:       att.PunchInLat,
		PunchInLng:       att.PunchInLng,
		RequiredPunchOut: att.RequiredPunchOut.In(s.loc).Format("2006-01-02 15:04:05"),
		LateMinutes:      att.LateMinutes,
		Status:           string(att.Status),
		OvertimeMinutes:  att.OvertimeMinutes,
		OvertimeStatus:   string(att.OvertimeStatus),
	}

	if att.PunchOutTime != nil {
		out := att.PunchOutTime.In(s.loc).Format("2006-01-02 15:04:05")
		resp.PunchOutTime = &out
	}
	resp.PunchOutLat = att.PunchOutLat
	resp.PunchOutLng = att.PunchOutLng

	return resp
}
