package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/punchdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/punchdesk/attendance-backend-go/internal/domain/employee"
	"github.com/punchdesk/attendance-backend-go/internal/domain/holiday"
	"github.com/punchdesk/attendance-backend-go/internal/domain/report"
	"github.com/punchdesk/attendance-backend-go/internal/pkg/calendar"
	"github.com/punchdesk/attendance-backend-go/internal/pkg/clock"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	holidayRepo    holiday.HolidayRepository
	clock          clock.Clock
	loc            *time.Location
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	clk clock.Clock,
	loc *time.Location,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		holidayRepo:    holidayRepo,
		clock:          clk,
		loc:            loc,
	}
}

// periodRange returns the inclusive 21st-to-20th pay period for a
// 0-indexed month. time.Date normalizes month 0 to December of the
// prior year, which is exactly the January rollback the period needs.
func periodRange(year, month int, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 21, 0, 0, 0, 0, loc)
	end := time.Date(year, time.Month(month+1), 20, 0, 0, 0, 0, loc)
	return start, end
}

// enumerateDays expands the inclusive range into consecutive dates.
func enumerateDays(start, end time.Time) []time.Time {
	var days []time.Time
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		days = append(days, cur)
	}
	return days
}

// buildSheetRows joins one employee's records with the calendar
// classification for every date in the period.
func buildSheetRows(days []time.Time, records map[string]attendance.Attendance, overrides map[string]calendar.Override, loc *time.Location) []report.DayRow {
	rows := make([]report.DayRow, 0, len(days))

	for _, d := range days {
		dateStr := d.Format("2006-01-02")
		row := report.DayRow{
			Date:     dateStr,
			Day:      d.Format("Mon"),
			PunchIn:  "-",
			PunchOut: "-",
		}

		day := calendar.ResolveDay(d, overrides)

		if day.IsHoliday {
			row.Status = day.Label
		} else {
			row.Status = string(attendance.StatusAbsent)
		}

		att, exists := records[dateStr]
		if exists {
			row.PunchIn = att.PunchInTime.In(loc).Format("03:04 PM")
			if att.PunchOutTime != nil {
				row.PunchOut = att.PunchOutTime.In(loc).Format("03:04 PM")
			}
			row.LateMinutes = att.LateMinutes
			row.OvertimeMinutes = att.OvertimeMinutes
			row.Status = string(att.Status)

			// Attendance on an expected off-day is overtime-worthy.
			if day.IsHoliday {
				row.Status = day.Label + " (Worked)"
			}
		}

		// Highlight categories are mutually exclusive, checked in order.
		switch {
		case exists && (day.IsHoliday || att.OvertimeMinutes > 0):
			row.Highlight = report.HighlightOvertime
		case exists && att.Status == attendance.StatusHalfDay:
			row.Highlight = report.HighlightHalfDay
		case row.Status == string(attendance.StatusAbsent):
			row.Highlight = report.HighlightAbsent
		case !exists && day.IsHoliday:
			row.Highlight = report.HighlightHoliday
		}

		rows = append(rows, row)
	}

	return rows
}

// GenerateMonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateMonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	start, end := periodRange(req.Year, req.Month, s.loc)
	days := enumerateDays(start, end)

	overrides, err := s.loadOverrides(ctx, start, end)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	employees, err := s.loadEmployees(ctx, req.TargetUID)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	dates := make([]string, len(days))
	for i, d := range days {
		dates[i] = d.Format("2006-01-02")
	}

	sheets := make([]report.EmployeeSheet, 0, len(employees))
	for _, emp := range employees {
		records, err := s.attendanceRepo.GetByKeys(ctx, emp.UID, dates)
		if err != nil {
			return report.MonthlyReport{}, fmt.Errorf("failed to batch get attendance for %s: %w", emp.UID, err)
		}

		sheets = append(sheets, report.EmployeeSheet{
			UID:  emp.UID,
			Name: emp.Name,
			Rows: buildSheetRows(days, records, overrides, s.loc),
		})
	}

	return report.MonthlyReport{
		PeriodStart: start.Format("2006-01-02"),
		PeriodEnd:   end.Format("2006-01-02"),
		GeneratedAt: s.clock.Now().UTC().Format(time.RFC3339),
		Filename:    reportFilename(start, end, req.TargetUID, employees),
		Sheets:      sheets,
	}, nil
}

// GenerateMonthlyReportXLSX implements report.ReportService.
func (s *ReportServiceImpl) GenerateMonthlyReportXLSX(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, []byte, error) {
	rep, err := s.GenerateMonthlyReport(ctx, req)
	if err != nil {
		return report.MonthlyReport{}, nil, err
	}

	data, err := buildWorkbook(rep)
	if err != nil {
		return report.MonthlyReport{}, nil, fmt.Errorf("failed to build workbook: %w", err)
	}
	return rep, data, nil
}

func (s *ReportServiceImpl) loadOverrides(ctx context.Context, start, end time.Time) (map[string]calendar.Override, error) {
	holidays, err := s.holidayRepo.GetRange(ctx, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to get holidays in range: %w", err)
	}

	overrides := make(map[string]calendar.Override, len(holidays))
	for date, h := range holidays {
		overrides[date] = calendar.Override{
			Name: h.Name,
			Type: calendar.OverrideType(h.Type),
		}
	}
	return overrides, nil
}

func (s *ReportServiceImpl) loadEmployees(ctx context.Context, targetUID *string) ([]employee.Employee, error) {
	if targetUID != nil {
		emp, err := s.employeeRepo.GetByUID(ctx, *targetUID)
		if err != nil {
			return nil, fmt.Errorf("failed to get employee %s: %w", *targetUID, err)
		}
		return []employee.Employee{emp}, nil
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func reportFilename(start, end time.Time, targetUID *string, employees []employee.Employee) string {
	if targetUID != nil && len(employees) > 0 {
		name := strings.Join(strings.Fields(employees[0].Name), "_")
		return fmt.Sprintf("%s_Attendance_%s.xlsx", name, start.Format("Jan"))
	}
	return fmt.Sprintf("Attendance_Report_%s_to_%s.xlsx", start.Format("Jan_02"), end.Format("Jan_02"))
}
