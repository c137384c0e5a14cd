package report

import (
	"fmt"
	"time"

	"github.com/punchdesk/attendance-backend-go/internal/pkg/validator"
)

// MonthlyReportRequest targets one pay period: the 21st of the previous
// month through the 20th of the target month. Month is 0-indexed
// (0 = January) so a January report naturally rolls the start back to
// December 21 of the prior year.
type MonthlyReportRequest struct {
	Year  int
	Month int

	// TargetUID limits the report to a single employee.
	TargetUID *string
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 0 || r.Month > 11 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 0 and 11",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Highlight is the mutually exclusive cell category for a report row.
type Highlight string

const (
	HighlightNone     Highlight = ""
	HighlightOvertime Highlight = "overtime" // worked a holiday or accrued overtime
	HighlightHalfDay  Highlight = "half-day"
	HighlightAbsent   Highlight = "absent"
	HighlightHoliday  Highlight = "holiday" // expected off-day, no record
)

// DayRow is one calendar date in an employee's period ledger.
type DayRow struct {
	Date            string    `json:"date"`
	Day             string    `json:"day"`
	PunchIn         string    `json:"punch_in"`
	PunchOut        string    `json:"punch_out"`
	LateMinutes     int       `json:"late_minutes"`
	OvertimeMinutes int       `json:"overtime_minutes"`
	Status          string    `json:"status"`
	Highlight       Highlight `json:"highlight"`
}

// EmployeeSheet is one employee's full day-by-day ledger for the period.
type EmployeeSheet struct {
	UID  string   `json:"uid"`
	Name string   `json:"name"`
	Rows []DayRow `json:"rows"`
}

type MonthlyReport struct {
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
	GeneratedAt string          `json:"generated_at"`
	Filename    string          `json:"filename"`
	Sheets      []EmployeeSheet `json:"sheets"`
}
