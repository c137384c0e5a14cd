package report

import "context"

// ReportService reconstructs a pay period of expected-vs-actual
// attendance per employee.
type ReportService interface {
	// GenerateMonthlyReport builds the day-by-day ledger for the 21st-to-
	// 20th period, joining attendance records with holiday classification.
	GenerateMonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)

	// GenerateMonthlyReportXLSX renders the same report as a spreadsheet,
	// one sheet per employee with highlight fills.
	GenerateMonthlyReportXLSX(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, []byte, error)
}
