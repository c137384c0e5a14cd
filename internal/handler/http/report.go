package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/punchdesk/attendance-backend-go/internal/domain/report"
	"github.com/punchdesk/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetMonthly(w http.ResponseWriter, r *http.Request)
	DownloadMonthly(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetMonthly implements ReportHandler.
func (h *reportHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	req, err := parseMonthlyRequest(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.reportService.GenerateMonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DownloadMonthly implements ReportHandler - spreadsheet export
func (h *reportHandlerImpl) DownloadMonthly(w http.ResponseWriter, r *http.Request) {
	req, err := parseMonthlyRequest(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, data, err := h.reportService.GenerateMonthlyReportXLSX(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

func parseMonthlyRequest(r *http.Request) (report.MonthlyReportRequest, error) {
	var req report.MonthlyReportRequest

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return req, fmt.Errorf("query parameter 'year' is required and must be a number")
	}
	// 0-indexed: 0 = January
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return req, fmt.Errorf("query parameter 'month' is required and must be a number")
	}

	req.Year = year
	req.Month = month
	if uid := r.URL.Query().Get("uid"); uid != "" {
		req.TargetUID = &uid
	}
	return req, nil
}
