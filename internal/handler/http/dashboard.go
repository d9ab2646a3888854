package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-admin-go/internal/handler/http/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetReport(w http.ResponseWriter, r *http.Request)
	ExportEmployeeCosts(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
	reportService    report.ReportService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService, reportService report.ReportService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
		reportService:    reportService,
	}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func reportRequest(r *http.Request) report.ReportRequest {
	q := r.URL.Query()
	return report.ReportRequest{
		Month:      q.Get("month"),
		Department: q.Get("department"),
	}
}

// GetReport handles GET /reports?month=YYYY-MM&department=
func (h *dashboardHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GetReport(r.Context(), reportRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportEmployeeCosts handles GET /reports/export.xlsx
func (h *dashboardHandlerImpl) ExportEmployeeCosts(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.reportService.ExportEmployeeCosts(r.Context(), reportRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, xlsxContentType, filename, data)
}
