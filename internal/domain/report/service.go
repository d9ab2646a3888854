package report

import (
	"context"
	"errors"
)

var ErrExportFailed = errors.New("failed to build report export")

type ReportService interface {
	GetReport(ctx context.Context, req ReportRequest) (Report, error)
	// ExportEmployeeCosts renders the employee cost table as an xlsx workbook
	ExportEmployeeCosts(ctx context.Context, req ReportRequest) ([]byte, string, error)
}
