package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const costSheet = "Employee Costs"

var costHeaders = []string{"Employee", "Department", "Position", "Salary", "Benefits", "Overtime", "Total Cost"}

// ExportEmployeeCosts implements report.ReportService.
func (s *ReportServiceImpl) ExportEmployeeCosts(ctx context.Context, req report.ReportRequest) ([]byte, string, error) {
	rep, err := s.GetReport(ctx, req)
	if err != nil {
		return nil, "", err
	}

	data, err := employeeCostWorkbook(rep)
	if err != nil {
		slog.Error("Failed to build employee cost workbook", "month", rep.Month, "error", err)
		return nil, "", fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}
	return data, fmt.Sprintf("employee-costs-%s.xlsx", rep.Month), nil
}

func employeeCostWorkbook(rep report.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", costSheet); err != nil {
		return nil, err
	}

	for i, h := range costHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(costSheet, cell, h); err != nil {
			return nil, err
		}
	}

	row := 2
	for _, c := range rep.EmployeeCosts {
		values := []interface{}{
			c.Name, c.Department, c.Position,
			c.Salary.InexactFloat64(), c.Benefits.InexactFloat64(), c.Overtime.InexactFloat64(), c.TotalCost.InexactFloat64(),
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(costSheet, cell, &values); err != nil {
			return nil, err
		}
		row++
	}

	totals := []interface{}{
		"Total (" + rep.Currency + ")", "", "",
		rep.Expenses.Salaries.InexactFloat64(), rep.Expenses.Benefits.InexactFloat64(), rep.Expenses.Overtime.InexactFloat64(),
		rep.Expenses.Salaries.Add(rep.Expenses.Benefits).InexactFloat64(),
	}
	cell, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetSheetRow(costSheet, cell, &totals); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
