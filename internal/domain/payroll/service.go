package payroll

import "context"

type PayrollService interface {
	ListPayrollRecords(ctx context.Context, filter PayrollFilter) (ListResponse, error)
	GetPayrollRecord(ctx context.Context, id string) (PayrollRecord, error)
	// CreatePayrollRecord computes net pay from the draft components
	CreatePayrollRecord(ctx context.Context, draft Draft) (PayrollRecord, error)
	// UpdatePayrollRecord recomputes net pay after merging the patch; paid records are immutable
	UpdatePayrollRecord(ctx context.Context, id string, req UpdatePayrollRecordRequest) (PayrollRecord, error)
	DeletePayrollRecord(ctx context.Context, id string) error
	// GeneratePayslip renders a PDF payslip for one record
	GeneratePayslip(ctx context.Context, id string) ([]byte, string, error)
}
