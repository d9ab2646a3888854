package payroll

import "context"

// PayrollRepository defines data access methods for payroll records.
type PayrollRepository interface {
	// List returns records matching filter, newest first.
	List(ctx context.Context, filter PayrollFilter) ([]PayrollRecord, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	Update(ctx context.Context, id string, req UpdatePayrollRecordRequest) (PayrollRecord, error)
	Delete(ctx context.Context, id string) error
}
