package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees fetches the full roster and applies search, filters and sort in memory
	ListEmployees(ctx context.Context, filter Filter) (ListResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (Employee, error)

	// GetEmployeeDetail projects an employee into the sectioned detail view
	GetEmployeeDetail(ctx context.Context, id string) (Detail, error)

	// CreateEmployee validates a form draft and stores a new employee
	CreateEmployee(ctx context.Context, draft Draft) (Employee, error)

	// UpdateEmployee applies a partial update
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)

	DeleteEmployee(ctx context.Context, id string) error
}
