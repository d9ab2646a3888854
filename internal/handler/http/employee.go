package http

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/form"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	EditEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
	binding         form.Binding[employee.Draft, employee.Employee]
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		binding: form.Binding[employee.Draft, employee.Employee]{
			Entity:   "employee",
			Empty:    employee.NewDraft,
			Validate: employee.Draft.Validate,
			Create: func(ctx context.Context, d employee.Draft) (employee.Employee, error) {
				return employeeService.CreateEmployee(ctx, d)
			},
			Update: func(ctx context.Context, id string, d employee.Draft) (employee.Employee, error) {
				return employeeService.UpdateEmployee(ctx, id, d.ToUpdate())
			},
		},
	}
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := employee.Filter{
		Search:     q.Get("search"),
		Department: q.Get("department"),
		Status:     q.Get("status"),
		Sort:       q.Get("sort"),
	}

	result, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{TotalItems: result.Total, Matched: result.Matched})
}

// GetEmployee returns the sectioned detail view.
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "Employee")
	if !ok {
		return
	}

	result, err := h.employeeService.GetEmployeeDetail(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	submitAdd(w, r, h.binding)
}

// EditEmployee submits the full edit form.
func (h *employeeHandlerImpl) EditEmployee(w http.ResponseWriter, r *http.Request) {
	submitEdit(w, r, h.binding)
}

// UpdateEmployee applies a partial update.
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "Employee")
	if !ok {
		return
	}
	var req employee.UpdateEmployeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.employeeService.UpdateEmployee(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

// DeleteEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "employee", h.employeeService.DeleteEmployee)
}
