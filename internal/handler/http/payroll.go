package http

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-admin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/form"
)

type PayrollHandler interface {
	ListPayrollRecords(w http.ResponseWriter, r *http.Request)
	GetPayrollRecord(w http.ResponseWriter, r *http.Request)
	CreatePayrollRecord(w http.ResponseWriter, r *http.Request)
	EditPayrollRecord(w http.ResponseWriter, r *http.Request)
	UpdatePayrollRecord(w http.ResponseWriter, r *http.Request)
	DeletePayrollRecord(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
	binding        form.Binding[payroll.Draft, payroll.PayrollRecord]
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
		binding: form.Binding[payroll.Draft, payroll.PayrollRecord]{
			Entity:   "payroll record",
			Empty:    payroll.NewDraft,
			Validate: payroll.Draft.Validate,
			Create: func(ctx context.Context, d payroll.Draft) (payroll.PayrollRecord, error) {
				return payrollService.CreatePayrollRecord(ctx, d)
			},
			Update: func(ctx context.Context, id string, d payroll.Draft) (payroll.PayrollRecord, error) {
				return payrollService.UpdatePayrollRecord(ctx, id, d.ToUpdate())
			},
		},
	}
}

// ListPayrollRecords implements PayrollHandler
func (h *payrollHandlerImpl) ListPayrollRecords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := payroll.PayrollFilter{
		EmployeeID: q.Get("employee_id"),
		Status:     q.Get("status"),
		From:       q.Get("from"),
		To:         q.Get("to"),
	}

	result, err := h.payrollService.ListPayrollRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPayrollRecord implements PayrollHandler
func (h *payrollHandlerImpl) GetPayrollRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "Payroll record")
	if !ok {
		return
	}

	result, err := h.payrollService.GetPayrollRecord(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreatePayrollRecord implements PayrollHandler
func (h *payrollHandlerImpl) CreatePayrollRecord(w http.ResponseWriter, r *http.Request) {
	submitAdd(w, r, h.binding)
}

// EditPayrollRecord implements PayrollHandler
func (h *payrollHandlerImpl) EditPayrollRecord(w http.ResponseWriter, r *http.Request) {
	submitEdit(w, r, h.binding)
}

// UpdatePayrollRecord implements PayrollHandler
func (h *payrollHandlerImpl) UpdatePayrollRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "Payroll record")
	if !ok {
		return
	}
	var req payroll.UpdatePayrollRecordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.payrollService.UpdatePayrollRecord(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record updated successfully", result)
}

// DeletePayrollRecord implements PayrollHandler
func (h *payrollHandlerImpl) DeletePayrollRecord(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "payroll record", h.payrollService.DeletePayrollRecord)
}

// DownloadPayslip streams the payslip PDF for one record.
func (h *payrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "Payroll record")
	if !ok {
		return
	}

	data, filename, err := h.payrollService.GeneratePayslip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, "application/pdf", filename, data)
}
