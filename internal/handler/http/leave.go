package http

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/form"
)

type LeaveHandler interface {
	ListLeaveRequests(w http.ResponseWriter, r *http.Request)
	GetLeaveRequest(w http.ResponseWriter, r *http.Request)
	CreateLeaveRequest(w http.ResponseWriter, r *http.Request)
	EditLeaveRequest(w http.ResponseWriter, r *http.Request)
	UpdateLeaveRequest(w http.ResponseWriter, r *http.Request)
	DecideLeaveRequest(w http.ResponseWriter, r *http.Request)
	DeleteLeaveRequest(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
	binding      form.Binding[leave.Draft, leave.LeaveRequest]
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
		binding: form.Binding[leave.Draft, leave.LeaveRequest]{
			Entity:   "leave request",
			Empty:    leave.NewDraft,
			Validate: leave.Draft.Validate,
			Create: func(ctx context.Context, d leave.Draft) (leave.LeaveRequest, error) {
				return leaveService.CreateLeaveRequest(ctx, d)
			},
			Update: func(ctx context.Context, id string, d leave.Draft) (leave.LeaveRequest, error) {
				return leaveService.UpdateLeaveRequest(ctx, id, d.ToUpdate())
			},
		},
	}
}

// ListLeaveRequests implements LeaveHandler
func (h *leaveHandlerImpl) ListLeaveRequests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := leave.ListFilter{
		Status:     q.Get("status"),
		EmployeeID: q.Get("employee_id"),
	}

	result, err := h.leaveService.ListLeaveRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetLeaveRequest implements LeaveHandler
func (h *leaveHandlerImpl) GetLeaveRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "Leave request")
	if !ok {
		return
	}

	result, err := h.leaveService.GetLeaveRequest(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateLeaveRequest implements LeaveHandler
func (h *leaveHandlerImpl) CreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	submitAdd(w, r, h.binding)
}

// EditLeaveRequest implements LeaveHandler
func (h *leaveHandlerImpl) EditLeaveRequest(w http.ResponseWriter, r *http.Request) {
	submitEdit(w, r, h.binding)
}

// UpdateLeaveRequest implements LeaveHandler
func (h *leaveHandlerImpl) UpdateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "Leave request")
	if !ok {
		return
	}
	var req leave.UpdateLeaveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.leaveService.UpdateLeaveRequest(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request updated successfully", result)
}

// DecideLeaveRequest approves or rejects a pending request
func (h *leaveHandlerImpl) DecideLeaveRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "Leave request")
	if !ok {
		return
	}
	var req leave.DecisionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.leaveService.DecideLeaveRequest(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Leave request " + string(result.LeaveRequest.Status)
	if !result.NotificationSent && !result.NotificationsDisabled {
		message += ", but the employee could not be notified"
	}
	response.SuccessWithMessage(w, message, result)
}

// DeleteLeaveRequest implements LeaveHandler
func (h *leaveHandlerImpl) DeleteLeaveRequest(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "leave request", h.leaveService.DeleteLeaveRequest)
}
