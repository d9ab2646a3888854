package http

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/form"
)

type AttendanceHandler interface {
	ListAttendance(w http.ResponseWriter, r *http.Request)
	GetAttendance(w http.ResponseWriter, r *http.Request)
	RecordAttendance(w http.ResponseWriter, r *http.Request)
	EditAttendance(w http.ResponseWriter, r *http.Request)
	UpdateAttendance(w http.ResponseWriter, r *http.Request)
	DeleteAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	binding           form.Binding[attendance.Draft, attendance.Attendance]
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		binding: form.Binding[attendance.Draft, attendance.Attendance]{
			Entity:   "attendance record",
			Empty:    attendance.NewDraft,
			Validate: attendance.Draft.Validate,
			Create: func(ctx context.Context, d attendance.Draft) (attendance.Attendance, error) {
				return attendanceService.RecordAttendance(ctx, d)
			},
			Update: func(ctx context.Context, id string, d attendance.Draft) (attendance.Attendance, error) {
				return attendanceService.UpdateAttendance(ctx, id, d.ToUpdate())
			},
		},
	}
}

// ListAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := attendance.ListFilter{
		Date:       q.Get("date"),
		From:       q.Get("from"),
		To:         q.Get("to"),
		EmployeeID: q.Get("employee_id"),
		Status:     q.Get("status"),
	}

	result, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) GetAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "Attendance")
	if !ok {
		return
	}

	result, err := h.attendanceService.GetAttendance(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RecordAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	submitAdd(w, r, h.binding)
}

// EditAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) EditAttendance(w http.ResponseWriter, r *http.Request) {
	submitEdit(w, r, h.binding)
}

// UpdateAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "Attendance")
	if !ok {
		return
	}
	var req attendance.UpdateAttendanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.attendanceService.UpdateAttendance(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record updated successfully", result)
}

// DeleteAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, "attendance record", h.attendanceService.DeleteAttendance)
}
