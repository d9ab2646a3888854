package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hris-admin-go/internal/config"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/profile"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/settings"
	"github.com/cmlabs-hris/hris-admin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/jwt"
	serviceAuth "github.com/cmlabs-hris/hris-admin-go/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	employee.EmployeeService
	list      employee.ListResponse
	creates   int
	deleteErr error
}

func (f *fakeEmployeeService) ListEmployees(ctx context.Context, filter employee.Filter) (employee.ListResponse, error) {
	return f.list, nil
}

func (f *fakeEmployeeService) CreateEmployee(ctx context.Context, d employee.Draft) (employee.Employee, error) {
	f.creates++
	return employee.Employee{ID: "e-1", FirstName: d.FirstName, LastName: d.LastName}, nil
}

func (f *fakeEmployeeService) DeleteEmployee(ctx context.Context, id string) error {
	return f.deleteErr
}

type fakeLeaveService struct {
	leave.LeaveService
	result leave.DecisionResult
	err    error
}

func (f *fakeLeaveService) DecideLeaveRequest(ctx context.Context, id string, req leave.DecisionRequest) (leave.DecisionResult, error) {
	return f.result, f.err
}

type fakePayrollService struct {
	payroll.PayrollService
}

func (f *fakePayrollService) GeneratePayslip(ctx context.Context, id string) ([]byte, string, error) {
	if id != "pr-1" {
		return nil, "", payroll.ErrPayrollRecordNotFound
	}
	return []byte("%PDF-1.3 payslip"), "payslip-cruz-2024-03-01.pdf", nil
}

type fakeDispatcher struct {
	result notification.LeaveDecisionResult
	err    error
	calls  int
}

func (f *fakeDispatcher) Dispatch(ctx context.Context, req notification.LeaveDecisionRequest) (notification.LeaveDecisionResult, error) {
	f.calls++
	return f.result, f.err
}

type fakes struct {
	employees  *fakeEmployeeService
	leave      *fakeLeaveService
	dispatcher *fakeDispatcher
}

func newTestRouter(t *testing.T) (http.Handler, jwt.Service, *fakes) {
	t.Helper()

	jwtService := jwt.NewJWTService("test-secret", "15m")
	f := &fakes{
		employees:  &fakeEmployeeService{},
		leave:      &fakeLeaveService{},
		dispatcher: &fakeDispatcher{},
	}
	cfg := &config.Config{App: config.AppConfig{Env: "test", CORSOrigins: []string{"*"}}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var (
		attendanceService  attendance.AttendanceService
		recruitmentService recruitment.RecruitmentService
		dashboardService   dashboard.DashboardService
		reportService      report.ReportService
		profileService     profile.ProfileService
		settingsService    settings.SettingsService
	)

	r := NewRouter(
		cfg,
		logger,
		jwtService,
		NewEmployeeHandler(f.employees),
		NewAttendanceHandler(attendanceService),
		NewLeaveHandler(f.leave),
		NewPayrollHandler(&fakePayrollService{}),
		NewRecruitmentHandler(recruitmentService),
		NewDashboardHandler(dashboardService, reportService),
		NewSettingsHandler(serviceAuth.NewAuthService(jwtService), profileService, settingsService),
		NewNotificationHandler(f.dispatcher),
	)
	return r, jwtService, f
}

func tokenFor(t *testing.T, jwtService jwt.Service, role profile.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken("p-1", "user@example.com", role)
	require.NoError(t, err)
	return token
}

func do(h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type formBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Notice form.Notice     `json:"notice"`
		Data   json.RawMessage `json:"data"`
	} `json:"data"`
	Error *response.ErrorDetail `json:"error"`
}

func decodeForm(t *testing.T, rec *httptest.ResponseRecorder) formBody {
	t.Helper()
	var body formBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthRequired(t *testing.T) {
	h, jwtService, _ := newTestRouter(t)

	t.Run("missing token", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/v1/employees", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid signature", func(t *testing.T) {
		other := jwt.NewJWTService("other-secret", "15m")
		rec := do(h, http.MethodGet, "/api/v1/employees", tokenFor(t, other, profile.RoleAdministrator), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("signed out token is rejected", func(t *testing.T) {
		token := tokenFor(t, jwtService, profile.RoleAdministrator)

		rec := do(h, http.MethodPost, "/api/v1/session/sign-out", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = do(h, http.MethodGet, "/api/v1/session", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequirePermission(t *testing.T) {
	h, jwtService, _ := newTestRouter(t)

	rec := do(h, http.MethodGet, "/api/v1/employees", tokenFor(t, jwtService, profile.RoleEmployee), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(h, http.MethodPost, "/api/v1/employees", tokenFor(t, jwtService, profile.RoleManager), employee.Draft{})
	assert.Equal(t, http.StatusForbidden, rec.Code, "managers read employees but cannot edit them")

	rec = do(h, http.MethodGet, "/api/v1/employees", tokenFor(t, jwtService, profile.RoleManager), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetSession(t *testing.T) {
	h, jwtService, _ := newTestRouter(t)

	rec := do(h, http.MethodGet, "/api/v1/session", tokenFor(t, jwtService, profile.RoleManager), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data struct {
			UserID string `json:"user_id"`
			Role   string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "p-1", body.Data.UserID)
	assert.Equal(t, string(profile.RoleManager), body.Data.Role)
}

func TestListEmployees_Meta(t *testing.T) {
	h, jwtService, f := newTestRouter(t)
	f.employees.list = employee.ListResponse{
		Employees: []employee.Employee{},
		Total:     4,
		Matched:   0,
		Empty:     true,
		Message:   employee.NoMatchMessage,
	}

	rec := do(h, http.MethodGet, "/api/v1/employees?department=Sales", tokenFor(t, jwtService, profile.RoleAdministrator), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Meta)
	assert.Equal(t, 4, body.Meta.TotalItems)
	assert.Equal(t, 0, body.Meta.Matched)
	assert.Contains(t, rec.Body.String(), employee.NoMatchMessage)
}

func TestCreateEmployee(t *testing.T) {
	t.Run("validation blocks the store write", func(t *testing.T) {
		h, jwtService, f := newTestRouter(t)

		rec := do(h, http.MethodPost, "/api/v1/employees", tokenFor(t, jwtService, profile.RoleAdministrator),
			map[string]string{"first_name": "Ana"})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decodeForm(t, rec)
		assert.Equal(t, form.ValidationNotice, body.Data.Notice)
		require.NotNil(t, body.Error)
		assert.Contains(t, body.Error.Details, "last_name")
		assert.Equal(t, 0, f.employees.creates)
	})

	t.Run("success", func(t *testing.T) {
		h, jwtService, f := newTestRouter(t)

		rec := do(h, http.MethodPost, "/api/v1/employees", tokenFor(t, jwtService, profile.RoleAdministrator), map[string]string{
			"first_name": "Ana",
			"last_name":  "Cruz",
			"email":      "ana@example.com",
			"department": "Engineering",
			"position":   "QA",
			"hire_date":  "2024-01-10",
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeForm(t, rec)
		assert.Equal(t, form.SuccessNotice("employee", form.OpAdd), body.Data.Notice)
		assert.Contains(t, string(body.Data.Data), `"id":"e-1"`)
		assert.Equal(t, 1, f.employees.creates)
	})
}

func TestDeleteEmployee(t *testing.T) {
	h, jwtService, f := newTestRouter(t)
	token := tokenFor(t, jwtService, profile.RoleAdministrator)

	rec := do(h, http.MethodDelete, "/api/v1/employees/e-1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Employee deleted successfully", decodeForm(t, rec).Data.Notice.Description)

	f.employees.deleteErr = employee.ErrEmployeeNotFound
	rec = do(h, http.MethodDelete, "/api/v1/employees/missing", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Failed to delete employee", decodeForm(t, rec).Data.Notice.Description)
}

func TestDecideLeaveRequest(t *testing.T) {
	h, jwtService, f := newTestRouter(t)

	t.Run("notification failure is reported", func(t *testing.T) {
		f.leave.result = leave.DecisionResult{
			LeaveRequest:     leave.LeaveRequest{ID: "l-1", Status: leave.StatusRejected},
			NotificationSent: false,
		}
		rec := do(h, http.MethodPost, "/api/v1/leave-requests/l-1/decision", tokenFor(t, jwtService, profile.RoleManager),
			leave.DecisionRequest{Action: leave.ActionRejected})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Leave request rejected, but the employee could not be notified")
	})

	t.Run("notifications turned off", func(t *testing.T) {
		f.leave.result = leave.DecisionResult{
			LeaveRequest:          leave.LeaveRequest{ID: "l-1", Status: leave.StatusApproved},
			NotificationsDisabled: true,
		}
		rec := do(h, http.MethodPost, "/api/v1/leave-requests/l-1/decision", tokenFor(t, jwtService, profile.RoleManager),
			leave.DecisionRequest{Action: leave.ActionApproved})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"message":"Leave request approved"`)
		assert.Contains(t, rec.Body.String(), `"notifications_disabled":true`)
	})

	t.Run("already processed", func(t *testing.T) {
		f.leave.err = leave.ErrLeaveRequestAlreadyProcessed
		rec := do(h, http.MethodPost, "/api/v1/leave-requests/l-1/decision", tokenFor(t, jwtService, profile.RoleAdministrator),
			leave.DecisionRequest{Action: leave.ActionApproved})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("employees cannot decide", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/leave-requests/l-1/decision", tokenFor(t, jwtService, profile.RoleEmployee),
			leave.DecisionRequest{Action: leave.ActionApproved})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestDownloadPayslip(t *testing.T) {
	h, jwtService, _ := newTestRouter(t)
	token := tokenFor(t, jwtService, profile.RoleAdministrator)

	rec := do(h, http.MethodGet, "/api/v1/payroll/pr-1/payslip.pdf", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "payslip-cruz-2024-03-01.pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))

	rec = do(h, http.MethodGet, "/api/v1/payroll/missing/payslip.pdf", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSendLeaveDecision(t *testing.T) {
	id := "7f0c6b0e-1a2b-4c3d-8e9f-0a1b2c3d4e5f"
	body := notification.LeaveDecisionRequest{LeaveRequestID: id, Action: leave.ActionApproved}

	tests := []struct {
		name   string
		err    error
		status int
		want   string
	}{
		{"sent", nil, http.StatusOK, `"emailId":"msg-1"`},
		{"not found", leave.ErrLeaveRequestNotFound, http.StatusNotFound, `"error":"Leave request not found"`},
		{"already sending", notification.ErrSendInProgress, http.StatusConflict, `"error":"Notification is already being sent"`},
		{"no recipient", notification.ErrRecipientMissing, http.StatusUnprocessableEntity, `"error":"Employee has no email address"`},
		{"provider failure", &apperror.DispatchError{Provider: "resend", Err: errors.New("timeout")}, http.StatusBadGateway, `"error":"Failed to send email"`},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, `"error":"Internal server error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &fakeDispatcher{result: notification.LeaveDecisionResult{Success: true, EmailID: "msg-1"}, err: tt.err}
			h := NewNotificationHandler(d)

			rec := httptest.NewRecorder()
			payload, _ := json.Marshal(body)
			h.SendLeaveDecision(rec, httptest.NewRequest(http.MethodPost, "/send-leave-notification", bytes.NewReader(payload)))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
			assert.Equal(t, 1, d.calls)
		})
	}
}

func TestSendLeaveDecision_MalformedBody(t *testing.T) {
	d := &fakeDispatcher{}
	rec := httptest.NewRecorder()
	NewNotificationHandler(d).SendLeaveDecision(rec, httptest.NewRequest(http.MethodPost, "/send-leave-notification", bytes.NewBufferString("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, d.calls)
}
