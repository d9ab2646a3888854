package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/profile"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	var verrs validator.ValidationErrors
	verrs.Add("first_name", "first_name is required")

	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"validation", verrs, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed"},
		{"wrapped validation", fmt.Errorf("create: %w", verrs), http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed"},
		{"recipient missing", notification.ErrRecipientMissing, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Employee has no email address"},
		{"not found", employee.ErrEmployeeNotFound, http.StatusNotFound, "NOT_FOUND", "Employee not found"},
		{"conflict", leave.ErrLeaveRequestAlreadyProcessed, http.StatusConflict, "CONFLICT", "Leave request already processed"},
		{"unauthenticated", profile.ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHORIZED", "Not signed in"},
		{"forbidden", profile.ErrInsufficientPermissions, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions"},
		{"dispatch", &apperror.DispatchError{Provider: "resend", Err: errors.New("503")}, http.StatusBadGateway, "BAD_GATEWAY", "Failed to send notification"},
		{"store", apperror.Store("employee.list", errors.New("connection refused")), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", unexpectedMessage},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", unexpectedMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := Classify(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, detail.Code)
			assert.Equal(t, tt.message, detail.Message)
		})
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	var verrs validator.ValidationErrors
	verrs.Add("email", "invalid email format")

	rec := httptest.NewRecorder()
	HandleError(rec, verrs)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "invalid email format", body.Error.Details["email"])
}

func TestHandleError_StoreCauseNotLeaked(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, apperror.Store("payroll.get", errors.New("password authentication failed")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestFile(t *testing.T) {
	rec := httptest.NewRecorder()
	File(rec, "application/pdf", "payslip.pdf", []byte("%PDF-1.3"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="payslip.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "8", rec.Header().Get("Content-Length"))
}
