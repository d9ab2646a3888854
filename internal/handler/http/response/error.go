package response

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/profile"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
)

const unexpectedMessage = "An unexpected error occurred"

// Classify maps a domain error to its HTTP status and error body. Store and
// unknown errors are logged here and never described to the caller.
func Classify(err error) (int, ErrorDetail) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusUnprocessableEntity, ErrorDetail{
			Code:    "VALIDATION_ERROR",
			Message: "Validation failed",
			Details: validationErrs.ToMap(),
		}
	}

	switch {
	case errors.Is(err, notification.ErrRecipientMissing),
		errors.Is(err, leave.ErrInvalidDateRange),
		errors.Is(err, payroll.ErrInvalidPeriod):
		return http.StatusUnprocessableEntity, ErrorDetail{Code: "VALIDATION_ERROR", Message: form.Capitalize(err.Error())}

	case errors.Is(err, profile.ErrUnauthenticated):
		return http.StatusUnauthorized, ErrorDetail{Code: "UNAUTHORIZED", Message: "Not signed in"}
	case errors.Is(err, profile.ErrInsufficientPermissions):
		return http.StatusForbidden, ErrorDetail{Code: "FORBIDDEN", Message: "Insufficient permissions"}

	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound, ErrorDetail{Code: "NOT_FOUND", Message: form.Capitalize(err.Error())}
	case errors.Is(err, apperror.ErrConflict):
		msg := strings.TrimSuffix(err.Error(), ": "+apperror.ErrConflict.Error())
		return http.StatusConflict, ErrorDetail{Code: "CONFLICT", Message: form.Capitalize(msg)}

	case apperror.IsDispatch(err):
		slog.Error("Notification dispatch failed", "error", err)
		return http.StatusBadGateway, ErrorDetail{Code: "BAD_GATEWAY", Message: "Failed to send notification"}
	}

	slog.Error("Request failed", "error", err)
	return http.StatusInternalServerError, ErrorDetail{Code: "INTERNAL_SERVER_ERROR", Message: unexpectedMessage}
}

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	status, detail := Classify(err)
	writeJSON(w, status, Response{Success: false, Error: &detail})
}

// FormResult is the body of a form submission: the notice the dialog shows
// and, on success, the stored record.
type FormResult struct {
	Notice form.Notice `json:"notice"`
	Data   interface{} `json:"data,omitempty"`
}

// FormError writes a failed form submission with its notice.
func FormError(w http.ResponseWriter, err error, notice form.Notice) {
	status, detail := Classify(err)
	writeJSON(w, status, Response{
		Success: false,
		Message: notice.Description,
		Data:    FormResult{Notice: notice},
		Error:   &detail,
	})
}

// FormSuccess writes a successful form submission.
func FormSuccess(w http.ResponseWriter, statusCode int, notice form.Notice, data interface{}) {
	writeJSON(w, statusCode, Response{
		Success: true,
		Message: notice.Description,
		Data:    FormResult{Notice: notice, Data: data},
	})
}
