package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-admin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
)

// NotificationHandler serves the leave decision endpoint. Its bodies are
// {success, emailId} and {error}, not the API envelope.
type NotificationHandler interface {
	SendLeaveDecision(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	dispatcher notification.Dispatcher
}

func NewNotificationHandler(dispatcher notification.Dispatcher) NotificationHandler {
	return &notificationHandlerImpl{dispatcher: dispatcher}
}

// SendLeaveDecision implements NotificationHandler
func (h *notificationHandlerImpl) SendLeaveDecision(w http.ResponseWriter, r *http.Request) {
	var req notification.LeaveDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeNotificationError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.dispatcher.Dispatch(r.Context(), req)
	if err != nil {
		status, message := notificationStatus(err)
		writeNotificationError(w, status, message)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

func notificationStatus(err error) (int, string) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest, validationErrs.Error()
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound, "Leave request not found"
	case errors.Is(err, apperror.ErrConflict):
		return http.StatusConflict, "Notification is already being sent"
	case errors.Is(err, notification.ErrRecipientMissing):
		return http.StatusUnprocessableEntity, "Employee has no email address"
	case apperror.IsDispatch(err):
		slog.Error("Leave notification send failed", "error", err)
		return http.StatusBadGateway, "Failed to send email"
	}
	slog.Error("Leave notification failed", "error", err)
	return http.StatusInternalServerError, "Internal server error"
}

func writeNotificationError(w http.ResponseWriter, status int, message string) {
	response.JSON(w, status, notification.ErrorResponse{Error: message})
}
