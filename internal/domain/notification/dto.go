package notification

import (
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
)

// LeaveDecisionRequest is the dispatcher payload. Field names follow the
// public endpoint contract.
type LeaveDecisionRequest struct {
	LeaveRequestID  string       `json:"leaveRequestId"`
	Action          leave.Action `json:"action"`
	RejectionReason *string      `json:"rejectionReason,omitempty"`
}

func (r LeaveDecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("leaveRequestId", r.LeaveRequestID)
	if !validator.IsEmpty(r.LeaveRequestID) && !validator.IsValidUUID(strings.TrimSpace(r.LeaveRequestID)) {
		errs.Add("leaveRequestId", "leaveRequestId must be a valid UUID")
	}
	if !r.Action.IsValid() {
		errs.Add("action", leave.ErrInvalidAction.Error())
	}

	return errs.Err()
}

// DedupeKey identifies one decision notification for one leave request.
func (r LeaveDecisionRequest) DedupeKey() string {
	return "leave-notification:" + strings.TrimSpace(r.LeaveRequestID) + ":" + string(r.Action)
}

// LeaveDecisionResult is the success body. Duplicate is set when an earlier
// invocation already sent this decision and nothing was sent now.
type LeaveDecisionResult struct {
	Success   bool   `json:"success"`
	EmailID   string `json:"emailId"`
	Duplicate bool   `json:"duplicate,omitempty"`
}

// ErrorResponse is the failure body of the dispatcher endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
