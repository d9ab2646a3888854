package leave

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/nullable"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
)

// Draft is the leave request form state.
type Draft struct {
	EmployeeID    string      `json:"employee_id"`
	LeaveType     string      `json:"leave_type"`
	StartDate     string      `json:"start_date"`
	EndDate       string      `json:"end_date"`
	DaysRequested form.Number `json:"days_requested"`
	Reason        string      `json:"reason"`
}

func NewDraft() Draft {
	return Draft{}
}

func DraftFromLeaveRequest(l LeaveRequest) Draft {
	return Draft{
		EmployeeID:    l.EmployeeID,
		LeaveType:     l.LeaveType,
		StartDate:     l.StartDate.Format(validator.DateLayout),
		EndDate:       l.EndDate.Format(validator.DateLayout),
		DaysRequested: form.Number(validator.Itoa(l.DaysRequested)),
		Reason:        validator.StringOrEmpty(l.Reason),
	}
}

func (d Draft) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(d.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidUUID(d.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if validator.IsEmpty(d.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	var start, end time.Time
	var startOK, endOK bool
	if validator.IsEmpty(d.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if start, startOK = validator.IsValidDate(d.StartDate); !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(d.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if end, endOK = validator.IsValidDate(d.EndDate); !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: ErrInvalidDateRange.Error(),
		})
	}

	if days := validator.ParseInt(d.DaysRequested.String()); days != nil && *days <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days_requested",
			Message: "days_requested must be greater than 0",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToLeaveRequest converts a validated draft into a new pending request.
// A blank day count defaults to the inclusive length of the date range.
func (d Draft) ToLeaveRequest() LeaveRequest {
	start, _ := validator.IsValidDate(d.StartDate)
	end, _ := validator.IsValidDate(d.EndDate)

	days := InclusiveDays(start, end)
	if n := validator.ParseInt(d.DaysRequested.String()); n != nil {
		days = *n
	}

	return LeaveRequest{
		EmployeeID:    strings.TrimSpace(d.EmployeeID),
		LeaveType:     strings.TrimSpace(d.LeaveType),
		StartDate:     start,
		EndDate:       end,
		DaysRequested: days,
		Reason:        validator.OptionalString(d.Reason),
		Status:        StatusPending,
	}
}

// ToUpdate converts a validated edit-form draft into a full patch.
func (d Draft) ToUpdate() UpdateLeaveRequest {
	l := d.ToLeaveRequest()
	return UpdateLeaveRequest{
		LeaveType:     nullable.Of(l.LeaveType),
		StartDate:     nullable.Of(strings.TrimSpace(d.StartDate)),
		EndDate:       nullable.Of(strings.TrimSpace(d.EndDate)),
		DaysRequested: nullable.Of(l.DaysRequested),
		Reason:        nullable.From(l.Reason),
	}
}

// UpdateLeaveRequest edits a pending request. Status is absent: it only
// changes through a decision.
type UpdateLeaveRequest struct {
	LeaveType     nullable.Field[string] `json:"leave_type"`
	StartDate     nullable.Field[string] `json:"start_date"`
	EndDate       nullable.Field[string] `json:"end_date"`
	DaysRequested nullable.Field[int]    `json:"days_requested"`
	Reason        nullable.Field[string] `json:"reason"`
}

func (r UpdateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LeaveType.Set && (r.LeaveType.Value == nil || validator.IsEmpty(*r.LeaveType.Value)) {
		errs.Add("leave_type", "leave_type cannot be empty")
	}
	for field, f := range map[string]nullable.Field[string]{"start_date": r.StartDate, "end_date": r.EndDate} {
		if !f.Set {
			continue
		}
		if f.Value == nil {
			errs.Add(field, field+" cannot be empty")
			continue
		}
		if _, ok := validator.IsValidDate(*f.Value); !ok {
			errs.Add(field, field+" must be in YYYY-MM-DD format")
		}
	}
	if r.DaysRequested.Set && (r.DaysRequested.Value == nil || *r.DaysRequested.Value <= 0) {
		errs.Add("days_requested", "days_requested must be greater than 0")
	}

	return errs.Err()
}

// DatesChanged reports whether the patch moves either end of the range.
func (r UpdateLeaveRequest) DatesChanged() bool {
	return r.StartDate.Set || r.EndDate.Set
}

// Apply returns l with the patch applied, for range checks before writing.
func (r UpdateLeaveRequest) Apply(l LeaveRequest) LeaveRequest {
	if r.LeaveType.Value != nil {
		l.LeaveType = *r.LeaveType.Value
	}
	if r.StartDate.Value != nil {
		l.StartDate, _ = validator.IsValidDate(*r.StartDate.Value)
	}
	if r.EndDate.Value != nil {
		l.EndDate, _ = validator.IsValidDate(*r.EndDate.Value)
	}
	if r.DaysRequested.Value != nil {
		l.DaysRequested = *r.DaysRequested.Value
	}
	if r.Reason.Set {
		l.Reason = r.Reason.Value
	}
	return l
}

// DecisionRequest is the approve/reject payload from a reviewer.
type DecisionRequest struct {
	Action          Action  `json:"action"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

func (r DecisionRequest) Validate() error {
	var errs validator.ValidationErrors
	if !r.Action.IsValid() {
		errs.Add("action", ErrInvalidAction.Error())
	}
	if r.Action == ActionRejected && (r.RejectionReason == nil || validator.IsEmpty(*r.RejectionReason)) {
		errs.Add("rejection_reason", ErrRejectionReasonRequired.Error())
	}
	return errs.Err()
}

// DecisionResult reports the stored decision and whether the employee was
// notified. A failed notification never undoes the decision.
type DecisionResult struct {
	LeaveRequest     LeaveRequest `json:"leave_request"`
	NotificationSent bool         `json:"notification_sent"`
	EmailID          string       `json:"email_id,omitempty"`
	// NotificationsDisabled is set when company settings turn decision emails off.
	NotificationsDisabled bool `json:"notifications_disabled,omitempty"`
}

// ListFilter narrows the leave list. EmployeeID is applied by the store;
// Status is applied in memory so counts still cover every status.
type ListFilter struct {
	Status     string `json:"status"`
	EmployeeID string `json:"employee_id"`
}

const NoMatchMessage = "No leave requests match the current filters"

// ListResponse is the leave page payload: the joined list, status counts over
// the full fetched set and the approved-leave calendar days.
type ListResponse struct {
	Requests     []LeaveRequestWithEmployee `json:"requests"`
	Counts       StatusCounts               `json:"counts"`
	ApprovedDays []string                   `json:"approved_days"`
	Empty        bool                       `json:"empty"`
	Message      string                     `json:"message,omitempty"`
}
