package notification

import (
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
)

// NotSpecified is shown when a request carries no reason.
const NotSpecified = "Not specified"

// LeaveDecisionEmail is the view data of the leave decision template.
type LeaveDecisionEmail struct {
	To              string
	Subject         string
	Title           string
	EmployeeName    string
	Action          leave.Action
	LeaveType       string
	StartDate       string
	EndDate         string
	DaysRequested   int
	Reason          string
	RejectionReason string
}

// ShowRejection reports whether the rejection section is rendered.
func (e LeaveDecisionEmail) ShowRejection() bool {
	return e.Action == leave.ActionRejected && e.RejectionReason != ""
}

// emailDateLayout renders dates as month/day/year without padding.
const emailDateLayout = "1/2/2006"

// NewLeaveDecisionEmail builds the email for action on req. The rejection
// reason comes from the invocation, falling back to the stored one.
func NewLeaveDecisionEmail(req leave.LeaveRequestWithEmployee, action leave.Action, rejectionReason *string) LeaveDecisionEmail {
	title := "Leave Request " + action.Title()
	e := LeaveDecisionEmail{
		To:            req.EmployeeEmail,
		Subject:       title,
		Title:         title,
		EmployeeName:  req.EmployeeName(),
		Action:        action,
		LeaveType:     req.LeaveType,
		StartDate:     req.StartDate.Format(emailDateLayout),
		EndDate:       req.EndDate.Format(emailDateLayout),
		DaysRequested: req.DaysRequested,
		Reason:        NotSpecified,
	}
	if req.Reason != nil && *req.Reason != "" {
		e.Reason = *req.Reason
	}
	switch {
	case rejectionReason != nil && *rejectionReason != "":
		e.RejectionReason = *rejectionReason
	case req.RejectionReason != nil:
		e.RejectionReason = *req.RejectionReason
	}
	return e
}
