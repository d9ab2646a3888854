package leave

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// CanTransitionTo reports whether a request in status s may move to next.
// Only pending requests can be decided, and decisions are final.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && (next == StatusApproved || next == StatusRejected)
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Action is a reviewer's decision on a pending request.
type Action string

const (
	ActionApproved Action = "approved"
	ActionRejected Action = "rejected"
)

func (a Action) IsValid() bool {
	return a == ActionApproved || a == ActionRejected
}

// Status is the request status an action moves to.
func (a Action) Status() Status {
	return Status(a)
}

// Title is the capitalized action used in notification subjects.
func (a Action) Title() string {
	if a == "" {
		return ""
	}
	return strings.ToUpper(string(a[:1])) + string(a[1:])
}

// LeaveRequest entity
type LeaveRequest struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	LeaveType       string     `json:"leave_type"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	DaysRequested   int        `json:"days_requested"`
	Reason          *string    `json:"reason"`
	Status          Status     `json:"status"`
	ApprovedBy      *string    `json:"approved_by"`
	ApprovedAt      *time.Time `json:"approved_at"`
	RejectionReason *string    `json:"rejection_reason"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// LeaveRequestWithEmployee is a leave request joined with its employee.
type LeaveRequestWithEmployee struct {
	LeaveRequest
	EmployeeFirstName string `json:"employee_first_name"`
	EmployeeLastName  string `json:"employee_last_name"`
	EmployeeEmail     string `json:"employee_email"`
}

func (l LeaveRequestWithEmployee) EmployeeName() string {
	return strings.TrimSpace(l.EmployeeFirstName + " " + l.EmployeeLastName)
}

// Decision is the store-level write for approving or rejecting a request.
type Decision struct {
	Status          Status
	DecidedBy       *string
	DecidedAt       time.Time
	RejectionReason *string
}
