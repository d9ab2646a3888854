package notification

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func joined() leave.LeaveRequestWithEmployee {
	return leave.LeaveRequestWithEmployee{
		LeaveRequest: leave.LeaveRequest{
			ID:            "6a1f0c52-1d7b-4c8e-9f3a-2b4c5d6e7f80",
			LeaveType:     "Vacation",
			StartDate:     time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			EndDate:       time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
			DaysRequested: 3,
			Status:        leave.StatusPending,
		},
		EmployeeFirstName: "Ana",
		EmployeeLastName:  "Cruz",
		EmployeeEmail:     "ana@x.com",
	}
}

func TestNewLeaveDecisionEmail_Approved(t *testing.T) {
	e := NewLeaveDecisionEmail(joined(), leave.ActionApproved, nil)

	assert.Equal(t, "ana@x.com", e.To)
	assert.Equal(t, "Leave Request Approved", e.Subject)
	assert.Equal(t, "Ana Cruz", e.EmployeeName)
	assert.Equal(t, "3/4/2024", e.StartDate)
	assert.Equal(t, "3/6/2024", e.EndDate)
	assert.Equal(t, NotSpecified, e.Reason)
	assert.False(t, e.ShowRejection())
}

func TestNewLeaveDecisionEmail_Rejected(t *testing.T) {
	req := joined()
	req.Reason = strPtr("Family trip")
	req.RejectionReason = strPtr("stored reason")

	e := NewLeaveDecisionEmail(req, leave.ActionRejected, strPtr("Insufficient coverage"))
	assert.Equal(t, "Leave Request Rejected", e.Subject)
	assert.Equal(t, "Family trip", e.Reason)
	assert.Equal(t, "Insufficient coverage", e.RejectionReason)
	assert.True(t, e.ShowRejection())

	e = NewLeaveDecisionEmail(req, leave.ActionRejected, nil)
	assert.Equal(t, "stored reason", e.RejectionReason)

	req.RejectionReason = nil
	e = NewLeaveDecisionEmail(req, leave.ActionRejected, nil)
	assert.False(t, e.ShowRejection())
}

func TestLeaveDecisionRequest_Validate(t *testing.T) {
	req := LeaveDecisionRequest{LeaveRequestID: "6a1f0c52-1d7b-4c8e-9f3a-2b4c5d6e7f80", Action: leave.ActionApproved}
	require.NoError(t, req.Validate())
	assert.Equal(t, "leave-notification:6a1f0c52-1d7b-4c8e-9f3a-2b4c5d6e7f80:approved", req.DedupeKey())

	err := LeaveDecisionRequest{Action: "maybe"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leaveRequestId")
	assert.Contains(t, err.Error(), "action")
}
