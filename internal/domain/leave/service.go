package leave

import "context"

type LeaveService interface {
	ListLeaveRequests(ctx context.Context, filter ListFilter) (ListResponse, error)
	GetLeaveRequest(ctx context.Context, id string) (LeaveRequestWithEmployee, error)
	CreateLeaveRequest(ctx context.Context, draft Draft) (LeaveRequest, error)
	UpdateLeaveRequest(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveRequest, error)
	// DecideLeaveRequest approves or rejects a pending request, then notifies the employee.
	DecideLeaveRequest(ctx context.Context, id string, req DecisionRequest) (DecisionResult, error)
	DeleteLeaveRequest(ctx context.Context, id string) error
}
