package leave

import (
	"context"
)

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	// List returns requests joined with employee names, newest first.
	List(ctx context.Context, filter ListFilter) ([]LeaveRequestWithEmployee, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetWithEmployee(ctx context.Context, id string) (LeaveRequestWithEmployee, error)
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveRequest, error)
	// Decide moves a pending request to a terminal status atomically.
	// It returns ErrLeaveRequestAlreadyProcessed when the request is no longer pending.
	Decide(ctx context.Context, id string, decision Decision) (LeaveRequest, error)
	Delete(ctx context.Context, id string) error
}
