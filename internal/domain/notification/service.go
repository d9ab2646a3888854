package notification

import "context"

// Dispatcher sends the leave decision email for one request. It performs a
// single read and at most one send, and never retries.
type Dispatcher interface {
	Dispatch(ctx context.Context, req LeaveDecisionRequest) (LeaveDecisionResult, error)
}
