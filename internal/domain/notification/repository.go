package notification

import (
	"context"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
)

// LeaveReader is the one read a dispatch performs.
type LeaveReader interface {
	GetWithEmployee(ctx context.Context, id string) (leave.LeaveRequestWithEmployee, error)
}

// DedupeStore remembers which decisions were already sent.
type DedupeStore interface {
	// Reserve claims key. When the key is already held it returns the email
	// id stored under it, or "" while the holder is still sending.
	Reserve(ctx context.Context, key string) (bool, string, error)
	// Complete stores emailID under a reserved key.
	Complete(ctx context.Context, key, emailID string) error
	// Release frees a reserved key after a failed send.
	Release(ctx context.Context, key string) error
}
