package auth

import (
	"context"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/profile"
)

// SessionInfo describes the token a request was authenticated with.
type SessionInfo struct {
	UserID    string       `json:"user_id"`
	Email     string       `json:"email"`
	Role      profile.Role `json:"role"`
	ExpiresAt int64        `json:"expires_at"`
}

type AuthService interface {
	CurrentSession(ctx context.Context) (SessionInfo, error)
	// SignOut revokes the token carried by ctx until it expires.
	SignOut(ctx context.Context) error
}
