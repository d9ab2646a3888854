package auth

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/profile"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/session"
)

type AuthServiceImpl struct {
	jwt.Service
}

func NewAuthService(jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{Service: jwtService}
}

// CurrentSession implements auth.AuthService.
func (a *AuthServiceImpl) CurrentSession(ctx context.Context) (auth.SessionInfo, error) {
	p, ok := session.FromContext(ctx)
	if !ok {
		return auth.SessionInfo{}, profile.ErrUnauthenticated
	}
	return auth.SessionInfo{
		UserID:    p.UserID,
		Email:     p.Email,
		Role:      p.Role,
		ExpiresAt: p.ExpiresAt,
	}, nil
}

// SignOut implements auth.AuthService.
func (a *AuthServiceImpl) SignOut(ctx context.Context) error {
	p, ok := session.FromContext(ctx)
	if !ok || p.Token == "" {
		return profile.ErrUnauthenticated
	}

	a.RevokeToken(p.Token, p.ExpiresAt)
	slog.Info("Signed out", "user_id", p.UserID)
	return nil
}
