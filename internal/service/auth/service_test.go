package auth

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/profile"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignOut_RevokesToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "15m")
	svc := NewAuthService(jwtService)

	token, exp, err := jwtService.GenerateAccessToken("p-1", "hr@example.com", profile.RoleAdministrator)
	require.NoError(t, err)

	ctx := session.NewContext(context.Background(), session.Principal{
		UserID: "p-1", Email: "hr@example.com", Role: profile.RoleAdministrator, Token: token, ExpiresAt: exp,
	})

	info, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p-1", info.UserID)
	assert.Greater(t, info.ExpiresAt, time.Now().Unix())

	require.NoError(t, svc.SignOut(ctx))
	assert.True(t, jwtService.IsTokenRevoked(token))
}

func TestSignOut_Unauthenticated(t *testing.T) {
	svc := NewAuthService(jwt.NewJWTService("test-secret", "15m"))

	assert.ErrorIs(t, svc.SignOut(context.Background()), profile.ErrUnauthenticated)
	_, err := svc.CurrentSession(context.Background())
	assert.ErrorIs(t, err, profile.ErrUnauthenticated)
}
