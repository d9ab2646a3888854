package session

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromClaims(t *testing.T) {
	exp := time.Unix(1_700_000_000, 0)
	p, err := FromClaims("tok", map[string]interface{}{
		"sub":   "p-1",
		"email": "hr@example.com",
		"role":  "manager",
		"exp":   exp,
	})
	require.NoError(t, err)
	assert.Equal(t, "p-1", p.UserID)
	assert.Equal(t, profile.RoleManager, p.Role)
	assert.Equal(t, exp.Unix(), p.ExpiresAt)
	assert.True(t, p.Can(profile.PermissionLeaveApprove))
	assert.False(t, p.Can(profile.PermissionSettingsManage))
}

func TestFromClaims_UnknownRoleIsEmployee(t *testing.T) {
	p, err := FromClaims("tok", map[string]interface{}{"sub": "p-2", "role": "owner"})
	require.NoError(t, err)
	assert.Equal(t, profile.RoleEmployee, p.Role)
}

func TestFromClaims_MissingSubject(t *testing.T) {
	_, err := FromClaims("tok", map[string]interface{}{"email": "x@example.com"})
	assert.ErrorIs(t, err, ErrNoPrincipal)
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, UserID(ctx))

	ctx = NewContext(ctx, Principal{UserID: "p-1"})
	p, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "p-1", p.UserID)
	require.NotNil(t, UserID(ctx))
	assert.Equal(t, "p-1", *UserID(ctx))
}
