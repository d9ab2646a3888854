// Package session carries the signed-in principal through request contexts.
package session

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/profile"
)

var ErrNoPrincipal = errors.New("no principal in context")

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID string
	Email  string
	Role   profile.Role
	Token  string
	// ExpiresAt is the token expiry as a unix timestamp.
	ExpiresAt int64
}

func (p Principal) Can(permission profile.Permission) bool {
	return profile.HasPermission(p.Role, permission)
}

type ctxKey struct{}

func NewContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(Principal)
	return p, ok
}

// UserID returns the principal's id, or nil for unauthenticated contexts.
func UserID(ctx context.Context) *string {
	p, ok := FromContext(ctx)
	if !ok || p.UserID == "" {
		return nil
	}
	id := p.UserID
	return &id
}

// FromClaims builds a principal from verified token claims.
func FromClaims(token string, claims map[string]interface{}) (Principal, error) {
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Principal{}, ErrNoPrincipal
	}
	email, _ := claims["email"].(string)
	role := profile.Role(stringClaim(claims, "role"))
	if !role.IsValid() {
		role = profile.RoleEmployee
	}

	p := Principal{UserID: sub, Email: email, Role: role, Token: token}
	switch exp := claims["exp"].(type) {
	case interface{ Unix() int64 }:
		p.ExpiresAt = exp.Unix()
	case float64:
		p.ExpiresAt = int64(exp)
	case int64:
		p.ExpiresAt = exp
	}
	return p, nil
}

func stringClaim(claims map[string]interface{}, key string) string {
	s, _ := claims[key].(string)
	return s
}
