package middleware

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/profile"
	"github.com/cmlabs-hris/hris-admin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/session"
)

// RequirePermission checks if the principal's role grants permission
func RequirePermission(permission profile.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := session.FromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Not signed in")
				return
			}

			if !p.Can(permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", permission, p.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
