package profile

import (
	"errors"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
)

var (
	ErrProfileNotFound         = apperror.NotFound("profile")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrUnauthenticated         = errors.New("not signed in")
)
