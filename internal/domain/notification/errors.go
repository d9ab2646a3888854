package notification

import (
	"errors"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
)

var (
	ErrRecipientMissing = errors.New("employee has no email address")
	ErrRenderFailed     = errors.New("failed to render notification")
	ErrSendInProgress   = apperror.Conflict("leave notification is already being sent")
)
