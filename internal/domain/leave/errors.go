package leave

import (
	"errors"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
)

var (
	ErrLeaveRequestNotFound         = apperror.NotFound("leave request")
	ErrLeaveRequestAlreadyProcessed = apperror.Conflict("leave request already processed")
	ErrInvalidAction                = errors.New("action must be approved or rejected")
	ErrRejectionReasonRequired      = errors.New("rejection_reason is required when rejecting")
	ErrInvalidDateRange             = errors.New("end_date cannot be before start_date")
)
