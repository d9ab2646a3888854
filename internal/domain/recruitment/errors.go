package recruitment

import (
	"errors"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
)

var (
	ErrApplicantNotFound      = apperror.NotFound("applicant")
	ErrJobOfferNotFound       = apperror.NotFound("job offer")
	ErrOnboardingNotFound     = apperror.NotFound("onboarding record")
	ErrRegularizationNotFound = apperror.NotFound("regularization record")
	ErrInvalidTaskProgress    = errors.New("tasks_completed cannot exceed total_tasks")
)
