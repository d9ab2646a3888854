package employee

import (
	"errors"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
)

var (
	ErrEmployeeNotFound  = apperror.NotFound("employee")
	ErrInvalidStatus     = errors.New("status must be active, inactive or on leave")
	ErrNegativeSalary    = errors.New("salary cannot be negative")
	ErrFutureBirthDate   = errors.New("date of birth cannot be in the future")
	ErrInvalidYearRange  = errors.New("year attended to cannot be before year attended from")
	ErrEmployerDateRange = errors.New("employment to cannot be before employment from")
)
