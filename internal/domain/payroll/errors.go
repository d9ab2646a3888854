package payroll

import (
	"errors"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
)

var (
	ErrPayrollRecordNotFound    = apperror.NotFound("payroll record")
	ErrPayrollRecordAlreadyPaid = apperror.Conflict("payroll record already paid, cannot modify")
	ErrInvalidPeriod            = errors.New("pay_period_end cannot be before pay_period_start")
	ErrNegativeAmount           = errors.New("amount cannot be negative")
	ErrInvalidStatus            = errors.New("status must be draft, processed or paid")
)
