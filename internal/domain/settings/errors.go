package settings

import "errors"

var (
	ErrInvalidWorkingHours = errors.New("working_hours must be greater than 0 and at most 24")
	ErrInvalidTimezone     = errors.New("timezone must be a valid IANA time zone")
	ErrInvalidCurrency     = errors.New("currency must be a supported ISO 4217 code")
)
