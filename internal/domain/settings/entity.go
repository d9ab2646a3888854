package settings

import (
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
)

const (
	DefaultCompanyName = "My Company"
	DefaultTimezone    = "Asia/Manila"
	DefaultCurrency    = "PHP"
)

// DefaultWorkingHours is the standard shift length used for overtime.
var DefaultWorkingHours = decimal.NewFromInt(8)

// CompanySettings is the single company-wide settings row.
type CompanySettings struct {
	CompanyName  string          `json:"company_name"`
	WorkingHours decimal.Decimal `json:"working_hours"`
	Timezone     string          `json:"timezone"`
	Currency     string          `json:"currency"`
	UpdatedAt    time.Time       `json:"updated_at"`

	// LeaveRequestNotifications gates the email sent after a leave decision.
	LeaveRequestNotifications bool `json:"leave_request_notifications"`
}

func Defaults() CompanySettings {
	return CompanySettings{
		CompanyName:  DefaultCompanyName,
		WorkingHours: DefaultWorkingHours,
		Timezone:     DefaultTimezone,
		Currency:     DefaultCurrency,

		LeaveRequestNotifications: true,
	}
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (s CompanySettings) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
