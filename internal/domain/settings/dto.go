package settings

import (
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Draft is the company settings form.
type Draft struct {
	CompanyName  string      `json:"company_name"`
	WorkingHours form.Number `json:"working_hours"`
	Timezone     string      `json:"timezone"`
	Currency     string      `json:"currency"`

	// LeaveRequestNotifications is left on when omitted.
	LeaveRequestNotifications *bool `json:"leave_request_notifications"`
}

func DraftFromSettings(s CompanySettings) Draft {
	return Draft{
		CompanyName:  s.CompanyName,
		WorkingHours: form.Number(s.WorkingHours.String()),
		Timezone:     s.Timezone,
		Currency:     s.Currency,

		LeaveRequestNotifications: &s.LeaveRequestNotifications,
	}
}

func (d Draft) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("company_name", d.CompanyName)

	if h := validator.ParseAmount(d.WorkingHours.String()); h != nil {
		if !h.IsPositive() || h.GreaterThan(decimal.NewFromInt(24)) {
			errs.Add("working_hours", ErrInvalidWorkingHours.Error())
		}
	}
	if tz := strings.TrimSpace(d.Timezone); tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			errs.Add("timezone", ErrInvalidTimezone.Error())
		}
	}
	if c := strings.TrimSpace(d.Currency); c != "" && money.GetCurrency(strings.ToUpper(c)) == nil {
		errs.Add("currency", ErrInvalidCurrency.Error())
	}

	return errs.Err()
}

// ToSettings converts a validated draft; blank optional inputs keep defaults.
func (d Draft) ToSettings() CompanySettings {
	s := Defaults()
	s.CompanyName = strings.TrimSpace(d.CompanyName)
	if h := validator.ParseAmount(d.WorkingHours.String()); h != nil {
		s.WorkingHours = *h
	}
	if tz := strings.TrimSpace(d.Timezone); tz != "" {
		s.Timezone = tz
	}
	if c := strings.TrimSpace(d.Currency); c != "" {
		s.Currency = strings.ToUpper(c)
	}
	if d.LeaveRequestNotifications != nil {
		s.LeaveRequestNotifications = *d.LeaveRequestNotifications
	}
	return s
}
