package attendance

import (
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// WorkedHours computes hours worked (time out minus time in, less the break)
// and overtime beyond workingHours. Both are nil when the shift is incomplete.
// A time out earlier than time in is treated as an overnight shift.
func WorkedHours(timeIn, timeOut, breakStart, breakEnd *string, workingHours decimal.Decimal) (hours, overtime *decimal.Decimal) {
	in, ok := clock(timeIn)
	if !ok {
		return nil, nil
	}
	out, ok := clock(timeOut)
	if !ok {
		return nil, nil
	}
	if out < in {
		out += 24 * time.Hour
	}
	worked := out - in

	if bs, ok := clock(breakStart); ok {
		if be, ok := clock(breakEnd); ok && be > bs {
			worked -= be - bs
		}
	}
	if worked < 0 {
		worked = 0
	}

	h := decimal.NewFromFloat(worked.Minutes()).Div(decimal.NewFromInt(60)).Round(2)
	ot := decimal.Zero
	if h.GreaterThan(workingHours) {
		ot = h.Sub(workingHours)
	}
	return &h, &ot
}

// clock parses an optional "HH:MM" value into an offset from midnight.
func clock(s *string) (time.Duration, bool) {
	if s == nil {
		return 0, false
	}
	t, ok := validator.IsValidTime(*s)
	if !ok {
		return 0, false
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, true
}
