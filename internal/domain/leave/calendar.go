package leave

import (
	"slices"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
)

// DateOnly drops the clock and zone, keeping the calendar date as UTC midnight.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// InclusiveDays is the number of calendar days from start to end, both included.
// It returns 0 when end is before start.
func InclusiveDays(start, end time.Time) int {
	s, e := DateOnly(start), DateOnly(end)
	if e.Before(s) {
		return 0
	}
	// Both values are UTC midnights, so the difference is a whole number of days.
	return int(e.Sub(s).Hours()/24) + 1
}

// ExpandDays lists every calendar day from start to end inclusive.
func ExpandDays(start, end time.Time) []time.Time {
	s, e := DateOnly(start), DateOnly(end)
	if e.Before(s) {
		return nil
	}
	days := make([]time.Time, 0, InclusiveDays(s, e))
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// ApprovedLeaveDays is the sorted set of calendar days covered by approved
// requests. Pending and rejected requests are ignored.
func ApprovedLeaveDays[T interface{ GetLeaveRequest() LeaveRequest }](requests []T) []time.Time {
	seen := make(map[time.Time]struct{})
	var out []time.Time
	for _, r := range requests {
		l := r.GetLeaveRequest()
		if l.Status != StatusApproved {
			continue
		}
		for _, d := range ExpandDays(l.StartDate, l.EndDate) {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			out = append(out, d)
		}
	}
	slices.SortFunc(out, func(a, b time.Time) int { return a.Compare(b) })
	return out
}

// FormatDays renders days as YYYY-MM-DD strings.
func FormatDays(days []time.Time) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.Format(validator.DateLayout)
	}
	return out
}

func (l LeaveRequest) GetLeaveRequest() LeaveRequest {
	return l
}
