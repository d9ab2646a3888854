package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/nullable"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Draft is the record-attendance form state.
type Draft struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	TimeIn     string `json:"time_in"`
	TimeOut    string `json:"time_out"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

func NewDraft() Draft {
	return Draft{
		Date:   time.Now().Format(validator.DateLayout),
		Status: string(StatusPresent),
	}
}

func DraftFromAttendance(a Attendance) Draft {
	return Draft{
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format(validator.DateLayout),
		TimeIn:     validator.StringOrEmpty(a.TimeIn),
		TimeOut:    validator.StringOrEmpty(a.TimeOut),
		BreakStart: validator.StringOrEmpty(a.BreakStart),
		BreakEnd:   validator.StringOrEmpty(a.BreakEnd),
		Status:     string(a.Status),
		Notes:      validator.StringOrEmpty(a.Notes),
	}
}

func (d Draft) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("employee_id", d.EmployeeID)
	errs.Required("date", d.Date)
	errs.Required("status", d.Status)

	if !validator.IsEmpty(d.EmployeeID) && !validator.IsValidUUID(d.EmployeeID) {
		errs.Add("employee_id", "employee_id must be a valid UUID")
	}
	if !validator.IsEmpty(d.Date) {
		if _, ok := validator.IsValidDate(d.Date); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}
	if !validator.IsEmpty(d.Status) && !Status(d.Status).IsValid() {
		errs.Add("status", ErrInvalidStatus.Error())
	}
	for field, v := range map[string]string{
		"time_in":     d.TimeIn,
		"time_out":    d.TimeOut,
		"break_start": d.BreakStart,
		"break_end":   d.BreakEnd,
	} {
		if validator.IsEmpty(v) {
			continue
		}
		if _, ok := validator.IsValidTime(strings.TrimSpace(v)); !ok {
			errs.Add(field, ErrInvalidTime.Error())
		}
	}

	return errs.Err()
}

// ToAttendance converts a validated draft, computing hours against the
// company's standard working hours.
func (d Draft) ToAttendance(workingHours decimal.Decimal) Attendance {
	date, _ := validator.IsValidDate(d.Date)
	a := Attendance{
		EmployeeID: strings.TrimSpace(d.EmployeeID),
		Date:       date,
		TimeIn:     validator.OptionalString(d.TimeIn),
		TimeOut:    validator.OptionalString(d.TimeOut),
		BreakStart: validator.OptionalString(d.BreakStart),
		BreakEnd:   validator.OptionalString(d.BreakEnd),
		Status:     Status(d.Status),
		Notes:      validator.OptionalString(d.Notes),
	}
	a.HoursWorked, a.OvertimeHours = WorkedHours(a.TimeIn, a.TimeOut, a.BreakStart, a.BreakEnd, workingHours)
	return a
}

// ToUpdate converts a validated edit-form draft into a patch of the clock,
// status and notes columns. Employee and date are fixed once recorded.
func (d Draft) ToUpdate() UpdateAttendanceRequest {
	return UpdateAttendanceRequest{
		TimeIn:     nullable.From(validator.OptionalString(d.TimeIn)),
		TimeOut:    nullable.From(validator.OptionalString(d.TimeOut)),
		BreakStart: nullable.From(validator.OptionalString(d.BreakStart)),
		BreakEnd:   nullable.From(validator.OptionalString(d.BreakEnd)),
		Status:     nullable.Of(d.Status),
		Notes:      nullable.From(validator.OptionalString(d.Notes)),
	}
}

// UpdateAttendanceRequest is a partial update. Hours are derived by the
// service from the merged clock values and are not accepted from clients.
type UpdateAttendanceRequest struct {
	TimeIn        nullable.Field[string]          `json:"time_in"`
	TimeOut       nullable.Field[string]          `json:"time_out"`
	BreakStart    nullable.Field[string]          `json:"break_start"`
	BreakEnd      nullable.Field[string]          `json:"break_end"`
	Status        nullable.Field[string]          `json:"status"`
	Notes         nullable.Field[string]          `json:"notes"`
	HoursWorked   nullable.Field[decimal.Decimal] `json:"-"`
	OvertimeHours nullable.Field[decimal.Decimal] `json:"-"`
}

func (r UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, f := range map[string]nullable.Field[string]{
		"time_in":     r.TimeIn,
		"time_out":    r.TimeOut,
		"break_start": r.BreakStart,
		"break_end":   r.BreakEnd,
	} {
		if f.Value == nil {
			continue
		}
		if _, ok := validator.IsValidTime(*f.Value); !ok {
			errs.Add(field, ErrInvalidTime.Error())
		}
	}
	if r.Status.Set && (r.Status.Value == nil || !Status(*r.Status.Value).IsValid()) {
		errs.Add("status", ErrInvalidStatus.Error())
	}

	return errs.Err()
}

// TouchesClock reports whether the patch changes any value hours depend on.
func (r UpdateAttendanceRequest) TouchesClock() bool {
	return r.TimeIn.Set || r.TimeOut.Set || r.BreakStart.Set || r.BreakEnd.Set
}

// Apply returns a with the clock and status fields of the patch applied.
func (r UpdateAttendanceRequest) Apply(a Attendance) Attendance {
	if r.TimeIn.Set {
		a.TimeIn = r.TimeIn.Value
	}
	if r.TimeOut.Set {
		a.TimeOut = r.TimeOut.Value
	}
	if r.BreakStart.Set {
		a.BreakStart = r.BreakStart.Value
	}
	if r.BreakEnd.Set {
		a.BreakEnd = r.BreakEnd.Value
	}
	if r.Status.Value != nil {
		a.Status = Status(*r.Status.Value)
	}
	if r.Notes.Set {
		a.Notes = r.Notes.Value
	}
	return a
}

// ListFilter narrows the store query by date range and employee; Status is
// applied in memory after names are resolved.
type ListFilter struct {
	Date       string `json:"date"`
	From       string `json:"from"`
	To         string `json:"to"`
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
}

func (f ListFilter) Validate() error {
	var errs validator.ValidationErrors
	for field, v := range map[string]string{"date": f.Date, "from": f.From, "to": f.To} {
		if v == "" {
			continue
		}
		if _, ok := validator.IsValidDate(v); !ok {
			errs.Add(field, field+" must be in YYYY-MM-DD format")
		}
	}
	return errs.Err()
}

const NoMatchMessage = "No attendance records match the current filters"

type ListResponse struct {
	Records []AttendanceWithEmployee `json:"records"`
	Summary Summary                  `json:"summary"`
	Empty   bool                     `json:"empty"`
	Message string                   `json:"message,omitempty"`
}
