package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusAbsent  Status = "Absent"
	StatusHalfDay Status = "Half Day"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusAbsent, StatusHalfDay:
		return true
	}
	return false
}

// Attendance is one employee's record for one calendar date.
// Clock fields hold "HH:MM" values.
type Attendance struct {
	ID            string           `json:"id"`
	EmployeeID    string           `json:"employee_id"`
	Date          time.Time        `json:"date"`
	TimeIn        *string          `json:"time_in"`
	TimeOut       *string          `json:"time_out"`
	BreakStart    *string          `json:"break_start"`
	BreakEnd      *string          `json:"break_end"`
	HoursWorked   *decimal.Decimal `json:"hours_worked"`
	OvertimeHours *decimal.Decimal `json:"overtime_hours"`
	Status        Status           `json:"status"`
	Notes         *string          `json:"notes"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// AttendanceWithEmployee carries the employee name resolved for display.
type AttendanceWithEmployee struct {
	Attendance
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
}
