package dashboard

import (
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
)

// RecentAttendanceLimit caps the latest attendance list.
const RecentAttendanceLimit = 10

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	Employees        EmployeeStats                       `json:"employees"`
	Today            TodayAttendance                     `json:"today"`
	Leave            leave.StatusCounts                  `json:"leave"`
	RecentAttendance []attendance.AttendanceWithEmployee `json:"recent_attendance"`
	UpdatedAt        string                              `json:"updated_at"`
}

// EmployeeStats contains head counts by status
type EmployeeStats struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	OnLeave     int `json:"on_leave"`
	Inactive    int `json:"inactive"`
	Departments int `json:"departments"`
}

// TodayAttendance summarizes attendance recorded for the current date
type TodayAttendance struct {
	Date    string             `json:"date"` // Format: "YYYY-MM-DD"
	Present int                `json:"present"`
	Rate    float64            `json:"rate"`
	Summary attendance.Summary `json:"summary"`
}
