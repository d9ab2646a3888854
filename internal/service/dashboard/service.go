package dashboard

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/settings"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	employeeRepo    employee.EmployeeRepository
	attendanceRepo  attendance.AttendanceRepository
	leaveRepo       leave.LeaveRequestRepository
	settingsService settings.SettingsService
	now             func() time.Time
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	settingsService settings.SettingsService,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:    employeeRepo,
		attendanceRepo:  attendanceRepo,
		leaveRepo:       leaveRepo,
		settingsService: settingsService,
		now:             time.Now,
	}
}

// GetDashboard returns the dashboard cards. "Today" is the current date in
// the company timezone; the four collections are fetched concurrently.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	company, err := s.settingsService.GetSettings(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}
	now := s.now().In(company.Location())
	today := now.Format(validator.DateLayout)

	var (
		employees []employee.Employee
		todays    []attendance.Attendance
		recent    []attendance.Attendance
		requests  []leave.LeaveRequestWithEmployee
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		todays, err = s.attendanceRepo.List(gCtx, attendance.ListFilter{Date: today})
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.attendanceRepo.List(gCtx, attendance.ListFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		requests, err = s.leaveRepo.List(gCtx, leave.ListFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, err
	}

	stats := employeeStats(employees)
	attended := 0
	for _, a := range todays {
		if a.Status == attendance.StatusPresent || a.Status == attendance.StatusLate {
			attended++
		}
	}

	return dashboard.DashboardResponse{
		Employees: stats,
		Today: dashboard.TodayAttendance{
			Date:    today,
			Present: attended,
			Rate:    attendance.Percent(attended, stats.Active),
			Summary: attendance.Summarize(todays),
		},
		Leave:            leave.CountByStatus(requests),
		RecentAttendance: recentWithNames(recent, employees),
		UpdatedAt:        now.Format(time.RFC3339),
	}, nil
}

func employeeStats(employees []employee.Employee) dashboard.EmployeeStats {
	stats := dashboard.EmployeeStats{Total: len(employees)}
	departments := make(map[string]struct{})
	for _, e := range employees {
		switch e.Status {
		case employee.StatusActive:
			stats.Active++
		case employee.StatusOnLeave:
			stats.OnLeave++
		case employee.StatusInactive:
			stats.Inactive++
		}
		if e.Department != "" {
			departments[e.Department] = struct{}{}
		}
	}
	stats.Departments = len(departments)
	return stats
}

func recentWithNames(records []attendance.Attendance, employees []employee.Employee) []attendance.AttendanceWithEmployee {
	if len(records) > dashboard.RecentAttendanceLimit {
		records = records[:dashboard.RecentAttendanceLimit]
	}
	byID := make(map[string]employee.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	out := make([]attendance.AttendanceWithEmployee, 0, len(records))
	for _, r := range records {
		row := attendance.AttendanceWithEmployee{Attendance: r, EmployeeName: "Unknown"}
		if e, ok := byID[r.EmployeeID]; ok {
			row.EmployeeName = e.FullName()
			row.Department = e.Department
		}
		out = append(out, row)
	}
	return out
}
