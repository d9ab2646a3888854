package attendance

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/settings"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/nullable"
	"golang.org/x/sync/errgroup"
)

type attendanceService struct {
	attendanceRepo  attendance.AttendanceRepository
	employeeRepo    employee.EmployeeRepository
	settingsService settings.SettingsService
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	settingsService settings.SettingsService,
) attendance.AttendanceService {
	return &attendanceService{
		attendanceRepo:  attendanceRepo,
		employeeRepo:    employeeRepo,
		settingsService: settingsService,
	}
}

// ListAttendance implements attendance.AttendanceService.
func (s *attendanceService) ListAttendance(ctx context.Context, filter attendance.ListFilter) (attendance.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}

	var (
		records   []attendance.Attendance
		employees []employee.Employee
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.List(gCtx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return attendance.ListResponse{}, err
	}

	byID := make(map[string]employee.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	status := strings.TrimSpace(filter.Status)
	matched := make([]attendance.Attendance, 0, len(records))
	rows := make([]attendance.AttendanceWithEmployee, 0, len(records))
	for _, rec := range records {
		if status != "" && !strings.EqualFold(status, "all") && !strings.EqualFold(string(rec.Status), status) {
			continue
		}
		row := attendance.AttendanceWithEmployee{Attendance: rec, EmployeeName: "Unknown"}
		if e, ok := byID[rec.EmployeeID]; ok {
			row.EmployeeName = e.FullName()
			row.Department = e.Department
		}
		matched = append(matched, rec)
		rows = append(rows, row)
	}

	resp := attendance.ListResponse{
		Records: rows,
		Summary: attendance.Summarize(matched),
	}
	if len(rows) == 0 {
		resp.Empty = true
		resp.Message = attendance.NoMatchMessage
	}
	return resp, nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *attendanceService) GetAttendance(ctx context.Context, id string) (attendance.Attendance, error) {
	return s.attendanceRepo.GetByID(ctx, id)
}

// RecordAttendance implements attendance.AttendanceService.
func (s *attendanceService) RecordAttendance(ctx context.Context, draft attendance.Draft) (attendance.Attendance, error) {
	if err := draft.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, strings.TrimSpace(draft.EmployeeID)); err != nil {
		return attendance.Attendance{}, err
	}

	cs, err := s.settingsService.GetSettings(ctx)
	if err != nil {
		return attendance.Attendance{}, err
	}

	return s.attendanceRepo.Create(ctx, draft.ToAttendance(cs.WorkingHours))
}

// UpdateAttendance implements attendance.AttendanceService. Hours are
// recomputed whenever a clock value changes.
func (s *attendanceService) UpdateAttendance(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	if req.TouchesClock() {
		current, err := s.attendanceRepo.GetByID(ctx, id)
		if err != nil {
			return attendance.Attendance{}, err
		}
		cs, err := s.settingsService.GetSettings(ctx)
		if err != nil {
			return attendance.Attendance{}, err
		}
		merged := req.Apply(current)
		hours, overtime := attendance.WorkedHours(merged.TimeIn, merged.TimeOut, merged.BreakStart, merged.BreakEnd, cs.WorkingHours)
		req.HoursWorked = nullable.From(hours)
		req.OvertimeHours = nullable.From(overtime)
	}

	return s.attendanceRepo.Update(ctx, id, req)
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *attendanceService) DeleteAttendance(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}
