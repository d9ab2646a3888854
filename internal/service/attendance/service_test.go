package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/settings"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/nullable"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	records []attendance.Attendance
	listErr error
	created attendance.Attendance
	updated attendance.UpdateAttendanceRequest
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	return f.records, f.listErr
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	f.created = a
	return a, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	f.updated = req
	return attendance.Attendance{ID: id}, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

type fixedSettings struct {
	settings.SettingsService
}

func (fixedSettings) GetSettings(ctx context.Context) (settings.CompanySettings, error) {
	return settings.Defaults(), nil
}

const empID = "6a1f0c52-1d7b-4c8e-9f3a-2b4c5d6e7f80"

func str(s string) *string { return &s }

func newService(records []attendance.Attendance) (*fakeAttendanceRepo, attendance.AttendanceService) {
	repo := &fakeAttendanceRepo{records: records}
	emps := &fakeEmployeeRepo{employees: []employee.Employee{{ID: empID, FirstName: "Ana", LastName: "Cruz", Department: "Engineering"}}}
	return repo, NewAttendanceService(repo, emps, fixedSettings{})
}

func TestListAttendance_ResolvesNamesAndSummarizes(t *testing.T) {
	_, svc := newService([]attendance.Attendance{
		{ID: "a1", EmployeeID: empID, Status: attendance.StatusPresent},
		{ID: "a2", EmployeeID: empID, Status: attendance.StatusLate},
		{ID: "a3", EmployeeID: "someone-else", Status: attendance.StatusPresent},
	})

	resp, err := svc.ListAttendance(context.Background(), attendance.ListFilter{Status: "present"})
	require.NoError(t, err)
	require.Len(t, resp.Records, 2)
	assert.Equal(t, "Ana Cruz", resp.Records[0].EmployeeName)
	assert.Equal(t, "Engineering", resp.Records[0].Department)
	assert.Equal(t, "Unknown", resp.Records[1].EmployeeName)
	assert.Equal(t, 2, resp.Summary.Total)
	assert.Equal(t, 100.0, resp.Summary.Present.Percent)
}

func TestListAttendance_EmptyHasZeroPercentages(t *testing.T) {
	_, svc := newService(nil)

	resp, err := svc.ListAttendance(context.Background(), attendance.ListFilter{})
	require.NoError(t, err)
	assert.True(t, resp.Empty)
	assert.Equal(t, attendance.NoMatchMessage, resp.Message)
	assert.False(t, resp.Summary.HasData)
	assert.Zero(t, resp.Summary.Present.Percent)
}

func TestListAttendance_StoreFailure(t *testing.T) {
	repo, svc := newService(nil)
	repo.listErr = errors.New("boom")

	_, err := svc.ListAttendance(context.Background(), attendance.ListFilter{})
	assert.EqualError(t, err, "boom")
}

func TestRecordAttendance_ComputesHours(t *testing.T) {
	repo, svc := newService(nil)

	_, err := svc.RecordAttendance(context.Background(), attendance.Draft{
		EmployeeID: empID,
		Date:       "2024-03-04",
		TimeIn:     "08:00",
		TimeOut:    "18:00",
		BreakStart: "12:00",
		BreakEnd:   "13:00",
		Status:     string(attendance.StatusPresent),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created.HoursWorked)
	assert.True(t, repo.created.HoursWorked.Equal(decimal.NewFromInt(9)))
	assert.True(t, repo.created.OvertimeHours.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, time.March, repo.created.Date.Month())
}

func TestRecordAttendance_UnknownEmployee(t *testing.T) {
	_, svc := newService(nil)

	_, err := svc.RecordAttendance(context.Background(), attendance.Draft{
		EmployeeID: "0b7e3d1c-0000-4000-8000-000000000000",
		Date:       "2024-03-04",
		Status:     string(attendance.StatusAbsent),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateAttendance_RecomputesOnClockChange(t *testing.T) {
	repo, svc := newService([]attendance.Attendance{
		{ID: "a1", EmployeeID: empID, TimeIn: str("09:00"), TimeOut: str("17:00"), Status: attendance.StatusPresent},
	})

	_, err := svc.UpdateAttendance(context.Background(), "a1", attendance.UpdateAttendanceRequest{
		TimeOut: nullable.Of("19:30"),
	})
	require.NoError(t, err)
	require.True(t, repo.updated.HoursWorked.Set)
	assert.True(t, repo.updated.HoursWorked.Value.Equal(decimal.RequireFromString("10.5")))
	assert.True(t, repo.updated.OvertimeHours.Value.Equal(decimal.RequireFromString("2.5")))
}

func TestUpdateAttendance_NotesOnlyKeepsHours(t *testing.T) {
	repo, svc := newService(nil)

	_, err := svc.UpdateAttendance(context.Background(), "a1", attendance.UpdateAttendanceRequest{
		Notes: nullable.Of("forgot badge"),
	})
	require.NoError(t, err)
	assert.False(t, repo.updated.HoursWorked.Set)
}
