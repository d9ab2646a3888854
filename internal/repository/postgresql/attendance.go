package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceUniqueConstraint = "uq_attendance_employee_date"

// Clock columns are rendered as HH:MM text so they round-trip through the
// form values unchanged.
const attendanceColumns = `id, employee_id, date,
	to_char(time_in, 'HH24:MI'), to_char(time_out, 'HH24:MI'),
	to_char(break_start, 'HH24:MI'), to_char(break_end, 'HH24:MI'),
	hours_worked, overtime_hours, status, notes, created_at, updated_at`

func attendanceDest(a *attendance.Attendance) []interface{} {
	return []interface{}{
		&a.ID, &a.EmployeeID, &a.Date,
		&a.TimeIn, &a.TimeOut, &a.BreakStart, &a.BreakEnd,
		&a.HoursWorked, &a.OvertimeHours, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	}
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	var conditions []string
	var args []interface{}
	argIdx := 1

	if d, ok := validator.IsValidDate(filter.Date); ok {
		conditions = append(conditions, fmt.Sprintf("date = $%d", argIdx))
		args = append(args, d)
		argIdx++
	}
	if d, ok := validator.IsValidDate(filter.From); ok {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argIdx))
		args = append(args, d)
		argIdx++
	}
	if d, ok := validator.IsValidDate(filter.To); ok {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argIdx))
		args = append(args, d)
		argIdx++
	}
	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argIdx))
		args = append(args, filter.EmployeeID)
	}

	query := "SELECT " + attendanceColumns + " FROM attendance"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		if filter.EmployeeID != "" && database.IsInvalidText(err) {
			return []attendance.Attendance{}, nil
		}
		return nil, apperror.Store("attendance.list", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var rec attendance.Attendance
		if err := rows.Scan(attendanceDest(&rec)...); err != nil {
			return nil, apperror.Store("attendance.list", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Store("attendance.list", err)
	}

	return records, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	var rec attendance.Attendance
	err := q.QueryRow(ctx, "SELECT "+attendanceColumns+" FROM attendance WHERE id = $1", id).Scan(attendanceDest(&rec)...)
	if err != nil {
		return attendance.Attendance{}, rowError(err, attendance.ErrAttendanceNotFound, "attendance.get")
	}
	return rec, nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (
			employee_id, date, time_in, time_out, break_start, break_end,
			hours_worked, overtime_hours, status, notes
		) VALUES (
			$1, $2, $3::text::time, $4::text::time, $5::text::time, $6::text::time,
			$7, $8, $9, $10
		)
		RETURNING ` + attendanceColumns

	var created attendance.Attendance
	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.Date, record.TimeIn, record.TimeOut, record.BreakStart, record.BreakEnd,
		record.HoursWorked, record.OvertimeHours, record.Status, record.Notes,
	).Scan(attendanceDest(&created)...)
	if err != nil {
		if database.IsUniqueViolation(err, attendanceUniqueConstraint) {
			return attendance.Attendance{}, attendance.ErrAttendanceExists
		}
		return attendance.Attendance{}, apperror.Store("attendance.create", err)
	}

	return created, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	p := newPatch()
	setClock(p, "time_in", req.TimeIn)
	setClock(p, "time_out", req.TimeOut)
	setClock(p, "break_start", req.BreakStart)
	setClock(p, "break_end", req.BreakEnd)
	setField(p, "hours_worked", req.HoursWorked)
	setField(p, "overtime_hours", req.OvertimeHours)
	setRequiredString(p, "status", req.Status)
	setString(p, "notes", req.Notes)

	query, args := p.update("attendance", id, attendanceColumns)

	var updated attendance.Attendance
	if err := q.QueryRow(ctx, query, args...).Scan(attendanceDest(&updated)...); err != nil {
		return attendance.Attendance{}, rowError(err, attendance.ErrAttendanceNotFound, "attendance.update")
	}
	return updated, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, "DELETE FROM attendance WHERE id = $1", id)
	if err != nil {
		return execError(err, attendance.ErrAttendanceNotFound, "attendance.delete")
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
