package attendance

import "context"

type AttendanceRepository interface {
	// List returns records matching filter, newest first.
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	// Create returns ErrAttendanceExists when the employee already has a record for the date.
	Create(ctx context.Context, record Attendance) (Attendance, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (Attendance, error)
	Delete(ctx context.Context, id string) error
}
