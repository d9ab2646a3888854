package attendance

import "context"

type AttendanceService interface {
	// ListAttendance fetches records and employees in parallel, resolves names
	// and summarizes the filtered set.
	ListAttendance(ctx context.Context, filter ListFilter) (ListResponse, error)
	GetAttendance(ctx context.Context, id string) (Attendance, error)
	RecordAttendance(ctx context.Context, draft Draft) (Attendance, error)
	UpdateAttendance(ctx context.Context, id string, req UpdateAttendanceRequest) (Attendance, error)
	DeleteAttendance(ctx context.Context, id string) error
}
