package postgresql

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `id, employee_id, leave_type, start_date, end_date, days_requested, reason,
	status, approved_by, approved_at, rejection_reason, created_at, updated_at`

const leaveRequestJoinedColumns = `lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date, lr.days_requested, lr.reason,
	lr.status, lr.approved_by, lr.approved_at, lr.rejection_reason, lr.created_at, lr.updated_at,
	e.first_name, e.last_name, e.email`

func leaveRequestDest(l *leave.LeaveRequest) []interface{} {
	return []interface{}{
		&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.DaysRequested, &l.Reason,
		&l.Status, &l.ApprovedBy, &l.ApprovedAt, &l.RejectionReason, &l.CreatedAt, &l.UpdatedAt,
	}
}

func leaveRequestJoinedDest(l *leave.LeaveRequestWithEmployee) []interface{} {
	return append(leaveRequestDest(&l.LeaveRequest), &l.EmployeeFirstName, &l.EmployeeLastName, &l.EmployeeEmail)
}

// List implements leave.LeaveRequestRepository. Only EmployeeID narrows the
// query; status filtering happens after counts are taken.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequestWithEmployee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestJoinedColumns + `
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
	`
	var args []interface{}
	if filter.EmployeeID != "" {
		query += " WHERE lr.employee_id = $1"
		args = append(args, filter.EmployeeID)
	}
	query += " ORDER BY lr.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		if filter.EmployeeID != "" && database.IsInvalidText(err) {
			return []leave.LeaveRequestWithEmployee{}, nil
		}
		return nil, apperror.Store("leave_request.list", err)
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequestWithEmployee, 0)
	for rows.Next() {
		var lr leave.LeaveRequestWithEmployee
		if err := rows.Scan(leaveRequestJoinedDest(&lr)...); err != nil {
			return nil, apperror.Store("leave_request.list", err)
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Store("leave_request.list", err)
	}

	return requests, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	var lr leave.LeaveRequest
	err := q.QueryRow(ctx, "SELECT "+leaveRequestColumns+" FROM leave_requests WHERE id = $1"+forUpdate(ctx), id).Scan(leaveRequestDest(&lr)...)
	if err != nil {
		return leave.LeaveRequest{}, rowError(err, leave.ErrLeaveRequestNotFound, "leave_request.get")
	}
	return lr, nil
}

// GetWithEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetWithEmployee(ctx context.Context, id string) (leave.LeaveRequestWithEmployee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestJoinedColumns + `
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		WHERE lr.id = $1
	`

	var lr leave.LeaveRequestWithEmployee
	if err := q.QueryRow(ctx, query, id).Scan(leaveRequestJoinedDest(&lr)...); err != nil {
		return leave.LeaveRequestWithEmployee{}, rowError(err, leave.ErrLeaveRequestNotFound, "leave_request.get_with_employee")
	}
	return lr, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, days_requested, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + leaveRequestColumns

	var created leave.LeaveRequest
	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.LeaveType, request.StartDate, request.EndDate,
		request.DaysRequested, request.Reason, request.Status,
	).Scan(leaveRequestDest(&created)...)
	if err != nil {
		return leave.LeaveRequest{}, apperror.Store("leave_request.create", err)
	}

	return created, nil
}

// Update implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, id string, req leave.UpdateLeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	p := newPatch()
	setRequiredString(p, "leave_type", req.LeaveType)
	if req.StartDate.Value != nil {
		if d, ok := validatedDate(*req.StartDate.Value); ok {
			p.add("start_date", d)
		}
	}
	if req.EndDate.Value != nil {
		if d, ok := validatedDate(*req.EndDate.Value); ok {
			p.add("end_date", d)
		}
	}
	if req.DaysRequested.Value != nil {
		p.add("days_requested", *req.DaysRequested.Value)
	}
	setString(p, "reason", req.Reason)

	query, args := p.update("leave_requests", id, leaveRequestColumns)

	var updated leave.LeaveRequest
	if err := q.QueryRow(ctx, query, args...).Scan(leaveRequestDest(&updated)...); err != nil {
		return leave.LeaveRequest{}, rowError(err, leave.ErrLeaveRequestNotFound, "leave_request.update")
	}
	return updated, nil
}

// Decide implements leave.LeaveRequestRepository. Only a pending row matches
// the update, so the second of two concurrent decisions gets
// ErrLeaveRequestAlreadyProcessed.
func (r *leaveRequestRepositoryImpl) Decide(ctx context.Context, id string, decision leave.Decision) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, approved_by = $2, approved_at = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $5 AND status = $6
		RETURNING ` + leaveRequestColumns

	var decided leave.LeaveRequest
	err := q.QueryRow(ctx, query,
		decision.Status, decision.DecidedBy, decision.DecidedAt, decision.RejectionReason,
		id, leave.StatusPending,
	).Scan(leaveRequestDest(&decided)...)
	if err == nil {
		return decided, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return leave.LeaveRequest{}, rowError(err, leave.ErrLeaveRequestNotFound, "leave_request.decide")
	}

	// Nothing matched: either the request is gone or it was already decided.
	if _, err := r.GetByID(ctx, id); err != nil {
		return leave.LeaveRequest{}, err
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
}

// Delete implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM leave_requests WHERE id = $1", id)
	if err != nil {
		return execError(err, leave.ErrLeaveRequestNotFound, "leave_request.delete")
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}
