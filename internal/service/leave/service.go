package leave

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/profile"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/settings"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/nullable"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	withTx       func(ctx context.Context, fn func(txCtx context.Context) error) error
	leaveRepo    leave.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository
	dispatcher   notification.Dispatcher
	profiles     profile.ProfileService
	settings     settings.SettingsService
	now          func() time.Time
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	dispatcher notification.Dispatcher,
	profiles profile.ProfileService,
	settingsService settings.SettingsService,
) leave.LeaveService {
	return &LeaveServiceImpl{
		withTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		dispatcher:   dispatcher,
		profiles:     profiles,
		settings:     settingsService,
		now:          time.Now,
	}
}

// ListLeaveRequests implements leave.LeaveService. Counts and calendar days
// are computed over every fetched request before the status filter applies.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.ListFilter) (leave.ListResponse, error) {
	requests, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return leave.ListResponse{}, err
	}

	resp := leave.ListResponse{
		Counts:       leave.CountByStatus(requests),
		ApprovedDays: leave.FormatDays(leave.ApprovedLeaveDays(requests)),
		Requests:     requests,
	}

	if status := strings.TrimSpace(filter.Status); status != "" && !strings.EqualFold(status, "all") {
		matched := make([]leave.LeaveRequestWithEmployee, 0, len(requests))
		for _, r := range requests {
			if strings.EqualFold(string(r.Status), status) {
				matched = append(matched, r)
			}
		}
		resp.Requests = matched
	}

	if len(resp.Requests) == 0 {
		resp.Empty = true
		resp.Message = leave.NoMatchMessage
	}
	return resp, nil
}

// GetLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestWithEmployee, error) {
	return s.leaveRepo.GetWithEmployee(ctx, id)
}

// CreateLeaveRequest implements leave.LeaveService. New requests always start pending.
func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, draft leave.Draft) (leave.LeaveRequest, error) {
	if err := draft.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, strings.TrimSpace(draft.EmployeeID)); err != nil {
		return leave.LeaveRequest{}, err
	}

	created, err := s.leaveRepo.Create(ctx, draft.ToLeaveRequest())
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	slog.Info("Leave request submitted", "leave_request_id", created.ID, "employee_id", created.EmployeeID, "days", created.DaysRequested)
	return created, nil
}

// UpdateLeaveRequest implements leave.LeaveService. Only pending requests
// can be edited.
func (s *LeaveServiceImpl) UpdateLeaveRequest(ctx context.Context, id string, req leave.UpdateLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	var updated leave.LeaveRequest
	err := s.withTx(ctx, func(txCtx context.Context) error {
		current, err := s.leaveRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if current.Status != leave.StatusPending {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		merged := req.Apply(current)
		if merged.EndDate.Before(merged.StartDate) {
			var errs validator.ValidationErrors
			errs.Add("end_date", leave.ErrInvalidDateRange.Error())
			return errs
		}
		if req.DatesChanged() && !req.DaysRequested.Set {
			req.DaysRequested = nullable.Of(leave.InclusiveDays(merged.StartDate, merged.EndDate))
		}

		updated, err = s.leaveRepo.Update(txCtx, id, req)
		return err
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return updated, nil
}

// DecideLeaveRequest implements leave.LeaveService. The decision is stored
// first and the employee notified after; a failed notification is reported
// in the result and never rolls the decision back.
func (s *LeaveServiceImpl) DecideLeaveRequest(ctx context.Context, id string, req leave.DecisionRequest) (leave.DecisionResult, error) {
	if err := req.Validate(); err != nil {
		return leave.DecisionResult{}, err
	}

	approver, err := s.approverID(ctx)
	if err != nil {
		return leave.DecisionResult{}, err
	}

	decision := leave.Decision{
		Status:    req.Action.Status(),
		DecidedBy: approver,
		DecidedAt: s.now(),
	}
	if req.Action == leave.ActionRejected {
		decision.RejectionReason = validator.OptionalString(validator.StringOrEmpty(req.RejectionReason))
	}

	decided, err := s.leaveRepo.Decide(ctx, id, decision)
	if err != nil {
		return leave.DecisionResult{}, err
	}
	slog.Info("Leave request decided", "leave_request_id", id, "status", decided.Status)

	result := leave.DecisionResult{LeaveRequest: decided}

	company, err := s.settings.GetSettings(ctx)
	if err != nil {
		slog.Warn("Failed to load company settings, notifying anyway", "error", err)
		company = settings.Defaults()
	}
	if !company.LeaveRequestNotifications {
		result.NotificationsDisabled = true
		return result, nil
	}

	sent, err := s.dispatcher.Dispatch(ctx, notification.LeaveDecisionRequest{
		LeaveRequestID:  id,
		Action:          req.Action,
		RejectionReason: decision.RejectionReason,
	})
	if err != nil {
		slog.Warn("Leave decision stored but notification failed", "leave_request_id", id, "error", err)
		return result, nil
	}

	result.NotificationSent = true
	result.EmailID = sent.EmailID
	return result, nil
}

// approverID resolves the reviewer's profile id. Reviewers without a profile
// row are recorded as nil.
func (s *LeaveServiceImpl) approverID(ctx context.Context) (*string, error) {
	p, err := s.profiles.GetCurrentProfile(ctx)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) || errors.Is(err, profile.ErrUnauthenticated) {
			return nil, nil
		}
		return nil, err
	}
	id := p.ID
	return &id, nil
}

// DeleteLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) DeleteLeaveRequest(ctx context.Context, id string) error {
	return s.leaveRepo.Delete(ctx, id)
}
