package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/profile"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/settings"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/nullable"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/session"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
	profileService "github.com/cmlabs-hris/hris-admin-go/internal/service/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	leaveID    = "6a1f0c52-1d7b-4c8e-9f3a-2b4c5d6e7f80"
	employeeID = "3f2b8c1e-4a5d-4e6f-8a7b-9c0d1e2f3a4b"
	reviewerID = "9b1d2c3e-4f5a-4b6c-8d7e-0f1a2b3c4d5e"
)

type fakeLeaveRepo struct {
	leave.LeaveRequestRepository
	rows     []leave.LeaveRequestWithEmployee
	decided  *leave.Decision
	updated  bool
	created  leave.LeaveRequest
	decideFn func(id string, d leave.Decision) (leave.LeaveRequest, error)
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequestWithEmployee, error) {
	return f.rows, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	for _, r := range f.rows {
		if r.ID == id {
			return r.LeaveRequest, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) Create(ctx context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	l.ID = leaveID
	f.created = l
	return l, nil
}

func (f *fakeLeaveRepo) Update(ctx context.Context, id string, req leave.UpdateLeaveRequest) (leave.LeaveRequest, error) {
	f.updated = true
	current, err := f.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return req.Apply(current), nil
}

func (f *fakeLeaveRepo) Decide(ctx context.Context, id string, d leave.Decision) (leave.LeaveRequest, error) {
	f.decided = &d
	if f.decideFn != nil {
		return f.decideFn(id, d)
	}
	return leave.LeaveRequest{ID: id, Status: d.Status, RejectionReason: d.RejectionReason}, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if id == employeeID {
		return employee.Employee{ID: id}, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

type fakeDispatcher struct {
	calls []notification.LeaveDecisionRequest
	err   error
}

func (f *fakeDispatcher) Dispatch(ctx context.Context, req notification.LeaveDecisionRequest) (notification.LeaveDecisionResult, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return notification.LeaveDecisionResult{}, f.err
	}
	return notification.LeaveDecisionResult{Success: true, EmailID: "re_123"}, nil
}

type fakeProfileRepo struct {
	profile.ProfileRepository
	rows []profile.Profile
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (profile.Profile, error) {
	for _, p := range f.rows {
		if p.ID == id {
			return p, nil
		}
	}
	return profile.Profile{}, profile.ErrProfileNotFound
}

func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (profile.Profile, error) {
	for _, p := range f.rows {
		if p.Email == email {
			return p, nil
		}
	}
	return profile.Profile{}, profile.ErrProfileNotFound
}

type fakeSettingsService struct {
	settings.SettingsService
	current settings.CompanySettings
	err     error
}

func (f *fakeSettingsService) GetSettings(ctx context.Context) (settings.CompanySettings, error) {
	return f.current, f.err
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func row(id string, status leave.Status, start, end int) leave.LeaveRequestWithEmployee {
	return leave.LeaveRequestWithEmployee{
		LeaveRequest: leave.LeaveRequest{
			ID: id, EmployeeID: employeeID, LeaveType: "Vacation",
			StartDate: day(start), EndDate: day(end), DaysRequested: end - start + 1, Status: status,
		},
		EmployeeFirstName: "Ana",
		EmployeeLastName:  "Cruz",
		EmployeeEmail:     "ana@x.com",
	}
}

func newTestService(repo *fakeLeaveRepo, d *fakeDispatcher) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		withTx:       func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
		leaveRepo:    repo,
		employeeRepo: &fakeEmployeeRepo{},
		dispatcher:   d,
		profiles: profileService.NewProfileService(&fakeProfileRepo{rows: []profile.Profile{
			{ID: reviewerID, Email: "lead@x.com", Role: profile.RoleManager},
		}}),
		settings: &fakeSettingsService{current: settings.Defaults()},
		now:      func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) },
	}
}

func TestListLeaveRequests_CountsCoverEveryStatus(t *testing.T) {
	repo := &fakeLeaveRepo{rows: []leave.LeaveRequestWithEmployee{
		row("a", leave.StatusPending, 20, 21),
		row("b", leave.StatusApproved, 4, 6),
		row("c", leave.StatusApproved, 6, 7),
		row("d", leave.StatusRejected, 25, 25),
	}}
	svc := newTestService(repo, &fakeDispatcher{})

	resp, err := svc.ListLeaveRequests(context.Background(), leave.ListFilter{Status: "Approved"})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusCounts{Pending: 1, Approved: 2, Rejected: 1, Total: 4}, resp.Counts)
	assert.Equal(t, []string{"2024-03-04", "2024-03-05", "2024-03-06", "2024-03-07"}, resp.ApprovedDays)
	require.Len(t, resp.Requests, 2)
	assert.False(t, resp.Empty)

	resp, err = svc.ListLeaveRequests(context.Background(), leave.ListFilter{Status: "all"})
	require.NoError(t, err)
	assert.Len(t, resp.Requests, 4)
}

func TestListLeaveRequests_Empty(t *testing.T) {
	svc := newTestService(&fakeLeaveRepo{}, &fakeDispatcher{})

	resp, err := svc.ListLeaveRequests(context.Background(), leave.ListFilter{})
	require.NoError(t, err)
	assert.True(t, resp.Empty)
	assert.Equal(t, leave.NoMatchMessage, resp.Message)
	assert.Empty(t, resp.ApprovedDays)
}

func TestCreateLeaveRequest(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := newTestService(repo, &fakeDispatcher{})

	created, err := svc.CreateLeaveRequest(context.Background(), leave.Draft{
		EmployeeID: employeeID, LeaveType: "Sick Leave", StartDate: "2024-03-04", EndDate: "2024-03-06",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Equal(t, 3, created.DaysRequested)

	_, err = svc.CreateLeaveRequest(context.Background(), leave.Draft{
		EmployeeID: "0f2b8c1e-4a5d-4e6f-8a7b-9c0d1e2f3a4b", LeaveType: "Sick Leave", StartDate: "2024-03-04", EndDate: "2024-03-06",
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUpdateLeaveRequest(t *testing.T) {
	t.Run("pending request is edited", func(t *testing.T) {
		repo := &fakeLeaveRepo{rows: []leave.LeaveRequestWithEmployee{row(leaveID, leave.StatusPending, 4, 6)}}
		svc := newTestService(repo, &fakeDispatcher{})

		updated, err := svc.UpdateLeaveRequest(context.Background(), leaveID, leave.UpdateLeaveRequest{
			LeaveType: nullable.Of("Emergency Leave"),
		})
		require.NoError(t, err)
		assert.True(t, repo.updated)
		assert.Equal(t, "Emergency Leave", updated.LeaveType)
	})

	t.Run("decided request is locked", func(t *testing.T) {
		repo := &fakeLeaveRepo{rows: []leave.LeaveRequestWithEmployee{row(leaveID, leave.StatusApproved, 4, 6)}}
		svc := newTestService(repo, &fakeDispatcher{})

		_, err := svc.UpdateLeaveRequest(context.Background(), leaveID, leave.UpdateLeaveRequest{
			LeaveType: nullable.Of("Emergency Leave"),
		})
		assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
		assert.False(t, repo.updated)
	})

	t.Run("merged range must stay ordered", func(t *testing.T) {
		repo := &fakeLeaveRepo{rows: []leave.LeaveRequestWithEmployee{row(leaveID, leave.StatusPending, 4, 6)}}
		svc := newTestService(repo, &fakeDispatcher{})

		_, err := svc.UpdateLeaveRequest(context.Background(), leaveID, leave.UpdateLeaveRequest{
			StartDate: nullable.Of("2024-03-10"),
		})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "end_date")
		assert.False(t, repo.updated)
	})

	t.Run("moved dates recount days", func(t *testing.T) {
		repo := &fakeLeaveRepo{rows: []leave.LeaveRequestWithEmployee{row(leaveID, leave.StatusPending, 4, 4)}}
		svc := newTestService(repo, &fakeDispatcher{})

		updated, err := svc.UpdateLeaveRequest(context.Background(), leaveID, leave.UpdateLeaveRequest{
			EndDate: nullable.Of("2024-03-08"),
		})
		require.NoError(t, err)
		assert.Equal(t, 5, updated.DaysRequested)
	})

	t.Run("explicit day count is kept", func(t *testing.T) {
		repo := &fakeLeaveRepo{rows: []leave.LeaveRequestWithEmployee{row(leaveID, leave.StatusPending, 4, 4)}}
		svc := newTestService(repo, &fakeDispatcher{})

		updated, err := svc.UpdateLeaveRequest(context.Background(), leaveID, leave.UpdateLeaveRequest{
			EndDate:       nullable.Of("2024-03-08"),
			DaysRequested: nullable.Of(3),
		})
		require.NoError(t, err)
		assert.Equal(t, 3, updated.DaysRequested)
	})

	t.Run("other edits leave the count alone", func(t *testing.T) {
		repo := &fakeLeaveRepo{rows: []leave.LeaveRequestWithEmployee{row(leaveID, leave.StatusPending, 4, 6)}}
		svc := newTestService(repo, &fakeDispatcher{})

		updated, err := svc.UpdateLeaveRequest(context.Background(), leaveID, leave.UpdateLeaveRequest{
			Reason: nullable.Of("Family event"),
		})
		require.NoError(t, err)
		assert.Equal(t, 3, updated.DaysRequested)
	})
}

func TestDecideLeaveRequest(t *testing.T) {
	ctx := session.NewContext(context.Background(), session.Principal{UserID: reviewerID, Role: profile.RoleManager})

	t.Run("rejection stores reason and notifies", func(t *testing.T) {
		repo := &fakeLeaveRepo{}
		d := &fakeDispatcher{}
		svc := newTestService(repo, d)

		reason := "Insufficient notice"
		result, err := svc.DecideLeaveRequest(ctx, leaveID, leave.DecisionRequest{Action: leave.ActionRejected, RejectionReason: &reason})
		require.NoError(t, err)

		require.NotNil(t, repo.decided)
		assert.Equal(t, leave.StatusRejected, repo.decided.Status)
		require.NotNil(t, repo.decided.DecidedBy)
		assert.Equal(t, reviewerID, *repo.decided.DecidedBy)
		assert.Equal(t, "Insufficient notice", *repo.decided.RejectionReason)

		require.Len(t, d.calls, 1)
		assert.Equal(t, leave.ActionRejected, d.calls[0].Action)
		assert.True(t, result.NotificationSent)
		assert.Equal(t, "re_123", result.EmailID)
	})

	t.Run("approval drops any reason", func(t *testing.T) {
		repo := &fakeLeaveRepo{}
		svc := newTestService(repo, &fakeDispatcher{})

		reason := "ignored"
		_, err := svc.DecideLeaveRequest(ctx, leaveID, leave.DecisionRequest{Action: leave.ActionApproved, RejectionReason: &reason})
		require.NoError(t, err)
		assert.Nil(t, repo.decided.RejectionReason)
	})

	t.Run("rejection without reason is invalid", func(t *testing.T) {
		repo := &fakeLeaveRepo{}
		svc := newTestService(repo, &fakeDispatcher{})

		_, err := svc.DecideLeaveRequest(ctx, leaveID, leave.DecisionRequest{Action: leave.ActionRejected})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Nil(t, repo.decided)
	})

	t.Run("failed notification keeps decision", func(t *testing.T) {
		repo := &fakeLeaveRepo{}
		d := &fakeDispatcher{err: &apperror.DispatchError{Provider: "resend", Err: errors.New("503")}}
		svc := newTestService(repo, d)

		result, err := svc.DecideLeaveRequest(ctx, leaveID, leave.DecisionRequest{Action: leave.ActionApproved})
		require.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, result.LeaveRequest.Status)
		assert.False(t, result.NotificationSent)
		assert.Len(t, d.calls, 1)
	})

	t.Run("token subject without profile row falls back to email", func(t *testing.T) {
		repo := &fakeLeaveRepo{}
		svc := newTestService(repo, &fakeDispatcher{})
		legacy := session.NewContext(context.Background(), session.Principal{
			UserID: "auth0|5f1c", Email: "lead@x.com", Role: profile.RoleManager,
		})

		_, err := svc.DecideLeaveRequest(legacy, leaveID, leave.DecisionRequest{Action: leave.ActionApproved})
		require.NoError(t, err)
		require.NotNil(t, repo.decided.DecidedBy)
		assert.Equal(t, reviewerID, *repo.decided.DecidedBy)
	})

	t.Run("reviewer without any profile is stored as nil", func(t *testing.T) {
		repo := &fakeLeaveRepo{}
		d := &fakeDispatcher{}
		svc := newTestService(repo, d)
		unknown := session.NewContext(context.Background(), session.Principal{
			UserID: "0c9d8e7f-6a5b-4c3d-9e2f-1a0b9c8d7e6f", Email: "temp@x.com", Role: profile.RoleAdministrator,
		})

		result, err := svc.DecideLeaveRequest(unknown, leaveID, leave.DecisionRequest{Action: leave.ActionApproved})
		require.NoError(t, err)
		require.NotNil(t, repo.decided)
		assert.Nil(t, repo.decided.DecidedBy)
		assert.Equal(t, leave.StatusApproved, result.LeaveRequest.Status)
		assert.Len(t, d.calls, 1)
	})

	t.Run("notifications turned off skip dispatch", func(t *testing.T) {
		repo := &fakeLeaveRepo{}
		d := &fakeDispatcher{}
		svc := newTestService(repo, d)
		off := settings.Defaults()
		off.LeaveRequestNotifications = false
		svc.settings = &fakeSettingsService{current: off}

		result, err := svc.DecideLeaveRequest(ctx, leaveID, leave.DecisionRequest{Action: leave.ActionApproved})
		require.NoError(t, err)
		assert.Empty(t, d.calls)
		assert.True(t, result.NotificationsDisabled)
		assert.False(t, result.NotificationSent)
	})

	t.Run("unreadable settings still notify", func(t *testing.T) {
		repo := &fakeLeaveRepo{}
		d := &fakeDispatcher{}
		svc := newTestService(repo, d)
		svc.settings = &fakeSettingsService{err: apperror.Store("settings.get", errors.New("conn reset"))}

		result, err := svc.DecideLeaveRequest(ctx, leaveID, leave.DecisionRequest{Action: leave.ActionApproved})
		require.NoError(t, err)
		assert.Len(t, d.calls, 1)
		assert.True(t, result.NotificationSent)
	})

	t.Run("already processed is not notified", func(t *testing.T) {
		repo := &fakeLeaveRepo{decideFn: func(string, leave.Decision) (leave.LeaveRequest, error) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
		}}
		d := &fakeDispatcher{}
		svc := newTestService(repo, d)

		_, err := svc.DecideLeaveRequest(ctx, leaveID, leave.DecisionRequest{Action: leave.ActionApproved})
		assert.ErrorIs(t, err, apperror.ErrConflict)
		assert.Empty(t, d.calls)
	})
}
