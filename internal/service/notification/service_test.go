package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-admin-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/email"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/idempotency"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/metrics"
	"github.com/go-redis/redismock/v9"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const requestID = "6a1f0c52-1d7b-4c8e-9f3a-2b4c5d6e7f80"

type fakeReader struct {
	row   leave.LeaveRequestWithEmployee
	err   error
	reads int
	ids   []string
}

func (f *fakeReader) GetWithEmployee(ctx context.Context, id string) (leave.LeaveRequestWithEmployee, error) {
	f.reads++
	f.ids = append(f.ids, id)
	return f.row, f.err
}

type fakeMailer struct {
	sent []email.Message
	err  error
}

func (f *fakeMailer) Provider() string { return "fake" }

func (f *fakeMailer) Send(ctx context.Context, msg email.Message) (string, error) {
	f.sent = append(f.sent, msg)
	if f.err != nil {
		return "", f.err
	}
	return "re_123", nil
}

func rejectedRequest() leave.LeaveRequestWithEmployee {
	reason := "Family trip"
	stored := "Insufficient notice"
	return leave.LeaveRequestWithEmployee{
		LeaveRequest: leave.LeaveRequest{
			ID:              requestID,
			LeaveType:       "Vacation",
			StartDate:       time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			EndDate:         time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
			DaysRequested:   3,
			Reason:          &reason,
			Status:          leave.StatusRejected,
			RejectionReason: &stored,
		},
		EmployeeFirstName: "Ana",
		EmployeeLastName:  "Cruz",
		EmployeeEmail:     "ana@x.com",
	}
}

func newDispatcher(t *testing.T, reader *fakeReader, mailer *fakeMailer, dedupe notification.DedupeStore) notification.Dispatcher {
	t.Helper()
	templates, err := email.NewTemplates()
	require.NoError(t, err)
	return NewDispatcher(reader, mailer, templates, dedupe)
}

func TestDispatch_Rejected(t *testing.T) {
	reader := &fakeReader{row: rejectedRequest()}
	mailer := &fakeMailer{}

	res, err := newDispatcher(t, reader, mailer, nil).Dispatch(context.Background(), notification.LeaveDecisionRequest{
		LeaveRequestID: requestID,
		Action:         leave.ActionRejected,
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "re_123", res.EmailID)

	assert.Equal(t, 1, reader.reads)
	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Equal(t, []string{"ana@x.com"}, msg.To)
	assert.Equal(t, "Leave Request Rejected", msg.Subject)
	assert.Contains(t, msg.HTML, "Insufficient notice")
	assert.Contains(t, msg.HTML, "5/1/2024")
	assert.Contains(t, msg.HTML, "Family trip")
}

func TestDispatch_ApprovedOmitsRejectionSection(t *testing.T) {
	reader := &fakeReader{row: rejectedRequest()}
	mailer := &fakeMailer{}

	_, err := newDispatcher(t, reader, mailer, nil).Dispatch(context.Background(), notification.LeaveDecisionRequest{
		LeaveRequestID: requestID,
		Action:         leave.ActionApproved,
	})
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Leave Request Approved", mailer.sent[0].Subject)
	assert.NotContains(t, mailer.sent[0].HTML, "Rejection Reason")
	assert.NotContains(t, mailer.sent[0].HTML, "Insufficient notice")
}

func TestDispatch_NotFoundBeforeSend(t *testing.T) {
	before := testutil.ToFloat64(metrics.LeaveNotificationCount("approved", metrics.ResultNotFound))
	reader := &fakeReader{err: leave.ErrLeaveRequestNotFound}
	mailer := &fakeMailer{}

	_, err := newDispatcher(t, reader, mailer, nil).Dispatch(context.Background(), notification.LeaveDecisionRequest{
		LeaveRequestID: requestID,
		Action:         leave.ActionApproved,
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Empty(t, mailer.sent)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.LeaveNotificationCount("approved", metrics.ResultNotFound)))
}

func TestDispatch_ProviderFailureIsDispatchError(t *testing.T) {
	reader := &fakeReader{row: rejectedRequest()}
	mailer := &fakeMailer{err: errors.New("401 invalid api key")}

	_, err := newDispatcher(t, reader, mailer, nil).Dispatch(context.Background(), notification.LeaveDecisionRequest{
		LeaveRequestID: requestID,
		Action:         leave.ActionApproved,
	})
	assert.True(t, apperror.IsDispatch(err))
	assert.Len(t, mailer.sent, 1, "no retry")
}

func TestDispatch_InvalidRequest(t *testing.T) {
	reader := &fakeReader{}
	_, err := newDispatcher(t, reader, &fakeMailer{}, nil).Dispatch(context.Background(), notification.LeaveDecisionRequest{
		LeaveRequestID: "nope",
		Action:         "maybe",
	})
	assert.Error(t, err)
	assert.Zero(t, reader.reads)
}

func TestDispatch_TrimsLeaveRequestID(t *testing.T) {
	reader := &fakeReader{row: rejectedRequest()}

	_, err := newDispatcher(t, reader, &fakeMailer{}, nil).Dispatch(context.Background(), notification.LeaveDecisionRequest{
		LeaveRequestID: "  " + requestID + "\n",
		Action:         leave.ActionApproved,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{requestID}, reader.ids)
}

func TestDispatch_MissingRecipient(t *testing.T) {
	row := rejectedRequest()
	row.EmployeeEmail = ""
	mailer := &fakeMailer{}

	_, err := newDispatcher(t, &fakeReader{row: row}, mailer, nil).Dispatch(context.Background(), notification.LeaveDecisionRequest{
		LeaveRequestID: requestID,
		Action:         leave.ActionApproved,
	})
	assert.ErrorIs(t, err, notification.ErrRecipientMissing)
	assert.Empty(t, mailer.sent)
}

func TestDispatch_Dedupe(t *testing.T) {
	req := notification.LeaveDecisionRequest{LeaveRequestID: requestID, Action: leave.ActionApproved}
	key := req.DedupeKey()

	t.Run("first send is remembered", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectSetNX(key, "pending", 24*time.Hour).SetVal(true)
		mock.ExpectSet(key, "re_123", 24*time.Hour).SetVal("OK")

		mailer := &fakeMailer{}
		res, err := newDispatcher(t, &fakeReader{row: rejectedRequest()}, mailer, idempotency.NewRedisStore(rdb, 24*time.Hour)).
			Dispatch(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, res.Duplicate)
		assert.Len(t, mailer.sent, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeat returns stored id without sending", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectSetNX(key, "pending", 24*time.Hour).SetVal(false)
		mock.ExpectGet(key).SetVal("re_first")

		reader := &fakeReader{row: rejectedRequest()}
		mailer := &fakeMailer{}
		res, err := newDispatcher(t, reader, mailer, idempotency.NewRedisStore(rdb, 24*time.Hour)).
			Dispatch(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, res.Duplicate)
		assert.Equal(t, "re_first", res.EmailID)
		assert.Empty(t, mailer.sent)
		assert.Zero(t, reader.reads)
	})

	t.Run("overlapping retry does not send twice", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectSetNX(key, "pending", 24*time.Hour).SetVal(false)
		mock.ExpectGet(key).SetVal("pending")

		reader := &fakeReader{row: rejectedRequest()}
		mailer := &fakeMailer{}
		_, err := newDispatcher(t, reader, mailer, idempotency.NewRedisStore(rdb, 24*time.Hour)).
			Dispatch(context.Background(), req)
		assert.ErrorIs(t, err, notification.ErrSendInProgress)
		assert.ErrorIs(t, err, apperror.ErrConflict)
		assert.Empty(t, mailer.sent)
		assert.Zero(t, reader.reads)
	})

	t.Run("failed send frees the key", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectSetNX(key, "pending", 24*time.Hour).SetVal(true)
		mock.ExpectDel(key).SetVal(1)

		mailer := &fakeMailer{err: errors.New("503 unavailable")}
		_, err := newDispatcher(t, &fakeReader{row: rejectedRequest()}, mailer, idempotency.NewRedisStore(rdb, 24*time.Hour)).
			Dispatch(context.Background(), req)
		assert.True(t, apperror.IsDispatch(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis down still sends", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectSetNX(key, "pending", 24*time.Hour).SetErr(errors.New("connection refused"))

		mailer := &fakeMailer{}
		res, err := newDispatcher(t, &fakeReader{row: rejectedRequest()}, mailer, idempotency.NewRedisStore(rdb, 24*time.Hour)).
			Dispatch(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Len(t, mailer.sent, 1)
	})
}
