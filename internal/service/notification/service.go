package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/email"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/validator"
)

const leaveDecisionTemplate = "leave_decision.html"

type dispatcher struct {
	reader    notification.LeaveReader
	mailer    email.Mailer
	templates *email.Templates
	dedupe    notification.DedupeStore // optional
}

// NewDispatcher returns the leave decision dispatcher. dedupe may be nil, in
// which case every invocation sends.
func NewDispatcher(
	reader notification.LeaveReader,
	mailer email.Mailer,
	templates *email.Templates,
	dedupe notification.DedupeStore,
) notification.Dispatcher {
	return &dispatcher{
		reader:    reader,
		mailer:    mailer,
		templates: templates,
		dedupe:    dedupe,
	}
}

// Dispatch implements notification.Dispatcher.
func (d *dispatcher) Dispatch(ctx context.Context, req notification.LeaveDecisionRequest) (result notification.LeaveDecisionResult, err error) {
	start := time.Now()
	outcome := metrics.ResultFailed
	defer func() {
		metrics.RecordLeaveNotification(string(req.Action), outcome, time.Since(start))
	}()

	req.LeaveRequestID = strings.TrimSpace(req.LeaveRequestID)
	if err := req.Validate(); err != nil {
		outcome = metrics.ResultInvalid
		return notification.LeaveDecisionResult{}, err
	}

	key := req.DedupeKey()
	reserved := false
	if d.dedupe != nil {
		ok, emailID, err := d.dedupe.Reserve(ctx, key)
		switch {
		case err != nil:
			slog.Warn("Dedupe reservation failed, sending anyway", "key", key, "error", err)
		case ok:
			reserved = true
		case emailID != "":
			outcome = metrics.ResultDuplicate
			slog.Info("Leave notification already sent", "leave_request_id", req.LeaveRequestID, "action", req.Action, "email_id", emailID)
			return notification.LeaveDecisionResult{Success: true, EmailID: emailID, Duplicate: true}, nil
		default:
			outcome = metrics.ResultDuplicate
			return notification.LeaveDecisionResult{}, notification.ErrSendInProgress
		}
	}
	if reserved {
		defer func() {
			if err == nil {
				return
			}
			if rerr := d.dedupe.Release(context.WithoutCancel(ctx), key); rerr != nil {
				slog.Warn("Failed to release leave notification reservation", "key", key, "error", rerr)
			}
		}()
	}

	row, err := d.reader.GetWithEmployee(ctx, req.LeaveRequestID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			outcome = metrics.ResultNotFound
		}
		return notification.LeaveDecisionResult{}, err
	}

	view := notification.NewLeaveDecisionEmail(row, req.Action, req.RejectionReason)
	if validator.IsEmpty(view.To) {
		outcome = metrics.ResultInvalid
		return notification.LeaveDecisionResult{}, notification.ErrRecipientMissing
	}

	html, err := d.templates.Render(leaveDecisionTemplate, view)
	if err != nil {
		return notification.LeaveDecisionResult{}, fmt.Errorf("%w: %v", notification.ErrRenderFailed, err)
	}

	emailID, err := d.mailer.Send(ctx, email.Message{
		To:      []string{view.To},
		Subject: view.Subject,
		HTML:    html,
	})
	if err != nil {
		slog.Error("Leave notification send failed",
			"leave_request_id", req.LeaveRequestID, "action", req.Action, "provider", d.mailer.Provider(), "error", err)
		return notification.LeaveDecisionResult{}, &apperror.DispatchError{Provider: d.mailer.Provider(), Err: err}
	}

	if reserved {
		if err := d.dedupe.Complete(ctx, key, emailID); err != nil {
			slog.Warn("Failed to record sent leave notification", "key", key, "error", err)
		}
	}

	outcome = metrics.ResultSent
	slog.Info("Leave notification sent", "leave_request_id", req.LeaveRequestID, "action", req.Action, "email_id", emailID)
	return notification.LeaveDecisionResult{Success: true, EmailID: emailID}, nil
}
