package email

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// logMailer writes messages to the log instead of sending them. Used in
// development when no provider is configured.
type logMailer struct {
	from string
}

func NewLogMailer(from string) Mailer {
	return &logMailer{from: from}
}

func (m *logMailer) Provider() string { return ProviderLog }

func (m *logMailer) Send(ctx context.Context, msg Message) (string, error) {
	id := uuid.NewString()
	slog.WarnContext(ctx, "Email provider not configured, logging email instead of sending",
		"id", id,
		"from", m.from,
		"to", msg.To,
		"subject", msg.Subject,
		"html_bytes", len(msg.HTML),
	)
	return id, nil
}
