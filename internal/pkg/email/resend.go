package email

import (
	"context"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// resendEmails is the part of the Resend client used here.
type resendEmails interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type resendMailer struct {
	emails resendEmails
	from   string
}

func NewResendMailer(apiKey, from string) Mailer {
	client := resend.NewClient(apiKey)
	return &resendMailer{emails: client.Emails, from: from}
}

func (m *resendMailer) Provider() string { return ProviderResend }

func (m *resendMailer) Send(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sent, err := m.emails.Send(&resend.SendEmailRequest{
		From:    m.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return "", err
	}

	slog.InfoContext(ctx, "Email sent successfully", "provider", ProviderResend, "to", msg.To, "subject", msg.Subject, "id", sent.Id)
	return sent.Id, nil
}
