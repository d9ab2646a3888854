package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/mail"
	"net/smtp"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/config"
	"github.com/google/uuid"
)

type smtpMailer struct {
	cfg  config.EmailConfig
	from string
}

func NewSMTPMailer(cfg config.EmailConfig, from string) Mailer {
	return &smtpMailer{cfg: cfg, from: from}
}

func (m *smtpMailer) Provider() string { return ProviderSMTP }

// Send delivers msg in one SMTP session. The generated Message-ID is
// returned as the email id.
func (m *smtpMailer) Send(ctx context.Context, msg Message) (string, error) {
	envelopeFrom := m.cfg.From
	if addr, err := mail.ParseAddress(m.from); err == nil {
		envelopeFrom = addr.Address
	}

	id := uuid.NewString()
	domain := "localhost"
	if at := strings.LastIndex(envelopeFrom, "@"); at >= 0 {
		domain = envelopeFrom[at+1:]
	}
	payload := buildMessage(m.from, msg, fmt.Sprintf("<%s@%s>", id, domain))

	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)
	dialer := net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.cfg.SMTPHost)
	if err != nil {
		return "", err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.cfg.SMTPHost}); err != nil {
			return "", err
		}
	}
	if m.cfg.SMTPUsername != "" {
		auth := smtp.PlainAuth("", m.cfg.SMTPUsername, m.cfg.SMTPPassword, m.cfg.SMTPHost)
		if err := client.Auth(auth); err != nil {
			return "", err
		}
	}

	if err := client.Mail(envelopeFrom); err != nil {
		return "", err
	}
	for _, to := range msg.To {
		if err := client.Rcpt(to); err != nil {
			return "", err
		}
	}
	w, err := client.Data()
	if err != nil {
		return "", err
	}
	if _, err := w.Write(payload); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	if err := client.Quit(); err != nil {
		return "", err
	}

	slog.InfoContext(ctx, "Email sent successfully", "provider", ProviderSMTP, "to", msg.To, "subject", msg.Subject, "id", id)
	return id, nil
}

func buildMessage(from string, msg Message, messageID string) []byte {
	headers := []string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", strings.Join(msg.To, ", ")),
		fmt.Sprintf("Subject: %s", msg.Subject),
		fmt.Sprintf("Message-ID: %s", messageID),
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
	}
	return []byte(strings.Join(headers, "\r\n") + "\r\n" + msg.HTML)
}
