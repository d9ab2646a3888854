package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/cmlabs-hris/hris-admin-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	ProviderResend = "resend"
	ProviderSMTP   = "smtp"
	ProviderLog    = "log"
)

// Message is one HTML email to one or more recipients.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Mailer sends a message once and returns the provider's message id.
// Implementations never retry.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
	Provider() string
}

// NewMailer builds the mailer selected by cfg.Provider.
func NewMailer(cfg config.EmailConfig) (Mailer, error) {
	from := formatSender(cfg.FromName, cfg.From)
	switch cfg.Provider {
	case ProviderResend:
		return NewResendMailer(cfg.ResendAPIKey, from), nil
	case ProviderSMTP:
		return NewSMTPMailer(cfg, from), nil
	case ProviderLog, "":
		return NewLogMailer(from), nil
	}
	return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
}

func formatSender(name, address string) string {
	if name == "" {
		return address
	}
	return fmt.Sprintf("%s <%s>", name, address)
}

// Templates renders the embedded HTML email templates.
type Templates struct {
	templates *template.Template
}

func NewTemplates() (*Templates, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}
	return &Templates{templates: tmpl}, nil
}

func (t *Templates) Render(name string, data any) (string, error) {
	var body bytes.Buffer
	if err := t.templates.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return body.String(), nil
}
