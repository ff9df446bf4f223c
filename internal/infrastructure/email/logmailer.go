package email

import (
	"context"

	"github.com/orris-inc/helpdesk/internal/shared/config"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// LogMailer writes the verification link to the log instead of sending
// mail. It is used when no SMTP host is configured.
type LogMailer struct {
	logger logger.Interface
}

func NewLogMailer(log logger.Interface) *LogMailer {
	return &LogMailer{logger: log.Component("email.log")}
}

func (m *LogMailer) SendVerification(_ context.Context, to, displayName, link string) error {
	m.logger.Infow("verification email (not sent, smtp disabled)",
		"to", to,
		"name", displayName,
		"link", link)
	return nil
}

// Mailer sends verification mail.
type Mailer interface {
	SendVerification(ctx context.Context, to, displayName, link string) error
}

// NewMailer returns an SMTP mailer, or a LogMailer when smtp_host is empty.
func NewMailer(cfg config.EmailConfig, log logger.Interface) Mailer {
	if cfg.SMTPHost == "" {
		log.Warnw("email service not configured, smtp_host is empty; verification links are logged")
		return NewLogMailer(log)
	}
	return NewSMTPEmailService(cfg)
}
