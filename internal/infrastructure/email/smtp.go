package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/orris-inc/helpdesk/internal/shared/config"
)

// VerificationSubject is the subject line of the verification mail.
const VerificationSubject = "Welcome to IT Support System – Verify Your Email"

type SMTPEmailService struct {
	config config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(cfg config.EmailConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPEmailService{
		config: cfg,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendVerification(ctx context.Context, to, displayName, link string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	plainBody, htmlBody, err := renderVerification(displayName, link)
	if err != nil {
		return err
	}
	return s.sendEmail(to, VerificationSubject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
