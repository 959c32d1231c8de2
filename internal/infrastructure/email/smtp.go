// Package email sends notification mail over SMTP. Delivery is best effort:
// a failed send is logged and never fails the request that triggered it.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

type SMTPEmailService struct {
	cfg *config.EmailConfig
	log logger.Interface
}

func NewSMTPEmailService(cfg *config.EmailConfig) *SMTPEmailService {
	return &SMTPEmailService{
		cfg: cfg,
		log: logger.NewLogger().Named("email"),
	}
}

// NotifyStatusChange mails the ticket owner about a status transition.
// Disabled service or missing recipient address is a silent no-op.
func (s *SMTPEmailService) NotifyStatusChange(to, ticketCode, newStatus string) {
	if !s.cfg.Enabled || to == "" {
		return
	}

	subject := fmt.Sprintf("[%s] Status updated to %s", ticketCode, newStatus)
	body := fmt.Sprintf(
		"Your ticket %s has been updated.\n\nNew status: %s\n\nThis is an automated message, please do not reply.",
		ticketCode, newStatus,
	)

	if err := s.send(to, subject, body); err != nil {
		s.log.Warnw("failed to send status notification",
			"ticket_code", ticketCode,
			"recipient", to,
			"error", err,
		)
		return
	}

	s.log.Debugw("sent status notification", "ticket_code", ticketCode, "recipient", to)
}

func (s *SMTPEmailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.SMTPUser, s.cfg.SMTPPassword)

	return d.DialAndSend(m)
}
