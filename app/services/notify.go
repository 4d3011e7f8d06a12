package services

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/mehraj28/Payroll-Mangement/app/config"
)

// Notifier sends best-effort outbound messages. Callers must treat delivery
// as fire-and-forget: a failed notification never changes the outcome of
// the business operation that triggered it.
type Notifier interface {
	Notify(to, subject, body string) error
}

// NewNotifier returns an SMTP-backed notifier when credentials are
// configured, and a log-only sink otherwise.
func NewNotifier(cfg config.SMTPConfig) Notifier {
	if cfg.Username == "" || cfg.Password == "" {
		return logNotifier{}
	}
	return &smtpNotifier{cfg: cfg}
}

type smtpNotifier struct {
	cfg config.SMTPConfig
}

func (n *smtpNotifier) Notify(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		n.cfg.From, to, subject, body)

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	return smtp.SendMail(addr, auth, n.cfg.From, []string{to}, []byte(msg))
}

// logNotifier degrades delivery to a local log line when no transport is
// configured.
type logNotifier struct{}

func (logNotifier) Notify(to, subject, body string) error {
	log.Printf("notification to=%s subject=%q: %s", to, subject, body)
	return nil
}
