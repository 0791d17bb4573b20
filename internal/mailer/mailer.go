// Package mailer sends outbound application mail over SMTP.
package mailer

import (
	"fmt"

	"github.com/campusmkt/marketplace/internal/models"
	"github.com/campusmkt/marketplace/pkg/config"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// Mailer sends application email. When no mail server is configured, sends
// are logged and dropped.
type Mailer struct {
	dialer  *gomail.Dialer
	from    string
	baseURL string
}

// New creates a Mailer from the mail configuration.
func New(cfg *config.Config) *Mailer {
	m := &Mailer{baseURL: cfg.BaseURL, from: cfg.MailUsername}
	if m.from == "" {
		m.from = "no-reply@campus-market.local"
	}
	if cfg.MailServer != "" {
		d := gomail.NewDialer(cfg.MailServer, cfg.MailPort, cfg.MailUsername, cfg.MailPassword)
		d.SSL = cfg.MailUseTLS && cfg.MailPort == 465
		m.dialer = d
	}
	return m
}

// SendPasswordReset mails the reset link for a signed token. Callers treat
// delivery as fire-and-forget; failures are logged, never returned to the
// requesting user.
func (m *Mailer) SendPasswordReset(user *models.User, token string) {
	link := fmt.Sprintf("%s/reset_password/%s", m.baseURL, token)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", user.Email)
	msg.SetHeader("Subject", "[Campus Market] Reset Your Password")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Dear %s,\n\nTo reset your password, visit the following link:\n\n%s\n\n"+
			"The link expires in 10 minutes. If you did not request a password reset, "+
			"simply ignore this message.\n", user.Username, link))
	msg.AddAlternative("text/html", fmt.Sprintf(
		"<p>Dear %s,</p><p>To reset your password, <a href=%q>click here</a>. "+
			"The link expires in 10 minutes.</p>"+
			"<p>If you did not request a password reset, simply ignore this message.</p>",
		user.Username, link))

	if m.dialer == nil {
		log.Info().Str("to", user.Email).Str("link", link).
			Msg("mail server not configured, dropping password reset email")
		return
	}
	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Error().Err(err).Str("to", user.Email).Msg("sending password reset email")
	}
}
