// Package mail delivers account-lifecycle emails over SMTP.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"
)

// Config captures the SMTP settings plus the frontend base URL used to build
// activation and reset links.
type Config struct {
	Host        string
	Port        string
	Username    string
	Password    string
	From        string
	FrontendURL string
}

type SMTPMailer struct {
	cfg    Config
	logger zerolog.Logger
}

func NewSMTPMailer(cfg Config, logger zerolog.Logger) *SMTPMailer {
	if !strings.HasSuffix(cfg.FrontendURL, "/") {
		cfg.FrontendURL += "/"
	}
	return &SMTPMailer{cfg: cfg, logger: logger}
}

func (m *SMTPMailer) SendActivation(ctx context.Context, to, userID, code string) error {
	link := fmt.Sprintf("%sauth/activate-account/%s/%s", m.cfg.FrontendURL, userID, code)
	body := "Welcome to the library!\r\n\r\nFollow the link to confirm your account:\r\n" + link + "\r\n"
	return m.send(ctx, to, "Confirm your account", body)
}

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, userID, code string) error {
	link := fmt.Sprintf("%sauth/reset-password/%s/%s", m.cfg.FrontendURL, userID, code)
	body := "Follow the link to reset your password:\r\n" + link + "\r\n"
	return m.send(ctx, to, "Reset your password", body)
}

// send speaks SMTP over a context-bounded connection. net/smtp itself has no
// context support, so the dial carries the deadline.
func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}

	c, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp client: %w", err)
	}
	defer c.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if m.cfg.Username != "" {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(auth); err != nil {
				return fmt.Errorf("smtp auth: %w", err)
			}
		}
	}

	if err := c.Mail(m.cfg.From); err != nil {
		return fmt.Errorf("smtp mail: %w", err)
	}
	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.cfg.From, to, subject, body)
	if _, err := w.Write([]byte(msg)); err != nil {
		_ = w.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}

	m.logger.Debug().Str("to", to).Str("subject", subject).Msg("mail sent")
	return c.Quit()
}
