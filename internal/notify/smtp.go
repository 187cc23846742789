package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/arina-sh/contact-api/internal/config"
	"github.com/arina-sh/contact-api/internal/contact"
	"github.com/arina-sh/contact-api/internal/pkg/logger"
)

// SMTPNotifier sends notifications through a plain SMTP relay with
// optional STARTTLS and AUTH PLAIN.
type SMTPNotifier struct {
	cfg config.MailConfig
}

// NewSMTP creates an SMTP-backed notifier.
func NewSMTP(cfg config.MailConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

// Notify delivers one notification for the given submission. The whole
// SMTP conversation runs under a connection deadline derived from the
// configured timeout so a stalled relay cannot block the request.
func (n *SMTPNotifier) Notify(ctx context.Context, s contact.Sanitized) error {
	subject, body := buildMessage(n.cfg.SiteName, s)
	msg := formatRFC822(n.cfg.Sender, n.cfg.Recipient, s.Email, subject, body)

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	dialer := net.Dialer{Timeout: n.cfg.Timeout()}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dialing %s: %w", addr, err)
	}
	_ = conn.SetDeadline(time.Now().Add(n.cfg.Timeout()))

	client, err := smtp.NewClient(conn, n.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if n.cfg.UseTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: n.cfg.Host}); err != nil {
				return fmt.Errorf("starttls: %w", err)
			}
		}
	}

	if n.cfg.Username != "" {
		auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(n.cfg.Sender); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := client.Rcpt(n.cfg.Recipient); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		w.Close()
		return fmt.Errorf("writing message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing message: %w", err)
	}
	if err := client.Quit(); err != nil {
		// The message was accepted; a failed QUIT is not a delivery failure.
		logger.Debug("smtp quit failed", "error", err)
	}

	logger.Info("notification sent", "transport", "smtp", "reply_to", s.Email)
	return nil
}
