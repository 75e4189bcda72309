package notification

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"time"

	"mentesana/config"
	"mentesana/models"
)

// SMTPMailer delivers mail over implicit-TLS SMTP (port 465, the Gmail
// setup the practice uses). Every send is bounded by Timeout so an
// unreachable provider cannot stall the mail worker.
type SMTPMailer struct {
	Host    string
	Port    string
	User    string
	Pass    string
	Timeout time.Duration
}

// NewSMTPMailer builds a mailer from the loaded configuration.
func NewSMTPMailer() *SMTPMailer {
	timeout := time.Duration(config.AppConfig.MailSendTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SMTPMailer{
		Host:    config.AppConfig.SMTPHost,
		Port:    config.AppConfig.SMTPPort,
		User:    config.AppConfig.SMTPUser,
		Pass:    config.AppConfig.SMTPPass,
		Timeout: timeout,
	}
}

// Send delivers a single message. The whole SMTP exchange shares one deadline.
func (m *SMTPMailer) Send(ctx context.Context, msg models.EmailMessage) error {
	addr := net.JoinHostPort(m.Host, m.Port)

	dialer := &net.Dialer{Timeout: m.Timeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{ServerName: m.Host})
	if err != nil {
		return fmt.Errorf("smtp dial %s: %w", addr, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(m.Timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return fmt.Errorf("smtp set deadline: %w", err)
	}

	client, err := smtp.NewClient(conn, m.Host)
	if err != nil {
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if m.User != "" {
		auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(m.User); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write([]byte(buildMessage(m.User, msg))); err != nil {
		return fmt.Errorf("smtp write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close body: %w", err)
	}

	return client.Quit()
}

// buildMessage assembles a minimal RFC 5322 HTML message. Subjects carry
// UTF-8 (emoji included), so they go through Q-encoding.
func buildMessage(from string, msg models.EmailMessage) string {
	subject := mime.QEncoding.Encode("utf-8", msg.Subject)
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s\r\n",
		from,
		msg.To,
		subject,
		msg.HTML,
	)
}
