package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"contact-mail-backend/config"
	"contact-mail-backend/internal/domain"
)

var (
	// ErrNoRecipients is returned when an envelope has no To address.
	ErrNoRecipients = errors.New("no recipients provided")
	// ErrNoSender is returned when an envelope has no sender address.
	ErrNoSender = errors.New("no sender provided")
)

// NewSender builds the provider selected by MAIL_PROVIDER
func NewSender(cfg *config.Config) (domain.EmailSender, error) {
	timeout := time.Duration(cfg.MailTimeoutSeconds) * time.Second

	switch cfg.MailProvider {
	case config.MailProviderResend:
		return NewResendService(cfg.ResendAPIKey, timeout), nil
	case config.MailProviderSMTP, "":
		svc := NewSMTPService(cfg, timeout)
		if !svc.IsConfigured() {
			return nil, errors.New("smtp: host, username and password are required")
		}
		return svc, nil
	default:
		return nil, fmt.Errorf("unsupported mail provider %q", cfg.MailProvider)
	}
}

// SMTPService handles sending emails via SMTP
type SMTPService struct {
	host     string
	port     string
	username string
	password string
	timeout  time.Duration
}

// NewSMTPService creates a new SMTP sender
func NewSMTPService(cfg *config.Config, timeout time.Duration) *SMTPService {
	return &SMTPService{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		timeout:  timeout,
	}
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *SMTPService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// SendEmail delivers one envelope. The whole SMTP conversation is bounded by
// the service timeout.
func (s *SMTPService) SendEmail(ctx context.Context, envelope domain.EmailEnvelope) (domain.SendOutcome, error) {
	if err := checkEnvelope(envelope); err != nil {
		return domain.SendOutcome{}, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	addr := net.JoinHostPort(s.host, s.port)
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return domain.SendOutcome{}, fmt.Errorf("failed to connect to smtp server: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return domain.SendOutcome{}, fmt.Errorf("failed to start smtp session: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12}); err != nil {
			return domain.SendOutcome{}, fmt.Errorf("failed to start tls: %w", err)
		}
	}

	if s.username != "" && s.password != "" {
		if err := client.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
			return domain.SendOutcome{}, fmt.Errorf("smtp auth failed: %w", err)
		}
	}

	if err := client.Mail(envelope.SenderAddress); err != nil {
		return domain.SendOutcome{}, fmt.Errorf("smtp MAIL FROM failed: %w", err)
	}
	for _, rcpt := range envelope.To {
		if err := client.Rcpt(rcpt); err != nil {
			return domain.SendOutcome{}, fmt.Errorf("smtp RCPT TO %s failed: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return domain.SendOutcome{}, fmt.Errorf("smtp DATA failed: %w", err)
	}
	if _, err := w.Write(buildMessage(envelope)); err != nil {
		_ = w.Close()
		return domain.SendOutcome{}, fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return domain.SendOutcome{}, fmt.Errorf("failed to send email: %w", err)
	}

	_ = client.Quit()

	return domain.SendOutcome{Status: domain.SendSucceeded}, nil
}

func checkEnvelope(envelope domain.EmailEnvelope) error {
	if envelope.SenderAddress == "" {
		return ErrNoSender
	}
	if len(envelope.To) == 0 {
		return ErrNoRecipients
	}
	return nil
}

// buildMessage renders a plain text MIME message with CRLF line endings
func buildMessage(envelope domain.EmailEnvelope) []byte {
	body := strings.ReplaceAll(envelope.PlainText, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\n", "\r\n")

	return []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		envelope.SenderAddress,
		strings.Join(envelope.To, ", "),
		envelope.Subject,
		body,
	))
}
