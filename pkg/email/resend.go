package email

import (
	"context"
	"fmt"
	"time"

	"contact-mail-backend/internal/domain"

	"github.com/resend/resend-go/v2"
)

// ResendService sends envelopes through the Resend HTTP API.
type ResendService struct {
	client  *resend.Client
	timeout time.Duration
}

// NewResendService creates a Resend sender with the given API key.
func NewResendService(apiKey string, timeout time.Duration) *ResendService {
	return &ResendService{
		client:  resend.NewClient(apiKey),
		timeout: timeout,
	}
}

// SendEmail submits one envelope as a plain text email.
func (s *ResendService) SendEmail(ctx context.Context, envelope domain.EmailEnvelope) (domain.SendOutcome, error) {
	if err := checkEnvelope(envelope); err != nil {
		return domain.SendOutcome{}, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	params := &resend.SendEmailRequest{
		From:    envelope.SenderAddress,
		To:      envelope.To,
		Subject: envelope.Subject,
		Text:    envelope.PlainText,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return domain.SendOutcome{}, fmt.Errorf("failed to send email: %w", err)
	}

	return domain.SendOutcome{Status: domain.SendSucceeded, MessageID: sent.Id}, nil
}
