package usecase

import (
	"context"
	"fmt"

	"contact-mail-backend/internal/domain"
	"contact-mail-backend/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const customerAcknowledgment = "We have received your email and we will get in contact with you as soon as we can."

type contactUsecase struct {
	sender    domain.EmailSender
	addresses domain.ContactAddressSource
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender domain.EmailSender, addresses domain.ContactAddressSource) domain.ContactUsecase {
	return &contactUsecase{
		sender:    sender,
		addresses: addresses,
	}
}

// ValidateSubmission normalizes a decoded request body
func (uc *contactUsecase) ValidateSubmission(raw map[string]any) (domain.ContactSubmission, error) {
	return NormalizeSubmission(raw)
}

// SendContactMessage sends the owner notification and the customer
// acknowledgment concurrently. A failed send is reported in the result and
// never prevents the other one from being attempted.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, name, email, message string) (*domain.ContactResult, error) {
	if name == "" || email == "" || message == "" {
		return nil, domain.ErrMissingFields
	}

	addrs, err := uc.addresses.ContactAddresses()
	if err != nil {
		logger.Log.Error("Failed to read contact addresses", "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrEmailSendingFailed, err)
	}

	owner := ownerEnvelope(addrs, name, email, message)
	customer := customerEnvelope(addrs, email)

	// Sends are not tied to the request lifetime.
	sendCtx := context.WithoutCancel(ctx)

	var result domain.ContactResult
	var g errgroup.Group
	g.Go(func() error {
		result.Result = uc.send(sendCtx, "owner", owner)
		return nil
	})
	g.Go(func() error {
		result.CustomerResult = uc.send(sendCtx, "customer", customer)
		return nil
	})
	_ = g.Wait()

	return &result, nil
}

// send performs one attempt and settles it into an outcome.
func (uc *contactUsecase) send(ctx context.Context, kind string, envelope domain.EmailEnvelope) (outcome domain.SendOutcome) {
	defer func() {
		if rvr := recover(); rvr != nil {
			outcome = domain.SendOutcome{Status: domain.SendFailed, Err: fmt.Errorf("email sender panicked: %v", rvr)}
		}
		if !outcome.Succeeded() {
			logger.Log.Warn("Contact email not sent", "kind", kind, "status", outcome.Status, "error", outcome.Err)
		}
	}()

	out, err := uc.sender.SendEmail(ctx, envelope)
	if err != nil {
		return domain.SendOutcome{Status: domain.SendFailed, Err: err}
	}
	if out.Status == "" {
		out.Status = domain.SendSucceeded
	}
	return out
}

func ownerEnvelope(addrs domain.ContactAddresses, name, email, message string) domain.EmailEnvelope {
	body := fmt.Sprintf(
		"%s has been viewing your website and has some questions.\n\n"+
			"Email: %s\n\n"+
			"Message:\n"+
			"----------------------------------------\n"+
			"%s\n",
		name, email, message,
	)

	return domain.EmailEnvelope{
		SenderAddress: addrs.Sender,
		Subject:       domain.ContactSubject,
		PlainText:     body,
		To:            addrs.OwnerRecipients(),
	}
}

func customerEnvelope(addrs domain.ContactAddresses, email string) domain.EmailEnvelope {
	body := customerAcknowledgment + "\n\nThank You, " + addrs.BusinessName + "\n"

	return domain.EmailEnvelope{
		SenderAddress: addrs.Sender,
		Subject:       domain.ContactSubject,
		PlainText:     body,
		To:            []string{email},
	}
}
