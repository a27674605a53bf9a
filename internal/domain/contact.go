package domain

import (
	"context"
	"errors"
)

// Rejection reasons reported by the contact validator.
var (
	ErrMissingFields    = errors.New("missing required fields")
	ErrNameTooLong      = errors.New("name is too long")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrMessageTooLong   = errors.New("message is too long")
	ErrMalformedPayload = errors.New("malformed JSON payload")
)

// ErrEmailSendingFailed wraps failures outside the two per-envelope sends.
var ErrEmailSendingFailed = errors.New("email sending failed")

// ContactSubject is used for both the owner and the customer email.
const ContactSubject = "Website Contact Form"

// ContactSubmission represents a normalized contact form submission
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// EmailEnvelope is a fully formed outbound email ready for submission.
type EmailEnvelope struct {
	SenderAddress string
	Subject       string
	PlainText     string
	To            []string
}

// SendStatus is the settled state of one send attempt.
type SendStatus string

const (
	SendSucceeded SendStatus = "Succeeded"
	SendFailed    SendStatus = "Failed"
)

// SendOutcome records the result of one send attempt.
type SendOutcome struct {
	Status    SendStatus
	MessageID string
	Err       error
}

// Succeeded reports whether the provider accepted the envelope.
func (o SendOutcome) Succeeded() bool {
	return o.Status == SendSucceeded
}

// ContactResult holds the owner outcome first and the customer outcome second.
type ContactResult struct {
	Result         SendOutcome
	CustomerResult SendOutcome
}

// Succeeded reports whether both emails were accepted.
func (r *ContactResult) Succeeded() bool {
	return r.Result.Succeeded() && r.CustomerResult.Succeeded()
}

// ContactAddresses is a snapshot of the mail configuration taken per call.
type ContactAddresses struct {
	Sender       string
	Primary      string
	Extra        string // optional
	BusinessName string
}

// OwnerRecipients returns the primary address and, when set, the extra one.
func (a ContactAddresses) OwnerRecipients() []string {
	to := []string{a.Primary}
	if a.Extra != "" {
		to = append(to, a.Extra)
	}
	return to
}

// ContactAddressSource provides a fresh ContactAddresses snapshot on every call.
type ContactAddressSource interface {
	ContactAddresses() (ContactAddresses, error)
}

// EmailSender submits a single envelope to a mail provider.
type EmailSender interface {
	SendEmail(ctx context.Context, envelope EmailEnvelope) (SendOutcome, error)
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// ValidateSubmission normalizes a decoded request body
	ValidateSubmission(raw map[string]any) (ContactSubmission, error)
	// SendContactMessage sends the owner notification and the customer acknowledgment
	SendContactMessage(ctx context.Context, name, email, message string) (*ContactResult, error)
}
