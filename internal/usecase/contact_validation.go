package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"contact-mail-backend/internal/domain"
	"contact-mail-backend/pkg/validation"
)

const (
	maxNameLength    = 100
	maxMessageLength = 5000
)

var (
	contactValidate = validation.New()
	nameRule        = fmt.Sprintf("max_utf16=%d", maxNameLength)
	messageRule     = fmt.Sprintf("max_utf16=%d", maxMessageLength)
)

// NormalizeSubmission trims and validates a decoded contact form body.
// Rules are checked in a fixed order so that only the first violation is
// reported: missing fields, name length, email format, message length.
func NormalizeSubmission(raw map[string]any) (domain.ContactSubmission, error) {
	body, err := unwrapEncodedBody(raw)
	if err != nil {
		return domain.ContactSubmission{}, err
	}

	sub := domain.ContactSubmission{
		Name:    strings.TrimSpace(stringField(body, "name")),
		Email:   strings.ToLower(strings.TrimSpace(stringField(body, "email"))),
		Message: strings.TrimSpace(stringField(body, "message")),
	}

	if sub.Name == "" || sub.Email == "" || sub.Message == "" {
		return domain.ContactSubmission{}, domain.ErrMissingFields
	}
	if contactValidate.Var(sub.Name, nameRule) != nil {
		return domain.ContactSubmission{}, domain.ErrNameTooLong
	}
	if contactValidate.Var(sub.Email, "contact_email") != nil {
		return domain.ContactSubmission{}, domain.ErrInvalidEmail
	}
	if contactValidate.Var(sub.Message, messageRule) != nil {
		return domain.ContactSubmission{}, domain.ErrMessageTooLong
	}

	return sub, nil
}

// unwrapEncodedBody handles a client that posts the JSON document as the only
// key of a form-encoded body.
func unwrapEncodedBody(raw map[string]any) (map[string]any, error) {
	if len(raw) != 1 {
		return raw, nil
	}

	for key := range raw {
		if !strings.HasPrefix(key, "{") {
			return raw, nil
		}

		var decoded map[string]any
		if err := json.Unmarshal([]byte(key), &decoded); err != nil || decoded == nil {
			return nil, domain.ErrMalformedPayload
		}
		return decoded, nil
	}

	return raw, nil
}

// stringField returns the value under key when it is a string; anything else
// counts as absent.
func stringField(body map[string]any, key string) string {
	s, _ := body[key].(string)
	return s
}
