package config

import (
	"errors"
	"os"
	"strings"

	"contact-mail-backend/internal/domain"
)

const defaultBusinessName = "Caddo Lake Bayou Tours"

// EnvContactAddresses reads the contact mail addresses from the process
// environment on every call.
type EnvContactAddresses struct{}

// ContactAddresses returns a snapshot of SENDER_EMAIL, SECONDARY_EMAIL,
// EXTRA_CONTACT_EMAIL and BUSINESS_NAME.
func (EnvContactAddresses) ContactAddresses() (domain.ContactAddresses, error) {
	addrs := domain.ContactAddresses{
		Sender:       strings.TrimSpace(os.Getenv("SENDER_EMAIL")),
		Primary:      strings.TrimSpace(os.Getenv("SECONDARY_EMAIL")),
		Extra:        strings.TrimSpace(os.Getenv("EXTRA_CONTACT_EMAIL")),
		BusinessName: strings.TrimSpace(getEnv("BUSINESS_NAME", defaultBusinessName)),
	}

	if addrs.Sender == "" {
		return domain.ContactAddresses{}, errors.New("SENDER_EMAIL is not set")
	}
	if addrs.Primary == "" {
		return domain.ContactAddresses{}, errors.New("SECONDARY_EMAIL is not set")
	}

	return addrs, nil
}
