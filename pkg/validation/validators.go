package validation

import (
	"regexp"
	"strconv"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// local-part@domain.tld with no whitespace (ASCII or Unicode) and exactly one @
	contactEmailRegex = regexp.MustCompile(`^[^\s\p{Z}\x{FEFF}@]+@[^\s\p{Z}\x{FEFF}@]+\.[^\s\p{Z}\x{FEFF}@]+$`)
)

// New returns a validator instance with the custom rules registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("contact_email", ContactEmail)
	_ = v.RegisterValidation("max_utf16", MaxUTF16)
}

// ContactEmail validates the simple two-part address accepted by the contact form.
// It is looser than the built-in "email" tag.
func ContactEmail(fl validator.FieldLevel) bool {
	return contactEmailRegex.MatchString(fl.Field().String())
}

// MaxUTF16 limits a string by its length in UTF-16 code units, the unit browsers
// use for form field lengths. A rune outside the BMP counts as two.
func MaxUTF16(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return UTF16Len(fl.Field().String()) <= limit
}

// UTF16Len returns the number of UTF-16 code units needed to encode s.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}
