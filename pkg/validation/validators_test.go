package validation_test

import (
	"testing"

	"contact-mail-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func TestContactEmail(t *testing.T) {
	v := validation.New()

	valid := []string{"alice@example.com", "a.b+c@sub.example.co", "x@y.z"}
	for _, addr := range valid {
		assert.NoError(t, v.Var(addr, "contact_email"), addr)
	}

	invalid := []string{"bad-email", "a@b", "a@@b.c", "a b@c.d", "@b.c", "a@.", "a@b.c d", "ali\u00a0ce@example.com", "alice@exa\u2028mple.com", "ali\u3000ce@example.com"}
	for _, addr := range invalid {
		assert.Error(t, v.Var(addr, "contact_email"), addr)
	}
}

func TestMaxUTF16(t *testing.T) {
	v := validation.New()

	assert.Equal(t, 2, validation.UTF16Len("😀"))
	assert.Equal(t, 4, validation.UTF16Len("aé😀"))
	assert.NoError(t, v.Var("😀😀", "max_utf16=4"))
	assert.Error(t, v.Var("😀😀a", "max_utf16=4"))
	assert.NoError(t, v.Var("éééé", "max_utf16=4"))
}
