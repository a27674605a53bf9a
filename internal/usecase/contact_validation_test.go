package usecase_test

import (
	"strings"
	"testing"

	"contact-mail-backend/internal/domain"
	"contact-mail-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSubmission(t *testing.T) {
	valid := func() map[string]any {
		return map[string]any{"name": "Alice", "email": "alice@example.com", "message": "Hello!"}
	}

	t.Run("Should trim fields and lower-case the email", func(t *testing.T) {
		sub, err := usecase.NormalizeSubmission(map[string]any{
			"name":    "  Alice  ",
			"email":   " Alice@Example.COM ",
			"message": "\n Hello! \t",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ContactSubmission{Name: "Alice", Email: "alice@example.com", Message: "Hello!"}, sub)
	})

	tests := []struct {
		name string
		body map[string]any
		want error
	}{
		{"empty fields", map[string]any{"name": "", "email": "", "message": ""}, domain.ErrMissingFields},
		{"only name", map[string]any{"name": "Alice"}, domain.ErrMissingFields},
		{"whitespace name", map[string]any{"name": "   ", "email": "alice@example.com", "message": "Hello!"}, domain.ErrMissingFields},
		{"non-string message", map[string]any{"name": "Alice", "email": "alice@example.com", "message": 42.0}, domain.ErrMissingFields},
		{"nested email", map[string]any{"name": "Alice", "email": map[string]any{"a": "b"}, "message": "Hello!"}, domain.ErrMissingFields},
		{"name too long", map[string]any{"name": strings.Repeat("A", 101), "email": "alice@example.com", "message": "Hello!"}, domain.ErrNameTooLong},
		{"invalid email", map[string]any{"name": "Alice", "email": "bad-email", "message": "Hello!"}, domain.ErrInvalidEmail},
		{"email without tld", map[string]any{"name": "Alice", "email": "alice@example", "message": "Hello!"}, domain.ErrInvalidEmail},
		{"email with two at signs", map[string]any{"name": "Alice", "email": "a@b@example.com", "message": "Hello!"}, domain.ErrInvalidEmail},
		{"email with no-break space", map[string]any{"name": "Alice", "email": "ali\u00a0ce@example.com", "message": "Hello!"}, domain.ErrInvalidEmail},
		{"email with line separator", map[string]any{"name": "Alice", "email": "alice@exa\u2028mple.com", "message": "Hello!"}, domain.ErrInvalidEmail},
		{"email with ideographic space", map[string]any{"name": "Alice", "email": "ali\u3000ce@example.com", "message": "Hello!"}, domain.ErrInvalidEmail},
		{"email with byte order mark", map[string]any{"name": "Alice", "email": "ali\ufeffce@example.com", "message": "Hello!"}, domain.ErrInvalidEmail},
		{"name of 51 emoji", map[string]any{"name": strings.Repeat("😀", 51), "email": "alice@example.com", "message": "Hello!"}, domain.ErrNameTooLong},
		{"message of 2501 emoji", map[string]any{"name": "Alice", "email": "alice@example.com", "message": strings.Repeat("😀", 2501)}, domain.ErrMessageTooLong},
		{"message too long", map[string]any{"name": "Alice", "email": "alice@example.com", "message": strings.Repeat("A", 5001)}, domain.ErrMessageTooLong},
		{"missing wins over length", map[string]any{"name": strings.Repeat("A", 101), "email": "", "message": "Hello!"}, domain.ErrMissingFields},
		{"name length wins over email", map[string]any{"name": strings.Repeat("A", 101), "email": "bad-email", "message": strings.Repeat("A", 5001)}, domain.ErrNameTooLong},
		{"email wins over message length", map[string]any{"name": "Alice", "email": "bad-email", "message": strings.Repeat("A", 5001)}, domain.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := usecase.NormalizeSubmission(tt.body)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("Should accept values at the limits", func(t *testing.T) {
		body := valid()
		body["name"] = strings.Repeat("A", 100)
		body["message"] = strings.Repeat("é", 5000)
		_, err := usecase.NormalizeSubmission(body)
		assert.NoError(t, err)
	})

	t.Run("Should count emoji as two characters", func(t *testing.T) {
		body := valid()
		body["name"] = strings.Repeat("😀", 50)
		body["message"] = strings.Repeat("😀", 2500)
		_, err := usecase.NormalizeSubmission(body)
		assert.NoError(t, err)
	})

	t.Run("Should unwrap a body sent as its only key", func(t *testing.T) {
		sub, err := usecase.NormalizeSubmission(map[string]any{
			`{"name":"Alice","email":"alice@example.com","message":"Hello!"}`: "",
		})
		require.NoError(t, err)
		assert.Equal(t, "Alice", sub.Name)
		assert.Equal(t, "alice@example.com", sub.Email)
	})

	t.Run("Should reject a malformed body sent as its only key", func(t *testing.T) {
		_, err := usecase.NormalizeSubmission(map[string]any{`{"name":"Alice"`: ""})
		assert.ErrorIs(t, err, domain.ErrMalformedPayload)
	})

	t.Run("Should leave a single ordinary key alone", func(t *testing.T) {
		_, err := usecase.NormalizeSubmission(map[string]any{"name": "Alice"})
		assert.ErrorIs(t, err, domain.ErrMissingFields)
	})
}
