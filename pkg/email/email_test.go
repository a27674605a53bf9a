package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"contact-mail-backend/config"
	"contact-mail-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnvelope() domain.EmailEnvelope {
	return domain.EmailEnvelope{
		SenderAddress: "noreply@example.com",
		Subject:       domain.ContactSubject,
		PlainText:     "line one\nline two\r\nline three",
		To:            []string{"owner@example.com", "extra@example.com"},
	}
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage(testEnvelope()))

	assert.Contains(t, msg, "From: noreply@example.com\r\n")
	assert.Contains(t, msg, "To: owner@example.com, extra@example.com\r\n")
	assert.Contains(t, msg, "Subject: Website Contact Form\r\n")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	assert.True(t, strings.HasSuffix(msg, "line one\r\nline two\r\nline three"))
	assert.NotContains(t, strings.ReplaceAll(msg, "\r\n", ""), "\n")
}

func TestCheckEnvelope(t *testing.T) {
	env := testEnvelope()
	env.SenderAddress = ""
	assert.ErrorIs(t, checkEnvelope(env), ErrNoSender)

	env = testEnvelope()
	env.To = nil
	assert.ErrorIs(t, checkEnvelope(env), ErrNoRecipients)

	assert.NoError(t, checkEnvelope(testEnvelope()))
}

func TestNewSender(t *testing.T) {
	t.Run("Should build the smtp sender", func(t *testing.T) {
		cfg := &config.Config{MailProvider: config.MailProviderSMTP, SMTPHost: "smtp.example.com", SMTPPort: "587", SMTPUsername: "u", SMTPPassword: "p"}
		sender, err := NewSender(cfg)
		require.NoError(t, err)
		assert.IsType(t, &SMTPService{}, sender)
	})

	t.Run("Should refuse an incomplete smtp config", func(t *testing.T) {
		_, err := NewSender(&config.Config{MailProvider: config.MailProviderSMTP, SMTPHost: "smtp.example.com"})
		assert.Error(t, err)
	})

	t.Run("Should build the resend sender", func(t *testing.T) {
		sender, err := NewSender(&config.Config{MailProvider: config.MailProviderResend, ResendAPIKey: "re_test"})
		require.NoError(t, err)
		assert.IsType(t, &ResendService{}, sender)
	})

	t.Run("Should reject unknown providers", func(t *testing.T) {
		_, err := NewSender(&config.Config{MailProvider: "sendmail"})
		assert.Error(t, err)
	})
}

func TestSMTPServiceConnectionFailure(t *testing.T) {
	// Grab a free port and close it so the dial is refused.
	ln := httptest.NewServer(http.NotFoundHandler())
	u, _ := url.Parse(ln.URL)
	ln.Close()

	svc := &SMTPService{host: u.Hostname(), port: u.Port(), username: "u", password: "p", timeout: time.Second}
	_, err := svc.SendEmail(context.Background(), testEnvelope())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to smtp server")
}

func TestResendServiceSendEmail(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_123"}`))
	}))
	defer srv.Close()

	svc := NewResendService("re_test", time.Second)
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	svc.client.BaseURL = base

	out, err := svc.SendEmail(context.Background(), testEnvelope())
	require.NoError(t, err)
	assert.Equal(t, domain.SendSucceeded, out.Status)
	assert.Equal(t, "msg_123", out.MessageID)
	assert.Equal(t, "noreply@example.com", got["from"])
	assert.Equal(t, domain.ContactSubject, got["subject"])
	assert.Equal(t, []any{"owner@example.com", "extra@example.com"}, got["to"])
}
