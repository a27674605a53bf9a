package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	MailProviderSMTP   = "smtp"
	MailProviderResend = "resend"
)

type Config struct {
	Port           string
	Production     bool
	LogLevel       string
	TrustedProxies []string
	// CORS allow list (ALLOW_LIST, plus DEV_ALLOW_LIST outside production)
	AllowList []string
	// Mail addresses, checked at startup. The use case re-reads them per call.
	SenderEmail    string
	SecondaryEmail string
	// Mail provider
	MailProvider       string
	MailTimeoutSeconds int
	SMTPHost           string
	SMTPPort           string
	SMTPUsername       string
	SMTPPassword       string
	ResendAPIKey       string
	// Redis Configuration (optional, shared rate limit counters)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	RateLimitMaxRequests   int
}

func LoadConfig() (*Config, error) {
	// Load .env file when present; real environment variables win.
	_ = godotenv.Load()

	production := getEnv("GIN_MODE", "") == "release"

	allowList := splitList(getEnv("ALLOW_LIST", ""))
	if !production {
		allowList = append(allowList, splitList(getEnv("DEV_ALLOW_LIST", ""))...)
	}

	cfg := &Config{
		Port:           getEnv("PORT", "3000"),
		Production:     production,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),
		AllowList:      allowList,
		SenderEmail:    getEnv("SENDER_EMAIL", ""),
		SecondaryEmail: getEnv("SECONDARY_EMAIL", ""),
		// Mail provider
		MailProvider:       strings.ToLower(getEnv("MAIL_PROVIDER", MailProviderSMTP)),
		MailTimeoutSeconds: getEnvInt("MAIL_TIMEOUT_SECONDS", 30),
		SMTPHost:           getEnv("SMTP_HOST", ""),
		SMTPPort:           getEnv("SMTP_PORT", "587"),
		SMTPUsername:       getEnv("SMTP_USERNAME", ""),
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitMaxRequests:   getEnvInt("RATE_LIMIT_MAX_REQUESTS", 10),
	}

	if cfg.MailProvider != MailProviderSMTP && cfg.MailProvider != MailProviderResend {
		return nil, fmt.Errorf("unsupported MAIL_PROVIDER %q (want %s or %s)", cfg.MailProvider, MailProviderSMTP, MailProviderResend)
	}

	if missing := cfg.missingKeys(); len(missing) > 0 {
		return nil, fmt.Errorf("missing required env vars: %s", strings.Join(missing, ", "))
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory store.")
	}

	return cfg, nil
}

func (c *Config) missingKeys() []string {
	var missing []string
	if len(c.AllowList) == 0 {
		missing = append(missing, "ALLOW_LIST")
	}
	if c.SenderEmail == "" {
		missing = append(missing, "SENDER_EMAIL")
	}
	if c.SecondaryEmail == "" {
		missing = append(missing, "SECONDARY_EMAIL")
	}

	switch c.MailProvider {
	case MailProviderResend:
		if c.ResendAPIKey == "" {
			missing = append(missing, "RESEND_API_KEY")
		}
	case MailProviderSMTP:
		if c.SMTPHost == "" {
			missing = append(missing, "SMTP_HOST")
		}
		if c.SMTPUsername == "" {
			missing = append(missing, "SMTP_USERNAME")
		}
		if c.SMTPPassword == "" {
			missing = append(missing, "SMTP_PASSWORD")
		}
	}

	return missing
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// splitList splits a comma separated value, trimming entries and dropping empties
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
