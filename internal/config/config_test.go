package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:       "8080",
			HealthPath: "/health",
		},
		RateLimit: RateLimitConfig{
			Capacity: 5,
			Window:   time.Minute,
		},
		Contact: ContactConfig{
			HoneypotField: "website",
			MaxMessageLen: 5000,
		},
	}
}

func TestConfigValidation(t *testing.T) {
	// simulate mode needs no mail settings at all
	assert.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.Server.Port = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Server.HealthPath = "health"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.RateLimit.Capacity = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.RateLimit.Window = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Contact.HoneypotField = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Contact.MaxMessageLen = 0
	assert.Error(t, cfg.Validate())
}

func TestConfigValidationMailChannel(t *testing.T) {
	// a configured channel requires destination addresses
	cfg := validConfig()
	cfg.Mail.ResendAPIKey = "re_key"
	assert.Error(t, cfg.Validate())

	cfg.Contact.To = "owner@example.com"
	cfg.Contact.From = "noreply@example.com"
	assert.NoError(t, cfg.Validate())

	// SMTP additionally requires credentials
	cfg = validConfig()
	cfg.Contact.To = "owner@example.com"
	cfg.Contact.From = "noreply@example.com"
	cfg.Mail.SMTPHost = "smtp.example.com"
	assert.Error(t, cfg.Validate())

	cfg.Mail.SMTPUsername = "user"
	cfg.Mail.SMTPPassword = "pass"
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "/health", cfg.Server.HealthPath)
	assert.False(t, cfg.Server.TrustProxy)
	assert.Equal(t, 5, cfg.RateLimit.Capacity)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "website", cfg.Contact.HoneypotField)
	assert.Equal(t, 5000, cfg.Contact.MaxMessageLen)
	assert.Equal(t, 10*time.Second, cfg.Mail.SendTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
}
