package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the intake service
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Contact   ContactConfig   `mapstructure:"contact"`
	Mail      MailConfig      `mapstructure:"mail"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	HealthPath   string        `mapstructure:"health_path"`
	TrustProxy   bool          `mapstructure:"trust_proxy"`
	CORSOrigins  []string      `mapstructure:"cors_origins"`
}

// RateLimitConfig holds fixed-window rate limiter configuration
type RateLimitConfig struct {
	Capacity int           `mapstructure:"capacity"`
	Window   time.Duration `mapstructure:"window"`
}

// ContactConfig holds contact form configuration
type ContactConfig struct {
	HoneypotField string `mapstructure:"honeypot_field"`
	MaxMessageLen int    `mapstructure:"max_message_len"`
	To            string `mapstructure:"to"`
	From          string `mapstructure:"from"`
}

// MailConfig holds delivery channel configuration. At most one channel is
// selected at startup: Resend key, then SendGrid key, then SMTP host, then
// simulate mode when nothing is configured.
type MailConfig struct {
	ResendAPIKey   string        `mapstructure:"resend_api_key"`
	SendGridAPIKey string        `mapstructure:"sendgrid_api_key"`
	SMTPHost       string        `mapstructure:"smtp_host"`
	SMTPPort       int           `mapstructure:"smtp_port"`
	SMTPUsername   string        `mapstructure:"smtp_username"`
	SMTPPassword   string        `mapstructure:"smtp_password"`
	SendTimeout    time.Duration `mapstructure:"send_timeout"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig loads configuration from environment variables and config file
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set defaults
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Environment variables override config file
	viper.AutomaticEnv()

	// Bind environment variables
	bindEnvVars()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.health_path", "/health")
	viper.SetDefault("server.trust_proxy", false)
	viper.SetDefault("server.cors_origins", []string{})

	viper.SetDefault("ratelimit.capacity", 5)
	viper.SetDefault("ratelimit.window", "60s")

	viper.SetDefault("contact.honeypot_field", "website")
	viper.SetDefault("contact.max_message_len", 5000)

	viper.SetDefault("mail.smtp_port", 587)
	viper.SetDefault("mail.send_timeout", "10s")

	viper.SetDefault("log.level", "info")
}

// bindEnvVars binds environment variables to configuration keys
func bindEnvVars() {
	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	viper.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")
	viper.BindEnv("server.health_path", "HEALTH_PATH")
	viper.BindEnv("server.trust_proxy", "TRUST_PROXY")
	viper.BindEnv("server.cors_origins", "CORS_ORIGINS")

	// Rate limiting
	viper.BindEnv("ratelimit.capacity", "RATE_LIMIT_CAPACITY")
	viper.BindEnv("ratelimit.window", "RATE_LIMIT_WINDOW")

	// Contact form
	viper.BindEnv("contact.honeypot_field", "HONEYPOT_FIELD")
	viper.BindEnv("contact.max_message_len", "MAX_MESSAGE_LEN")
	viper.BindEnv("contact.to", "CONTACT_TO")
	viper.BindEnv("contact.from", "CONTACT_FROM")

	// Mail channels
	viper.BindEnv("mail.resend_api_key", "RESEND_API_KEY")
	viper.BindEnv("mail.sendgrid_api_key", "SENDGRID_API_KEY")
	viper.BindEnv("mail.smtp_host", "SMTP_HOST")
	viper.BindEnv("mail.smtp_port", "SMTP_PORT")
	viper.BindEnv("mail.smtp_username", "SMTP_USERNAME")
	viper.BindEnv("mail.smtp_password", "SMTP_PASSWORD")
	viper.BindEnv("mail.send_timeout", "MAIL_SEND_TIMEOUT")

	// Logging
	viper.BindEnv("log.level", "LOG_LEVEL")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if !strings.HasPrefix(c.Server.HealthPath, "/") {
		return fmt.Errorf("health path must start with /")
	}

	if c.RateLimit.Capacity <= 0 {
		return fmt.Errorf("rate limit capacity must be greater than 0")
	}

	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate limit window must be greater than 0")
	}

	if c.Contact.HoneypotField == "" {
		return fmt.Errorf("honeypot field name is required")
	}

	if c.Contact.MaxMessageLen <= 0 {
		return fmt.Errorf("max message length must be greater than 0")
	}

	// A delivery channel needs a destination address. Simulate mode
	// (no channel configured) is exempt so the pipeline stays runnable
	// without credentials.
	if c.Mail.ResendAPIKey != "" || c.Mail.SendGridAPIKey != "" || c.Mail.SMTPHost != "" {
		if c.Contact.To == "" || c.Contact.From == "" {
			return fmt.Errorf("contact to and from addresses are required when a mail channel is configured")
		}
	}

	if c.Mail.SMTPHost != "" {
		if c.Mail.SMTPUsername == "" || c.Mail.SMTPPassword == "" {
			return fmt.Errorf("SMTP credentials are required when an SMTP host is configured")
		}
	}

	return nil
}
