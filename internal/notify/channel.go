// Package notify delivers accepted contact submissions to the site owner
// through exactly one configured channel. Selection happens once at
// startup; each submission is attempted exactly once with no retry and no
// queue.
package notify

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"portfolio-contact/internal/config"
	"portfolio-contact/internal/intake"
)

// Result describes the outcome of one delivery attempt. ExternalID is the
// provider-assigned message id, empty when the channel has none to give.
type Result struct {
	Delivered  bool
	ExternalID string
}

// Channel is a single outbound delivery channel
type Channel interface {
	// Name identifies the channel in logs and the startup banner
	Name() string

	// Send delivers one submission. The context bounds the attempt;
	// expiry counts as a delivery failure.
	Send(ctx context.Context, sub intake.Submission) (Result, error)
}

// FromConfig selects the active channel by precedence: Resend API key,
// then SendGrid API key, then SMTP relay credentials. With nothing
// configured it falls back to the simulate channel, which reports success
// without sending so the pipeline is exercisable without credentials.
func FromConfig(cfg *config.Config) Channel {
	switch {
	case cfg.Mail.ResendAPIKey != "":
		return NewResendChannel(cfg.Mail.ResendAPIKey, cfg.Contact.From, cfg.Contact.To)
	case cfg.Mail.SendGridAPIKey != "":
		return NewSendGridChannel(cfg.Mail.SendGridAPIKey, cfg.Contact.From, cfg.Contact.To)
	case cfg.Mail.SMTPHost != "":
		return NewSMTPChannel(&cfg.Mail, cfg.Contact.From, cfg.Contact.To)
	default:
		logrus.Warn("No mail channel configured, running in simulate mode")
		return NewSimulateChannel()
	}
}

// subject builds the notification subject line for a submission
func subject(sub intake.Submission) string {
	return fmt.Sprintf("Portfolio contact: %s", sub.Name)
}

// body builds the plain-text notification body for a submission
func body(sub intake.Submission) string {
	return fmt.Sprintf(`New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, sub.Name, sub.Email, sub.Message)
}
