package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"portfolio-contact/internal/config"
	"portfolio-contact/internal/intake"
)

// SMTPChannel delivers submissions through a direct mail relay
type SMTPChannel struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewSMTPChannel creates an SMTP-backed channel
func NewSMTPChannel(cfg *config.MailConfig, from, to string) *SMTPChannel {
	return &SMTPChannel{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   from,
		to:     to,
	}
}

// Name implements Channel
func (c *SMTPChannel) Name() string {
	return "smtp"
}

// Send implements Channel. gomail has no context support, so the dial and
// send run in a goroutine and the context expiring abandons the attempt.
func (c *SMTPChannel) Send(ctx context.Context, sub intake.Submission) (Result, error) {
	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", c.to)
	m.SetHeader("Reply-To", sub.Email)
	m.SetHeader("Subject", subject(sub))
	m.SetBody("text/plain", body(sub))

	errc := make(chan error, 1)
	go func() {
		errc <- c.dialer.DialAndSend(m)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return Result{}, fmt.Errorf("smtp send failed: %w", err)
		}
		// SMTP gives back no message id
		return Result{Delivered: true}, nil
	case <-ctx.Done():
		return Result{}, fmt.Errorf("smtp send aborted: %w", ctx.Err())
	}
}
