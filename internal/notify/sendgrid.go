package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"portfolio-contact/internal/intake"
)

// SendGridChannel delivers submissions through the SendGrid API
type SendGridChannel struct {
	client *sendgrid.Client
	from   string
	to     string
}

// NewSendGridChannel creates a SendGrid-backed channel
func NewSendGridChannel(apiKey, from, to string) *SendGridChannel {
	return &SendGridChannel{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
		to:     to,
	}
}

// Name implements Channel
func (c *SendGridChannel) Name() string {
	return "sendgrid"
}

// Send implements Channel
func (c *SendGridChannel) Send(ctx context.Context, sub intake.Submission) (Result, error) {
	msg := mail.NewV3MailInit(
		mail.NewEmail("", c.from),
		subject(sub),
		mail.NewEmail("", c.to),
		mail.NewContent("text/plain", body(sub)),
	)
	msg.SetReplyTo(mail.NewEmail(sub.Name, sub.Email))

	resp, err := c.client.SendWithContext(ctx, msg)
	if err != nil {
		return Result{}, fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return Result{}, fmt.Errorf("sendgrid send failed with status %d", resp.StatusCode)
	}

	id := ""
	if ids := resp.Headers["X-Message-Id"]; len(ids) > 0 {
		id = ids[0]
	}

	return Result{Delivered: true, ExternalID: id}, nil
}
