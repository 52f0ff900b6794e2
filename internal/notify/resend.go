package notify

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"portfolio-contact/internal/intake"
)

// ResendChannel delivers submissions through the Resend transactional
// email API
type ResendChannel struct {
	client *resend.Client
	from   string
	to     string
}

// NewResendChannel creates a Resend-backed channel
func NewResendChannel(apiKey, from, to string) *ResendChannel {
	return &ResendChannel{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

// Name implements Channel
func (c *ResendChannel) Name() string {
	return "resend"
}

// Send implements Channel
func (c *ResendChannel) Send(ctx context.Context, sub intake.Submission) (Result, error) {
	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{c.to},
		Subject: subject(sub),
		Text:    body(sub),
		ReplyTo: sub.Email,
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return Result{}, fmt.Errorf("resend send failed: %w", err)
	}

	return Result{Delivered: true, ExternalID: sent.Id}, nil
}
