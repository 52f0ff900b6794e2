package notify

import (
	"context"

	"github.com/sirupsen/logrus"

	"portfolio-contact/internal/intake"
)

// SimulateChannel reports success without sending anything. It is the
// fallback when no delivery channel is configured, so local development
// exercises the full pipeline without credentials.
type SimulateChannel struct{}

// NewSimulateChannel creates a simulate channel
func NewSimulateChannel() *SimulateChannel {
	return &SimulateChannel{}
}

// Name implements Channel
func (c *SimulateChannel) Name() string {
	return "simulate"
}

// Send implements Channel. The empty ExternalID surfaces to the caller as
// a null id, the same shape a honeypot discard produces.
func (c *SimulateChannel) Send(ctx context.Context, sub intake.Submission) (Result, error) {
	logrus.WithFields(logrus.Fields{
		"name":  sub.Name,
		"email": sub.Email,
	}).Info("Simulate mode: submission accepted without delivery")
	return Result{Delivered: true}, nil
}
