package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"portfolio-contact/internal/config"
	"portfolio-contact/internal/intake"
	"portfolio-contact/internal/metrics"
	"portfolio-contact/internal/notify"
	"portfolio-contact/internal/ratelimit"
)

// Handlers contains all HTTP handlers for the intake service
type Handlers struct {
	cfg       *config.Config
	validator *intake.Validator
	limiter   ratelimit.Limiter
	channel   notify.Channel
	metrics   *metrics.Metrics
	version   string
	startedAt time.Time
}

// NewHandlers creates new HTTP handlers
func NewHandlers(cfg *config.Config, limiter ratelimit.Limiter, channel notify.Channel, m *metrics.Metrics, version string) *Handlers {
	return &Handlers{
		cfg:       cfg,
		validator: intake.NewValidator(cfg.Contact.MaxMessageLen),
		limiter:   limiter,
		channel:   channel,
		metrics:   m,
		version:   version,
		startedAt: time.Now(),
	}
}

// HealthCheck handles health check requests
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Uptime:  time.Since(h.startedAt).Seconds(),
		Version: h.version,
	})
}

// Contact handles contact form submissions. Outcomes map to responses as:
// honeypot hit or delivered -> 202, schema violations -> 400, over the
// rate cap -> 429, channel failure -> 500. The first failing stage
// short-circuits, so a denied client never reaches the channel.
func (h *Handlers) Contact(c *gin.Context) {
	h.metrics.SubmissionsReceived.Inc()

	requestID := uuid.NewString()
	log := logrus.WithField("request_id", requestID)

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.metrics.ValidationFailures.Inc()
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error: "validation_error",
			Details: []intake.FieldError{
				{Message: "request body must be a JSON object", Path: ""},
			},
		})
		return
	}

	fields := intake.Sanitize(stringFields(body))

	// Suspected bot traffic gets the genuine success shape so automated
	// senders cannot tell they were detected.
	if intake.HoneypotTriggered(fields, h.cfg.Contact.HoneypotField) {
		h.metrics.HoneypotDiscards.Inc()
		log.Warn("Honeypot field set, discarding submission")
		c.JSON(http.StatusAccepted, AcceptedResponse{Success: true, ID: nil})
		return
	}

	sub, fieldErrs := h.validator.Validate(fields)
	if len(fieldErrs) > 0 {
		h.metrics.ValidationFailures.Inc()
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:   "validation_error",
			Details: fieldErrs,
		})
		return
	}

	key := ratelimit.ClientKey(c.Request, h.cfg.Server.TrustProxy)
	allowed, retryAfter := h.limiter.Allow(key)
	if !allowed {
		h.metrics.RateLimited.Inc()
		c.Header("Retry-After", retryAfterSeconds(retryAfter))
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "rate_limited"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.Mail.SendTimeout)
	defer cancel()

	start := time.Now()
	result, err := h.channel.Send(ctx, sub)
	h.metrics.DeliveryDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		h.metrics.DeliveryFailures.Inc()
		log.WithError(err).WithField("channel", h.channel.Name()).Error("Notification delivery failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "send_failed"})
		return
	}

	h.metrics.DeliverySuccesses.Inc()
	h.metrics.SubmissionsAccepted.Inc()
	log.WithFields(logrus.Fields{
		"channel":     h.channel.Name(),
		"external_id": result.ExternalID,
	}).Info("Contact submission accepted")

	var id *string
	if result.ExternalID != "" {
		id = &result.ExternalID
	}
	c.JSON(http.StatusAccepted, AcceptedResponse{Success: true, ID: id})
}

// stringFields extracts the string-valued members of a decoded JSON
// object. Non-string values coerce to the empty string, matching the
// sanitizer's contract for unknown input.
func stringFields(body map[string]interface{}) map[string]string {
	fields := make(map[string]string, len(body))
	for k, v := range body {
		s, _ := v.(string)
		fields[k] = s
	}
	return fields
}

// retryAfterSeconds formats a duration as whole seconds, rounded up so
// clients never retry before the window actually expires.
func retryAfterSeconds(d time.Duration) string {
	secs := int64(d / time.Second)
	if d%time.Second > 0 {
		secs++
	}
	if secs < 1 {
		secs = 1
	}
	return strconv.FormatInt(secs, 10)
}
