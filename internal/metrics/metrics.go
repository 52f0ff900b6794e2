package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the intake pipeline
type Metrics struct {
	SubmissionsReceived prometheus.Counter
	SubmissionsAccepted prometheus.Counter
	HoneypotDiscards    prometheus.Counter
	ValidationFailures  prometheus.Counter
	RateLimited         prometheus.Counter
	DeliverySuccesses   prometheus.Counter
	DeliveryFailures    prometheus.Counter
	DeliveryDuration    prometheus.Histogram
}

// NewMetrics creates the pipeline metrics registered against reg. Pass
// prometheus.DefaultRegisterer in production; tests use a fresh registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SubmissionsReceived: factory.NewCounter(prometheus.CounterOpts{
			Name: "contact_intake_submissions_received_total",
			Help: "Total number of contact submissions received",
		}),
		SubmissionsAccepted: factory.NewCounter(prometheus.CounterOpts{
			Name: "contact_intake_submissions_accepted_total",
			Help: "Total number of contact submissions accepted",
		}),
		HoneypotDiscards: factory.NewCounter(prometheus.CounterOpts{
			Name: "contact_intake_honeypot_discards_total",
			Help: "Total number of submissions silently discarded by the honeypot check",
		}),
		ValidationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "contact_intake_validation_failures_total",
			Help: "Total number of submissions rejected by schema validation",
		}),
		RateLimited: factory.NewCounter(prometheus.CounterOpts{
			Name: "contact_intake_rate_limited_total",
			Help: "Total number of submissions rejected by the rate limiter",
		}),
		DeliverySuccesses: factory.NewCounter(prometheus.CounterOpts{
			Name: "contact_intake_delivery_successes_total",
			Help: "Total number of successful notification deliveries",
		}),
		DeliveryFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "contact_intake_delivery_failures_total",
			Help: "Total number of failed notification deliveries",
		}),
		DeliveryDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "contact_intake_delivery_duration_seconds",
			Help:    "Time spent delivering notifications",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
