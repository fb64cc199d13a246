package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BookingMetrics records the outcome of booking attempts and the time spent
// inside the booking transaction.
type BookingMetrics struct {
	attempts *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewBookingMetrics registers the booking metrics on the provided registerer.
func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	if reg == nil {
		return &BookingMetrics{}
	}
	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_attempts_total",
		Help: "Booking attempts partitioned by outcome.",
	}, []string{"outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "booking_transaction_duration_seconds",
		Help:    "Duration of the booking transaction in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	reg.MustRegister(attempts, duration)
	return &BookingMetrics{attempts: attempts, duration: duration}
}

// ObserveAttempt records one booking attempt with its outcome label.
func (b *BookingMetrics) ObserveAttempt(outcome string, elapsed time.Duration) {
	if b == nil || b.attempts == nil {
		return
	}
	outcome = normalizeLabel(outcome)
	b.attempts.WithLabelValues(outcome).Inc()
	b.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}
