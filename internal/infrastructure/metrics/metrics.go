package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nutricoach_cache_hits_total",
		Help: "Cache lookups served from Redis.",
	}, []string{"cache"})

	cacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nutricoach_cache_misses_total",
		Help: "Cache lookups that fell through to MongoDB.",
	}, []string{"cache"})

	appointmentsBooked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nutricoach_appointments_booked_total",
		Help: "Appointments created.",
	})

	bookingConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nutricoach_booking_conflicts_total",
		Help: "Bookings refused because the specialist already has a booking that day.",
	})

	consultationDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nutricoach_consultation_decisions_total",
		Help: "Consultation requests assigned or rejected.",
	}, []string{"action"})

	messagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nutricoach_messages_sent_total",
		Help: "Messages stored.",
	})

	notificationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nutricoach_notification_failures_total",
		Help: "Notifications that could not be delivered.",
	}, []string{"kind"})

	translationFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nutricoach_translation_fallbacks_total",
		Help: "Translations that fell back to the source text.",
	})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "nutricoach_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func IncCacheHit(cache string)  { cacheHits.WithLabelValues(cache).Inc() }
func IncCacheMiss(cache string) { cacheMisses.WithLabelValues(cache).Inc() }

func IncAppointmentBooked() { appointmentsBooked.Inc() }
func IncBookingConflict()   { bookingConflicts.Inc() }

func IncConsultationDecision(action string) {
	consultationDecisions.WithLabelValues(action).Inc()
}

func IncMessageSent() { messagesSent.Inc() }

func IncNotificationFailure(kind string) {
	notificationFailures.WithLabelValues(kind).Inc()
}

func IncTranslationFallback() { translationFallbacks.Inc() }

func ObserveHTTPRequest(method, route, status string, seconds float64) {
	httpDuration.WithLabelValues(method, route, status).Observe(seconds)
}
