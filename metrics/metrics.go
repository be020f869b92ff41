package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wayfarer"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ItinerariesGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "itineraries_generated_total", Help: "Itineraries served."},
		[]string{"source"}, // source: huggingface|template
	)
	AccommodationSearches = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "accommodation_searches_total", Help: "Accommodation searches."},
		[]string{"outcome"}, // outcome: ok|rejected|error
	)
	EmailsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "emails_sent_total", Help: "Outbound emails."},
		[]string{"kind", "status"},
	)
	AIEnhancements = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "ai_enhancements_total", Help: "Text generation attempts."},
		[]string{"outcome"}, // outcome: ok|unavailable
	)
	BookingClicks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "booking_clicks_total", Help: "Tracked affiliate clicks."},
		[]string{"provider"},
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		HTTPRequests, HTTPLatency,
		ItinerariesGenerated, AccommodationSearches, EmailsSent, AIEnhancements, BookingClicks,
	)
	return reg
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveItinerary(source string) {
	ItinerariesGenerated.WithLabelValues(source).Inc()
}

func ObserveAccommodationSearch(outcome string) {
	AccommodationSearches.WithLabelValues(outcome).Inc()
}

func ObserveEmail(kind string, err error) {
	status := "sent"
	if err != nil {
		status = "failed"
	}
	EmailsSent.WithLabelValues(kind, status).Inc()
}

func ObserveEnhancement(ok bool) {
	outcome := "unavailable"
	if ok {
		outcome = "ok"
	}
	AIEnhancements.WithLabelValues(outcome).Inc()
}

func ObserveBookingClick(provider string) {
	BookingClicks.WithLabelValues(provider).Inc()
}
