package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics prometheus collectors of the service.
// Each instance owns its registry, so several instances can coexist (tests).
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	SubmitOutcomes      *prometheus.CounterVec
	AlternativesFound   prometheus.Histogram
	UpstreamErrors      *prometheus.CounterVec
	CacheLookups        *prometheus.CounterVec
}

// New registers all collectors under the service namespace
func New(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		SubmitOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "booking_submit_outcomes_total",
			Help:      "Booking submissions by outcome",
		}, []string{"outcome"}),
		AlternativesFound: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "booking_alternatives_returned",
			Help:      "Number of alternative rooms returned per lookup",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13},
		}),
		UpstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "upstream_errors_total",
			Help:      "Failed calls to remote services",
		}, []string{"service", "operation"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "room_cache_lookups_total",
			Help:      "Room cache lookups by result",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SubmitOutcomes,
		m.AlternativesFound,
		m.UpstreamErrors,
		m.CacheLookups,
	)

	return m
}

// Handler exposes the registry in the prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP records one finished request
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordSubmitOutcome(outcome string) {
	m.SubmitOutcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordAlternatives(count int) {
	m.AlternativesFound.Observe(float64(count))
}

func (m *Metrics) RecordUpstreamError(service, operation string) {
	m.UpstreamErrors.WithLabelValues(service, operation).Inc()
}

func (m *Metrics) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}
