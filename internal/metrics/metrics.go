// README: Prometheus collectors for HTTP traffic and the deck's computations.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deck_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "deck_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	HttpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "deck_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	SimulationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deck_simulations_total",
			Help: "Total number of day-earnings simulations computed",
		},
	)

	ComparisonsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deck_platform_comparisons_total",
			Help: "Total number of platform comparisons by scenario and beneficiary",
		},
		[]string{"scenario", "beneficiary"},
	)

	DiagnosticProbesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deck_diagnostic_probes_total",
			Help: "Total number of diagnostic database probes by connection status",
		},
		[]string{"status"},
	)
)

// RecordHTTP records one finished request. route is the matched route template,
// not the raw path, to keep label cardinality bounded.
func RecordHTTP(method, route string, statusCode int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	status := strconv.Itoa(statusCode)
	HttpRequestsTotal.WithLabelValues(method, route, status).Inc()
	HttpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

func RecordSimulation() {
	SimulationsTotal.Inc()
}

func RecordComparison(scenario, beneficiary string) {
	ComparisonsTotal.WithLabelValues(scenario, beneficiary).Inc()
}

func RecordDiagnosticProbe(status string) {
	DiagnosticProbesTotal.WithLabelValues(status).Inc()
}
