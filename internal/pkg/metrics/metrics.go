package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inkwell_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inkwell_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "inkwell_http_active_requests",
			Help: "Number of in-flight HTTP requests",
		},
	)

	ReactionToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inkwell_reaction_toggles_total",
			Help: "Reaction and follow toggles by target kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	ContentTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "inkwell_content_total",
			Help: "Current number of rows per content kind, refreshed by the stats job",
		},
		[]string{"kind"},
	)
)

// ObserveToggle 记录一次 toggle 的结果
func ObserveToggle(kind, outcome string) {
	ReactionToggles.WithLabelValues(kind, outcome).Inc()
}
