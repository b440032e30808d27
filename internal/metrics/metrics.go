package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "miyalefilms_http_requests_total",
			Help: "Total HTTP requests served, by method, route and status.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "miyalefilms_http_request_duration_seconds",
			Help:    "HTTP request latency, by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	EnquiriesSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "miyalefilms_enquiries_submitted_total",
			Help: "Enquiry form submissions, by outcome.",
		},
		[]string{"outcome"},
	)
)
