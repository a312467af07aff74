package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы вызова соседнего сервиса
const (
	OutcomeSuccess     = "success"
	OutcomeAbsent      = "absent"
	OutcomeUnavailable = "unavailable"
	OutcomeMalformed   = "malformed"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eazybank_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"service", "method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eazybank_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "route"},
	)

	DownstreamCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eazybank_downstream_calls_total",
			Help: "Downstream adapter calls by target service and outcome",
		},
		[]string{"target", "outcome"},
	)

	DownstreamCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eazybank_downstream_call_duration_seconds",
			Help:    "Duration of downstream adapter calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"target"},
	)

	GatewayProxiedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eazybank_gateway_proxied_total",
			Help: "Requests proxied by the gateway per route and status",
		},
		[]string{"route", "status"},
	)
)
