// Package metrics defines the Prometheus collectors of the site server.
//
// Collectors are registered on an injected registerer so that tests can use
// a fresh registry. Labels carry only bounded values (kinds, results, route
// patterns), never revision IDs or publishers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "site_keeper"

// Results recorded by BuildsTotal and PublishesTotal.
const (
	ResultOK        = "ok"
	ResultRejected  = "rejected"
	ResultError     = "error"
	ResultCreated   = "created"
	ResultUnchanged = "unchanged"
)

// Metrics holds every collector of the server.
type Metrics struct {
	// BuildsTotal counts configuration builds by result (ok, rejected, error).
	BuildsTotal *prometheus.CounterVec
	// ViolationsTotal counts reported violations by kind.
	ViolationsTotal *prometheus.CounterVec
	// PublishesTotal counts publish attempts by result
	// (created, unchanged, rejected, error).
	PublishesTotal *prometheus.CounterVec
	// LatestRevision is the number of the most recently published revision.
	LatestRevision prometheus.Gauge

	// HTTPRequestsTotal counts served requests by method, route and status.
	HTTPRequestsTotal *prometheus.CounterVec
	// HTTPRequestDuration observes request latency by method and route.
	HTTPRequestDuration *prometheus.HistogramVec
	// RateLimitedTotal counts requests rejected by the write rate limit.
	RateLimitedTotal prometheus.Counter
}

// New registers the collectors on reg. A nil reg uses
// [prometheus.DefaultRegisterer].
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		BuildsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "config_builds_total",
			Help:      "Total number of site configuration builds, by result.",
		}, []string{"result"}),
		ViolationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "config_violations_total",
			Help:      "Total number of site configuration violations, by kind.",
		}, []string{"kind"}),
		PublishesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "config_publishes_total",
			Help:      "Total number of publish attempts, by result.",
		}, []string{"result"}),
		LatestRevision: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "config_latest_revision",
			Help:      "Number of the latest published site configuration revision.",
		}),
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests, by method, route and status code.",
		}, []string{"method", "route", "code"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		RateLimitedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_rate_limited_total",
			Help:      "Total number of write requests rejected by the rate limit.",
		}),
	}
}
