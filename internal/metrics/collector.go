package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Collector registers and records the service metrics.
type Collector struct {
	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Routing metrics
	routeDecisionsTotal *prometheus.CounterVec
	routeDuration       *prometheus.HistogramVec
	routeStandinsTotal  *prometheus.CounterVec

	// Capability metrics
	capabilityLookupsTotal *prometheus.CounterVec
	bestAgentMissesTotal   *prometheus.CounterVec

	// Presence metrics
	agentsOnline    *prometheus.GaugeVec
	heartbeatsTotal *prometheus.CounterVec

	logger *zap.Logger
}

// NewCollector creates a Collector with all metrics registered under
// the given namespace.
func NewCollector(namespace string, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Collector{
		logger: logger.With(zap.String("component", "metrics")),
	}

	c.httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	c.httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	c.routeDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_decisions_total",
			Help:      "Total number of routing decisions",
		},
		[]string{"method", "role"},
	)

	c.routeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_duration_seconds",
			Help:      "Routing decision duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"method"},
	)

	c.routeStandinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_standins_total",
			Help:      "Total number of routes redirected to a stand-in agent",
		},
		[]string{"role", "standin"},
	)

	c.capabilityLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "capability_lookups_total",
			Help:      "Total number of capability manager lookups",
		},
		[]string{"operation", "found"},
	)

	c.bestAgentMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "best_agent_misses_total",
			Help:      "Total number of best-agent lookups with no qualified agent",
		},
		[]string{"capability"},
	)

	c.agentsOnline = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "agents_online",
			Help:      "Number of agents currently reporting heartbeats",
		},
		[]string{"backend"},
	)

	c.heartbeatsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "heartbeats_total",
			Help:      "Total number of agent heartbeats received",
		},
		[]string{"role"},
	)

	c.logger.Info("metrics collector initialized", zap.String("namespace", namespace))

	return c
}

// RecordHTTPRequest records one served HTTP request.
func (c *Collector) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	c.httpRequestsTotal.WithLabelValues(method, path, statusCode(status)).Inc()
	c.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordRouteDecision records one routing decision. method is the
// matching stage (command, keyword, capability or fallback).
func (c *Collector) RecordRouteDecision(method, role string, duration time.Duration) {
	c.routeDecisionsTotal.WithLabelValues(method, role).Inc()
	c.routeDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordStandin records a route redirected from an offline agent to a
// stand-in.
func (c *Collector) RecordStandin(wantedRole, standinRole string) {
	c.routeStandinsTotal.WithLabelValues(wantedRole, standinRole).Inc()
}

// RecordCapabilityLookup records one capability manager lookup.
func (c *Collector) RecordCapabilityLookup(operation string, found bool) {
	c.capabilityLookupsTotal.WithLabelValues(operation, boolLabel(found)).Inc()
}

// RecordBestAgentMiss records a best-agent lookup that found no agent
// with positive proficiency.
func (c *Collector) RecordBestAgentMiss(capability string) {
	c.bestAgentMissesTotal.WithLabelValues(capability).Inc()
}

// SetAgentsOnline sets the current online agent count for a presence
// backend.
func (c *Collector) SetAgentsOnline(backend string, n int) {
	c.agentsOnline.WithLabelValues(backend).Set(float64(n))
}

// RecordHeartbeat records one agent heartbeat.
func (c *Collector) RecordHeartbeat(role string) {
	c.heartbeatsTotal.WithLabelValues(role).Inc()
}

func statusCode(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
