// Package metrics provides Prometheus instrumentation for the
// agentmatch service. A single Collector registers counters,
// histograms and gauges via promauto and exposes record helpers for
// the HTTP layer, the router, the capability manager and the presence
// store. Metrics share a configurable namespace.
package metrics
