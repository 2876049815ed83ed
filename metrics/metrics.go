// Package metrics provides Prometheus-compatible metrics for the activity
// server.
//
// Two modes are supported:
//   - Scrape mode: metrics are registered with a Prometheus registry and
//     exposed on the /metrics endpoint.
//   - Push mode: metrics are pushed to a VictoriaMetrics/Prometheus remote
//     write endpoint, used by the scheduled roster report.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Gauge is a metric that represents a single numerical value that can go up
// and down.
type Gauge interface {
	Set(float64)
}

// Counter is a metric that represents a monotonically increasing value.
type Counter interface {
	Inc()
}

// GaugeVec is a Gauge with labels.
type GaugeVec interface {
	With(prometheus.Labels) Gauge
}

// CounterVec is a Counter with labels.
type CounterVec interface {
	With(prometheus.Labels) Counter
}

// Registry creates and registers metrics.
// Implementations handle the differences between push and scrape modes.
type Registry interface {
	NewGaugeVec(opts prometheus.GaugeOpts, labels []string) (GaugeVec, error)
	NewCounterVec(opts prometheus.CounterOpts, labels []string) (CounterVec, error)
}
