// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "keepit"

var durationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

// Metrics groups every collector of the service.
type Metrics struct {
	NotificationsPersisted prometheus.Counter
	NotificationsPushed    prometheus.Counter
	PushDropped            prometheus.Counter

	ScanRuns     prometheus.Counter
	ScanNotices  *prometheus.CounterVec
	ScanFailures prometheus.Counter
	ScanDuration prometheus.Histogram

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	reg prometheus.Registerer
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		NotificationsPersisted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_persisted_total",
			Help:      "Notifications written to the store.",
		}),
		NotificationsPushed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_pushed_total",
			Help:      "Notifications handed to a live channel.",
		}),
		PushDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_push_dropped_total",
			Help:      "Live pushes dropped because the channel was closed or full.",
		}),
		ScanRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expiry_scan_runs_total",
			Help:      "Completed expiry scans, one per scanned day.",
		}),
		ScanNotices: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expiry_scan_notices_total",
			Help:      "Date triggers fired by the expiry scanner.",
		}, []string{"trigger"}),
		ScanFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expiry_scan_failures_total",
			Help:      "Matchings the expiry scanner failed to process.",
		}),
		ScanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "expiry_scan_duration_seconds",
			Help:      "Wall time of one expiry scan.",
			Buckets:   durationBuckets,
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method.",
			Buckets:   durationBuckets,
		}, []string{"method"}),
		reg: reg,
	}

	reg.MustRegister(
		m.NotificationsPersisted,
		m.NotificationsPushed,
		m.PushDropped,
		m.ScanRuns,
		m.ScanNotices,
		m.ScanFailures,
		m.ScanDuration,
		m.HTTPRequests,
		m.HTTPDuration,
	)

	return m
}

// ObserveLiveChannels exports the number of open live channels as a gauge
// sampled from count at scrape time.
func (m *Metrics) ObserveLiveChannels(count func() int) {
	m.reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "live_channels",
		Help:      "Open live notification channels.",
	}, func() float64 { return float64(count()) }))
}
