package hxui

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Skip reasons recorded as the "reason" label and log field.
const (
	ReasonMissingName      = "missing_name"
	ReasonUnknownComponent = "unknown_component"
	ReasonInvalidProps     = "invalid_props"
	ReasonMountFailed      = "mount_failed"
)

// MetricsConfig configures hydration metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "hxui").
	Namespace string

	// Subsystem is the metrics subsystem (default: "hydration").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for scan duration.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures hydration metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels adds constant labels to every metric.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the scan duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegisterer sets the Prometheus registry.
func WithRegisterer(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "hxui",
		Subsystem: "hydration",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the hydration counters. A nil *Metrics records nothing.
type Metrics struct {
	scans        prometheus.Counter
	scanDuration prometheus.Histogram
	mounts       *prometheus.CounterVec
	skips        *prometheus.CounterVec
	unmounts     prometheus.Counter
}

// NewMetrics registers the hydration metrics. Registering twice against the
// same registry panics, as promauto does.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		scans: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "scans_total",
			Help:        "Total number of hydration scans",
			ConstLabels: config.ConstLabels,
		}),
		scanDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "scan_duration_seconds",
			Help:        "Hydration scan duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
		mounts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mounts_total",
			Help:        "Total number of mounted components",
			ConstLabels: config.ConstLabels,
		}, []string{"component"}),
		skips: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "skips_total",
			Help:        "Total number of placeholders left unmounted",
			ConstLabels: config.ConstLabels,
		}, []string{"reason"}),
		unmounts: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "unmounts_total",
			Help:        "Total number of unmounted components",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (m *Metrics) recordScan(seconds float64) {
	if m == nil {
		return
	}
	m.scans.Inc()
	m.scanDuration.Observe(seconds)
}

func (m *Metrics) recordMount(component string) {
	if m == nil {
		return
	}
	m.mounts.WithLabelValues(component).Inc()
}

func (m *Metrics) recordSkip(reason string) {
	if m == nil {
		return
	}
	m.skips.WithLabelValues(reason).Inc()
}

func (m *Metrics) recordUnmount() {
	if m == nil {
		return
	}
	m.unmounts.Inc()
}
