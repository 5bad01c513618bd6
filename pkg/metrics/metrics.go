package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/slot/pkg/slot"
)

// Config configures the Prometheus collector.
type Config struct {
	// Namespace is the metrics namespace (default: "vango").
	Namespace string

	// Subsystem is the metrics subsystem (default: "slot").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for merged attribute counts.
	// Default: 1, 2, 4, 8, 16, 32
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the Prometheus collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "vango",
		Subsystem: "slot",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 6),
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector records composition outcomes. It implements slot.Observer.
//
// Metrics collected:
//   - vango_slot_compositions_total: passes by result ("composed", "rejected") and reason
//   - vango_slot_merged_attributes: attributes on each composed element
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	composer := slot.New(slot.WithObserver(metrics.New(metrics.WithRegistry(reg))))
type Collector struct {
	compositions *prometheus.CounterVec
	attributes   *prometheus.HistogramVec
}

// New creates a Collector and registers its metrics.
// It panics if the metrics are already registered with the registry,
// as promauto does.
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(config.Registry)

	return &Collector{
		compositions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "compositions_total",
			Help:        "Total number of slot composition passes",
			ConstLabels: config.ConstLabels,
		}, []string{"result", "reason"}),

		attributes: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "merged_attributes",
			Help:        "Number of attributes on each composed element",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"tag"}),
	}
}

// ObserveComposition implements slot.Observer.
func (c *Collector) ObserveComposition(o slot.Outcome) {
	if !o.OK() {
		c.compositions.WithLabelValues("rejected", o.Reason.String()).Inc()
		return
	}
	c.compositions.WithLabelValues("composed", o.Reason.String()).Inc()
	c.attributes.WithLabelValues(o.Tag).Observe(float64(o.Attrs))
}

var _ slot.Observer = (*Collector)(nil)
