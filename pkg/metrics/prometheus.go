// Package metrics provides Prometheus metrics for configuration loading and
// submissions page assembly.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the Prometheus collectors of the direct services.
// A nil *Manager is valid and records nothing.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Configuration registry
	configLoadDuration prometheus.Histogram
	configLoadFailures *prometheus.CounterVec
	registryEntries    *prometheus.GaugeVec

	// Submissions page
	viewModelsAssembled     prometheus.Counter
	viewModelAssembleErrors prometheus.Counter
}

// NewManager creates a new metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "direct",
		subsystem:        "common",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.enabled {
		m.initializeMetrics()
	}

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.configLoadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "config_load_duration_seconds",
		Help:      "Time spent reading, decoding and validating the configuration resources",
		Buckets:   m.histogramBuckets,
	})

	m.configLoadFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "config_load_failures_total",
			Help:      "Configuration load failures by error code",
		},
		[]string{"code"},
	)

	m.registryEntries = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "registry_entries",
			Help:      "Number of entries held by each configuration registry index",
		},
		[]string{"index"},
	)

	m.viewModelsAssembled = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "submissions_view_models_total",
		Help:      "Total number of contest submissions view models assembled",
	})

	m.viewModelAssembleErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "submissions_view_model_errors_total",
		Help:      "Total number of contest submissions view models that failed to assemble",
	})
}

func (m *Manager) active() bool {
	return m != nil && m.enabled
}

// ObserveConfigLoad records how long a configuration load took.
func (m *Manager) ObserveConfigLoad(d time.Duration) {
	if !m.active() {
		return
	}
	m.configLoadDuration.Observe(d.Seconds())
}

// RecordConfigLoadFailure counts a failed configuration load.
func (m *Manager) RecordConfigLoadFailure(code string) {
	if !m.active() {
		return
	}
	if code == "" {
		code = "UNKNOWN"
	}
	m.configLoadFailures.WithLabelValues(code).Inc()
}

// SetRegistryEntries records the size of a registry index.
func (m *Manager) SetRegistryEntries(index string, n int) {
	if !m.active() {
		return
	}
	m.registryEntries.WithLabelValues(index).Set(float64(n))
}

// RecordViewModelAssembled counts a successfully assembled submissions view model.
func (m *Manager) RecordViewModelAssembled() {
	if !m.active() {
		return
	}
	m.viewModelsAssembled.Inc()
}

// RecordViewModelError counts a submissions view model that failed to assemble.
func (m *Manager) RecordViewModelError() {
	if !m.active() {
		return
	}
	m.viewModelAssembleErrors.Inc()
}
