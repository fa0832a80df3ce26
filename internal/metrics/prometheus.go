package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/volley/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing
// a PrometheusCollector that is never used leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	runs         *prometheus.CounterVec
	runDuration  *prometheus.HistogramVec
	periods      *prometheus.GaugeVec
	totalPower   *prometheus.GaugeVec
	cacheLookups *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "volley" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "volley"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.runs = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "optimizer",
			Name:      "runs_total",
			Help:      "Total optimizer runs by mode and outcome (feasible, infeasible, error).",
		}, []string{"mode", "outcome"})

		p.runDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "optimizer",
			Name:      "run_duration_seconds",
			Help:      "Wall time of optimizer runs in seconds by mode.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs .. ~2.6s
		}, []string{"mode"})

		p.periods = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "optimizer",
			Name:      "schedule_periods",
			Help:      "Number of periods emitted by the most recent run per mode.",
		}, []string{"mode"})

		p.totalPower = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "optimizer",
			Name:      "total_power",
			Help:      "Total effective power of the most recent feasible run per mode.",
		}, []string{"mode"})

		p.cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Result cache lookups by result (hit, miss).",
		}, []string{"result"})

		p.reg.MustRegister(p.runs)
		p.reg.MustRegister(p.runDuration)
		p.reg.MustRegister(p.periods)
		p.reg.MustRegister(p.totalPower)
		p.reg.MustRegister(p.cacheLookups)
	})
}

// OptimizerMetrics implementation

// RecordOptimization counts the run and observes its duration.
func (p *PrometheusCollector) RecordOptimization(mode string, outcome string, duration float64) {
	p.ensureRegistered()
	p.runs.WithLabelValues(mode, outcome).Inc()
	p.runDuration.WithLabelValues(mode).Observe(duration)
}

// RecordSchedulePeriods sets the emitted period gauge for mode.
func (p *PrometheusCollector) RecordSchedulePeriods(mode string, periods int) {
	p.ensureRegistered()
	p.periods.WithLabelValues(mode).Set(float64(periods))
}

// RecordTotalPower sets the total power gauge for mode.
func (p *PrometheusCollector) RecordTotalPower(mode string, power float64) {
	p.ensureRegistered()
	p.totalPower.WithLabelValues(mode).Set(power)
}

// CacheMetrics implementation

// RecordCacheLookup increments the hit or miss counter.
func (p *PrometheusCollector) RecordCacheLookup(hit bool) {
	p.ensureRegistered()
	if hit {
		p.cacheLookups.WithLabelValues("hit").Inc()
	} else {
		p.cacheLookups.WithLabelValues("miss").Inc()
	}
}
