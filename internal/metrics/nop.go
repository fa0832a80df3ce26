package metrics

import "github.com/arloliu/volley/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	opt, err := volley.NewOptimizer(&cfg, volley.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// OptimizerMetrics implementation

// RecordOptimization discards the run metric.
func (n *NopMetrics) RecordOptimization(_ /* mode */, _ /* outcome */ string, _ /* duration */ float64) {
	// No-op
}

// RecordSchedulePeriods discards the emitted period count.
func (n *NopMetrics) RecordSchedulePeriods(_ /* mode */ string, _ /* periods */ int) {
	// No-op
}

// RecordTotalPower discards the total power metric.
func (n *NopMetrics) RecordTotalPower(_ /* mode */ string, _ /* power */ float64) {
	// No-op
}

// CacheMetrics implementation

// RecordCacheLookup discards the cache lookup metric.
func (n *NopMetrics) RecordCacheLookup(_ /* hit */ bool) {
	// No-op
}
