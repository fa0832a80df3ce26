package types

// MetricsCollector defines methods for recording optimizer metrics.
//
// Implementations should be non-blocking and thread-safe: one collector is
// shared by every Optimize call, and callers may run optimizations concurrently.
type MetricsCollector interface {
	OptimizerMetrics
	CacheMetrics
}

// OptimizerMetrics defines metrics for optimizer runs.
type OptimizerMetrics interface {
	// RecordOptimization records one finished run.
	//
	// Parameters:
	//   - mode: Mode label ("1x1", "2x2", "two_wave")
	//   - outcome: "feasible", "infeasible" or "error"
	//   - duration: Time taken in seconds
	RecordOptimization(mode string, outcome string, duration float64)

	// RecordSchedulePeriods records how many periods a run emitted.
	RecordSchedulePeriods(mode string, periods int)

	// RecordTotalPower records the total effective power of a feasible run.
	RecordTotalPower(mode string, power float64)
}

// CacheMetrics defines metrics for the result cache.
type CacheMetrics interface {
	// RecordCacheLookup records a cache lookup.
	//
	// Parameters:
	//   - hit: true if the result was found in the cache
	RecordCacheLookup(hit bool)
}
