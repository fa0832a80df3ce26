package volley

// Option configures an Optimizer with optional dependencies.
type Option func(*optimizerOptions)

// optimizerOptions holds optional Optimizer configuration.
type optimizerOptions struct {
	hooks   *Hooks
	metrics MetricsCollector
	logger  Logger
}

// WithHooks sets run event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewOptimizer
//
// Example:
//
//	hooks := &volley.Hooks{
//	    OnInfeasible: func(ctx context.Context, mode volley.Mode) error {
//	        return alert(ctx, "no schedule for "+mode.String())
//	    },
//	}
//	opt, err := volley.NewOptimizer(&cfg, volley.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *optimizerOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewOptimizer
//
// Example:
//
//	collector := metrics.NewPrometheus(prometheus.DefaultRegisterer, "volley")
//	opt, err := volley.NewOptimizer(&cfg, volley.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *optimizerOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewOptimizer
//
// Example:
//
//	logger := volley.NewSlogLogger(slog.Default())
//	opt, err := volley.NewOptimizer(&cfg, volley.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *optimizerOptions) {
		o.logger = logger
	}
}
