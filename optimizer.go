package volley

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/arloliu/volley/internal/hash"
	"github.com/arloliu/volley/internal/hooks"
	"github.com/arloliu/volley/internal/logging"
	"github.com/arloliu/volley/internal/memo"
	"github.com/arloliu/volley/internal/metrics"
	"github.com/arloliu/volley/power"
	"github.com/arloliu/volley/strategy"
)

// Metric outcome labels.
const (
	outcomeFeasible   = "feasible"
	outcomeInfeasible = "infeasible"
	outcomeError      = "error"

	twoWaveLabel = "two_wave"
)

// Optimizer is the single entry point for firepower scheduling.
//
// It validates the matrix, dispatches on the attack-limit mode to the exact
// or greedy strategy, aggregates the remaining power and reports the run
// through logs, metrics and hooks.
//
// An Optimizer holds no per-run state; it is safe for concurrent use.
type Optimizer struct {
	cfg Config

	exact         *strategy.Assignment
	complementary *strategy.Complementary

	cache   *memo.Cache
	hooks   Hooks
	metrics MetricsCollector
	logger  Logger
}

// NewOptimizer creates a new optimizer.
//
// Missing configuration values are filled in place with defaults before
// validation.
//
// Parameters:
//   - cfg: Configuration (required)
//   - opts: Optional dependencies (hooks, metrics, logger)
//
// Returns:
//   - *Optimizer: Initialized optimizer
//   - error: ErrInvalidConfig if the configuration is invalid
//
// Example:
//
//	cfg := volley.DefaultConfig()
//	opt, err := volley.NewOptimizer(&cfg)
//	if err != nil { /* handle */ }
//	res, err := opt.Optimize(ctx, matrix)
func NewOptimizer(cfg *Config, opts ...Option) (*Optimizer, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	// Fill in missing configuration values with defaults
	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &optimizerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	// Validate with warnings after logger is available
	cfg.ValidateWithWarnings(loggerInstance)

	o := &Optimizer{
		cfg:           *cfg,
		exact:         strategy.NewAssignment(strategy.WithAssignmentLogger(loggerInstance)),
		complementary: strategy.NewComplementary(strategy.WithComplementaryLogger(loggerInstance)),
		hooks:         hooks.Complete(options.hooks),
		metrics:       metricsCollector,
		logger:        loggerInstance,
	}
	if cfg.Cache.Enabled {
		o.cache = memo.New(cfg.Cache.MaxEntries)
	}

	return o, nil
}

// Config returns a copy of the effective configuration.
func (o *Optimizer) Config() Config {
	return o.cfg
}

// Optimize schedules c with the configured mode.
//
// See OptimizeMode for the result contract.
func (o *Optimizer) Optimize(ctx context.Context, c PowerMatrix) (Result, error) {
	return o.OptimizeMode(ctx, c, o.cfg.Mode())
}

// OptimizeSource loads a matrix from src and schedules it with the configured mode.
//
// Returns:
//   - Result: See OptimizeMode
//   - error: ErrMatrixSourceRequired, the source error, or any OptimizeMode error
func (o *Optimizer) OptimizeSource(ctx context.Context, src MatrixSource) (Result, error) {
	if src == nil {
		return Result{}, ErrMatrixSourceRequired
	}

	c, err := src.LoadMatrix(ctx)
	if err != nil {
		o.fail(ctx, o.cfg.Mode().String(), time.Now(), err)

		return Result{}, err
	}

	return o.Optimize(ctx, c)
}

// OptimizeMode schedules c under the given attack limits.
//
// Dispatch:
//   - (1,1): exact assignment; power = total − discount·assigned
//   - (2,2): greedy pairs; power aggregated over emitted periods
//   - anything else: ErrUnsupportedConfiguration
//
// A greedy run that emits no period at all is not an error: the result has
// Feasible=false, a nil Schedule and Power=-Inf. Callers must check Feasible.
//
// Parameters:
//   - ctx: Context passed to hooks; a cancelled context aborts before solving
//   - c: Power matrix (not modified)
//   - mode: Attack limits
//
// Returns:
//   - Result: The schedule and its total effective power
//   - error: ErrInvalidMatrix, ErrMatrixTooLarge or ErrUnsupportedConfiguration
func (o *Optimizer) OptimizeMode(ctx context.Context, c PowerMatrix, mode Mode) (Result, error) {
	start := time.Now()
	label := mode.String()

	if err := o.checkInput(ctx, c); err != nil {
		o.fail(ctx, label, start, err)

		return Result{}, err
	}

	kind := mode.Kind()
	if kind == KindUnsupported {
		err := fmt.Errorf("%w: mode %s", ErrUnsupportedConfiguration, mode)
		o.fail(ctx, label, start, err)

		return Result{}, err
	}

	k := o.cfg.Degradation
	key := hash.Fingerprint(c, mode, k)
	runID := uuid.NewString()

	if o.cache != nil {
		cached, ok := o.cache.Get(key, c, mode)
		o.metrics.RecordCacheLookup(ok)
		if ok {
			cached.RunID = runID
			cached.Cached = true
			cached.Duration = time.Since(start)
			o.logger.Debug("optimization served from cache",
				"run_id", runID,
				"mode", label,
				"fingerprint", fmt.Sprintf("%016x", key),
			)
			o.finish(ctx, cached, kind)

			return cached, nil
		}
	}

	var (
		res Result
		err error
	)
	switch kind {
	case KindExact:
		res, err = o.solveExact(c, k)
	case KindGreedy:
		res, err = o.solveGreedy(c, mode, k)
	}
	if err != nil {
		o.fail(ctx, label, start, err)

		return Result{}, err
	}

	res.RunID = runID
	res.Mode = mode
	res.Duration = time.Since(start)

	if o.cache != nil {
		o.cache.Put(key, c, mode, res)
	}

	o.logger.Info("optimization finished",
		"run_id", runID,
		"mode", label,
		"strategy", kind.String(),
		"targets", c.Size(),
		"periods", res.Schedule.Periods(),
		"feasible", res.Feasible,
		"power", res.Power,
		"fingerprint", fmt.Sprintf("%016x", key),
		"duration", res.Duration,
	)
	o.finish(ctx, res, kind)

	return res, nil
}

// TwoWave scores two disjoint permutation waves on undegraded power.
//
// The primal wave is an optimal permutation; the complementary wave is the
// best permutation that never repeats a (target, period) pairing of it.
//
// Returns:
//   - TwoWaveResult: Both waves and the combined score
//   - error: ErrInvalidMatrix, ErrMatrixTooLarge, or ErrInfeasible for a
//     single-target matrix
func (o *Optimizer) TwoWave(ctx context.Context, c PowerMatrix) (TwoWaveResult, error) {
	start := time.Now()

	if err := o.checkInput(ctx, c); err != nil {
		o.fail(ctx, twoWaveLabel, start, err)

		return TwoWaveResult{}, err
	}

	res, err := o.complementary.Find(c)
	if err != nil {
		o.fail(ctx, twoWaveLabel, start, err)

		return TwoWaveResult{}, err
	}

	elapsed := time.Since(start)
	o.metrics.RecordOptimization(twoWaveLabel, outcomeFeasible, elapsed.Seconds())
	o.logger.Info("two-wave scoring finished",
		"targets", c.Size(),
		"primal_sum", res.PrimalSum,
		"complement_sum", res.ComplementSum,
		"score", res.Score,
		"duration", elapsed,
	)

	return res, nil
}

func (o *Optimizer) checkInput(ctx context.Context, c PowerMatrix) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if n := c.Size(); n > o.cfg.MaxTargets {
		return fmt.Errorf("%w: %d targets, limit %d", ErrMatrixTooLarge, n, o.cfg.MaxTargets)
	}

	return nil
}

func (o *Optimizer) solveExact(c PowerMatrix, k int) (Result, error) {
	perm, _, err := o.exact.Solve(c)
	if err != nil {
		return Result{}, err
	}

	total, err := power.SingleWave(c, perm, k)
	if err != nil {
		return Result{}, err
	}

	return Result{Schedule: perm.Schedule(), Power: total, Feasible: true}, nil
}

func (o *Optimizer) solveGreedy(c PowerMatrix, mode Mode, k int) (Result, error) {
	greedy := strategy.NewGreedy(
		strategy.WithPerPeriod(mode.PerPeriod),
		strategy.WithPerTarget(mode.PerTarget),
		strategy.WithGreedyLogger(o.logger),
	)

	s, err := greedy.Schedule(c)
	if err != nil {
		return Result{}, err
	}
	if s.Empty() {
		return Result{Power: math.Inf(-1), Feasible: false}, nil
	}

	total, err := power.Total(c, s, k)
	if err != nil {
		return Result{}, err
	}

	return Result{Schedule: s, Power: total, Feasible: true}, nil
}

// finish records metrics and fires hooks for a completed run.
func (o *Optimizer) finish(ctx context.Context, res Result, kind StrategyKind) {
	label := res.Mode.String()

	if !res.Feasible {
		o.metrics.RecordOptimization(label, outcomeInfeasible, res.Duration.Seconds())
		o.logger.Warn("no feasible schedule", "run_id", res.RunID, "mode", label, "strategy", kind.String())

		if err := o.hooks.OnInfeasible(ctx, res.Mode); err != nil {
			o.logger.Error("OnInfeasible hook failed", "run_id", res.RunID, "error", err)
		}

		return
	}

	o.metrics.RecordOptimization(label, outcomeFeasible, res.Duration.Seconds())
	o.metrics.RecordSchedulePeriods(label, res.Schedule.Periods())
	o.metrics.RecordTotalPower(label, res.Power)

	if err := o.hooks.OnOptimized(ctx, res); err != nil {
		o.logger.Error("OnOptimized hook failed", "run_id", res.RunID, "error", err)
	}
}

// fail records metrics and fires hooks for a failed run.
func (o *Optimizer) fail(ctx context.Context, label string, start time.Time, err error) {
	o.metrics.RecordOptimization(label, outcomeError, time.Since(start).Seconds())
	o.logger.Error("optimization failed", "mode", label, "error", err)

	if hookErr := o.hooks.OnError(ctx, err); hookErr != nil {
		o.logger.Error("OnError hook failed", "error", hookErr)
	}
}
