// Package volley provides a Go library for scheduling limited firepower
// across discrete time periods against a set of targets.
//
// The input is an n×n power matrix C where C[i][j] is the firepower of target
// i during period j. Attacking a target in a period leaves it with 1/k of its
// power there, where k ≥ 2 is the degradation coefficient. The optimizer picks
// which targets to attack in each period so that the total remaining power
// is as small as the strategy can make it, i.e. so that the attacked power is
// as large as possible.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import "github.com/arloliu/volley"
//
//	cfg := volley.DefaultConfig()
//	opt, err := volley.NewOptimizer(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := opt.Optimize(ctx, volley.PowerMatrix{
//	    {5, 4, 2},
//	    {4, 5, 4},
//	    {2, 4, 5},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Feasible {
//	    fmt.Println(res.Schedule, res.Power)
//	}
//
// # Modes
//
// A mode (m, r) limits attacks to m targets per period and r attacks per
// target over the whole schedule. Two modes are supported:
//
//   - (1,1): solved exactly with the Hungarian method
//   - (2,2): solved greedily, period by period
//
// Any other mode is rejected with ErrUnsupportedConfiguration. A greedy run
// that cannot fill even the first period reports Feasible=false with
// Power=-Inf instead of returning an error.
//
// # Two-Wave Scoring
//
// TwoWave finds an optimal permutation and the best permutation that never
// repeats one of its (target, period) pairings, and sums both on raw power.
//
// # Advanced Usage
//
// Custom logger, metrics and hooks:
//
//	hooks := &volley.Hooks{
//	    OnOptimized: func(ctx context.Context, res volley.Result) error {
//	        return publish(ctx, res)
//	    },
//	}
//
//	opt, err := volley.NewOptimizer(&cfg,
//	    volley.WithLogger(volley.NewSlogLogger(slog.Default())),
//	    volley.WithHooks(hooks),
//	)
//
// Strategies can also be used directly from the strategy package, and power
// matrices can be loaded through the source package.
package volley
