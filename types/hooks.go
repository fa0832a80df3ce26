package types

import "context"

// Hooks defines callbacks for optimizer run events.
//
// All hooks are optional. They run synchronously on the caller's goroutine
// after the run has finished, so they see the final result:
//   - Hook errors are logged but never fail the run
//   - The context passed to hooks is the one given to Optimize
//
// Example:
//
//	hooks := &volley.Hooks{
//	    OnOptimized: func(ctx context.Context, res volley.Result) error {
//	        return publish(ctx, res.RunID, res.Power)
//	    },
//	}
type Hooks struct {
	// OnOptimized is called after a feasible schedule was produced.
	OnOptimized func(ctx context.Context, result Result) error

	// OnInfeasible is called when a run produced no period at all.
	OnInfeasible func(ctx context.Context, mode Mode) error

	// OnError is called when a run failed with an error.
	OnError func(ctx context.Context, err error) error
}
