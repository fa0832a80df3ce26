package types

import "context"

// Scheduler builds an attack schedule for a power matrix.
//
// Schedulers implement different algorithms:
//   - Assignment: optimal one-target-per-period matching (m=1, r=1)
//   - Greedy: per-period top-m heuristic (any m, r)
//   - Custom: user-defined algorithms
//
// Scheduler implementations should:
//   - Be deterministic (same input → same output)
//   - Never modify the matrix
//   - Keep all run state local to one Schedule call
type Scheduler interface {
	// Schedule computes a schedule for the given matrix.
	//
	// Parameters:
	//   - c: Validated n×n power matrix
	//
	// Returns:
	//   - Schedule: Period-indexed target lists (may be empty)
	//   - error: Scheduling error (e.g., ErrInvalidLimits)
	Schedule(c PowerMatrix) (Schedule, error)
}

// MatrixSource provides the power matrix to optimize.
//
// Implementations can read from various places:
//   - Static: fixed matrix for tests and embedding
//   - File: YAML or CSV on disk
//   - Random: deterministic generated data
type MatrixSource interface {
	// LoadMatrix returns the current power matrix.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - PowerMatrix: The loaded matrix (not yet validated)
	//   - error: ErrSourceUnavailable wrapped with the cause
	LoadMatrix(ctx context.Context) (PowerMatrix, error)
}
