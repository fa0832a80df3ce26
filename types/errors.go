package types

import "errors"

// Sentinel errors for the volley library.
//
// These errors provide type-safe error checking using errors.Is().
// Components wrap them with context using fmt.Errorf("%w: ...", Err...).
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by where the error is detected (input validation, solving, sources)

// Input validation errors - returned before any solver runs.
var (
	// ErrInvalidMatrix is returned for empty, non-square, negative or non-finite matrices.
	ErrInvalidMatrix = errors.New("invalid power matrix")

	// ErrMatrixTooLarge is returned when the matrix exceeds the configured target bound.
	ErrMatrixTooLarge = errors.New("power matrix too large")

	// ErrInvalidCoefficient is returned when the degradation coefficient is below 2.
	ErrInvalidCoefficient = errors.New("invalid degradation coefficient")

	// ErrUnsupportedConfiguration is returned for (m, r) pairs no solver handles.
	ErrUnsupportedConfiguration = errors.New("unsupported attack configuration")

	// ErrInvalidLimits is returned when attack limits are out of range.
	ErrInvalidLimits = errors.New("invalid attack limits")

	// ErrInvalidSchedule is returned when a schedule or permutation breaks its limits.
	ErrInvalidSchedule = errors.New("invalid schedule")

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Solver errors.
var (
	// ErrInfeasible is returned when no schedule satisfies the constraints.
	ErrInfeasible = errors.New("no feasible schedule")
)

// Source errors.
var (
	// ErrSourceUnavailable is returned when a matrix source cannot be read.
	ErrSourceUnavailable = errors.New("matrix source unavailable")
)
