package volley

import (
	"errors"

	"github.com/arloliu/volley/types"
)

// Sentinel errors returned by the Optimizer.
//
// Most are re-exported from the types package so callers can match them
// with errors.Is without importing internal layout.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrInvalidMatrix is returned for empty, non-square or negative matrices.
	ErrInvalidMatrix = types.ErrInvalidMatrix

	// ErrMatrixTooLarge is returned when a matrix exceeds Config.MaxTargets.
	ErrMatrixTooLarge = types.ErrMatrixTooLarge

	// ErrInvalidCoefficient is returned when the degradation coefficient is below 2.
	ErrInvalidCoefficient = types.ErrInvalidCoefficient

	// ErrUnsupportedConfiguration is returned for modes other than (1,1) and (2,2).
	ErrUnsupportedConfiguration = types.ErrUnsupportedConfiguration

	// ErrInvalidLimits is returned for attack limits a scheduler cannot honor.
	ErrInvalidLimits = types.ErrInvalidLimits

	// ErrInvalidSchedule is returned when a schedule breaks its limits.
	ErrInvalidSchedule = types.ErrInvalidSchedule

	// ErrInfeasible is returned when no matching satisfies the exclusions,
	// e.g. a two-wave run on a single target.
	ErrInfeasible = types.ErrInfeasible

	// ErrSourceUnavailable is returned when a matrix source cannot be read.
	ErrSourceUnavailable = types.ErrSourceUnavailable

	// ErrMatrixSourceRequired is returned when a nil matrix source is given.
	ErrMatrixSourceRequired = errors.New("matrix source is required")
)
