package strategy

import (
	"fmt"

	"github.com/arloliu/volley/internal/hungarian"
	"github.com/arloliu/volley/internal/logging"
	"github.com/arloliu/volley/types"
)

// Assignment implements the exact one-target-per-period scheduler.
//
// It reduces the (m=1, r=1) problem to optimal bipartite matching between
// periods and targets and returns the permutation with maximal assigned power.
type Assignment struct {
	logger types.Logger
}

var _ types.Scheduler = (*Assignment)(nil)

// AssignmentOption configures an Assignment strategy.
type AssignmentOption func(*Assignment)

// WithAssignmentLogger sets the logger used for debug diagnostics.
func WithAssignmentLogger(logger types.Logger) AssignmentOption {
	return func(a *Assignment) {
		a.logger = logger
	}
}

// NewAssignment creates a new exact assignment strategy.
//
// Example:
//
//	exact := strategy.NewAssignment()
//	perm, sum, err := exact.Solve(c)
func NewAssignment(opts ...AssignmentOption) *Assignment {
	a := &Assignment{logger: logging.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	return a
}

// Solve finds the permutation maximizing Σ C[σ[j]][j].
//
// Ties between optimal permutations are broken by the matching solver and
// are not otherwise specified.
//
// Parameters:
//   - c: Power matrix (validated here)
//
// Returns:
//   - types.Permutation: σ with σ[j] = target attacked in period j
//   - int64: The maximal assigned power
//   - error: ErrInvalidMatrix for malformed input
func (a *Assignment) Solve(c types.PowerMatrix) (types.Permutation, int64, error) {
	if err := c.Validate(); err != nil {
		return nil, 0, err
	}

	perm, _, err := MaxAssignment(c.Float64())
	if err != nil {
		return nil, 0, err
	}

	sum := perm.Sum(c)
	a.logger.Debug("exact assignment solved", "targets", c.Size(), "assigned_power", sum)

	return perm, sum, nil
}

// Schedule implements types.Scheduler by lifting the optimal permutation.
func (a *Assignment) Schedule(c types.PowerMatrix) (types.Schedule, error) {
	perm, _, err := a.Solve(c)
	if err != nil {
		return nil, err
	}

	return perm.Schedule(), nil
}

// MaxAssignment returns the permutation maximizing Σ values[σ[j]][j].
//
// The underlying matching primitive minimizes cost, so the matrix is negated
// before solving and the reported sum is recomputed from the original values.
//
// Parameters:
//   - values: Square matrix of finite real values
//
// Returns:
//   - types.Permutation: σ[j] = row assigned to column j
//   - float64: The maximal sum
//   - error: ErrInvalidMatrix for non-square or non-finite input
func MaxAssignment(values [][]float64) (types.Permutation, float64, error) {
	return maxAssignmentExcluding(values, nil)
}

func maxAssignmentExcluding(values [][]float64, forbidden [][]bool) (types.Permutation, float64, error) {
	cost := make([][]float64, len(values))
	for i, row := range values {
		cost[i] = make([]float64, len(row))
		for j, v := range row {
			cost[i][j] = -v
		}
	}

	assign, err := hungarian.Solve(cost, forbidden)
	if err != nil {
		return nil, 0, fmt.Errorf("max assignment: %w", err)
	}

	var sum float64
	for j, i := range assign {
		sum += values[i][j]
	}

	return types.Permutation(assign), sum, nil
}
