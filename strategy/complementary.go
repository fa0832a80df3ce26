package strategy

import (
	"fmt"

	"github.com/arloliu/volley/internal/logging"
	"github.com/arloliu/volley/types"
)

// Complementary finds a best permutation together with its complement.
//
// The complement is the best permutation that never repeats a (target, period)
// pairing of the primal one. Both waves are optimized on the raw matrix; no
// degradation is applied, so the combined score is an upper-bound style value.
type Complementary struct {
	exact  *Assignment
	logger types.Logger
}

// ComplementaryOption configures a Complementary finder.
type ComplementaryOption func(*Complementary)

// WithComplementaryLogger sets the logger used for debug diagnostics.
func WithComplementaryLogger(logger types.Logger) ComplementaryOption {
	return func(c *Complementary) {
		c.logger = logger
	}
}

// NewComplementary creates a new complementary permutation finder.
func NewComplementary(opts ...ComplementaryOption) *Complementary {
	c := &Complementary{logger: logging.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.exact = NewAssignment(WithAssignmentLogger(c.logger))

	return c
}

// Find computes σ* with the exact solver and then its complement σ₀.
//
// Returns:
//   - types.TwoWaveResult: σ*, σ₀ and the combined score
//   - error: ErrInvalidMatrix for malformed input, ErrInfeasible for n = 1
func (c *Complementary) Find(m types.PowerMatrix) (types.TwoWaveResult, error) {
	primal, _, err := c.exact.Solve(m)
	if err != nil {
		return types.TwoWaveResult{}, err
	}

	return c.FindWithPrimal(m, primal)
}

// FindWithPrimal computes the best permutation disjoint from primal.
//
// Every cell (primal[j], j) is excluded from the second matching through an
// explicit mask, so the result satisfies primal[j] != complement[j] for all j.
//
// Parameters:
//   - m: Power matrix
//   - primal: Permutation to avoid (usually an optimal one)
//
// Returns:
//   - types.TwoWaveResult: Both permutations, their sums and the combined score
//   - error: ErrInvalidSchedule if primal is not a permutation of m's targets,
//     ErrInfeasible if no disjoint permutation exists (n = 1)
func (c *Complementary) FindWithPrimal(m types.PowerMatrix, primal types.Permutation) (types.TwoWaveResult, error) {
	if err := m.Validate(); err != nil {
		return types.TwoWaveResult{}, err
	}

	n := m.Size()
	if err := primal.Validate(n); err != nil {
		return types.TwoWaveResult{}, fmt.Errorf("primal permutation: %w", err)
	}
	if n == 1 {
		return types.TwoWaveResult{}, fmt.Errorf("%w: %w", types.ErrInfeasible, ErrNoComplement)
	}

	forbidden := make([][]bool, n)
	for i := range forbidden {
		forbidden[i] = make([]bool, n)
	}
	for j, target := range primal {
		forbidden[target][j] = true
	}

	complement, _, err := maxAssignmentExcluding(m.Float64(), forbidden)
	if err != nil {
		return types.TwoWaveResult{}, fmt.Errorf("complementary permutation: %w", err)
	}

	res := types.TwoWaveResult{
		Primal:        append(types.Permutation(nil), primal...),
		Complement:    complement,
		PrimalSum:     primal.Sum(m),
		ComplementSum: complement.Sum(m),
	}
	res.Score = res.PrimalSum + res.ComplementSum

	c.logger.Debug("complementary permutation found",
		"targets", n,
		"primal_sum", res.PrimalSum,
		"complement_sum", res.ComplementSum,
		"score", res.Score,
	)

	return res, nil
}
