package source

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/arloliu/volley/types"
)

// Random implements a matrix source that generates deterministic test data.
type Random struct {
	seed     uint64
	size     int
	maxValue int64
}

var _ types.MatrixSource = (*Random)(nil)

// NewRandom creates a generated matrix source.
//
// Every LoadMatrix call returns the same n×n matrix for the same seed, with
// entries drawn uniformly from [0, maxValue].
//
// Returns:
//   - *Random: Initialized random source
//   - error: ErrInvalidMatrix if n < 1 or maxValue < 0
func NewRandom(seed uint64, n int, maxValue int64) (*Random, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: size %d, must be positive", types.ErrInvalidMatrix, n)
	}
	if maxValue < 0 {
		return nil, fmt.Errorf("%w: max value %d, must be non-negative", types.ErrInvalidMatrix, maxValue)
	}

	return &Random{seed: seed, size: n, maxValue: maxValue}, nil
}

// LoadMatrix generates the matrix.
func (r *Random) LoadMatrix(ctx context.Context) (types.PowerMatrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrSourceUnavailable, err)
	}

	return Generate(r.seed, r.size, r.maxValue), nil
}

// Generate returns an n×n matrix with entries in [0, maxValue].
//
// The same seed always produces the same matrix. A negative maxValue is
// treated as zero.
func Generate(seed uint64, n int, maxValue int64) types.PowerMatrix {
	maxValue = max(maxValue, 0)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec

	c := make(types.PowerMatrix, n)
	for i := range c {
		c[i] = make([]int64, n)
		for j := range c[i] {
			c[i][j] = rng.Int64N(maxValue + 1)
		}
	}

	return c
}
