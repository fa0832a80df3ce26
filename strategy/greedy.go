package strategy

import (
	"fmt"
	"slices"

	"github.com/arloliu/volley/internal/logging"
	"github.com/arloliu/volley/types"
)

// Greedy implements the per-period top-m attack heuristic.
//
// For every period in order it attacks the m strongest targets (by that
// period's power) among those attacked fewer than r times so far. Ties go to
// the lowest target index. When fewer than m targets remain eligible the run
// stops and the schedule built so far is returned; no partial period is
// emitted.
//
// The attack counter lives only for the duration of one Schedule call, so a
// single Greedy value is safe for concurrent use.
type Greedy struct {
	perPeriod int
	perTarget int
	logger    types.Logger
}

var _ types.Scheduler = (*Greedy)(nil)

// GreedyOption configures a Greedy strategy.
type GreedyOption func(*Greedy)

// WithPerPeriod sets m, the number of targets attacked in each period.
//
// Default: 2
func WithPerPeriod(m int) GreedyOption {
	return func(g *Greedy) {
		g.perPeriod = m
	}
}

// WithPerTarget sets r, the maximum number of attacks any target may receive.
//
// Default: 2
func WithPerTarget(r int) GreedyOption {
	return func(g *Greedy) {
		g.perTarget = r
	}
}

// WithGreedyLogger sets the logger used for per-period debug output.
func WithGreedyLogger(logger types.Logger) GreedyOption {
	return func(g *Greedy) {
		g.logger = logger
	}
}

// NewGreedy creates a new greedy scheduler.
//
// Example:
//
//	pairs := strategy.NewGreedy(
//	    strategy.WithPerPeriod(2),
//	    strategy.WithPerTarget(2),
//	)
func NewGreedy(opts ...GreedyOption) *Greedy {
	g := &Greedy{
		perPeriod: types.ModePairs.PerPeriod,
		perTarget: types.ModePairs.PerTarget,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Limits returns the configured (m, r) pair.
func (g *Greedy) Limits() types.Mode {
	return types.Mode{PerPeriod: g.perPeriod, PerTarget: g.perTarget}
}

// Schedule builds the greedy schedule for c.
//
// Parameters:
//   - c: Power matrix (validated here)
//
// Returns:
//   - types.Schedule: Emitted periods, possibly empty (r = 0 or n < m)
//   - error: ErrInvalidMatrix or ErrInvalidLimits (m < 1, r < 0)
func (g *Greedy) Schedule(c types.PowerMatrix) (types.Schedule, error) {
	if g.perPeriod < 1 || g.perTarget < 0 {
		return nil, fmt.Errorf("%w: per-period %d, per-target %d", types.ErrInvalidLimits, g.perPeriod, g.perTarget)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	n := c.Size()
	counts := make([]int, n)
	eligible := make([]int, 0, n)
	schedule := make(types.Schedule, 0, n)

	for j := range n {
		eligible = eligible[:0]
		for i := range n {
			if counts[i] < g.perTarget {
				eligible = append(eligible, i)
			}
		}

		if len(eligible) < g.perPeriod {
			g.logger.Debug("greedy schedule stopped",
				"period", j,
				"eligible", len(eligible),
				"per_period", g.perPeriod,
			)

			break
		}

		// eligible is in ascending index order, so a stable sort keeps the
		// lowest index first among equal powers.
		slices.SortStableFunc(eligible, func(a, b int) int {
			switch {
			case c[a][j] > c[b][j]:
				return -1
			case c[a][j] < c[b][j]:
				return 1
			default:
				return 0
			}
		})

		period := append([]int(nil), eligible[:g.perPeriod]...)
		for _, i := range period {
			counts[i]++
		}
		schedule = append(schedule, period)

		g.logger.Debug("greedy period scheduled", "period", j, "targets", period)
	}

	return schedule, nil
}
