// Package hungarian implements the Kuhn–Munkres (Hungarian) algorithm for
// minimum-cost perfect matching on a square cost matrix.
package hungarian

import (
	"fmt"
	"math"

	"github.com/arloliu/volley/types"
)

// Solve finds a minimum-cost perfect matching on an n×n cost matrix.
//
// The solver uses the potentials formulation (Jonker–Volgenant style) and runs
// in O(n³). Cells marked in forbidden are excluded from the matching exactly:
// they are never relaxed, so no finite cost can make the solver pick them.
//
// Parameters:
//   - cost: Square matrix of finite costs
//   - forbidden: Optional exclusion mask of the same shape (nil means none)
//
// Returns:
//   - []int: assign[j] = row matched to column j
//   - error: ErrInvalidMatrix for bad shapes or non-finite costs,
//     ErrInfeasible when the mask leaves no perfect matching
func Solve(cost [][]float64, forbidden [][]bool) ([]int, error) {
	n := len(cost)
	if err := validate(cost, forbidden); err != nil {
		return nil, err
	}

	const inf = math.MaxFloat64 / 2

	// 1-indexed arrays; index 0 is the virtual column used to grow the tree.
	u := make([]float64, n+1) // row potentials
	v := make([]float64, n+1) // column potentials
	p := make([]int, n+1)     // p[j] = row matched to column j
	way := make([]int, n+1)   // way[j] = previous column on the augmenting path
	minv := make([]float64, n+1)
	used := make([]bool, n+1)
	reached := make([]bool, n+1) // column relaxed through an admissible cell

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0

		for j := 1; j <= n; j++ {
			minv[j] = inf
			used[j] = false
			reached[j] = false
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1

			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				if forbidden == nil || !forbidden[i0-1][j-1] {
					cur := cost[i0-1][j-1] - u[i0] - v[j]
					if !reached[j] || cur < minv[j] {
						minv[j] = cur
						way[j] = j0
						reached[j] = true
					}
				}
				if reached[j] && (j1 < 0 || minv[j] < delta) {
					delta = minv[j]
					j1 = j
				}
			}

			// Every free column is unreachable from the alternating tree.
			if j1 < 0 {
				return nil, fmt.Errorf("%w: row %d has no admissible column", types.ErrInfeasible, i-1)
			}

			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else if reached[j] {
					minv[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	assign := make([]int, n)
	for j := 1; j <= n; j++ {
		assign[j-1] = p[j] - 1
	}

	return assign, nil
}

func validate(cost [][]float64, forbidden [][]bool) error {
	n := len(cost)
	if n == 0 {
		return fmt.Errorf("%w: cost matrix is empty", types.ErrInvalidMatrix)
	}

	for i, row := range cost {
		if len(row) != n {
			return fmt.Errorf("%w: cost row %d has %d columns, want %d", types.ErrInvalidMatrix, i, len(row), n)
		}
		for j, c := range row {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return fmt.Errorf("%w: non-finite cost at (%d,%d)", types.ErrInvalidMatrix, i, j)
			}
		}
	}

	if forbidden == nil {
		return nil
	}
	if len(forbidden) != n {
		return fmt.Errorf("%w: exclusion mask has %d rows, want %d", types.ErrInvalidMatrix, len(forbidden), n)
	}
	for i, row := range forbidden {
		if len(row) != n {
			return fmt.Errorf("%w: exclusion row %d has %d columns, want %d", types.ErrInvalidMatrix, i, len(row), n)
		}
	}

	return nil
}
