// Package power computes the effective firepower remaining after a schedule.
//
// An attacked target keeps 1/k of its nominal power in the attacked period,
// where k ≥ 2 is the degradation coefficient. Equivalently, a discount of
// (k−1)/k of every attacked cell is subtracted from the undamaged total.
package power

import (
	"fmt"

	"github.com/arloliu/volley/types"
)

// MinCoefficient is the smallest valid degradation coefficient.
const MinCoefficient = 2

// Discount returns the fraction (k−1)/k removed from attacked power.
//
// Returns:
//   - float64: The discount fraction in [0.5, 1)
//   - error: ErrInvalidCoefficient if k < 2
func Discount(k int) (float64, error) {
	if k < MinCoefficient {
		return 0, fmt.Errorf("%w: k=%d, must be at least %d", types.ErrInvalidCoefficient, k, MinCoefficient)
	}

	return float64(k-1) / float64(k), nil
}

// Total aggregates the effective power of a schedule.
//
// For every emitted period j the full column sum is counted, minus the
// discount applied to the targets attacked in j. Periods beyond len(s) are
// not counted at all.
//
// Parameters:
//   - c: Power matrix
//   - s: Schedule with target indices in range of c
//   - k: Degradation coefficient (≥ 2)
//
// Returns:
//   - float64: The total effective power
//   - error: ErrInvalidCoefficient, ErrInvalidMatrix or ErrInvalidSchedule
func Total(c types.PowerMatrix, s types.Schedule, k int) (float64, error) {
	discount, err := Discount(k)
	if err != nil {
		return 0, err
	}
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if err := checkShape(c, s); err != nil {
		return 0, err
	}

	var total float64
	for j, targets := range s {
		var attacked int64
		for _, i := range targets {
			attacked += c[i][j]
		}
		total += float64(c.ColumnTotal(j)) - discount*float64(attacked)
	}

	return total, nil
}

// SingleWave computes the power left after one full permutation wave.
//
// It equals Total over the lifted schedule: the whole matrix sum minus the
// discount on Σ_j c[σ[j]][j].
//
// Returns:
//   - float64: The total effective power
//   - error: ErrInvalidCoefficient, ErrInvalidMatrix or ErrInvalidSchedule
func SingleWave(c types.PowerMatrix, perm types.Permutation, k int) (float64, error) {
	discount, err := Discount(k)
	if err != nil {
		return 0, err
	}
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if err := perm.Validate(c.Size()); err != nil {
		return 0, err
	}

	return float64(c.Total()) - discount*float64(perm.Sum(c)), nil
}

func checkShape(c types.PowerMatrix, s types.Schedule) error {
	n := c.Size()
	if len(s) > n {
		return fmt.Errorf("%w: %d periods exceed %d available", types.ErrInvalidSchedule, len(s), n)
	}
	for j, targets := range s {
		for _, i := range targets {
			if i < 0 || i >= n {
				return fmt.Errorf("%w: target %d out of range in period %d", types.ErrInvalidSchedule, i, j)
			}
		}
	}

	return nil
}
