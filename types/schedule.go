package types

import "fmt"

// Permutation assigns exactly one target to every period.
//
// p[j] is the target (row index) attacked during period j. A valid
// permutation of size n lists every target in [0, n) exactly once.
type Permutation []int

// Validate checks that p is a bijection over [0, n).
func (p Permutation) Validate(n int) error {
	if len(p) != n {
		return fmt.Errorf("%w: permutation has %d periods, want %d", ErrInvalidSchedule, len(p), n)
	}

	seen := make([]bool, n)
	for j, target := range p {
		if target < 0 || target >= n {
			return fmt.Errorf("%w: target %d out of range in period %d", ErrInvalidSchedule, target, j)
		}
		if seen[target] {
			return fmt.Errorf("%w: target %d assigned twice", ErrInvalidSchedule, target)
		}
		seen[target] = true
	}

	return nil
}

// Sum returns the total firepower of the cells selected by p.
func (p Permutation) Sum(c PowerMatrix) int64 {
	var sum int64
	for j, target := range p {
		sum += c[target][j]
	}

	return sum
}

// Schedule lifts the permutation into a one-target-per-period schedule.
func (p Permutation) Schedule() Schedule {
	s := make(Schedule, len(p))
	for j, target := range p {
		s[j] = []int{target}
	}

	return s
}

// Schedule is the period-indexed record of attacked targets.
//
// s[j] lists the targets attacked during period j. A schedule may be shorter
// than the number of periods when the greedy scheduler runs out of eligible
// targets; periods beyond len(s) were never emitted.
type Schedule [][]int

// Periods returns the number of emitted periods.
func (s Schedule) Periods() int {
	return len(s)
}

// Empty reports whether no period was emitted.
func (s Schedule) Empty() bool {
	return len(s) == 0
}

// AttackCounts returns how many times each of the n targets is attacked.
//
// Targets outside [0, n) are ignored; use Validate to reject them.
func (s Schedule) AttackCounts(n int) []int {
	counts := make([]int, n)
	for _, targets := range s {
		for _, target := range targets {
			if target >= 0 && target < n {
				counts[target]++
			}
		}
	}

	return counts
}

// Clone returns a deep copy of the schedule.
func (s Schedule) Clone() Schedule {
	if s == nil {
		return nil
	}

	out := make(Schedule, len(s))
	for j, targets := range s {
		out[j] = append([]int(nil), targets...)
	}

	return out
}

// Validate checks the schedule against n targets and the attack limits.
//
// Rules:
//   - at most n periods
//   - every target index is in [0, n)
//   - at most m targets per period, none listed twice within a period
//   - no target attacked more than r times across the schedule
//
// Returns:
//   - error: ErrInvalidSchedule wrapped with details, nil if valid
func (s Schedule) Validate(n, m, r int) error {
	if len(s) > n {
		return fmt.Errorf("%w: %d periods exceed %d available", ErrInvalidSchedule, len(s), n)
	}

	counts := make([]int, n)
	for j, targets := range s {
		if len(targets) > m {
			return fmt.Errorf("%w: period %d lists %d targets, limit %d", ErrInvalidSchedule, j, len(targets), m)
		}

		seen := make(map[int]struct{}, len(targets))
		for _, target := range targets {
			if target < 0 || target >= n {
				return fmt.Errorf("%w: target %d out of range in period %d", ErrInvalidSchedule, target, j)
			}
			if _, dup := seen[target]; dup {
				return fmt.Errorf("%w: target %d listed twice in period %d", ErrInvalidSchedule, target, j)
			}
			seen[target] = struct{}{}

			counts[target]++
			if counts[target] > r {
				return fmt.Errorf("%w: target %d attacked more than %d times", ErrInvalidSchedule, target, r)
			}
		}
	}

	return nil
}
