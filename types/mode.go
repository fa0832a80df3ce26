package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode holds the attack limits of a scheduling run.
type Mode struct {
	// PerPeriod is the maximum number of targets attacked in one period (m).
	PerPeriod int `json:"perPeriod" yaml:"perPeriod"`

	// PerTarget is the maximum number of times one target may be attacked (r).
	PerTarget int `json:"perTarget" yaml:"perTarget"`
}

// Predefined modes supported by the optimizer.
var (
	// ModeSingle attacks one target per period, each target at most once.
	ModeSingle = Mode{PerPeriod: 1, PerTarget: 1}

	// ModePairs attacks two targets per period, each target at most twice.
	ModePairs = Mode{PerPeriod: 2, PerTarget: 2}
)

// StrategyKind identifies the solver family selected for a mode.
type StrategyKind int

const (
	// KindUnsupported marks a mode no solver handles.
	KindUnsupported StrategyKind = iota

	// KindExact solves the mode optimally via bipartite matching.
	KindExact

	// KindGreedy solves the mode with the per-period top-m heuristic.
	KindGreedy
)

// String returns the string representation of the strategy kind.
func (k StrategyKind) String() string {
	switch k {
	case KindExact:
		return "exact"
	case KindGreedy:
		return "greedy"
	default:
		return "unsupported"
	}
}

// Kind selects the solver family for the mode.
//
// Returns:
//   - StrategyKind: KindExact for (1,1), KindGreedy for (2,2), KindUnsupported otherwise
func (m Mode) Kind() StrategyKind {
	switch m {
	case ModeSingle:
		return KindExact
	case ModePairs:
		return KindGreedy
	default:
		return KindUnsupported
	}
}

// String returns the mode as "mxr", e.g. "1x1".
func (m Mode) String() string {
	return fmt.Sprintf("%dx%d", m.PerPeriod, m.PerTarget)
}

// ParseMode parses a mode written as "mxr" (for example "2x2").
//
// The whole input must be the canonical form produced by String; signs,
// leading zeros, spaces and trailing text are rejected.
func ParseMode(s string) (Mode, error) {
	perPeriod, perTarget, ok := strings.Cut(s, "x")
	if !ok {
		return Mode{}, fmt.Errorf("%w: cannot parse mode %q", ErrUnsupportedConfiguration, s)
	}

	m, errM := strconv.Atoi(perPeriod)
	r, errR := strconv.Atoi(perTarget)
	mode := Mode{PerPeriod: m, PerTarget: r}
	if errM != nil || errR != nil || mode.String() != s {
		return Mode{}, fmt.Errorf("%w: cannot parse mode %q", ErrUnsupportedConfiguration, s)
	}

	return mode, nil
}
