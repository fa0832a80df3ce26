package volley

import "github.com/arloliu/volley/types"

// Re-export types from the internal types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal packages
// to depend on `types` without depending on the root `volley` package, while
// still providing a convenient `volley.Mode`, `volley.Logger`, etc. for users.
type (
	PowerMatrix   = types.PowerMatrix
	Permutation   = types.Permutation
	Schedule      = types.Schedule
	Mode          = types.Mode
	StrategyKind  = types.StrategyKind
	Result        = types.Result
	TwoWaveResult = types.TwoWaveResult
)

// Re-export interfaces from the internal types package for convenience.
type (
	Scheduler        = types.Scheduler
	MatrixSource     = types.MatrixSource
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// Re-export mode constants from the internal types package.
var (
	ModeSingle = types.ModeSingle
	ModePairs  = types.ModePairs
)

// Re-export strategy kinds from the internal types package.
const (
	KindUnsupported = types.KindUnsupported
	KindExact       = types.KindExact
	KindGreedy      = types.KindGreedy
)

// MaxExactTotal bounds the sum of all entries of a valid PowerMatrix.
const MaxExactTotal = types.MaxExactTotal

// ParseMode parses "MxR" notation such as "1x1" or "2x2".
func ParseMode(s string) (Mode, error) {
	return types.ParseMode(s)
}
