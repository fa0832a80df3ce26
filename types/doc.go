// Package types provides core type definitions and interfaces for the volley library.
//
// This package contains shared types that are used across multiple packages in the
// library. By keeping these types in a separate package, we avoid import cycles
// between the root volley package and the strategy, power and source packages.
//
// Key types:
//   - PowerMatrix: Per-target, per-period firepower values
//   - Permutation / Schedule: Which targets are attacked in which period
//   - Mode: Attack limits (m per period, r per target)
//   - Result / TwoWaveResult: Optimizer outcomes
//   - Logger / MetricsCollector / Hooks: Ambient integration points
package types
