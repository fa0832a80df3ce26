// Package strategy provides built-in scheduling strategy implementations.
//
// Strategies decide which targets are attacked in which period. The package
// includes three strategies:
//
//   - Assignment: Exact optimal matching for one attack per period and per target
//   - Complementary: An optimal matching plus the best matching disjoint from it
//   - Greedy: Per-period top-m selection under a per-target attack budget
//
// # Strategy Selection Guide
//
// Assignment:
//   - Use for the (1,1) mode; the result is provably optimal
//   - Runs in O(n³) via the Hungarian method
//
// Complementary:
//   - Use to score two independent waves that must not repeat a pairing
//   - Both waves are optimized on raw, undegraded power
//   - Needs at least two targets
//
// Greedy:
//   - Use for the (2,2) mode or any other (m, r) budget
//   - Linear pass over periods, no optimality guarantee
//   - Stops early when fewer than m targets remain eligible
//
// Custom strategies can be implemented by satisfying the types.Scheduler interface.
package strategy
