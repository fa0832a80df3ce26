// Package source provides built-in power matrix source implementations.
//
// Matrix sources supply the power matrix an optimizer run works on.
// The package includes:
//
//   - Static: Fixed in-memory matrix
//   - File: YAML, JSON or CSV file on disk
//   - Random: Deterministic generated matrix
//
// Custom sources can be implemented by satisfying the types.MatrixSource interface.
package source
