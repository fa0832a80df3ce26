package types

import "fmt"

// PowerMatrix holds per-target, per-period firepower values.
//
// C[i][j] is the firepower of target i during period j. The matrix is square
// (n targets == n periods) and all values are non-negative. Solvers never
// modify a matrix passed to them.
type PowerMatrix [][]int64

// MaxExactTotal bounds the sum of all entries of a valid matrix.
//
// Every total, column total and assigned sum is then exact both as int64 and
// as float64, which the assignment solver works in.
const MaxExactTotal int64 = 1 << 53

// Size returns the number of targets (and periods) in the matrix.
func (c PowerMatrix) Size() int {
	return len(c)
}

// Validate checks that the matrix is non-empty, square and non-negative, and
// that n·n·max(C) does not exceed MaxExactTotal.
//
// Returns:
//   - error: ErrInvalidMatrix wrapped with the offending position, nil if valid
func (c PowerMatrix) Validate() error {
	n := len(c)
	if n == 0 {
		return fmt.Errorf("%w: matrix is empty", ErrInvalidMatrix)
	}

	var maxValue int64
	for i, row := range c {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidMatrix, i, len(row), n)
		}
		for j, v := range row {
			if v < 0 {
				return fmt.Errorf("%w: negative value %d at (%d,%d)", ErrInvalidMatrix, v, i, j)
			}
			maxValue = max(maxValue, v)
		}
	}

	if limit := MaxExactTotal / (int64(n) * int64(n)); maxValue > limit {
		return fmt.Errorf("%w: value %d exceeds %d, the largest a %dx%d matrix can hold exactly",
			ErrInvalidMatrix, maxValue, limit, n, n)
	}

	return nil
}

// Total returns the sum of all matrix entries.
func (c PowerMatrix) Total() int64 {
	var sum int64
	for _, row := range c {
		for _, v := range row {
			sum += v
		}
	}

	return sum
}

// ColumnTotal returns the combined firepower of all targets in period j.
func (c PowerMatrix) ColumnTotal(j int) int64 {
	var sum int64
	for i := range c {
		sum += c[i][j]
	}

	return sum
}

// Clone returns a deep copy of the matrix.
func (c PowerMatrix) Clone() PowerMatrix {
	if c == nil {
		return nil
	}

	out := make(PowerMatrix, len(c))
	for i, row := range c {
		out[i] = make([]int64, len(row))
		copy(out[i], row)
	}

	return out
}

// Float64 converts the matrix into a real-valued matrix for the assignment solver.
// The conversion and every sum over it are exact for a matrix that passes Validate.
func (c PowerMatrix) Float64() [][]float64 {
	out := make([][]float64, len(c))
	for i, row := range c {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = float64(v)
		}
	}

	return out
}
