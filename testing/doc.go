// Package testing provides test utilities for the volley library.
//
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - ExampleMatrix: The 3×3 reference matrix with known golden results
//   - RandomMatrix: Deterministic random matrices for property tests
//   - BruteForceMax: Exhaustive optimal permutation for small matrices
//   - NewTestLogger: Logger that writes through testing.T
//
// Example usage:
//
//	import (
//	    "testing"
//	    volleytest "github.com/arloliu/volley/testing"
//	)
//
//	func TestMyScheduler(t *testing.T) {
//	    c := volleytest.ExampleMatrix()
//	    _, best := volleytest.BruteForceMax(c)
//	    // compare best with your scheduler's result
//	}
package testing
