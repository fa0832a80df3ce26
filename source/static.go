package source

import (
	"context"
	"sync"

	"github.com/arloliu/volley/types"
)

// Static implements a matrix source with a fixed in-memory matrix.
type Static struct {
	mu     sync.RWMutex
	matrix types.PowerMatrix
}

var _ types.MatrixSource = (*Static)(nil)

// NewStatic creates a new static matrix source.
//
// The source keeps its own copy of c, so later changes to c are not
// observed. Useful for testing and for embedding a known matrix.
//
// Parameters:
//   - c: Power matrix to serve
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic(types.PowerMatrix{
//	    {5, 4, 2},
//	    {4, 5, 4},
//	    {2, 4, 5},
//	})
//	res, err := opt.OptimizeSource(ctx, src)
func NewStatic(c types.PowerMatrix) *Static {
	return &Static{
		matrix: c.Clone(),
	}
}

// LoadMatrix returns a copy of the static matrix.
//
// Returns:
//   - types.PowerMatrix: The matrix (callers may modify it)
//   - error: Always nil (never fails)
func (s *Static) LoadMatrix(_ context.Context) (types.PowerMatrix, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.matrix.Clone(), nil
}

// Update replaces the served matrix.
//
// This allows the static source to simulate changing battlefield data,
// which is useful for testing cache invalidation.
//
// Example:
//
//	src := source.NewStatic(initial)
//	// Later: period powers were re-estimated
//	src.Update(revised)
func (s *Static) Update(c types.PowerMatrix) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.matrix = c.Clone()
}
