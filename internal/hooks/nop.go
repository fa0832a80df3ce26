package hooks

import (
	"context"

	"github.com/arloliu/volley/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, types.Result) error = (*NopHooks)(nil).OnOptimized
	_ func(context.Context, types.Mode) error   = (*NopHooks)(nil).OnInfeasible
	_ func(context.Context, error) error        = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnOptimized:  h.OnOptimized,
		OnInfeasible: h.OnInfeasible,
		OnError:      h.OnError,
	}
}

// Complete returns a copy of h where every nil callback is replaced by its
// no-op counterpart. A nil h yields NewNop().
func Complete(h *types.Hooks) types.Hooks {
	out := NewNop()
	if h == nil {
		return out
	}
	if h.OnOptimized != nil {
		out.OnOptimized = h.OnOptimized
	}
	if h.OnInfeasible != nil {
		out.OnInfeasible = h.OnInfeasible
	}
	if h.OnError != nil {
		out.OnError = h.OnError
	}

	return out
}

// OnOptimized is a no-op implementation.
func (h *NopHooks) OnOptimized(ctx context.Context, result types.Result) error {
	return nil
}

// OnInfeasible is a no-op implementation.
func (h *NopHooks) OnInfeasible(ctx context.Context, mode types.Mode) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(ctx context.Context, err error) error {
	return nil
}
