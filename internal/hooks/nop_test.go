package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/volley/types"
)

func TestNewNop(t *testing.T) {
	hooks := NewNop()

	require.NotNil(t, hooks.OnOptimized)
	require.NotNil(t, hooks.OnInfeasible)
	require.NotNil(t, hooks.OnError)

	ctx := context.Background()
	require.NoError(t, hooks.OnOptimized(ctx, types.Result{Feasible: true, Power: 27.5}))
	require.NoError(t, hooks.OnInfeasible(ctx, types.ModePairs))
	require.NoError(t, hooks.OnError(ctx, context.Canceled))
}

func TestComplete(t *testing.T) {
	t.Run("nil hooks become no-ops", func(t *testing.T) {
		hooks := Complete(nil)
		require.NotNil(t, hooks.OnOptimized)
		require.NotNil(t, hooks.OnInfeasible)
		require.NotNil(t, hooks.OnError)
	})

	t.Run("keeps user callbacks", func(t *testing.T) {
		errHook := errors.New("hook failed")
		var seen types.Mode

		hooks := Complete(&types.Hooks{
			OnInfeasible: func(_ context.Context, mode types.Mode) error {
				seen = mode
				return errHook
			},
		})

		err := hooks.OnInfeasible(context.Background(), types.ModePairs)
		require.ErrorIs(t, err, errHook)
		require.Equal(t, types.ModePairs, seen)

		require.NoError(t, hooks.OnOptimized(context.Background(), types.Result{}))
		require.NoError(t, hooks.OnError(context.Background(), errHook))
	})
}
