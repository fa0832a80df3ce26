package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/volley/types"
)

func TestRandom_LoadMatrix(t *testing.T) {
	t.Run("generates deterministic valid matrices", func(t *testing.T) {
		src, err := NewRandom(42, 6, 9)
		require.NoError(t, err)

		a, err := src.LoadMatrix(context.Background())
		require.NoError(t, err)
		b, err := src.LoadMatrix(context.Background())
		require.NoError(t, err)

		require.Equal(t, a, b)
		require.NoError(t, a.Validate())
		require.Equal(t, 6, a.Size())
		for _, row := range a {
			for _, v := range row {
				require.LessOrEqual(t, v, int64(9))
			}
		}
	})

	t.Run("different seeds differ", func(t *testing.T) {
		require.NotEqual(t, Generate(1, 8, 100), Generate(2, 8, 100))
	})

	t.Run("zero max yields zeros", func(t *testing.T) {
		c := Generate(1, 3, 0)
		require.Equal(t, int64(0), c.Total())
	})

	t.Run("rejects bad parameters", func(t *testing.T) {
		_, err := NewRandom(1, 0, 5)
		require.ErrorIs(t, err, types.ErrInvalidMatrix)

		_, err = NewRandom(1, 3, -1)
		require.ErrorIs(t, err, types.ErrInvalidMatrix)
	})

	t.Run("honors cancelled context", func(t *testing.T) {
		src, err := NewRandom(1, 2, 5)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = src.LoadMatrix(ctx)
		require.ErrorIs(t, err, types.ErrSourceUnavailable)
	})
}
